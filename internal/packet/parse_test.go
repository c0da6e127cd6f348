package packet

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseBuildsNestedValues(t *testing.T) {
	got, err := Parse("[1,[2,[]],-3]")
	require.NoError(t, err)

	want := List(Int(1), List(Int(2), List()), Int(-3))
	if diff := cmp.Diff(want.String(), got.String()); diff != "" {
		t.Fatalf("parsed value mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, KindList, got.Kind())
	require.Equal(t, 3, got.Len())
	require.True(t, got.Items()[0].IsInt())
	require.Equal(t, 1, got.Items()[0].Int())
	require.Equal(t, Equal, Compare(want, got))
}

func TestParseRoundTripsCanonicalText(t *testing.T) {
	for _, s := range []string{"[]", "[[]]", "[1,2,3]", "[[1],[2,3,4]]", "42"} {
		v, err := Parse(s)
		require.NoError(t, err)
		require.Equal(t, s, v.String())
	}
	v, err := Parse(" [ 1 , [ 2 ] ] ")
	require.NoError(t, err)
	require.Equal(t, "[1,[2]]", v.String())
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"[1,2",
		"[1,2]]",
		"[1.5]",
		`["a"]`,
		"[true]",
		"[null]",
		`{"a":1}`,
		"[1][2]",
	} {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrMalformed, "input %q", s)
	}
}

func TestReadPairsExample(t *testing.T) {
	f, err := os.Open("testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()

	pairs, err := ReadPairs(f)
	require.NoError(t, err)
	require.Len(t, pairs, 8)
	require.Equal(t, "[1,1,3,1,1]", pairs[0].Left.String())
	require.Equal(t, "[1,1,5,1,1]", pairs[0].Right.String())

	var inOrder []bool
	for _, p := range pairs {
		inOrder = append(inOrder, p.InOrder())
	}
	want := []bool{true, true, false, true, false, true, false, false}
	if diff := cmp.Diff(want, inOrder); diff != "" {
		t.Fatalf("pair order mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, Flatten(pairs), 16)
}

func TestReadPairsErrors(t *testing.T) {
	_, err := ReadPairs(strings.NewReader("[1]\n[2]\n\n[3]\n"))
	require.ErrorIs(t, err, ErrUnpaired)

	_, err = ReadPairs(strings.NewReader("[1]\n[2\n"))
	require.ErrorIs(t, err, ErrMalformed)
	require.ErrorContains(t, err, "line 2")
}

func TestMustParsePanics(t *testing.T) {
	require.Panics(t, func() { MustParse("[") })
}
