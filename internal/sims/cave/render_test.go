package cave

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderSample(t *testing.T) {
	c := sampleCave(t, DefaultConfig())

	var b strings.Builder
	require.NoError(t, c.Render(&b))
	want := `    4444445555
    9999990000
    4567890123
  0 ......+...
  1 ..........
  2 ..........
  3 ..........
  4 ....#...##
  5 ....#...#.
  6 ..###...#.
  7 ........#.
  8 ........#.
  9 #########.
`
	require.Equal(t, want, b.String())
}

func TestRenderAfterPouring(t *testing.T) {
	c := sampleCave(t, DefaultConfig())
	require.Equal(t, 24, c.PourUntilDone())

	var b strings.Builder
	require.NoError(t, c.Render(&b))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")[3:]
	want := []string{
		"  0 ......+...",
		"  1 ..........",
		"  2 ......o...",
		"  3 .....ooo..",
		"  4 ....#ooo##",
		"  5 ...o#ooo#.",
		"  6 ..###ooo#.",
		"  7 ....oooo#.",
		"  8 .o.ooooo#.",
		"  9 #########.",
	}
	require.Equal(t, want, lines)
}

func TestRenderFlowAndFloor(t *testing.T) {
	c, err := New([]Segment{{From: Coord{2, 1}, To: Coord{2, 1}}}, Config{
		SourceX:   2,
		Floor:     true,
		TrackFlow: true,
	})
	require.NoError(t, err)
	require.Equal(t, Outcome{Kind: OutcomeSettled, At: Coord{1, 2}}, c.PourOne())

	var b strings.Builder
	require.NoError(t, c.Render(&b))
	require.Equal(t, "    12\n  0 .~\n  1 ~#\n  2 o.\n  3 ##\n", b.String())
}
