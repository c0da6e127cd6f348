package packet

import (
	"cmp"
	"slices"
)

// Dividers returns the two marker packets, [[2]] and [[6]], inserted before
// computing the decoder key.
func Dividers() [2]Value {
	return [2]Value{
		List(List(Int(2))),
		List(List(Int(6))),
	}
}

// OrderedPairSum adds up the 1-based indices of the pairs that are already
// in the right order.
func OrderedPairSum(pairs []Pair) int {
	sum := 0
	for i, p := range pairs {
		if p.InOrder() {
			sum += i + 1
		}
	}
	return sum
}

// DecoderKey sorts packets together with the two dividers and multiplies
// the dividers' 1-based positions. Dividers are tracked by identity, so
// input packets that compare Equal to a divider do not shadow it.
func DecoderKey(packets []Value) int {
	type entry struct {
		v   Value
		idx int
	}
	dividers := Dividers()
	entries := make([]entry, 0, len(packets)+len(dividers))
	for i, p := range packets {
		entries = append(entries, entry{v: p, idx: i})
	}
	for i, d := range dividers {
		entries = append(entries, entry{v: d, idx: len(packets) + i})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		if o := Compare(a.v, b.v); o != Equal {
			return int(o)
		}
		return cmp.Compare(a.idx, b.idx)
	})

	key := 1
	for pos, e := range entries {
		if e.idx >= len(packets) {
			key *= pos + 1
		}
	}
	return key
}
