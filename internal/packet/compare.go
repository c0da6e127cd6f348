package packet

import "slices"

// Ordering is the result of a three-way comparison. Its integer values are
// the ones slices.SortFunc expects.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}

// Reverse flips Less and Greater.
func (o Ordering) Reverse() Ordering { return -o }

// Compare orders two packets.
//
// Integers compare numerically. Lists compare element by element and the
// first differing element decides; when one list runs out first it is the
// smaller one. An integer compared with a list is treated as a one-element
// list holding that integer.
func Compare(left, right Value) Ordering {
	switch {
	case left.kind == KindInt && right.kind == KindInt:
		return compareInts(left.n, right.n)
	case left.kind == KindList && right.kind == KindList:
		return compareLists(left.items, right.items)
	case left.kind == KindInt:
		return compareLists([]Value{left}, right.items)
	default:
		return compareLists(left.items, []Value{right})
	}
}

func compareInts(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func compareLists(left, right []Value) Ordering {
	for i := 0; i < len(left) && i < len(right); i++ {
		if o := Compare(left[i], right[i]); o != Equal {
			return o
		}
	}
	return compareInts(len(left), len(right))
}

// Sort returns a new slice with packets in ascending order. The sort is
// stable, so packets that compare Equal keep their input order.
func Sort(packets []Value) []Value {
	sorted := slices.Clone(packets)
	slices.SortStableFunc(sorted, func(a, b Value) int {
		return int(Compare(a, b))
	})
	return sorted
}
