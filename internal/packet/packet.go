// Package packet implements the distress-signal packet ordering: a recursive
// value that is either an integer or a list of values, and a three-way
// comparison that defines a total order over them.
package packet

import (
	"strconv"
	"strings"
)

// Kind distinguishes the two shapes a Value can take.
type Kind uint8

const (
	// KindInt marks an integer scalar.
	KindInt Kind = iota
	// KindList marks an ordered sequence of values.
	KindList
)

// Value is an integer or a list of Values. The zero Value is the integer 0.
// Values are treated as immutable once constructed.
type Value struct {
	kind  Kind
	n     int
	items []Value
}

// Int returns a scalar Value.
func Int(n int) Value { return Value{kind: KindInt, n: n} }

// List returns a sequence Value holding a copy of items.
func List(items ...Value) Value {
	return Value{kind: KindList, items: append([]Value(nil), items...)}
}

// Kind reports which shape v has.
func (v Value) Kind() Kind { return v.kind }

// IsInt reports whether v is a scalar.
func (v Value) IsInt() bool { return v.kind == KindInt }

// Int returns the scalar held by v. It is zero for lists.
func (v Value) Int() int { return v.n }

// Items returns the elements of a list, or nil for a scalar. Callers must
// not modify the returned slice.
func (v Value) Items() []Value { return v.items }

// Len returns the number of elements of a list, or 0 for a scalar.
func (v Value) Len() int { return len(v.items) }

// String renders v in bracket notation, e.g. [1,[2,3]].
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	if v.kind == KindInt {
		b.WriteString(strconv.Itoa(v.n))
		return
	}
	b.WriteByte('[')
	for i, item := range v.items {
		if i > 0 {
			b.WriteByte(',')
		}
		item.write(b)
	}
	b.WriteByte(']')
}

// Pair groups the two packets of one transmission.
type Pair struct {
	Left  Value
	Right Value
}

// InOrder reports whether the pair's left packet sorts before its right one.
func (p Pair) InOrder() bool { return Compare(p.Left, p.Right) == Less }
