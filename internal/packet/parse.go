package packet

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrMalformed indicates text that is not a nested list of integers.
	ErrMalformed = errors.New("packet: malformed packet")
	// ErrUnpaired indicates an input whose packet count is odd.
	ErrUnpaired = errors.New("packet: packet without a partner")
)

// Parse decodes one packet written in bracket notation, e.g. [1,[2,3],4].
// A bare integer is accepted as a scalar packet.
func Parse(s string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("%w: %q: trailing data", ErrMalformed, s)
	}
	v, err := fromJSON(raw)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	return v, nil
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func fromJSON(raw any) (Value, error) {
	switch t := raw.(type) {
	case json.Number:
		n, err := strconv.Atoi(t.String())
		if err != nil {
			return Value{}, fmt.Errorf("not an integer: %s", t)
		}
		return Int(n), nil
	case []any:
		items := make([]Value, len(t))
		for i, elem := range t {
			v, err := fromJSON(elem)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Value{kind: KindList, items: items}, nil
	default:
		return Value{}, fmt.Errorf("unexpected %T", raw)
	}
}

// ReadPairs reads packets one per line and groups consecutive packets into
// pairs. Blank lines are ignored.
func ReadPairs(r io.Reader) ([]Pair, error) {
	var (
		pairs   []Pair
		pending *Value
		line    int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if pending == nil {
			pending = &v
			continue
		}
		pairs = append(pairs, Pair{Left: *pending, Right: v})
		pending = nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read packets: %w", err)
	}
	if pending != nil {
		return nil, fmt.Errorf("line %d: %w", line, ErrUnpaired)
	}
	return pairs, nil
}

// Flatten lists every packet of pairs in input order.
func Flatten(pairs []Pair) []Value {
	out := make([]Value, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, p.Left, p.Right)
	}
	return out
}
