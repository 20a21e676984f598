package formflat

import (
	"fmt"
	"net/url"
	"strings"
)

// DecodeString is a convenience function that decodes the form data in the
// string. See [Decode].
func DecodeString(data string) (*Map, error) {
	return Decode([]byte(data))
}

// Decode parses application/x-www-form-urlencoded data with bracket keys back
// into a nested mapping, reversing [BracketKey]. Keys keep the order of their
// first appearance, every leaf is a string scalar and a repeated key keeps
// its last value. A "[]" segment appends to a sequence, whereas numeric
// segments such as "[0]" are ordinary mapping keys.
func Decode(data []byte) (*Map, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("form: empty input")
	}

	root := Mapping(NewMap())
	for _, pair := range strings.Split(strings.TrimSpace(string(data)), "&") {
		if pair == "" {
			continue
		}
		rawKey, rawVal, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("form: invalid form data: %w", err)
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil {
			return nil, fmt.Errorf("form: invalid form data: %w", err)
		}

		path, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		if root, err = assign(root, path, Scalar(val)); err != nil {
			return nil, fmt.Errorf("form: %s: %w", key, err)
		}
	}
	return root.Map(), nil
}

// assign stores val at path below cur and returns the updated value. Missing
// containers are created on the way.
func assign(cur Value, path []segment, val Value) (Value, error) {
	// If the path is empty, we are at a leaf node.
	if len(path) == 0 {
		return val, nil
	}

	seg := path[0]
	if seg.Append {
		return assignSequence(cur, path[1:], val)
	}
	return assignMapping(cur, seg.Key, path[1:], val)
}

func assignSequence(cur Value, path []segment, val Value) (Value, error) {
	var elems []Value
	switch cur.kind {
	case KindUndefined:
	case KindSequence:
		elems = cur.elems
	default:
		return Value{}, fmt.Errorf("cannot append to %v", cur.kind)
	}

	e, err := assign(Undefined(), path, val)
	if err != nil {
		return Value{}, err
	}
	return Sequence(append(elems, e)...), nil
}

func assignMapping(cur Value, key string, path []segment, val Value) (Value, error) {
	var m *Map
	switch cur.kind {
	case KindUndefined:
		m = NewMap()
	case KindMapping:
		m = cur.m
	default:
		return Value{}, fmt.Errorf("cannot set key %q on %v", key, cur.kind)
	}

	child, _ := m.Get(key)
	e, err := assign(child, path, val)
	if err != nil {
		return Value{}, err
	}
	m.Set(key, e)
	return Mapping(m), nil
}
