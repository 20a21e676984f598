package formflat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseJSON decodes a JSON document into a [Value], keeping object keys in
// document order. Numbers are kept as [json.Number].
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseJSONValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("form: invalid json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("form: invalid json: trailing data")
	}
	return v, nil
}

func parseJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseJSONObject(dec)
		case '[':
			return parseJSONArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t)
	case nil:
		return Null(), nil
	default:
		return Scalar(t), nil
	}
}

func parseJSONObject(dec *json.Decoder) (Value, error) {
	m := NewMap()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}
		v, err := parseJSONValue(dec)
		if err != nil {
			return Value{}, err
		}
		m.Set(key, v)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Mapping(m), nil
}

func parseJSONArray(dec *json.Decoder) (Value, error) {
	elems := []Value{}
	for dec.More() {
		v, err := parseJSONValue(dec)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Sequence(elems...), nil
}
