package formflat

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// Marshaler is the interface implemented by types that can render themselves
// as a single form value.
type Marshaler interface {
	MarshalForm() (string, error)
}

var (
	timeType  = reflect.TypeOf(time.Time{})
	valueType = reflect.TypeOf(Value{})
)

// EncodeToString is a convenience function that returns the
// application/x-www-form-urlencoded encoding of v produced by [ToFormData].
func EncodeToString(v interface{}, opts Options) (string, error) {
	fd, err := ToFormData(v, opts)
	if err != nil {
		return "", err
	}
	return fd.Encode(), nil
}

// Marshal returns the application/x-www-form-urlencoded encoding of v.
func Marshal(v interface{}, opts Options) ([]byte, error) {
	s, err := EncodeToString(v, opts)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// ValueOf converts an ordinary Go value into a [Value].
//
// Nil, nil pointers and nil interfaces become [Null]. A [Value] or *[Map] is
// used directly. Structs become mappings in field order, named and filtered
// by their `form` tags. Maps with string keys become mappings in sorted key
// order. Slices and arrays become sequences. Types implementing [Marshaler],
// [time.Time] and primitive kinds become scalars.
//
// Cyclic data is not detected: a value that refers back to itself through a
// pointer, map or slice recurses until the stack overflows.
func ValueOf(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case *Map:
		return Mapping(x), nil
	}
	return valueOf(reflect.ValueOf(v))
}

func valueOf(v reflect.Value) (Value, error) {
	// Handle nil pointers and interfaces early to avoid dereferencing them.
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return Null(), nil
	}

	if v.Type() == valueType {
		return v.Interface().(Value), nil
	}
	if m, ok := v.Interface().(*Map); ok {
		return Mapping(m), nil
	}

	// Handle custom Marshaler first.
	if m, ok := asMarshaler(v); ok {
		s, err := m.MarshalForm()
		if err != nil {
			return Value{}, err
		}
		return Scalar(s), nil
	}

	if v.Type() == timeType {
		return Scalar(v.Interface()), nil
	}

	// Dispatch based on the kind of the value.
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return valueOf(v.Elem())
	case reflect.Struct:
		return structValue(v)
	case reflect.Map:
		return mapValue(v)
	case reflect.Slice, reflect.Array:
		return sliceValue(v)
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Scalar(v.Interface()), nil
	default:
		return Value{}, fmt.Errorf("form: unsupported type: %v", v.Type())
	}
}

func structValue(v reflect.Value) (Value, error) {
	m := NewMap()
	for i, tag := range tags(v) {
		if tag.Ignore || tag.Name == "" {
			continue
		}
		fv := v.Field(i)
		if !fv.CanInterface() {
			continue
		}
		if tag.Omit && isEmptyValue(fv) {
			continue
		}
		e, err := valueOf(fv)
		if err != nil {
			return Value{}, err
		}
		m.Set(tag.Name, e)
	}
	return Mapping(m), nil
}

func mapValue(v reflect.Value) (Value, error) {
	if v.Type().Key().Kind() != reflect.String {
		return Value{}, fmt.Errorf("form: map keys must be strings")
	}
	if v.IsNil() {
		return Null(), nil
	}

	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	m := NewMap()
	for _, k := range keys {
		e, err := valueOf(v.MapIndex(k))
		if err != nil {
			return Value{}, err
		}
		m.Set(k.String(), e)
	}
	return Mapping(m), nil
}

func sliceValue(v reflect.Value) (Value, error) {
	if v.Kind() == reflect.Slice && v.IsNil() {
		return Null(), nil
	}
	elems := make([]Value, v.Len())
	for i := range elems {
		e, err := valueOf(v.Index(i))
		if err != nil {
			return Value{}, err
		}
		elems[i] = e
	}
	return Sequence(elems...), nil
}

func asMarshaler(v reflect.Value) (Marshaler, bool) {
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(Marshaler); ok {
			return m, true
		}
	}
	if !v.CanInterface() {
		return nil, false
	}
	if m, ok := v.Interface().(Marshaler); ok {
		return m, true
	}
	return nil, false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
