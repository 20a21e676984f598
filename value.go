package formflat

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the tag of a [Value]. It is fixed when the value is constructed.
type Kind uint8

const (
	KindUndefined Kind = iota // zero value
	KindNull
	KindScalar
	KindSequence
	KindMapping
)

// Value is a nested form value: a scalar, null, undefined, an ordered
// sequence of values or an ordered mapping from string keys to values.
//
// The zero Value is undefined.
type Value struct {
	kind   Kind
	scalar interface{}
	elems  []Value
	m      *Map
}

// Undefined returns the undefined value.
func Undefined() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Scalar wraps a primitive such as a string, number, bool or [time.Time]. A
// nil argument yields [Null].
func Scalar(v interface{}) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: KindScalar, scalar: v}
}

// Sequence returns an ordered sequence of the given elements.
func Sequence(elems ...Value) Value {
	return Value{kind: KindSequence, elems: elems}
}

// Mapping wraps m. A nil m yields an empty mapping.
func Mapping(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMapping, m: m}
}

// Kind reports the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is null or undefined.
func (v Value) IsNil() bool {
	return v.kind == KindNull || v.kind == KindUndefined
}

// Interface returns the wrapped primitive of a scalar, or nil for any other
// kind.
func (v Value) Interface() interface{} { return v.scalar }

// Elems returns the elements of a sequence.
func (v Value) Elems() []Value { return v.elems }

// Map returns the mapping of a mapping value, or nil for any other kind.
func (v Value) Map() *Map { return v.m }

// String renders v the way a browser form-data container stringifies an
// appended value.
func (v Value) String() string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindSequence:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			if !e.IsNil() {
				parts[i] = e.String()
			}
		}
		return strings.Join(parts, ",")
	case KindMapping:
		return "[object Object]"
	default:
		return formatScalar(v.scalar)
	}
}

func formatScalar(x interface{}) string {
	switch s := x.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.FormatInt(int64(s), 10)
	case int8:
		return strconv.FormatInt(int64(s), 10)
	case int16:
		return strconv.FormatInt(int64(s), 10)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint:
		return strconv.FormatUint(uint64(s), 10)
	case uint8:
		return strconv.FormatUint(uint64(s), 10)
	case uint16:
		return strconv.FormatUint(uint64(s), 10)
	case uint32:
		return strconv.FormatUint(uint64(s), 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case time.Time:
		return s.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// Equal reports whether v and w have the same kind and hold equal contents.
// Mappings compare in key order.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		if t, ok := v.scalar.(time.Time); ok {
			u, ok := w.scalar.(time.Time)
			return ok && t.Equal(u)
		}
		return reflect.DeepEqual(v.scalar, w.scalar)
	case KindSequence:
		if len(v.elems) != len(w.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(w.elems[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		return v.m.Equal(w.m)
	}
	return true
}

// IsEmpty reports whether v belongs to the set of values removed by [Clean]:
// null, undefined, the empty string and the string "null". Named string
// types are compared by their underlying string.
func IsEmpty(v Value) bool {
	switch v.kind {
	case KindNull, KindUndefined:
		return true
	case KindScalar:
		rv := reflect.ValueOf(v.scalar)
		if rv.Kind() != reflect.String {
			return false
		}
		s := rv.String()
		return s == "" || s == "null"
	}
	return false
}
