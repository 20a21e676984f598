package formflat

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an operation receives a value of a kind
// it cannot handle.
var ErrInvalidArgument = errors.New("form: invalid argument")

// Clone returns a deep copy of a mapping or sequence. Modifying the copy
// never affects v. Any other kind of value fails with an error wrapping
// [ErrInvalidArgument].
func Clone(v Value) (Value, error) {
	switch v.kind {
	case KindMapping, KindSequence:
		return cloneValue(v), nil
	default:
		return Value{}, fmt.Errorf("%w: cannot clone %v value", ErrInvalidArgument, v.kind)
	}
}

func cloneValue(v Value) Value {
	switch v.kind {
	case KindMapping:
		m := NewMap()
		for k, e := range v.m.All() {
			m.Set(k, cloneValue(e))
		}
		return Mapping(m)
	case KindSequence:
		elems := make([]Value, len(v.elems))
		for i, e := range v.elems {
			elems[i] = cloneValue(e)
		}
		return Sequence(elems...)
	default:
		return v
	}
}
