package formflat

import "strconv"

// Clean returns a copy of the mapping v without the entries whose value
// [IsEmpty]. Nested mappings are cleaned recursively and kept under their key
// even when nothing is left in them. Sequences are kept as they are, so null
// elements inside a sequence survive.
//
// A v that is itself empty, or a non-string scalar, yields an empty mapping.
// The indices of a top-level sequence are treated as keys.
func Clean(v Value) *Map {
	out := NewMap()
	switch v.kind {
	case KindMapping:
		for k, e := range v.m.All() {
			cleanEntry(out, k, e)
		}
	case KindSequence:
		for i, e := range v.elems {
			cleanEntry(out, strconv.Itoa(i), e)
		}
	}
	return out
}

func cleanEntry(out *Map, key string, v Value) {
	switch {
	case v.kind == KindMapping:
		out.Set(key, Mapping(Clean(v)))
	case !IsEmpty(v):
		out.Set(key, v)
	}
}
