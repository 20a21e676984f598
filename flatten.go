package formflat

import "strconv"

// Flatten converts v into a single-level mapping whose keys are the
// dot-joined paths of the leaves of v, in depth-first insertion order.
//
// Mappings and sequences are descended until a scalar, null or undefined
// leaf is reached; sequence elements are keyed by their index, so the third
// element of "a" lands under "a.2". Empty containers leave no entry. A
// literal "." inside a key is not escaped.
//
// A scalar, null or undefined v yields an empty mapping. v is never
// modified.
func Flatten(v Value) *Map {
	out := NewMap()
	switch v.kind {
	case KindMapping:
		flattenMap(out, "", v.m)
	case KindSequence:
		flattenSeq(out, "", v.elems)
	}
	return out
}

func flattenMap(out *Map, prefix string, m *Map) {
	for k, v := range m.All() {
		flattenValue(out, prefix, k, v)
	}
}

func flattenSeq(out *Map, prefix string, elems []Value) {
	for i, e := range elems {
		flattenValue(out, prefix, strconv.Itoa(i), e)
	}
}

func flattenValue(out *Map, prefix, key string, v Value) {
	switch v.kind {
	case KindMapping:
		flattenMap(out, joinKey(prefix, key), v.m)
	case KindSequence:
		flattenSeq(out, joinKey(prefix, key), v.elems)
	default:
		out.Set(joinKey(prefix, key), v)
	}
}

// joinKey appends key to prefix. An empty side is dropped so that no dangling
// "." appears.
func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	default:
		return prefix + "." + key
	}
}
