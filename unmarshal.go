package formflat

import (
	"fmt"
	"reflect"
	"strconv"
)

// InvalidUnmarshalError describes an invalid argument passed to [Unmarshal].
// (The argument to [Unmarshal] must be a non-nil pointer.)
type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "form: Unmarshal(nil)"
	}

	if e.Type.Kind() != reflect.Pointer {
		return "form: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "form: Unmarshal(nil " + e.Type.String() + ")"
}

// Unmarshaler is the interface implemented by types that can unmarshal a
// single form value of themselves.
type Unmarshaler interface {
	UnmarshalForm(string) error
}

// Unmarshal decodes form data with [Decode] and stores the result in the
// struct or string-keyed map pointed to by v. Struct fields are matched by
// their `form` tags. A slice is filled from either "[]" segments or indexed
// keys such as "a[0]", in the order they appear.
func Unmarshal(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &InvalidUnmarshalError{reflect.TypeOf(v)}
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct && rv.Kind() != reflect.Map {
		return fmt.Errorf("form: top-level value must be struct or map")
	}
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("form: map keys must be strings")
	}

	m, err := Decode(data)
	if err != nil {
		return err
	}
	if err := store(rv, Mapping(m)); err != nil {
		return fmt.Errorf("form: %w", err)
	}
	return nil
}

// store writes src into dst, allocating pointers, maps and slices on the way.
func store(dst reflect.Value, src Value) error {
	if dst.Kind() == reflect.Pointer {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return store(dst.Elem(), src)
	}

	if src.kind == KindScalar {
		if u, ok := asUnmarshaler(dst); ok {
			return u.UnmarshalForm(src.String())
		}
	}

	switch dst.Kind() {
	case reflect.Interface:
		pv := reflect.ValueOf(plain(src))
		if !pv.Type().AssignableTo(dst.Type()) {
			return fmt.Errorf("cannot store %v in %v", src.kind, dst.Type())
		}
		dst.Set(pv)
		return nil
	case reflect.Struct:
		return storeStruct(dst, src)
	case reflect.Map:
		return storeMap(dst, src)
	case reflect.Slice:
		return storeSlice(dst, src)
	}

	if src.kind != KindScalar {
		return fmt.Errorf("cannot store %v in %v", src.kind, dst.Type())
	}
	return setScalar(dst, src.String())
}

func storeStruct(dst reflect.Value, src Value) error {
	if src.kind != KindMapping {
		return fmt.Errorf("cannot store %v in struct %v", src.kind, dst.Type())
	}
	for k, e := range src.m.All() {
		field := findStructField(dst, k)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("unknown field %q in struct %v", k, dst.Type())
		}
		if err := store(field, e); err != nil {
			return err
		}
	}
	return nil
}

func storeMap(dst reflect.Value, src Value) error {
	if src.kind != KindMapping {
		return fmt.Errorf("cannot store %v in map %v", src.kind, dst.Type())
	}
	if dst.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("map keys must be strings")
	}
	if dst.IsNil() {
		dst.Set(reflect.MakeMap(dst.Type()))
	}
	for k, e := range src.m.All() {
		elem := reflect.New(dst.Type().Elem()).Elem()
		if err := store(elem, e); err != nil {
			return err
		}
		dst.SetMapIndex(reflect.ValueOf(k).Convert(dst.Type().Key()), elem)
	}
	return nil
}

func storeSlice(dst reflect.Value, src Value) error {
	var elems []Value
	switch src.kind {
	case KindSequence:
		elems = src.elems
	case KindMapping:
		// Indexed keys produced by ToFormData, e.g. "a[0]", "a[1]".
		for _, e := range src.m.Entries() {
			elems = append(elems, e.Value)
		}
	default:
		// A repeated or single plain key.
		elems = []Value{src}
	}

	for _, e := range elems {
		elem := reflect.New(dst.Type().Elem()).Elem()
		if err := store(elem, e); err != nil {
			return err
		}
		dst.Set(reflect.Append(dst, elem))
	}
	return nil
}

// plain converts src into the untyped Go form used for interface targets:
// map[string]interface{}, []interface{} and string leaves.
func plain(src Value) interface{} {
	switch src.kind {
	case KindMapping:
		m := make(map[string]interface{}, src.m.Len())
		for k, e := range src.m.All() {
			m[k] = plain(e)
		}
		return m
	case KindSequence:
		s := make([]interface{}, len(src.elems))
		for i, e := range src.elems {
			s[i] = plain(e)
		}
		return s
	default:
		return src.String()
	}
}

func asUnmarshaler(v reflect.Value) (Unmarshaler, bool) {
	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(Unmarshaler); ok {
			return u, true
		}
	}
	if u, ok := v.Interface().(Unmarshaler); ok {
		return u, true
	}
	return nil, false
}

func findStructField(v reflect.Value, key string) reflect.Value {
	tags := tags(v)
	for i := 0; i < v.NumField(); i++ {
		if tags[i].Ignore {
			continue
		}
		if tags[i].Name == key {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}

func setScalar(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s == "" {
			v.SetInt(0)
			return nil
		}
		i, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("parseInt: %w", err)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if s == "" {
			v.SetUint(0)
			return nil
		}
		u, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("parseUint: %w", err)
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		if s == "" {
			v.SetFloat(0)
			return nil
		}
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("parseFloat: %w", err)
		}
		v.SetFloat(f)
	case reflect.Bool:
		if s == "" {
			v.SetBool(false)
			return nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("parseBool: %w", err)
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("unsupported type: %v", v.Type())
	}
	return nil
}
