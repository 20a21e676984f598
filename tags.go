package formflat

import (
	"reflect"
	"strings"
	"sync"
)

// fieldCache maps a struct [reflect.Type] to the parsed `form` tags of its
// fields, indexed like the fields themselves. Safe for concurrent use.
var fieldCache sync.Map

type tag struct {
	Name   string
	Omit   bool
	Ignore bool
}

func tags(v reflect.Value) []*tag {
	t := reflect.Indirect(v).Type()
	if t.Kind() != reflect.Struct {
		return []*tag{}
	}

	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]*tag)
	}

	tags := make([]*tag, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			tags[i] = &tag{Ignore: true}
			continue
		}
		tag := parseTag(f.Tag.Get("form"))
		if !tag.Ignore && tag.Name == "" {
			tag.Name = f.Name
		}
		tags[i] = tag
	}

	// A concurrent caller may have stored the same slice already; either copy
	// is equivalent.
	actual, _ := fieldCache.LoadOrStore(t, tags)
	return actual.([]*tag)
}

// parseTag interprets a `form:"name,flag,..."` struct tag. The name "-"
// ignores the field; the flags omitempty and ignore are recognised.
func parseTag(str string) *tag {
	str = strings.TrimSpace(str)
	if str == "-" {
		return &tag{Ignore: true}
	}

	name, flags, _ := strings.Cut(str, ",")
	t := &tag{Name: strings.TrimSpace(name)}
	for flags != "" {
		var flag string
		flag, flags, _ = strings.Cut(flags, ",")
		switch strings.TrimSpace(flag) {
		case "omitempty":
			t.Omit = true
		case "ignore":
			t.Ignore = true
		}
	}
	return t
}
