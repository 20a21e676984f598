package formflat_test

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tomasbasham/formflat"
)

var baseTime = time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC)

type Person struct {
	Name     string   `form:"name"`
	Age      int      `form:"age,omitempty"`
	Pronouns []string `form:"pronouns"`
}

type ComplexPerson struct {
	ID        int      `form:"id"`
	Name      string   `form:"name"`
	Age       int      `form:"age,omitempty"`
	Pronouns  []string `form:"pronouns,omitempty"`
	CreatedAt MyDate   `form:"created_at"`
	Private   string   `form:"-"`
	Optional  *string  `form:"optional,omitempty"`
	secret    string
}

type IgnoredFieldsForm struct {
	Public  string `form:"public"`
	Private string `form:"-"`
	Ignored string `form:",ignore"`
	NoTag   string
	Empty   string `form:""`
	Omitted string `form:",omitempty"`
}

type User struct {
	Name    string   `form:"name"`
	Age     int      `form:"age,omitempty"`
	Address *Address `form:"address"`
}

type Address struct {
	Street string `form:"street"`
	City   string `form:"city"`
	Zip    string `form:"zip"`
}

type Status string

type Ticket struct {
	Title  string `form:"title"`
	Status Status `form:"status"`
	Note   Status `form:"note"`
}

type MyDate time.Time

func (d MyDate) MarshalForm() (string, error) {
	return time.Time(d).Format("2006.01.02"), nil
}

func (d *MyDate) UnmarshalForm(b string) error {
	t, err := time.Parse("2006.01.02", b)
	if err != nil {
		return err
	}
	*d = MyDate(t)
	return nil
}

type badMarshaler struct{}

func (badMarshaler) MarshalForm() (string, error) {
	return "", fmt.Errorf("cannot marshal")
}

// obj builds a mapping value from alternating keys and values. Values that
// are not already a formflat.Value are wrapped with formflat.Scalar.
func obj(kv ...interface{}) formflat.Value {
	return formflat.Mapping(flat(kv...))
}

// flat builds a *formflat.Map from alternating keys and values.
func flat(kv ...interface{}) *formflat.Map {
	m := formflat.NewMap()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), val(kv[i+1]))
	}
	return m
}

func seq(xs ...interface{}) formflat.Value {
	elems := make([]formflat.Value, len(xs))
	for i, x := range xs {
		elems[i] = val(x)
	}
	return formflat.Sequence(elems...)
}

func val(x interface{}) formflat.Value {
	if v, ok := x.(formflat.Value); ok {
		return v
	}
	return formflat.Scalar(x)
}

var (
	null  = formflat.Null()
	undef = formflat.Undefined()
)

// diffMap reports the difference between two mappings entry by entry.
func diffMap(want, got *formflat.Map) string {
	return cmp.Diff(want.Entries(), got.Entries())
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Comparer for MyDate type.
var MyDateComparer = cmp.Comparer(func(x, y MyDate) bool {
	return time.Time(x).Equal(time.Time(y))
})
