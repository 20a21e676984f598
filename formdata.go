package formflat

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Field is a single appended key/value pair of a [FormData].
type Field struct {
	Key   string
	Value Value
}

// FormData is an append-only, ordered collection of form fields. It is the
// output of [ToFormData] and can be rendered as an
// application/x-www-form-urlencoded or multipart/form-data body.
//
// A FormData is not safe for concurrent use.
type FormData struct {
	fields []Field
}

// NewFormData returns an empty FormData.
func NewFormData() *FormData {
	return &FormData{}
}

// Append adds a field. Existing fields with the same key are kept.
func (f *FormData) Append(key string, v Value) {
	f.fields = append(f.fields, Field{Key: key, Value: v})
}

// Len returns the number of fields.
func (f *FormData) Len() int { return len(f.fields) }

// Fields returns a copy of the fields in append order.
func (f *FormData) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Get returns the first value appended under key.
func (f *FormData) Get(key string) (Value, bool) {
	for _, fd := range f.fields {
		if fd.Key == key {
			return fd.Value, true
		}
	}
	return Undefined(), false
}

// GetAll returns every value appended under key, in order.
func (f *FormData) GetAll(key string) []Value {
	var out []Value
	for _, fd := range f.fields {
		if fd.Key == key {
			out = append(out, fd.Value)
		}
	}
	return out
}

// Values returns the fields as [url.Values] with every value rendered by
// [Value.String]. The order of distinct keys is lost.
func (f *FormData) Values() url.Values {
	values := url.Values{}
	for _, fd := range f.fields {
		values.Add(fd.Key, fd.Value.String())
	}
	return values
}

// Encode renders the fields as an application/x-www-form-urlencoded string
// in append order. Unlike [url.Values.Encode] the keys are not sorted.
func (f *FormData) Encode() string {
	var b strings.Builder
	for i, fd := range f.fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(fd.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fd.Value.String()))
	}
	return b.String()
}

// WriteMultipart writes the fields to w as a multipart/form-data body and
// returns the matching Content-Type header value.
func (f *FormData) WriteMultipart(w io.Writer) (string, error) {
	mw := multipart.NewWriter(w)
	if err := mw.SetBoundary(uuid.NewString()); err != nil {
		return "", fmt.Errorf("form: multipart boundary: %w", err)
	}
	for _, fd := range f.fields {
		if err := mw.WriteField(fd.Key, fd.Value.String()); err != nil {
			return "", fmt.Errorf("form: write field %q: %w", fd.Key, err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("form: close multipart body: %w", err)
	}
	return mw.FormDataContentType(), nil
}
