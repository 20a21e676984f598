package formflat

import (
	"fmt"
	"io"
)

// Decoder reads form-urlencoded data from an [io.Reader] and decodes it into
// a nested [Map].
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a new [Decoder] that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads all form-urlencoded data from the underlying [io.Reader] and
// decodes it with [Decode].
func (d *Decoder) Decode() (*Map, error) {
	body, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("form: failed to read body: %w", err)
	}

	return Decode(body)
}

// Encoder writes form-urlencoded data to an [io.Writer].
type Encoder struct {
	w    io.Writer
	opts Options
}

// NewEncoder creates a new [Encoder] that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: newOptions(opts)}
}

// Encode converts v with [ToFormData] and writes its form-urlencoded
// rendering to the underlying [io.Writer].
func (e *Encoder) Encode(v interface{}) error {
	data, err := Marshal(v, e.opts)
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	return err
}
