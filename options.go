package formflat

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Options configures [ToFormData].
type Options struct {
	// SetNull keeps null, undefined and empty-string entries instead of
	// removing them with [Clean].
	SetNull bool `yaml:"set_null"`

	// Observer, if set, is notified of every pipeline step.
	Observer Observer `yaml:"-"`
}

func (o Options) observer() Observer {
	if o.Observer == nil {
		return nopObserver{}
	}
	return o.Observer
}

// Option modifies [Options].
type Option func(*Options)

// WithSetNull sets [Options.SetNull].
func WithSetNull(keep bool) Option {
	return func(o *Options) { o.SetNull = keep }
}

// WithObserver sets [Options.Observer].
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LoadOptions reads [Options] from a YAML document such as:
//
//	set_null: true
//
// An empty document yields the zero Options.
func LoadOptions(r io.Reader) (Options, error) {
	var o Options
	if err := yaml.NewDecoder(r).Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("form: invalid options: %w", err)
	}
	return o, nil
}
