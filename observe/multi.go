package observe

import "github.com/tomasbasham/formflat"

type multi []formflat.Observer

// Multi returns an observer that forwards every event to each of obs in
// order. Nil observers are skipped.
func Multi(obs ...formflat.Observer) formflat.Observer {
	var m multi
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

func (m multi) Observe(e formflat.Event) {
	for _, o := range m {
		o.Observe(e)
	}
}
