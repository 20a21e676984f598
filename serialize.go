package formflat

import "strings"

// ToFormData flattens v, removes empty entries unless opts.SetNull is set,
// and appends every remaining leaf to a new [FormData] under its bracket
// key, in flattening order.
//
// A *FormData argument is returned as is, whatever the options. Any other v
// is first converted with [ValueOf], which is the only source of errors.
func ToFormData(v interface{}, opts Options) (*FormData, error) {
	obs := opts.observer()
	if fd, ok := v.(*FormData); ok && fd != nil {
		obs.Observe(Event{Stage: StagePassThrough, Count: fd.Len()})
		return fd, nil
	}

	val, err := ValueOf(v)
	if err != nil {
		return nil, err
	}

	flat := Flatten(val)
	obs.Observe(Event{Stage: StageFlatten, Count: flat.Len()})

	if !opts.SetNull {
		n := flat.Len()
		flat = Clean(Mapping(flat))
		obs.Observe(Event{Stage: StageClean, Count: flat.Len(), Removed: n - flat.Len()})
	}

	fd := NewFormData()
	for k, e := range flat.All() {
		key := BracketKey(k)
		fd.Append(key, e)
		obs.Observe(Event{Stage: StageAppend, Key: key, Count: fd.Len()})
	}
	return fd, nil
}

// BracketKey renders a dot-joined flat key in bracket notation: the first
// segment bare and every following segment in square brackets, so "a.b.c"
// becomes "a[b][c]".
func BracketKey(flatKey string) string {
	segs := strings.Split(flatKey, ".")
	var b strings.Builder
	b.WriteString(segs[0])
	for _, s := range segs[1:] {
		b.WriteByte('[')
		b.WriteString(s)
		b.WriteByte(']')
	}
	return b.String()
}
