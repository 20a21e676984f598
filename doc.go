// Package formflat turns nested values into flat form data.
//
// The pipeline has three steps. [Flatten] collapses a nested mapping into a
// single level keyed by dot-joined paths, so {"a": {"b": 1}} becomes
// {"a.b": 1}. [Clean] drops entries holding null, undefined, "" or "null".
// [ToFormData] runs both and appends each leaf to a [FormData] under its
// bracket key, "a[b]", ready to be sent as an
// application/x-www-form-urlencoded or multipart/form-data body.
//
// Values are modelled by [Value], a closed set of kinds, and [Map], a mapping
// that keeps insertion order. [ValueOf], [ParseJSON] and [ParseYAML] build
// them from Go values, JSON and YAML. [Decode] reverses the bracket encoding.
//
// Keys are split on "." without escaping, so a key that itself contains a
// dot is rendered as two segments.
package formflat
