package schema

import "time"

// Record holds validated, typed field values keyed by field name. Omitted
// optional fields have no entry, so indexing a Record directly yields nil for
// them, which binds as SQL NULL.
type Record map[string]any

// Has reports whether the field was present (or defaulted).
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// String returns the field as a string, or "" if absent.
func (r Record) String(name string) string {
	v, _ := r[name].(string)
	return v
}

// Float returns the field as a float64, or 0 if absent.
func (r Record) Float(name string) float64 {
	v, _ := r[name].(float64)
	return v
}

// Int returns the field as an int64, or 0 if absent.
func (r Record) Int(name string) int64 {
	v, _ := r[name].(int64)
	return v
}

// Bool returns the field as a bool, or false if absent.
func (r Record) Bool(name string) bool {
	v, _ := r[name].(bool)
	return v
}

// Time returns the field as a time.Time, or the zero time if absent.
func (r Record) Time(name string) time.Time {
	v, _ := r[name].(time.Time)
	return v
}
