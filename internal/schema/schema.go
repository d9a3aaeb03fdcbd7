// Package schema validates flat JSON request bodies against per-resource field
// rules, producing either a normalized record of typed values or a list of
// field errors. Unknown fields are ignored.
package schema

import (
	"fmt"
	"time"
)

// Kind is the expected type of a field's value.
type Kind int

// Field kinds.
const (
	KindString Kind = iota
	KindNumber
	KindInt
	KindBool
	KindDate     // ISO date, datetime accepted too
	KindDateTime // ISO datetime only
)

// Field is a single validation rule.
type Field struct {
	Name       string
	Kind       Kind
	Required   bool
	Positive   bool
	HasRange   bool
	Min, Max   float64
	Default    any
	HasDefault bool
}

// FieldError describes one field that violated its rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Schema is an ordered set of field rules for one resource.
type Schema struct {
	fields []Field
}

// New creates a schema from field rules.
func New(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// String declares a required non-empty string field.
func String(name string) Field {
	return Field{Name: name, Kind: KindString, Required: true}
}

// OptionalString declares an optional string field.
func OptionalString(name string) Field {
	return Field{Name: name, Kind: KindString}
}

// StringDefault declares a string field with a default when absent.
func StringDefault(name, def string) Field {
	return Field{Name: name, Kind: KindString, Default: def, HasDefault: true}
}

// Number declares a required number field.
func Number(name string) Field {
	return Field{Name: name, Kind: KindNumber, Required: true}
}

// PositiveNumber declares a required number field that must be > 0.
func PositiveNumber(name string) Field {
	return Field{Name: name, Kind: KindNumber, Required: true, Positive: true}
}

// NumberRange declares a required number field bounded to [min, max].
func NumberRange(name string, min, max float64) Field {
	return Field{Name: name, Kind: KindNumber, Required: true, HasRange: true, Min: min, Max: max}
}

// OptionalNumber declares an optional number field.
func OptionalNumber(name string) Field {
	return Field{Name: name, Kind: KindNumber}
}

// NumberDefault declares a number field with a default when absent.
func NumberDefault(name string, def float64) Field {
	return Field{Name: name, Kind: KindNumber, Default: def, HasDefault: true}
}

// OptionalInt declares an optional integer field.
func OptionalInt(name string) Field {
	return Field{Name: name, Kind: KindInt}
}

// IntDefault declares an integer field with a default when absent.
func IntDefault(name string, def int64) Field {
	return Field{Name: name, Kind: KindInt, Default: def, HasDefault: true}
}

// OptionalBool declares an optional boolean field.
func OptionalBool(name string) Field {
	return Field{Name: name, Kind: KindBool}
}

// BoolDefault declares a boolean field with a default when absent.
func BoolDefault(name string, def bool) Field {
	return Field{Name: name, Kind: KindBool, Default: def, HasDefault: true}
}

// Date declares a required date field ("2006-01-02" or RFC 3339).
func Date(name string) Field {
	return Field{Name: name, Kind: KindDate, Required: true}
}

// OptionalDate declares an optional date field.
func OptionalDate(name string) Field {
	return Field{Name: name, Kind: KindDate}
}

// DateTime declares a required RFC 3339 datetime field.
func DateTime(name string) Field {
	return Field{Name: name, Kind: KindDateTime, Required: true}
}

// Validate checks raw against the schema. On success it returns a record of
// typed values with defaults substituted for omitted fields; otherwise it
// returns every field error found. Validation has no side effects.
func (s *Schema) Validate(raw map[string]any) (Record, []FieldError) {
	rec := Record{}
	var errs []FieldError

	fail := func(name, msg string) {
		errs = append(errs, FieldError{Field: name, Message: msg})
	}

	for _, f := range s.fields {
		v, ok := raw[f.Name]
		if !ok || v == nil {
			switch {
			case f.HasDefault:
				rec[f.Name] = f.Default
			case f.Required:
				fail(f.Name, "required")
			}
			continue
		}

		switch f.Kind {
		case KindString:
			str, ok := v.(string)
			if !ok {
				fail(f.Name, "must be a string")
				continue
			}
			if f.Required && str == "" {
				fail(f.Name, "must not be empty")
				continue
			}
			rec[f.Name] = str

		case KindNumber:
			num, ok := v.(float64)
			if !ok {
				fail(f.Name, "must be a number")
				continue
			}
			if f.Positive && num <= 0 {
				fail(f.Name, "must be positive")
				continue
			}
			if f.HasRange && (num < f.Min || num > f.Max) {
				fail(f.Name, fmt.Sprintf("must be between %g and %g", f.Min, f.Max))
				continue
			}
			rec[f.Name] = num

		case KindInt:
			num, ok := v.(float64)
			if !ok || num != float64(int64(num)) {
				fail(f.Name, "must be an integer")
				continue
			}
			rec[f.Name] = int64(num)

		case KindBool:
			b, ok := v.(bool)
			if !ok {
				fail(f.Name, "must be a boolean")
				continue
			}
			rec[f.Name] = b

		case KindDate:
			str, ok := v.(string)
			if !ok {
				fail(f.Name, "must be a date string")
				continue
			}
			t, err := parseDate(str)
			if err != nil {
				fail(f.Name, "must be an ISO date")
				continue
			}
			rec[f.Name] = t

		case KindDateTime:
			str, ok := v.(string)
			if !ok {
				fail(f.Name, "must be a datetime string")
				continue
			}
			t, err := time.Parse(time.RFC3339, str)
			if err != nil {
				fail(f.Name, "must be an ISO datetime")
				continue
			}
			rec[f.Name] = t
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return rec, nil
}

// parseDate accepts a plain ISO date or a full RFC 3339 datetime.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
