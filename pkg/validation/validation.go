package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"postbase-backend/pkg/apperror"
)

// Type is the expected wire type of a field.
type Type int

const (
	String Type = iota
	Int
	Bool
	StringSlice
)

// Field is one declarative constraint descriptor. Zero-valued bounds are
// unchecked. Label is the human name used in violation messages.
type Field struct {
	Name     string
	Label    string
	Type     Type
	Required bool

	// Min/Max bound string length for String fields and value for Int fields.
	Min int
	Max int

	Email bool
	UUID  bool

	// Slice bounds for StringSlice fields.
	MaxItems   int
	MaxItemLen int

	// Default is applied when the field is absent. Nil means no default.
	Default any
}

// Schema is an ordered set of field descriptors evaluated uniformly.
type Schema struct {
	fields []Field
}

func New(fields ...Field) Schema {
	return Schema{fields: fields}
}

var validate = validator.New()

// Apply checks every field, collecting all violations rather than stopping at
// the first. On any violation it fails with a single aggregated validation
// error. On success it returns the cleaned input: defaults applied, values
// coerced to their declared types, unknown fields dropped.
func (s Schema) Apply(in map[string]any) (map[string]any, error) {
	cleaned := make(map[string]any, len(s.fields))
	var violations []string

	for _, f := range s.fields {
		raw, present := in[f.Name]
		if !present || raw == nil {
			if f.Required {
				violations = append(violations, f.Label+" is required")
				continue
			}
			if f.Default != nil {
				cleaned[f.Name] = f.Default
			}
			continue
		}

		value, msgs := f.check(raw)
		if len(msgs) > 0 {
			violations = append(violations, msgs...)
			continue
		}
		cleaned[f.Name] = value
	}

	if len(violations) > 0 {
		return nil, apperror.Validation(violations...)
	}
	return cleaned, nil
}

func (f Field) check(raw any) (any, []string) {
	switch f.Type {
	case String:
		return f.checkString(raw)
	case Int:
		return f.checkInt(raw)
	case Bool:
		return f.checkBool(raw)
	case StringSlice:
		return f.checkStringSlice(raw)
	default:
		return nil, []string{f.Label + " has an unsupported type"}
	}
}

func (f Field) checkString(raw any) (any, []string) {
	s, ok := raw.(string)
	if !ok {
		return nil, []string{f.Label + " must be a string"}
	}

	var msgs []string
	if f.Min > 0 && len(s) < f.Min {
		msgs = append(msgs, fmt.Sprintf("%s must be at least %d characters long", f.Label, f.Min))
	}
	if f.Max > 0 && len(s) > f.Max {
		msgs = append(msgs, fmt.Sprintf("%s cannot exceed %d characters", f.Label, f.Max))
	}
	if f.Email && validate.Var(s, "email") != nil {
		msgs = append(msgs, "Please provide a valid email address")
	}
	if f.UUID && validate.Var(s, "uuid") != nil {
		msgs = append(msgs, fmt.Sprintf("Invalid %s format", lowerFirst(f.Label)))
	}
	return s, msgs
}

func (f Field) checkInt(raw any) (any, []string) {
	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case float64:
		if v != float64(int(v)) {
			return nil, []string{f.Label + " must be an integer"}
		}
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, []string{f.Label + " must be an integer"}
		}
		n = parsed
	default:
		return nil, []string{f.Label + " must be an integer"}
	}

	var msgs []string
	if f.Min > 0 && n < f.Min {
		msgs = append(msgs, fmt.Sprintf("%s must be at least %d", f.Label, f.Min))
	}
	if f.Max > 0 && n > f.Max {
		msgs = append(msgs, fmt.Sprintf("%s cannot exceed %d", f.Label, f.Max))
	}
	return n, msgs
}

func (f Field) checkBool(raw any) (any, []string) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, []string{f.Label + " must be a boolean"}
		}
		return parsed, nil
	default:
		return nil, []string{f.Label + " must be a boolean"}
	}
}

func (f Field) checkStringSlice(raw any) (any, []string) {
	items, ok := raw.([]any)
	if !ok {
		if typed, tok := raw.([]string); tok {
			items = make([]any, len(typed))
			for i, s := range typed {
				items[i] = s
			}
		} else {
			return nil, []string{f.Label + " must be an array of strings"}
		}
	}

	var msgs []string
	plural := strings.ToLower(f.Label)
	if f.MaxItems > 0 && len(items) > f.MaxItems {
		msgs = append(msgs, fmt.Sprintf("Cannot have more than %d %s", f.MaxItems, plural))
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, sok := item.(string)
		if !sok {
			msgs = append(msgs, f.Label+" must be an array of strings")
			break
		}
		if f.MaxItemLen > 0 && len(s) > f.MaxItemLen {
			msgs = append(msgs, fmt.Sprintf("Each item in %s cannot exceed %d characters", plural, f.MaxItemLen))
			break
		}
		out = append(out, s)
	}
	if len(msgs) > 0 {
		return nil, msgs
	}
	return out, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
