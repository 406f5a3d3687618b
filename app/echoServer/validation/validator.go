package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}

// Violation is one field-level rule failure. Request validation never
// returns a bare error for malformed input; it returns these.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var isbnPattern = regexp.MustCompile(`^[0-9-]+$`)

// ISBNChars reports whether s contains only digits and hyphens.
func ISBNChars(s string) bool { return isbnPattern.MatchString(s) }

// Translate maps validator tag failures onto the caller's per-field
// violations, one per struct field. Rules the tags cannot express
// (enum membership, character classes, future dates) are checked by the
// request types themselves and appended to the same slice.
func Translate(err error, byField map[string]Violation) []Violation {
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []Violation{{Field: "body", Message: "Invalid request body"}}
	}
	out := make([]Violation, 0, len(ves))
	seen := make(map[string]bool, len(ves))
	for _, fe := range ves {
		v, ok := byField[fe.StructField()]
		if !ok || seen[fe.StructField()] {
			continue
		}
		seen[fe.StructField()] = true
		out = append(out, v)
	}
	return out
}
