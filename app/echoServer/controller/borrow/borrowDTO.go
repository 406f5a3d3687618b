package borrow

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tajmin/level2-assingment3/app/echoServer/validation"
)

type CreateBorrowReq struct {
	Book     string `json:"book" validate:"required,uuid4"`
	Quantity *int64 `json:"quantity" validate:"required"`
	DueDate  string `json:"dueDate" validate:"required"`
}

var createBorrowMessages = map[string]validation.Violation{
	"Book":     {Field: "book", Message: "Invalid book ID format"},
	"Quantity": {Field: "quantity", Message: "Quantity must be at least 1"},
	"DueDate":  {Field: "dueDate", Message: "Invalid date format"},
}

// Validate returns the parsed due date alongside the violations. Format and
// in-the-future failures are reported independently.
func (r *CreateBorrowReq) Validate(v *validator.Validate, now time.Time) (time.Time, []validation.Violation) {
	out := validation.Translate(v.Struct(r), createBorrowMessages)

	if r.Quantity != nil && *r.Quantity < 1 {
		out = append(out, validation.Violation{Field: "quantity", Message: "Quantity must be at least 1"})
	}

	var due time.Time
	if r.DueDate != "" {
		parsed, err := parseDueDate(r.DueDate)
		switch {
		case err != nil:
			out = append(out, validation.Violation{Field: "dueDate", Message: "Invalid date format"})
		case !parsed.After(now):
			out = append(out, validation.Violation{Field: "dueDate", Message: "Due date must be in the future"})
		default:
			due = parsed
		}
	}
	return due, out
}

func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
