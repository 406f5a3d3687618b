package book

import (
	"github.com/go-playground/validator/v10"

	"github.com/tajmin/level2-assingment3/app/echoServer/validation"
	"github.com/tajmin/level2-assingment3/model"
	booksvc "github.com/tajmin/level2-assingment3/service/book"
)

type CreateBookReq struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Genre       string  `json:"genre"`
	ISBN        string  `json:"isbn" validate:"required,min=10"`
	Description *string `json:"description"`
	Copies      *int64  `json:"copies" validate:"required"`
	Available   *bool   `json:"available"`
}

var createBookMessages = map[string]validation.Violation{
	"Title":  {Field: "title", Message: "Title is required"},
	"Author": {Field: "author", Message: "Author is required"},
	"ISBN":   {Field: "isbn", Message: "ISBN must be at least 10 characters"},
	"Copies": {Field: "copies", Message: "Copies must be a positive integer"},
}

// Validate returns every field violation; an empty slice means the request
// is well formed. Length and character-class checks on isbn are independent,
// so a short non-numeric isbn reports both.
func (r *CreateBookReq) Validate(v *validator.Validate) []validation.Violation {
	out := validation.Translate(v.Struct(r), createBookMessages)

	if !model.Genre(r.Genre).Valid() {
		out = append(out, validation.Violation{Field: "genre", Message: "Invalid genre selection"})
	}
	if !validation.ISBNChars(r.ISBN) {
		out = append(out, validation.Violation{Field: "isbn", Message: "ISBN must contain only numbers and hyphens"})
	}
	if r.Copies != nil && *r.Copies < 0 {
		out = append(out, validation.Violation{Field: "copies", Message: "Copies must be a positive integer"})
	}
	if r.Description != nil && len(*r.Description) > 500 {
		out = append(out, validation.Violation{Field: "description", Message: "Description cannot exceed 500 characters"})
	}
	return out
}

func (r *CreateBookReq) params() booksvc.CreateParams {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return booksvc.CreateParams{
		Title:       r.Title,
		Author:      r.Author,
		Genre:       model.Genre(r.Genre),
		ISBN:        r.ISBN,
		Description: r.Description,
		Copies:      *r.Copies,
		Available:   available,
	}
}

type UpdateBookReq struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Genre       *string `json:"genre"`
	ISBN        *string `json:"isbn"`
	Description *string `json:"description"`
	Copies      *int64  `json:"copies"`
	Available   *bool   `json:"available"`
}

// Validate re-checks only the fields present; emptiness is the service's
// call ("No fields to update").
func (r *UpdateBookReq) Validate() []validation.Violation {
	var out []validation.Violation
	if r.Title != nil && *r.Title == "" {
		out = append(out, validation.Violation{Field: "title", Message: "Title is required"})
	}
	if r.Author != nil && *r.Author == "" {
		out = append(out, validation.Violation{Field: "author", Message: "Author is required"})
	}
	if r.Genre != nil && !model.Genre(*r.Genre).Valid() {
		out = append(out, validation.Violation{Field: "genre", Message: "Invalid genre selection"})
	}
	if r.ISBN != nil {
		if len(*r.ISBN) < 10 {
			out = append(out, validation.Violation{Field: "isbn", Message: "ISBN must be at least 10 characters"})
		}
		if !validation.ISBNChars(*r.ISBN) {
			out = append(out, validation.Violation{Field: "isbn", Message: "ISBN must contain only numbers and hyphens"})
		}
	}
	if r.Copies != nil && *r.Copies < 0 {
		out = append(out, validation.Violation{Field: "copies", Message: "Copies must be a positive integer"})
	}
	if r.Description != nil && len(*r.Description) > 500 {
		out = append(out, validation.Violation{Field: "description", Message: "Description cannot exceed 500 characters"})
	}
	return out
}

func (r *UpdateBookReq) params() booksvc.UpdateParams {
	p := booksvc.UpdateParams{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Description: r.Description,
		Copies:      r.Copies,
		Available:   r.Available,
	}
	if r.Genre != nil {
		g := model.Genre(*r.Genre)
		p.Genre = &g
	}
	return p
}
