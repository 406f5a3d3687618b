// model/book.go
package model

import "time"

type Genre string

const (
	GenreFiction    Genre = "FICTION"
	GenreNonFiction Genre = "NON_FICTION"
	GenreScience    Genre = "SCIENCE"
	GenreHistory    Genre = "HISTORY"
	GenreBiography  Genre = "BIOGRAPHY"
	GenreFantasy    Genre = "FANTASY"
)

func (g Genre) Valid() bool {
	switch g {
	case GenreFiction, GenreNonFiction, GenreScience, GenreHistory, GenreBiography, GenreFantasy:
		return true
	}
	return false
}

type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       Genre     `json:"genre"`
	ISBN        string    `json:"isbn"`
	Description *string   `json:"description,omitempty"`
	Copies      int64     `json:"copies"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
