package bookrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tajmin/level2-assingment3/model"
)

var dialect = goqu.Dialect("postgres")

const bookCols = `id, title, author, genre, isbn, description, copies, available, created_at, updated_at`

// sortColumns whitelists the external sort field names; anything else is
// ignored rather than interpolated into SQL.
var sortColumns = map[string]string{
	"title":     "title",
	"author":    "author",
	"genre":     "genre",
	"isbn":      "isbn",
	"copies":    "copies",
	"available": "available",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type CreateParams struct {
	Title       string
	Author      string
	Genre       model.Genre
	ISBN        string
	Description *string
	Copies      int64
	Available   bool
}

type UpdateParams struct {
	Title       *string
	Author      *string
	Genre       *model.Genre
	ISBN        *string
	Description *string
	Copies      *int64
	Available   *bool
}

func (p UpdateParams) Empty() bool {
	return p.Title == nil && p.Author == nil && p.Genre == nil &&
		p.ISBN == nil && p.Description == nil && p.Copies == nil && p.Available == nil
}

type ListParams struct {
	Genre  model.Genre // empty = no filter
	SortBy string      // external field name, whitelisted
	Desc   bool
	Limit  int64 // <= 0 = unrestricted
}

type Repo interface {
	Create(ctx context.Context, p CreateParams) (*model.Book, error)
	List(ctx context.Context, p ListParams) ([]model.Book, error)
	GetByID(ctx context.Context, id string) (*model.Book, error)
	UpdateByID(ctx context.Context, id string, p UpdateParams) (*model.Book, error)
	DeleteByID(ctx context.Context, id string) error
	UpdateAvailability(ctx context.Context, id string) (*model.Book, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

// IsUniqueViolation reports whether err is the store's duplicate-key error
// (the isbn unique index).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repo) Create(ctx context.Context, p CreateParams) (*model.Book, error) {
	const q = `
INSERT INTO books (id, title, author, genre, isbn, description, copies, available)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING ` + bookCols
	row := r.db.QueryRowContext(ctx, q,
		uuid.NewString(), p.Title, p.Author, string(p.Genre), p.ISBN, p.Description, p.Copies, p.Available)
	return scanBook(row)
}

func (r *repo) List(ctx context.Context, p ListParams) ([]model.Book, error) {
	ds := dialect.From("books").Select(
		goqu.C("id"), goqu.C("title"), goqu.C("author"), goqu.C("genre"), goqu.C("isbn"),
		goqu.C("description"), goqu.C("copies"), goqu.C("available"),
		goqu.C("created_at"), goqu.C("updated_at"),
	)
	if p.Genre != "" {
		ds = ds.Where(goqu.Ex{"genre": string(p.Genre)})
	}
	if col, ok := sortColumns[p.SortBy]; ok {
		if p.Desc {
			ds = ds.Order(goqu.I(col).Desc())
		} else {
			ds = ds.Order(goqu.I(col).Asc())
		}
	}
	if p.Limit > 0 {
		ds = ds.Limit(uint(p.Limit))
	}
	q, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *repo) GetByID(ctx context.Context, id string) (*model.Book, error) {
	const q = `SELECT ` + bookCols + ` FROM books WHERE id = $1`
	return scanBook(r.db.QueryRowContext(ctx, q, id))
}

func (r *repo) UpdateByID(ctx context.Context, id string, p UpdateParams) (*model.Book, error) {
	rec := goqu.Record{"updated_at": goqu.L("now()")}
	if p.Title != nil {
		rec["title"] = *p.Title
	}
	if p.Author != nil {
		rec["author"] = *p.Author
	}
	if p.Genre != nil {
		rec["genre"] = string(*p.Genre)
	}
	if p.ISBN != nil {
		rec["isbn"] = *p.ISBN
	}
	if p.Description != nil {
		rec["description"] = *p.Description
	}
	if p.Copies != nil {
		rec["copies"] = *p.Copies
	}
	if p.Available != nil {
		rec["available"] = *p.Available
	}

	q, args, err := dialect.Update("books").
		Set(rec).
		Where(goqu.Ex{"id": id}).
		Returning(goqu.L(bookCols)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}
	return scanBook(r.db.QueryRowContext(ctx, q, args...))
}

func (r *repo) DeleteByID(ctx context.Context, id string) error {
	const q = `DELETE FROM books WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateAvailability recomputes the derived flag from the current copy
// count. Invoked by the borrow path; direct book updates do not touch it.
func (r *repo) UpdateAvailability(ctx context.Context, id string) (*model.Book, error) {
	const q = `
UPDATE books
SET available = copies > 0,
    updated_at = now()
WHERE id = $1
RETURNING ` + bookCols
	return scanBook(r.db.QueryRowContext(ctx, q, id))
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (*model.Book, error) {
	var b model.Book
	var desc sql.NullString
	if err := s.Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.ISBN,
		&desc, &b.Copies, &b.Available, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if desc.Valid {
		b.Description = &desc.String
	}
	return &b, nil
}
