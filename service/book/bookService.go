package booksvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/tajmin/level2-assingment3/model"
	bookrepo "github.com/tajmin/level2-assingment3/repository/book"
	"github.com/tajmin/level2-assingment3/util/apperr"
)

type CreateParams = bookrepo.CreateParams
type UpdateParams = bookrepo.UpdateParams
type ListParams = bookrepo.ListParams

type Repo interface {
	Create(ctx context.Context, p CreateParams) (*model.Book, error)
	List(ctx context.Context, p ListParams) ([]model.Book, error)
	GetByID(ctx context.Context, id string) (*model.Book, error)
	UpdateByID(ctx context.Context, id string, p UpdateParams) (*model.Book, error)
	DeleteByID(ctx context.Context, id string) error
	UpdateAvailability(ctx context.Context, id string) (*model.Book, error)
}

type Service interface {
	Create(ctx context.Context, p CreateParams) (*model.Book, error)
	List(ctx context.Context, p ListParams) ([]model.Book, error)
	Get(ctx context.Context, id string) (*model.Book, error)
	Update(ctx context.Context, id string, p UpdateParams) (*model.Book, error)
	Delete(ctx context.Context, id string) error

	// RefreshAvailability recomputes available = copies > 0. Only the
	// borrow path calls this; a direct update never does.
	RefreshAvailability(ctx context.Context, id string) (*model.Book, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, p CreateParams) (*model.Book, error) {
	b, err := s.r.Create(ctx, p)
	if bookrepo.IsUniqueViolation(err) {
		return nil, apperr.Conflict("Book with this ISBN already exists")
	}
	return b, err
}

func (s *service) List(ctx context.Context, p ListParams) ([]model.Book, error) {
	return s.r.List(ctx, p)
}

func (s *service) Get(ctx context.Context, id string) (*model.Book, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	b, err := s.r.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Book not found")
	}
	return b, err
}

func (s *service) Update(ctx context.Context, id string, p UpdateParams) (*model.Book, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if p.Empty() {
		return nil, apperr.BadRequest("No fields to update")
	}
	b, err := s.r.UpdateByID(ctx, id, p)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, apperr.NotFound("Book not found")
	case bookrepo.IsUniqueViolation(err):
		return nil, apperr.Conflict("Book with this ISBN already exists")
	}
	return b, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	err := s.r.DeleteByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("Book not found")
	}
	return err
}

func (s *service) RefreshAvailability(ctx context.Context, id string) (*model.Book, error) {
	b, err := s.r.UpdateAvailability(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Book not found")
	}
	return b, err
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.BadRequest("Invalid book ID format")
	}
	return nil
}
