// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/tajmin/level2-assingment3/model"
	booksvc "github.com/tajmin/level2-assingment3/service/book"
	"github.com/tajmin/level2-assingment3/util/apperr"
)

const bookID = "0f8fad5b-d9cb-469f-a165-70867728950e"

type repoMock struct {
	createFn      func(ctx context.Context, p booksvc.CreateParams) (*model.Book, error)
	listFn        func(ctx context.Context, p booksvc.ListParams) ([]model.Book, error)
	getFn         func(ctx context.Context, id string) (*model.Book, error)
	updateFn      func(ctx context.Context, id string, p booksvc.UpdateParams) (*model.Book, error)
	deleteFn      func(ctx context.Context, id string) error
	updateAvailFn func(ctx context.Context, id string) (*model.Book, error)
}

func (m *repoMock) Create(ctx context.Context, p booksvc.CreateParams) (*model.Book, error) {
	return m.createFn(ctx, p)
}
func (m *repoMock) List(ctx context.Context, p booksvc.ListParams) ([]model.Book, error) {
	return m.listFn(ctx, p)
}
func (m *repoMock) GetByID(ctx context.Context, id string) (*model.Book, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) UpdateByID(ctx context.Context, id string, p booksvc.UpdateParams) (*model.Book, error) {
	return m.updateFn(ctx, id, p)
}
func (m *repoMock) DeleteByID(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}
func (m *repoMock) UpdateAvailability(ctx context.Context, id string) (*model.Book, error) {
	return m.updateAvailFn(ctx, id)
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, p booksvc.CreateParams) (*model.Book, error) {
			require.Equal(t, "Dune", p.Title)
			require.Equal(t, model.GenreScience, p.Genre)
			require.True(t, p.Available)
			return &model.Book{ID: bookID, Title: p.Title, Copies: p.Copies, Available: p.Available}, nil
		},
	}
	s := booksvc.New(m)

	b, err := s.Create(context.Background(), booksvc.CreateParams{
		Title: "Dune", Author: "Herbert", Genre: model.GenreScience,
		ISBN: "0-441-17271-7", Copies: 3, Available: true,
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), b.Copies)
	require.True(t, b.Available)
}

func TestCreate_DuplicateISBN(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, p booksvc.CreateParams) (*model.Book, error) {
			return nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		},
	}
	s := booksvc.New(m)

	_, err := s.Create(context.Background(), booksvc.CreateParams{Title: "x"})
	ae, ok := apperr.From(err)
	require.True(t, ok)
	require.Equal(t, 409, ae.Status)
	require.Equal(t, "Book with this ISBN already exists", ae.Message)
}

func TestGet_InvalidID(t *testing.T) {
	s := booksvc.New(&repoMock{}) // repo must not be reached

	_, err := s.Get(context.Background(), "not-a-uuid")
	ae, ok := apperr.From(err)
	require.True(t, ok)
	require.Equal(t, 400, ae.Status)
	require.Equal(t, "Invalid book ID format", ae.Message)
}

func TestGet_NotFound(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id string) (*model.Book, error) { return nil, sql.ErrNoRows },
	}
	s := booksvc.New(m)

	_, err := s.Get(context.Background(), bookID)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	require.Equal(t, 404, ae.Status)
	require.Equal(t, "Book not found", ae.Message)
}

func TestUpdate_EmptyBody(t *testing.T) {
	called := false
	m := &repoMock{
		updateFn: func(ctx context.Context, id string, p booksvc.UpdateParams) (*model.Book, error) {
			called = true
			return nil, nil
		},
	}
	s := booksvc.New(m)

	_, err := s.Update(context.Background(), bookID, booksvc.UpdateParams{})
	ae, ok := apperr.From(err)
	require.True(t, ok)
	require.Equal(t, 400, ae.Status)
	require.Equal(t, "No fields to update", ae.Message)
	require.False(t, called)
}

// A direct update that changes copies must not touch the derived flag;
// only the borrow path recomputes it.
func TestUpdate_DoesNotRecomputeAvailability(t *testing.T) {
	refreshed := false
	copies := int64(0)
	m := &repoMock{
		updateFn: func(ctx context.Context, id string, p booksvc.UpdateParams) (*model.Book, error) {
			require.NotNil(t, p.Copies)
			require.Nil(t, p.Available)
			return &model.Book{ID: id, Copies: *p.Copies, Available: true}, nil
		},
		updateAvailFn: func(ctx context.Context, id string) (*model.Book, error) {
			refreshed = true
			return nil, nil
		},
	}
	s := booksvc.New(m)

	b, err := s.Update(context.Background(), bookID, booksvc.UpdateParams{Copies: &copies})
	require.NoError(t, err)
	require.Equal(t, int64(0), b.Copies)
	require.True(t, b.Available) // stale on purpose
	require.False(t, refreshed)
}

func TestDelete(t *testing.T) {
	m := &repoMock{
		deleteFn: func(ctx context.Context, id string) error { return sql.ErrNoRows },
	}
	s := booksvc.New(m)

	err := s.Delete(context.Background(), bookID)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	require.Equal(t, 404, ae.Status)

	m.deleteFn = func(ctx context.Context, id string) error { return nil }
	require.NoError(t, s.Delete(context.Background(), bookID))
}

func TestRefreshAvailability_NotFound(t *testing.T) {
	m := &repoMock{
		updateAvailFn: func(ctx context.Context, id string) (*model.Book, error) { return nil, sql.ErrNoRows },
	}
	s := booksvc.New(m)

	_, err := s.RefreshAvailability(context.Background(), bookID)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	require.Equal(t, 404, ae.Status)
	require.Equal(t, "Book not found", ae.Message)
}

func TestList_PassThrough(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context, p booksvc.ListParams) ([]model.Book, error) {
			require.Equal(t, model.GenreFantasy, p.Genre)
			require.Equal(t, "createdAt", p.SortBy)
			require.True(t, p.Desc)
			require.Equal(t, int64(5), p.Limit)
			return []model.Book{{ID: bookID}}, nil
		},
	}
	s := booksvc.New(m)

	rows, err := s.List(context.Background(), booksvc.ListParams{
		Genre: model.GenreFantasy, SortBy: "createdAt", Desc: true, Limit: 5,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
