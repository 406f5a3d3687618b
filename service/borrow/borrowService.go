package borrowsvc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tajmin/level2-assingment3/model"
	"github.com/tajmin/level2-assingment3/util/apperr"
)

type CreateParams struct {
	BookID   string
	Quantity int64
	DueDate  time.Time
}

type Repo interface {
	LockBookCopies(ctx context.Context, tx *sql.Tx, bookID string) (int64, error)
	DecrementCopies(ctx context.Context, tx *sql.Tx, bookID string, qty int64) error
	InsertBorrow(ctx context.Context, tx *sql.Tx, bookID string, qty int64, due time.Time) (*model.Borrow, error)
	Summary(ctx context.Context) ([]model.BorrowSummaryRow, error)
}

// BookRepo is the slice of the book repository the borrow path needs.
type BookRepo interface {
	UpdateAvailability(ctx context.Context, id string) (*model.Book, error)
}

type Service interface {
	// Create checks and decrements the book's copy count and inserts the
	// borrow inside one transaction, then recomputes availability.
	Create(ctx context.Context, p CreateParams) (*model.Borrow, error)

	// Summary: total borrowed quantity per book with title/isbn joined.
	Summary(ctx context.Context) ([]model.BorrowSummaryRow, error)
}

type service struct {
	db    *sql.DB
	r     Repo
	books BookRepo
}

func New(db *sql.DB, r Repo, books BookRepo) Service {
	return &service{db: db, r: r, books: books}
}

func (s *service) Create(ctx context.Context, p CreateParams) (b *model.Borrow, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Row lock: concurrent borrows against the same book serialize here.
	copies, err := s.r.LockBookCopies(ctx, tx, p.BookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Book not found")
		}
		return nil, err
	}
	if copies < p.Quantity {
		return nil, apperr.BadRequest(fmt.Sprintf("Only %d copies available", copies))
	}

	if err = s.r.DecrementCopies(ctx, tx, p.BookID, p.Quantity); err != nil {
		return nil, err
	}
	b, err = s.r.InsertBorrow(ctx, tx, p.BookID, p.Quantity, p.DueDate)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	// After the commit, same as creation: the flag follows the new count.
	if _, err = s.books.UpdateAvailability(ctx, p.BookID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Summary(ctx context.Context) ([]model.BorrowSummaryRow, error) {
	return s.r.Summary(ctx)
}
