// repository/borrow/repo.go
package borrowrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tajmin/level2-assingment3/model"
)

// ErrNotEnoughCopies is returned when the guarded decrement affects no row.
// The service checks the count under lock first, so hitting this means the
// guard itself raced; either way copies never goes negative.
var ErrNotEnoughCopies = errors.New("not enough copies available")

type Repo interface {
	// Tx steps of borrow creation. The service owns the transaction.
	LockBookCopies(ctx context.Context, tx *sql.Tx, bookID string) (int64, error)
	DecrementCopies(ctx context.Context, tx *sql.Tx, bookID string, qty int64) error
	InsertBorrow(ctx context.Context, tx *sql.Tx, bookID string, qty int64, due time.Time) (*model.Borrow, error)

	Summary(ctx context.Context) ([]model.BorrowSummaryRow, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) LockBookCopies(ctx context.Context, tx *sql.Tx, bookID string) (int64, error) {
	const q = `
		SELECT copies
		FROM books
		WHERE id = $1
		FOR UPDATE`
	var copies int64
	err := tx.QueryRowContext(ctx, q, bookID).Scan(&copies)
	return copies, err
}

func (r *repo) DecrementCopies(ctx context.Context, tx *sql.Tx, bookID string, qty int64) error {
	// Guard: only decrement while enough copies remain.
	const q = `
		UPDATE books
		SET copies = copies - $2,
		    updated_at = now()
		WHERE id = $1
		AND copies >= $2`
	res, err := tx.ExecContext(ctx, q, bookID, qty)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrNotEnoughCopies
	}
	return nil
}

func (r *repo) InsertBorrow(ctx context.Context, tx *sql.Tx, bookID string, qty int64, due time.Time) (*model.Borrow, error) {
	const q = `
		INSERT INTO borrows (id, book_id, quantity, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, book_id, quantity, due_date, created_at, updated_at`
	var b model.Borrow
	err := tx.QueryRowContext(ctx, q, uuid.NewString(), bookID, qty, due).Scan(
		&b.ID, &b.BookID, &b.Quantity, &b.DueDate, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Summary groups borrows per book, summing quantity and joining title/isbn.
// Inner join: borrows whose book was deleted are silently excluded.
func (r *repo) Summary(ctx context.Context) ([]model.BorrowSummaryRow, error) {
	const q = `
		SELECT
			b.title          AS title,
			b.isbn           AS isbn,
			SUM(br.quantity) AS total_quantity
		FROM borrows br
		JOIN books b ON b.id = br.book_id
		GROUP BY b.id, b.title, b.isbn`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BorrowSummaryRow
	for rows.Next() {
		var s model.BorrowSummaryRow
		if err := rows.Scan(&s.Book.Title, &s.Book.ISBN, &s.TotalQuantity); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
