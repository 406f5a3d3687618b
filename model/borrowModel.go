// model/borrow.go
package model

import "time"

type Borrow struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book"`
	Quantity  int64     `json:"quantity"`
	DueDate   time.Time `json:"dueDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BorrowSummaryRow is one group of the borrow aggregation: total quantity
// borrowed per book, with the book's title and isbn joined in.
type BorrowSummaryRow struct {
	Book          BorrowSummaryBook `json:"book"`
	TotalQuantity int64             `json:"totalQuantity"`
}

type BorrowSummaryBook struct {
	Title string `json:"title"`
	ISBN  string `json:"isbn"`
}
