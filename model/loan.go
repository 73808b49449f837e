// model/loan.go
package model

import "time"

type Loan struct {
	ID        int64     `json:"id"`
	StartDate time.Time `json:"-"`
	DueDate   time.Time `json:"-"`
	UserID    *int64    `json:"user_id,omitempty"`
	BookID    *int64    `json:"book_id,omitempty"`
}

// LoanDetail is a loan with its book and user resolved for listing.
type LoanDetail struct {
	Loan
	BookTitle string `json:"-"`
	UserName  string `json:"-"`
	UserEmail string `json:"-"`
}
