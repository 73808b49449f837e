// model/book.go
package model

import "time"

type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Synopsis        string `json:"synopsis"`
	PublicationYear int    `json:"publication_year"`
	Quantity        int    `json:"quantity"`
	AuthorID        *int64 `json:"author_id,omitempty"`
}

// BookDetail is a book with its author and categories resolved.
// Author is nil when the book has been detached from its author.
type BookDetail struct {
	Book
	Author     *Author    `json:"author,omitempty"`
	Categories []Category `json:"categories"`
}

// BookLoan is one loan row as seen from the book side.
type BookLoan struct {
	StartDate time.Time `json:"-"`
	DueDate   time.Time `json:"-"`
}

// BookLoans is a book together with every loan that references it.
type BookLoans struct {
	Book
	Loans []BookLoan `json:"loans"`
}
