// model/author.go
package model

import "time"

type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"-"`
	Biography string    `json:"biography"`
}

// AuthorBooks is an author together with every book that references it.
type AuthorBooks struct {
	Author
	Books []Book `json:"books"`
}
