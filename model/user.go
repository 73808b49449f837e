// model/user.go
package model

import "time"

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserLoan is one loan row as seen from the user side.
type UserLoan struct {
	StartDate time.Time `json:"-"`
	DueDate   time.Time `json:"-"`
	BookTitle string    `json:"title"`
}

// UserDetail is a user with all loans that reference it.
type UserDetail struct {
	User
	Loans []UserLoan `json:"loans"`
}
