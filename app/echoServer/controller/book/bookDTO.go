package book

type CreateBookReq struct {
	Title           string `json:"title" validate:"required"`
	Synopsis        string `json:"synopsis"`
	PublicationYear int    `json:"publication_year" validate:"required"`
	Quantity        int    `json:"quantity" validate:"gte=0"`
	AuthorID        int64  `json:"author_id" validate:"required,gt=0"`
	Category        string `json:"category" validate:"required"`
}

// UpdateBookReq carries the two mutable book fields. A null or absent
// author_id detaches the book from its author.
type UpdateBookReq struct {
	Quantity int    `json:"quantity" validate:"gte=0"`
	AuthorID *int64 `json:"author_id"`
}

type AuthorResp struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Biography string `json:"biography"`
}

type CategoryResp struct {
	Name string `json:"name"`
}

type LoanSummary struct {
	StartDate string `json:"start_date"`
	DueDate   string `json:"due_date"`
}

type BookLoansResp struct {
	Title           string        `json:"title"`
	Synopsis        string        `json:"synopsis"`
	PublicationYear int           `json:"publication_year"`
	Loans           []LoanSummary `json:"loans"`
}

type BookResp struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Synopsis        string         `json:"synopsis"`
	PublicationYear int            `json:"publication_year"`
	Quantity        int            `json:"quantity"`
	Author          *AuthorResp    `json:"author,omitempty"`
	Categories      []CategoryResp `json:"categories"`
}
