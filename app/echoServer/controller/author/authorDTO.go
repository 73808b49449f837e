package author

type CreateAuthorReq struct {
	Name      string `json:"name" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required"`
	Biography string `json:"biography"`
}

type UpdateAuthorReq struct {
	Name      string `json:"name" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required"`
	Biography string `json:"biography"`
}

type AuthorResp struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Biography string `json:"biography"`
}

type BookSummary struct {
	Title           string `json:"title"`
	Synopsis        string `json:"synopsis"`
	PublicationYear int    `json:"publication_year"`
	Quantity        int    `json:"quantity"`
}

type AuthorBooksResp struct {
	AuthorResp
	Books []BookSummary `json:"books"`
}
