package loan

type CreateLoanReq struct {
	StartDate string `json:"start_date" validate:"required"`
	DueDate   string `json:"due_date" validate:"required"`
	User      string `json:"user" validate:"required"`
	Title     string `json:"title" validate:"required"`
}

type UpdateLoanReq struct {
	StartDate string `json:"start_date" validate:"required"`
	DueDate   string `json:"due_date" validate:"required"`
}

type BookResp struct {
	Title string `json:"title"`
}

type UserResp struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoanResp struct {
	ID        int64    `json:"id"`
	StartDate string   `json:"start_date"`
	DueDate   string   `json:"due_date"`
	Book      BookResp `json:"book"`
	User      UserResp `json:"user"`
}
