package user

type CreateUserReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

type UpdateUserReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

type LoanResp struct {
	StartDate string `json:"start_date"`
	DueDate   string `json:"due_date"`
	Title     string `json:"title"`
}

type UserDetailResp struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Loans []LoanResp `json:"loans"`
}
