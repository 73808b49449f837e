package category

type CreateCategoryReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateCategoryReq struct {
	Description string `json:"description"`
}
