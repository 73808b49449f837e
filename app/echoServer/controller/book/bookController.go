package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	booksvc "github.com/carolinaIbarra2/gestionBiblioteca/service/book"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/dates"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/books
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	id, err := h.Svc.Create(c.Request().Context(), req.Title, req.Synopsis, req.PublicationYear, req.Quantity, req.AuthorID, req.Category)
	if err != nil {
		h.Log.Error("book create", "err", err)
		switch fault.Code(err) {
		case fault.ErrDuplicateKey, fault.ErrReferenceNotFound, fault.ErrValidationFailed:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// PUT /v1/books/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	if err := h.Svc.Update(c.Request().Context(), id, req.Quantity, req.AuthorID); err != nil {
		h.Log.Error("book update", "err", err)
		switch fault.Code(err) {
		case fault.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		case fault.ErrReferenceNotFound, fault.ErrValidationFailed:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book updated"})
}

// GET /v1/books
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("book list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	out := make([]BookResp, 0, len(rows))
	for _, d := range rows {
		out = append(out, toResp(d))
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/books/loans
func (h *Controller) ListWithLoans(c echo.Context) error {
	rows, err := h.Svc.ListWithLoans(c.Request().Context())
	if err != nil {
		h.Log.Error("book list with loans", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	out := make([]BookLoansResp, 0, len(rows))
	for _, b := range rows {
		resp := BookLoansResp{
			Title:           b.Title,
			Synopsis:        b.Synopsis,
			PublicationYear: b.PublicationYear,
			Loans:           make([]LoanSummary, 0, len(b.Loans)),
		}
		for _, l := range b.Loans {
			resp.Loans = append(resp.Loans, LoanSummary{
				StartDate: dates.Format(l.StartDate),
				DueDate:   dates.Format(l.DueDate),
			})
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/books/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("book detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if row == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "the book does not exist"})
	}
	return c.JSON(http.StatusOK, toResp(*row))
}

func toResp(d model.BookDetail) BookResp {
	resp := BookResp{
		ID:              d.ID,
		Title:           d.Title,
		Synopsis:        d.Synopsis,
		PublicationYear: d.PublicationYear,
		Quantity:        d.Quantity,
		Categories:      make([]CategoryResp, 0, len(d.Categories)),
	}
	if d.Author != nil {
		resp.Author = &AuthorResp{
			Name:      d.Author.Name,
			BirthDate: dates.Format(d.Author.BirthDate),
			Biography: d.Author.Biography,
		}
	}
	for _, cat := range d.Categories {
		resp.Categories = append(resp.Categories, CategoryResp{Name: cat.Name})
	}
	return resp
}
