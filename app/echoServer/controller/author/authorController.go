package author

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	authorsvc "github.com/carolinaIbarra2/gestionBiblioteca/service/author"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/dates"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type Controller struct {
	Svc authorsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/authors
func (h *Controller) Create(c echo.Context) error {
	var req CreateAuthorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	id, err := h.Svc.Create(c.Request().Context(), req.Name, req.BirthDate, req.Biography)
	if err != nil {
		h.Log.Error("author create", "err", err)
		switch fault.Code(err) {
		case fault.ErrDuplicateKey, fault.ErrInvalidDateFormat:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// PUT /v1/authors/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateAuthorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	if err := h.Svc.Update(c.Request().Context(), id, req.Name, req.BirthDate, req.Biography); err != nil {
		h.Log.Error("author update", "err", err)
		switch fault.Code(err) {
		case fault.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		case fault.ErrInvalidDateFormat:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "author updated"})
}

// GET /v1/authors
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("author list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	out := make([]AuthorResp, 0, len(rows))
	for _, a := range rows {
		out = append(out, AuthorResp{
			ID:        a.ID,
			Name:      a.Name,
			BirthDate: dates.Format(a.BirthDate),
			Biography: a.Biography,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/authors/books
func (h *Controller) ListWithBooks(c echo.Context) error {
	rows, err := h.Svc.ListWithBooks(c.Request().Context())
	if err != nil {
		h.Log.Error("author list with books", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	out := make([]AuthorBooksResp, 0, len(rows))
	for _, a := range rows {
		resp := AuthorBooksResp{
			AuthorResp: AuthorResp{
				ID:        a.ID,
				Name:      a.Name,
				BirthDate: dates.Format(a.BirthDate),
				Biography: a.Biography,
			},
			Books: make([]BookSummary, 0, len(a.Books)),
		}
		for _, b := range a.Books {
			resp.Books = append(resp.Books, BookSummary{
				Title:           b.Title,
				Synopsis:        b.Synopsis,
				PublicationYear: b.PublicationYear,
				Quantity:        b.Quantity,
			})
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// DELETE /v1/authors/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("author delete", "err", err)
		switch fault.Code(err) {
		case fault.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		case fault.ErrHasDependents:
			return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "author deleted"})
}
