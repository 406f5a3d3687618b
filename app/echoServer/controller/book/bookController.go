package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/tajmin/level2-assingment3/model"
	booksvc "github.com/tajmin/level2-assingment3/service/book"
	"github.com/tajmin/level2-assingment3/util/apperr"
	"github.com/tajmin/level2-assingment3/util/httpx"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /books
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid JSON payload")
	}
	if vs := req.Validate(h.V); len(vs) > 0 {
		return apperr.Validation(vs)
	}
	b, err := h.Svc.Create(c.Request().Context(), req.params())
	if err != nil {
		h.logUnexpected("book create", err)
		return err
	}
	return httpx.OK(c, http.StatusCreated, "Book created successfully", b)
}

// GET /books?filter=GENRE&sortBy=field&sort=asc|desc&limit=n
func (h *Controller) List(c echo.Context) error {
	p := booksvc.ListParams{
		Genre:  model.Genre(c.QueryParam("filter")),
		SortBy: c.QueryParam("sortBy"),
		Desc:   c.QueryParam("sort") == "desc",
	}
	// limit=0 or garbage means unrestricted, never an empty page
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			p.Limit = n
		}
	}
	rows, err := h.Svc.List(c.Request().Context(), p)
	if err != nil {
		h.logUnexpected("book list", err)
		return err
	}
	if rows == nil {
		rows = []model.Book{}
	}
	return httpx.OK(c, http.StatusOK, "Books retrieved successfully", rows)
}

// GET /books/:id
func (h *Controller) Detail(c echo.Context) error {
	b, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.logUnexpected("book detail", err)
		return err
	}
	return httpx.OK(c, http.StatusOK, "Book retrieved successfully", b)
}

// PUT /books/:id
func (h *Controller) Update(c echo.Context) error {
	var req UpdateBookReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid JSON payload")
	}
	if vs := req.Validate(); len(vs) > 0 {
		return apperr.Validation(vs)
	}
	b, err := h.Svc.Update(c.Request().Context(), c.Param("id"), req.params())
	if err != nil {
		h.logUnexpected("book update", err)
		return err
	}
	return httpx.OK(c, http.StatusOK, "Book updated successfully", b)
}

// DELETE /books/:id
func (h *Controller) Delete(c echo.Context) error {
	if err := h.Svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		h.logUnexpected("book delete", err)
		return err
	}
	return httpx.OK(c, http.StatusOK, "Book deleted successfully", nil)
}

// Expected 4xx outcomes are formatted by the error handler; only the rest
// is worth a log line here.
func (h *Controller) logUnexpected(op string, err error) {
	if _, ok := apperr.From(err); ok {
		return
	}
	h.Log.Error(op, "err", err)
}
