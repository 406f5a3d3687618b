package borrow

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/tajmin/level2-assingment3/model"
	borrowsvc "github.com/tajmin/level2-assingment3/service/borrow"
	"github.com/tajmin/level2-assingment3/util/apperr"
	"github.com/tajmin/level2-assingment3/util/httpx"
)

type Controller struct {
	Svc borrowsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /borrow
func (h *Controller) Create(c echo.Context) error {
	var req CreateBorrowReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid JSON payload")
	}
	due, vs := req.Validate(h.V, time.Now())
	if len(vs) > 0 {
		return apperr.Validation(vs)
	}
	b, err := h.Svc.Create(c.Request().Context(), borrowsvc.CreateParams{
		BookID:   req.Book,
		Quantity: *req.Quantity,
		DueDate:  due,
	})
	if err != nil {
		h.logUnexpected("borrow create", err)
		return err
	}
	return httpx.OK(c, http.StatusCreated, "Book borrowed successfully", b)
}

// GET /borrow
func (h *Controller) Summary(c echo.Context) error {
	rows, err := h.Svc.Summary(c.Request().Context())
	if err != nil {
		h.logUnexpected("borrow summary", err)
		return err
	}
	if rows == nil {
		rows = []model.BorrowSummaryRow{}
	}
	return httpx.OK(c, http.StatusOK, "Borrowed books summary retrieved successfully", rows)
}

func (h *Controller) logUnexpected(op string, err error) {
	if _, ok := apperr.From(err); ok {
		return
	}
	h.Log.Error(op, "err", err)
}
