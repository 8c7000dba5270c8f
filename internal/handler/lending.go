package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Dula827/booknest-frontend/internal/errs"
	"github.com/Dula827/booknest-frontend/internal/model"
)

func (h *Handler) ListLending(c echo.Context) error {
	ctx := c.Request().Context()
	var records []model.LendingRecord
	if err := h.lendingSvc.CB().Call(func() error {
		list, code, err := h.lendingSvc.List(ctx)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		records = list
		return nil
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// LendBook refuses to lend a book that is already lent out before any request
// reaches the lending ledger; the check runs here so every caller gets it.
func (h *Handler) LendBook(c echo.Context) error {
	var req model.CreateLendingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	var detail model.BookDetails
	if err := h.booksSvc.CB().Call(func() error {
		d, code, err := h.booksSvc.Get(ctx, req.BookID)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		detail = d
		return nil
	}); err != nil {
		return err
	}
	if detail.Book.LendingStatus == model.LendingStatusLentOut {
		return echo.NewHTTPError(http.StatusConflict, "book is already lent out")
	}

	res, err := h.workflows.LendBook(ctx, req)
	if err != nil {
		return echo.NewHTTPError(errs.StatusCode(err), err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"book":    res.Detail,
		"history": res.History,
	})
}

func (h *Handler) ReturnBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req struct {
		ReturnDate model.Date `json:"return_date" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	records, err := h.workflows.ReturnBook(c.Request().Context(), id, req.ReturnDate.Format(time.DateOnly))
	if err != nil {
		return echo.NewHTTPError(errs.StatusCode(err), err.Error())
	}
	return c.JSON(http.StatusOK, records)
}
