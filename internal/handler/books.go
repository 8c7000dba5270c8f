package handler

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Dula827/booknest-frontend/internal/errs"
	"github.com/Dula827/booknest-frontend/internal/model"
	"github.com/Dula827/booknest-frontend/internal/search"
	"github.com/Dula827/booknest-frontend/internal/workflow"
)

func (h *Handler) ListBooks(c echo.Context) error {
	var filters model.BookFilters
	if err := c.Bind(&filters); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	var list model.BookList
	if err := h.booksSvc.CB().Call(func() error {
		l, code, err := h.booksSvc.List(ctx, filters)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		list = l
		return nil
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// LiveSearchBooks is the search-as-you-type endpoint. Requests within the
// debounce window supersede each other; only the last one reaches the domain
// API. A cleared query falls back to the plain filtered list.
func (h *Handler) LiveSearchBooks(c echo.Context) error {
	ctx := c.Request().Context()
	found, err := h.bookSearch.Do(ctx, c.QueryParam("query"), func(ctx context.Context, q string) ([]model.Book, error) {
		var res []model.Book
		if err := h.booksSvc.CB().Call(func() error {
			list, code, err := h.booksSvc.Search(ctx, q)
			if err != nil {
				return echo.NewHTTPError(code, err.Error())
			}
			res = list
			return nil
		}); err != nil {
			return nil, err
		}
		return res, nil
	})
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return h.ListBooks(c)
	case errors.Is(err, search.ErrSuperseded):
		return c.NoContent(http.StatusNoContent)
	case err != nil:
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return echo.NewHTTPError(errs.StatusCode(err), err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"books": found})
}

func (h *Handler) BookSeriesNames(c echo.Context) error {
	ctx := c.Request().Context()
	var names []model.SeriesName
	if err := h.booksSvc.CB().Call(func() error {
		list, code, err := h.booksSvc.SeriesNames(ctx)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		names = list
		return nil
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, names)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	var detail model.BookDetails
	if err := h.booksSvc.CB().Call(func() error {
		d, code, err := h.booksSvc.Get(ctx, id)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		detail = d
		return nil
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	files, err := formFiles(c, "images")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	id, err := h.workflows.AddBook(ctx, workflow.AddBookInput{Book: req, Files: files})
	if err != nil {
		if id != 0 {
			// the record exists without images; report that rather than a plain failure
			return echo.NewHTTPError(errs.StatusCode(err),
				fmt.Sprintf("book %d created but images failed: %s", id, err))
		}
		return echo.NewHTTPError(errs.StatusCode(err), err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

func (h *Handler) EditBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	fields, err := updateFieldsFromForm(form)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	files, err := formFiles(c, "images")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	detail, code, err := h.booksSvc.Get(ctx, id)
	if err != nil {
		return echo.NewHTTPError(code, err.Error())
	}

	if err := h.workflows.EditBook(ctx, workflow.EditBookInput{
		ID:            id,
		Fields:        fields,
		CurrentImages: detail.Book.Images,
		RemoveImages:  form.Value["remove_images"],
		NewFiles:      files,
	}); err != nil {
		return echo.NewHTTPError(errs.StatusCode(err), err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book updated"})
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	detail, code, err := h.booksSvc.Get(ctx, id)
	if err != nil {
		return echo.NewHTTPError(code, err.Error())
	}
	if err := h.workflows.DeleteBook(ctx, id, detail.Book.Images); err != nil {
		return echo.NewHTTPError(errs.StatusCode(err), err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) BookLendingHistory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	var history []model.LendingRecord
	if err := h.lendingSvc.CB().Call(func() error {
		list, code, err := h.lendingSvc.ListByBook(ctx, id)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		history = list
		return nil
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}

// formFiles reads the uploaded files of a multipart field into memory. A
// non-multipart request yields no files rather than an error.
func formFiles(c echo.Context, field string) ([]model.UploadFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, nil
		}
		return nil, err
	}
	var files []model.UploadFile
	for _, fh := range form.File[field] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, model.UploadFile{Name: fh.Filename, Content: content})
	}
	return files, nil
}

// updateFieldsFromForm builds the partial update: only fields present in the
// form are set, everything else stays nil and untouched server-side.
func updateFieldsFromForm(form *multipart.Form) (model.UpdateBookRequest, error) {
	var req model.UpdateBookRequest
	req.Title = formString(form, "title")
	req.Author = formString(form, "author")
	req.Category = formString(form, "category")
	req.SeriesName = formString(form, "series_name")
	req.PurchaseDate = formString(form, "purchase_date")
	req.ReadingStatus = formString(form, "reading_status")
	req.PersonalNotes = formString(form, "personal_notes")
	if v := formString(form, "series_no"); v != nil {
		n, err := strconv.Atoi(*v)
		if err != nil {
			return model.UpdateBookRequest{}, errors.Wrap(err, "series_no")
		}
		req.SeriesNo = &n
	}
	return req, nil
}

func formString(form *multipart.Form, key string) *string {
	if vals, ok := form.Value[key]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}
