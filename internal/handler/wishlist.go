package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Dula827/booknest-frontend/internal/errs"
	"github.com/Dula827/booknest-frontend/internal/model"
	"github.com/Dula827/booknest-frontend/internal/search"
	"github.com/Dula827/booknest-frontend/internal/workflow"
)

func (h *Handler) ListWishlist(c echo.Context) error {
	var filters model.WishlistFilters
	if err := c.Bind(&filters); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	var items []model.WishlistItem
	if err := h.wishlistSvc.CB().Call(func() error {
		list, code, err := h.wishlistSvc.List(ctx, filters)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		items = list
		return nil
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) LiveSearchWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	found, err := h.wlSearch.Do(ctx, c.QueryParam("query"), func(ctx context.Context, q string) ([]model.WishlistItem, error) {
		var res []model.WishlistItem
		if err := h.wishlistSvc.CB().Call(func() error {
			list, code, err := h.wishlistSvc.Search(ctx, q)
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
		return h.ListWishlist(c)
	case errors.Is(err, search.ErrSuperseded):
		return c.NoContent(http.StatusNoContent)
	case err != nil:
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return echo.NewHTTPError(errs.StatusCode(err), err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"items": found})
}

func (h *Handler) WishlistSeriesNames(c echo.Context) error {
	ctx := c.Request().Context()
	var names []model.SeriesName
	if err := h.wishlistSvc.CB().Call(func() error {
		list, code, err := h.wishlistSvc.SeriesNames(ctx)
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

func (h *Handler) GetWishlistItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	var item model.WishlistItem
	if err := h.wishlistSvc.CB().Call(func() error {
		it, code, err := h.wishlistSvc.Get(ctx, id)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		item = it
		return nil
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateWishlistItem(c echo.Context) error {
	var req model.WishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, code, err := h.wishlistSvc.Create(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(code, err.Error())
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateWishlistItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.WishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if code, err := h.wishlistSvc.Update(c.Request().Context(), id, req); err != nil {
		return echo.NewHTTPError(code, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "wishlist item updated"})
}

func (h *Handler) DeleteWishlistItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if code, err := h.wishlistSvc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(code, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// MoveWishlistItem promotes a wishlist item into the catalog: any attached
// cover images are uploaded first, then the move request carries their paths.
func (h *Handler) MoveWishlistItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.MoveToBooksRequest
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

	if err := h.workflows.MoveWishlistItem(c.Request().Context(), workflow.MoveWishlistInput{
		ItemID: id,
		Move:   req,
		Files:  files,
	}); err != nil {
		return echo.NewHTTPError(errs.StatusCode(err), err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "moved to books"})
}
