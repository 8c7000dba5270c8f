package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Dula827/booknest-frontend/internal/errs"
	"github.com/Dula827/booknest-frontend/internal/model"
)

// Login authenticates against the domain API and persists the returned token,
// which every subsequent request picks up.
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	resp, code, err := h.authSvc.Login(ctx, req)
	if err != nil {
		return echo.NewHTTPError(code, err.Error())
	}
	if err := h.session.Set(resp.Token); err != nil {
		h.log.Error("login: persist token", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(code, resp)
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	resp, code, err := h.authSvc.Register(ctx, req)
	if err != nil {
		return echo.NewHTTPError(code, err.Error())
	}
	if err := h.session.Set(resp.Token); err != nil {
		h.log.Error("register: persist token", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(code, resp)
}

// Logout drops the persisted token. The domain API keeps no server-side
// session, so nothing else needs to be told.
func (h *Handler) Logout(c echo.Context) error {
	if err := h.session.Clear(); err != nil {
		h.log.Error("logout: clear token", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Profile(c echo.Context) error {
	profile, code, err := h.authSvc.Profile(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(errs.StatusCode(err), err.Error())
	}
	return c.JSON(code, profile)
}
