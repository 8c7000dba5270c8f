package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Dula827/booknest-frontend/internal/model"
	"github.com/Dula827/booknest-frontend/internal/search"
	"github.com/Dula827/booknest-frontend/internal/session"
	"github.com/Dula827/booknest-frontend/pkg/validate"
	_ "github.com/Dula827/booknest-frontend/swagger"
)

type Handler struct {
	authSvc     AuthService
	booksSvc    BooksService
	wishlistSvc WishlistService
	lendingSvc  LendingService
	workflows   Workflows
	session     *session.Store
	bookSearch  *search.Debouncer[[]model.Book]
	wlSearch    *search.Debouncer[[]model.WishlistItem]
	log         *zap.Logger
}

func New(log *zap.Logger, sess *session.Store,
	authSvc AuthService, booksSvc BooksService, wishlistSvc WishlistService,
	lendingSvc LendingService, workflows Workflows,
) *Handler {
	return &Handler{
		authSvc:     authSvc,
		booksSvc:    booksSvc,
		wishlistSvc: wishlistSvc,
		lendingSvc:  lendingSvc,
		workflows:   workflows,
		session:     sess,
		bookSearch:  search.New[[]model.Book](search.DefaultDelay),
		wlSearch:    search.New[[]model.WishlistItem](search.DefaultDelay),
		log:         log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	api = api.Group("", h.requireSession)

	api.POST("/auth/logout", h.Logout)
	api.GET("/profile", h.Profile)

	api.GET("/books", h.ListBooks)
	api.GET("/books/live-search", h.LiveSearchBooks)
	api.GET("/books/series-names", h.BookSeriesNames)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books", h.AddBook)
	api.PUT("/books/:id", h.EditBook)
	api.DELETE("/books/:id", h.DeleteBook)
	api.GET("/books/:id/lending", h.BookLendingHistory)

	api.GET("/wishlist", h.ListWishlist)
	api.GET("/wishlist/live-search", h.LiveSearchWishlist)
	api.GET("/wishlist/series-names", h.WishlistSeriesNames)
	api.GET("/wishlist/:id", h.GetWishlistItem)
	api.POST("/wishlist", h.CreateWishlistItem)
	api.PUT("/wishlist/:id", h.UpdateWishlistItem)
	api.DELETE("/wishlist/:id", h.DeleteWishlistItem)
	api.POST("/wishlist/:id/move-to-books", h.MoveWishlistItem)

	api.GET("/lending", h.ListLending)
	api.POST("/lending", h.LendBook)
	api.PUT("/lending/:id/return", h.ReturnBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
