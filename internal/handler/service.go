package handler

import (
	"context"

	"github.com/Dula827/booknest-frontend/internal/model"
	"github.com/Dula827/booknest-frontend/internal/service/auth"
	"github.com/Dula827/booknest-frontend/internal/service/books"
	"github.com/Dula827/booknest-frontend/internal/service/lending"
	"github.com/Dula827/booknest-frontend/internal/service/wishlist"
	"github.com/Dula827/booknest-frontend/internal/workflow"
	"github.com/Dula827/booknest-frontend/pkg/circuit_breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ AuthService     = (*auth.Service)(nil)
	_ BooksService    = (*books.Service)(nil)
	_ WishlistService = (*wishlist.Service)(nil)
	_ LendingService  = (*lending.Service)(nil)
	_ Workflows       = (*workflow.Workflows)(nil)
)

type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, int, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, int, error)
	Profile(ctx context.Context) (model.UserProfile, int, error)
}

type BooksService interface {
	List(ctx context.Context, filters model.BookFilters) (model.BookList, int, error)
	Search(ctx context.Context, query string) ([]model.Book, int, error)
	SeriesNames(ctx context.Context) ([]model.SeriesName, int, error)
	Get(ctx context.Context, id int) (model.BookDetails, int, error)
	CB() circuit_breaker.CircuitBreaker
}

type WishlistService interface {
	Create(ctx context.Context, req model.WishlistItemRequest) (model.WishlistItem, int, error)
	Update(ctx context.Context, id int, req model.WishlistItemRequest) (int, error)
	Delete(ctx context.Context, id int) (int, error)
	Get(ctx context.Context, id int) (model.WishlistItem, int, error)
	List(ctx context.Context, filters model.WishlistFilters) ([]model.WishlistItem, int, error)
	Search(ctx context.Context, query string) ([]model.WishlistItem, int, error)
	SeriesNames(ctx context.Context) ([]model.SeriesName, int, error)
	CB() circuit_breaker.CircuitBreaker
}

type LendingService interface {
	List(ctx context.Context) ([]model.LendingRecord, int, error)
	ListByBook(ctx context.Context, bookID int) ([]model.LendingRecord, int, error)
	CB() circuit_breaker.CircuitBreaker
}

// Workflows are the multi-step mutations; single-request mutations go through
// the clients directly.
type Workflows interface {
	AddBook(ctx context.Context, in workflow.AddBookInput) (int, error)
	EditBook(ctx context.Context, in workflow.EditBookInput) error
	DeleteBook(ctx context.Context, id int, imgs []string) error
	LendBook(ctx context.Context, req model.CreateLendingRequest) (workflow.LendBookResult, error)
	ReturnBook(ctx context.Context, id int, returnDate string) ([]model.LendingRecord, error)
	MoveWishlistItem(ctx context.Context, in workflow.MoveWishlistInput) error
}
