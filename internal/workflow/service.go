package workflow

import (
	"context"

	"github.com/Dula827/booknest-frontend/internal/model"
	"github.com/Dula827/booknest-frontend/internal/service/books"
	"github.com/Dula827/booknest-frontend/internal/service/images"
	"github.com/Dula827/booknest-frontend/internal/service/lending"
	"github.com/Dula827/booknest-frontend/internal/service/wishlist"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ BooksService    = (*books.Service)(nil)
	_ WishlistService = (*wishlist.Service)(nil)
	_ LendingService  = (*lending.Service)(nil)
	_ ImageService    = (*images.Service)(nil)
)

type BooksService interface {
	Create(ctx context.Context, req model.CreateBookRequest) (model.CreateBookResponse, int, error)
	Update(ctx context.Context, id int, req model.UpdateBookRequest) (int, error)
	Delete(ctx context.Context, id int) (int, error)
	Get(ctx context.Context, id int) (model.BookDetails, int, error)
}

type WishlistService interface {
	MoveToBooks(ctx context.Context, id int, req model.MoveToBooksRequest) (int, error)
}

type LendingService interface {
	Create(ctx context.Context, req model.CreateLendingRequest) (model.LendingRecord, int, error)
	List(ctx context.Context) ([]model.LendingRecord, int, error)
	ListByBook(ctx context.Context, bookID int) ([]model.LendingRecord, int, error)
	MarkReturned(ctx context.Context, id int, returnDate string) (int, error)
}

type ImageService interface {
	Upload(ctx context.Context, file model.UploadFile, ownerID int) (string, int, error)
	Delete(ctx context.Context, storedPath string) (int, error)
}
