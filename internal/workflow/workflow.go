// Package workflow holds the multi-step mutation pipelines combining the
// domain API and the image service. Steps listed as sequential depend on the
// previous step's output and are strictly ordered; multi-file upload and
// multi-image delete batches run in parallel and are joined before the next
// step proceeds.
package workflow

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Dula827/booknest-frontend/internal/model"
)

type Workflows struct {
	books    BooksService
	wishlist WishlistService
	lending  LendingService
	images   ImageService
	log      *zap.Logger
}

func New(log *zap.Logger, booksSvc BooksService, wishlistSvc WishlistService, lendingSvc LendingService, imagesSvc ImageService) *Workflows {
	return &Workflows{
		books:    booksSvc,
		wishlist: wishlistSvc,
		lending:  lendingSvc,
		images:   imagesSvc,
		log:      log,
	}
}

// uploadAll uploads the files in parallel, tagged with the owning record id.
// The join is all-or-none: a single failure fails the batch. Result order
// follows the input order regardless of completion order.
func (w *Workflows) uploadAll(ctx context.Context, files []model.UploadFile, ownerID int) ([]string, error) {
	paths := make([]string, len(files))
	gg, gctx := errgroup.WithContext(ctx)
	for i := range files {
		i := i
		gg.Go(func() error {
			path, _, err := w.images.Upload(gctx, files[i], ownerID)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := gg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
