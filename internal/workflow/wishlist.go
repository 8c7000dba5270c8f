package workflow

import (
	"context"

	"github.com/Dula827/booknest-frontend/internal/model"
)

type MoveWishlistInput struct {
	ItemID int
	Move   model.MoveToBooksRequest
	Files  []model.UploadFile
}

// MoveWishlistItem uploads any attached images in parallel tagged with the
// wishlist item's id, then posts the move request; the server creates the book
// and removes the wishlist item atomically.
func (w *Workflows) MoveWishlistItem(ctx context.Context, in MoveWishlistInput) error {
	paths := []string{}
	if len(in.Files) > 0 {
		var err error
		paths, err = w.uploadAll(ctx, in.Files, in.ItemID)
		if err != nil {
			return err
		}
	}
	in.Move.Images = paths
	_, err := w.wishlist.MoveToBooks(ctx, in.ItemID, in.Move)
	return err
}
