package workflow

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Dula827/booknest-frontend/internal/model"
)

type AddBookInput struct {
	Book  model.CreateBookRequest
	Files []model.UploadFile
}

// AddBook creates the record with an empty image list, uploads the selected
// files in parallel tagged with the new id, then commits the resulting paths
// with a second request. When an upload or the final commit fails, the record
// from the first step persists without images; the error is surfaced and no
// rollback is attempted.
func (w *Workflows) AddBook(ctx context.Context, in AddBookInput) (int, error) {
	in.Book.Images = []string{}
	created, _, err := w.books.Create(ctx, in.Book)
	if err != nil {
		return 0, err
	}
	if len(in.Files) == 0 {
		return created.ID, nil
	}

	paths, err := w.uploadAll(ctx, in.Files, created.ID)
	if err != nil {
		w.log.Warn("add book: upload failed, record persists without images",
			zap.Int("book_id", created.ID), zap.Error(err))
		return created.ID, err
	}
	if _, err := w.books.Update(ctx, created.ID, model.UpdateBookRequest{Images: &paths}); err != nil {
		return created.ID, err
	}
	return created.ID, nil
}

type EditBookInput struct {
	ID     int
	Fields model.UpdateBookRequest
	// CurrentImages is the record's image list as last fetched.
	CurrentImages []string
	// RemoveImages are the stored paths explicitly marked for removal.
	RemoveImages []string
	NewFiles     []model.UploadFile
}

// EditBook deletes the marked images from the upload service, commits the
// scalar changes together with the remaining image list, and only then uploads
// any newly selected files, appending their paths with a second commit. Two
// sequential commits are required because the final image set is not known
// until the uploads complete.
func (w *Workflows) EditBook(ctx context.Context, in EditBookInput) error {
	gg, gctx := errgroup.WithContext(ctx)
	for _, img := range in.RemoveImages {
		img := img
		gg.Go(func() error {
			_, err := w.images.Delete(gctx, img)
			return err
		})
	}
	if err := gg.Wait(); err != nil {
		return err
	}

	remaining := remainingImages(in.CurrentImages, in.RemoveImages)
	req := in.Fields
	req.Images = &remaining
	if _, err := w.books.Update(ctx, in.ID, req); err != nil {
		return err
	}

	if len(in.NewFiles) == 0 {
		return nil
	}
	newPaths, err := w.uploadAll(ctx, in.NewFiles, in.ID)
	if err != nil {
		return err
	}
	final := make([]string, 0, len(remaining)+len(newPaths))
	final = append(final, remaining...)
	final = append(final, newPaths...)
	_, err = w.books.Update(ctx, in.ID, model.UpdateBookRequest{Images: &final})
	return err
}

// remainingImages keeps current minus removed, preserving the original order.
func remainingImages(current, removed []string) []string {
	drop := make(map[string]struct{}, len(removed))
	for _, img := range removed {
		drop[img] = struct{}{}
	}
	remaining := make([]string, 0, len(current))
	for _, img := range current {
		if _, ok := drop[img]; !ok {
			remaining = append(remaining, img)
		}
	}
	return remaining
}

// DeleteBook deletes the record's images from the upload service in parallel,
// best effort, then deletes the record regardless of individual failures.
// Orphaned files server-side are accepted rather than blocking the delete.
func (w *Workflows) DeleteBook(ctx context.Context, id int, imgs []string) error {
	gg := new(errgroup.Group)
	for _, img := range imgs {
		img := img
		gg.Go(func() error {
			if _, err := w.images.Delete(ctx, img); err != nil {
				w.log.Warn("delete book: image cleanup failed",
					zap.Int("book_id", id), zap.String("image", img), zap.Error(err))
			}
			return nil
		})
	}
	_ = gg.Wait()

	_, err := w.books.Delete(ctx, id)
	return err
}
