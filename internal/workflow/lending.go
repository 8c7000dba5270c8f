package workflow

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Dula827/booknest-frontend/internal/model"
)

// LendBookResult is the refreshed state handed back after a lend: the book
// detail (now "Lent Out") and its lending history.
type LendBookResult struct {
	Detail  model.BookDetails
	History []model.LendingRecord
}

// LendBook posts the lending record; the server flips the book's lending
// status as a side effect. On success both the lending history and the book
// detail are re-fetched so the caller renders canonical state.
func (w *Workflows) LendBook(ctx context.Context, req model.CreateLendingRequest) (LendBookResult, error) {
	if _, _, err := w.lending.Create(ctx, req); err != nil {
		return LendBookResult{}, err
	}

	var res LendBookResult
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		detail, _, err := w.books.Get(gctx, req.BookID)
		if err != nil {
			return err
		}
		res.Detail = detail
		return nil
	})
	gg.Go(func() error {
		history, _, err := w.lending.ListByBook(gctx, req.BookID)
		if err != nil {
			return err
		}
		res.History = history
		return nil
	})
	if err := gg.Wait(); err != nil {
		return LendBookResult{}, err
	}
	return res, nil
}

// ReturnBook puts the actual return date onto the record, then re-fetches the
// lending list.
func (w *Workflows) ReturnBook(ctx context.Context, id int, returnDate string) ([]model.LendingRecord, error) {
	if _, err := w.lending.MarkReturned(ctx, id, returnDate); err != nil {
		return nil, err
	}
	list, _, err := w.lending.List(ctx)
	return list, err
}
