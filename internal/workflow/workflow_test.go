package workflow_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dula827/booknest-frontend/internal/model"
	"github.com/Dula827/booknest-frontend/internal/workflow"
	mock_workflow "github.com/Dula827/booknest-frontend/internal/workflow/mocks"
)

type mocks struct {
	books    *mock_workflow.MockBooksService
	wishlist *mock_workflow.MockWishlistService
	lending  *mock_workflow.MockLendingService
	images   *mock_workflow.MockImageService
}

func newWorkflows(t *testing.T) (*workflow.Workflows, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := mocks{
		books:    mock_workflow.NewMockBooksService(ctrl),
		wishlist: mock_workflow.NewMockWishlistService(ctrl),
		lending:  mock_workflow.NewMockLendingService(ctrl),
		images:   mock_workflow.NewMockImageService(ctrl),
	}
	w := workflow.New(zap.NewExample().Named("test"), m.books, m.wishlist, m.lending, m.images)
	return w, m
}

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return model.Date{Time: d}
}

func TestWorkflows_AddBook(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	book := model.CreateBookRequest{
		Title:         "Dune",
		Author:        "Herbert",
		Category:      "Science Fiction",
		PurchaseDate:  "2024-01-15",
		ReadingStatus: model.ReadingStatusUnread,
	}

	m.books.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req model.CreateBookRequest) (model.CreateBookResponse, int, error) {
			// the record is created with an empty image list
			require.NotNil(t, req.Images)
			require.Empty(t, req.Images)
			return model.CreateBookResponse{ID: 7}, http.StatusCreated, nil
		})
	m.images.EXPECT().
		Upload(gomock.Any(), gomock.Any(), 7).
		DoAndReturn(func(_ context.Context, f model.UploadFile, _ int) (string, int, error) {
			return "/uploads/7_" + f.Name, http.StatusOK, nil
		}).
		Times(2)
	var patched *[]string
	m.books.EXPECT().
		Update(gomock.Any(), 7, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, req model.UpdateBookRequest) (int, error) {
			patched = req.Images
			return http.StatusOK, nil
		})

	id, err := w.AddBook(context.Background(), workflow.AddBookInput{
		Book: book,
		Files: []model.UploadFile{
			{Name: "front.jpg", Content: []byte("a")},
			{Name: "back.jpg", Content: []byte("b")},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 7, id)
	require.NotNil(t, patched)
	// stored paths follow the selection order
	require.Equal(t, []string{"/uploads/7_front.jpg", "/uploads/7_back.jpg"}, *patched)
}

func TestWorkflows_AddBook_NoFilesSkipsPatch(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	m.books.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(model.CreateBookResponse{ID: 3}, http.StatusCreated, nil)

	id, err := w.AddBook(context.Background(), workflow.AddBookInput{
		Book: model.CreateBookRequest{Title: "Dune"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, id)
}

func TestWorkflows_AddBook_UploadFailureLeavesRecord(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	m.books.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(model.CreateBookResponse{ID: 9}, http.StatusCreated, nil)
	m.images.EXPECT().
		Upload(gomock.Any(), gomock.Any(), 9).
		Return("", http.StatusBadGateway, errors.New("upload failed")).
		MinTimes(1).MaxTimes(2)
	// no patch: the record persists without images and the error surfaces

	id, err := w.AddBook(context.Background(), workflow.AddBookInput{
		Book: model.CreateBookRequest{Title: "Dune"},
		Files: []model.UploadFile{
			{Name: "front.jpg"},
			{Name: "back.jpg"},
		},
	})
	require.Error(t, err)
	require.Equal(t, 9, id)
}

func TestWorkflows_EditBook_RemovedThenAppended(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	title := "Dune Messiah"
	in := workflow.EditBookInput{
		ID:            5,
		Fields:        model.UpdateBookRequest{Title: &title},
		CurrentImages: []string{"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/c.jpg"},
		RemoveImages:  []string{"/uploads/b.jpg"},
		NewFiles:      []model.UploadFile{{Name: "d.jpg", Content: []byte("d")}},
	}

	m.images.EXPECT().
		Delete(gomock.Any(), "/uploads/b.jpg").
		Return(http.StatusOK, nil)

	var patches []model.UpdateBookRequest
	m.books.EXPECT().
		Update(gomock.Any(), 5, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, req model.UpdateBookRequest) (int, error) {
			patches = append(patches, req)
			return http.StatusOK, nil
		}).
		Times(2)
	m.images.EXPECT().
		Upload(gomock.Any(), gomock.Any(), 5).
		Return("/uploads/d.jpg", http.StatusOK, nil)

	require.NoError(t, w.EditBook(context.Background(), in))

	require.Len(t, patches, 2)
	// first patch: scalar changes plus original minus removed, original order
	require.Equal(t, &title, patches[0].Title)
	require.Equal(t, []string{"/uploads/a.jpg", "/uploads/c.jpg"}, *patches[0].Images)
	// second patch: new uploads appended at the end
	require.Equal(t, []string{"/uploads/a.jpg", "/uploads/c.jpg", "/uploads/d.jpg"}, *patches[1].Images)
}

func TestWorkflows_EditBook_NoNewFilesSinglePatch(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	m.images.EXPECT().Delete(gomock.Any(), "/uploads/a.jpg").Return(http.StatusOK, nil)
	m.books.EXPECT().
		Update(gomock.Any(), 5, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, req model.UpdateBookRequest) (int, error) {
			require.Equal(t, []string{"/uploads/b.jpg"}, *req.Images)
			return http.StatusOK, nil
		})

	err := w.EditBook(context.Background(), workflow.EditBookInput{
		ID:            5,
		CurrentImages: []string{"/uploads/a.jpg", "/uploads/b.jpg"},
		RemoveImages:  []string{"/uploads/a.jpg"},
	})
	require.NoError(t, err)
}

func TestWorkflows_DeleteBook_AttemptsAllImageDeletesFirst(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	var mu sync.Mutex
	var events []string
	record := func(ev string) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	}

	// one image delete fails; the record delete still proceeds afterwards
	m.images.EXPECT().
		Delete(gomock.Any(), "/uploads/a.jpg").
		DoAndReturn(func(context.Context, string) (int, error) {
			record("image:a")
			return http.StatusOK, nil
		})
	m.images.EXPECT().
		Delete(gomock.Any(), "/uploads/b.jpg").
		DoAndReturn(func(context.Context, string) (int, error) {
			record("image:b")
			return http.StatusInternalServerError, errors.New("cleanup failed")
		})
	m.books.EXPECT().
		Delete(gomock.Any(), 11).
		DoAndReturn(func(context.Context, int) (int, error) {
			record("record")
			return http.StatusOK, nil
		})

	err := w.DeleteBook(context.Background(), 11, []string{"/uploads/a.jpg", "/uploads/b.jpg"})
	require.NoError(t, err)

	require.Len(t, events, 3)
	require.Equal(t, "record", events[2])
	require.ElementsMatch(t, []string{"image:a", "image:b"}, events[:2])
}

func TestWorkflows_LendBook_RefetchesStateOnSuccess(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	req := model.CreateLendingRequest{
		BookID:       4,
		BorrowerName: "Alice",
		BorrowDate:   date(t, "2024-03-01"),
		ReturnDate:   date(t, "2024-03-15"),
	}
	m.lending.EXPECT().
		Create(gomock.Any(), req).
		Return(model.LendingRecord{ID: 1, BookID: 4}, http.StatusCreated, nil)
	m.books.EXPECT().
		Get(gomock.Any(), 4).
		Return(model.BookDetails{Book: model.Book{ID: 4, LendingStatus: model.LendingStatusLentOut}}, http.StatusOK, nil)
	m.lending.EXPECT().
		ListByBook(gomock.Any(), 4).
		Return([]model.LendingRecord{{ID: 1, BookID: 4, ReturnStatus: model.ReturnStatusNotReturned}}, http.StatusOK, nil)

	res, err := w.LendBook(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, model.LendingStatusLentOut, res.Detail.Book.LendingStatus)
	require.Len(t, res.History, 1)
}

func TestWorkflows_LendBook_NoRefetchOnFailure(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	m.lending.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(model.LendingRecord{}, http.StatusConflict, errors.New("already lent out"))

	_, err := w.LendBook(context.Background(), model.CreateLendingRequest{BookID: 4})
	require.Error(t, err)
}

func TestWorkflows_ReturnBook(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	gomock.InOrder(
		m.lending.EXPECT().
			MarkReturned(gomock.Any(), 2, "2024-04-01").
			Return(http.StatusOK, nil),
		m.lending.EXPECT().
			List(gomock.Any()).
			Return([]model.LendingRecord{{ID: 2, ReturnStatus: model.ReturnStatusReturned}}, http.StatusOK, nil),
	)

	list, err := w.ReturnBook(context.Background(), 2, "2024-04-01")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, model.ReturnStatusReturned, list[0].ReturnStatus)
}

func TestWorkflows_MoveWishlistItem(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	m.images.EXPECT().
		Upload(gomock.Any(), gomock.Any(), 8).
		Return("/uploads/8_cover.jpg", http.StatusOK, nil)
	m.wishlist.EXPECT().
		MoveToBooks(gomock.Any(), 8, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, req model.MoveToBooksRequest) (int, error) {
			require.Equal(t, model.ReadingStatusUnread, req.ReadingStatus)
			require.Equal(t, []string{"/uploads/8_cover.jpg"}, req.Images)
			return http.StatusOK, nil
		})

	err := w.MoveWishlistItem(context.Background(), workflow.MoveWishlistInput{
		ItemID: 8,
		Move: model.MoveToBooksRequest{
			PurchaseDate:  date(t, "2024-02-02"),
			ReadingStatus: model.ReadingStatusUnread,
		},
		Files: []model.UploadFile{{Name: "cover.jpg", Content: []byte("img")}},
	})
	require.NoError(t, err)
}

func TestWorkflows_MoveWishlistItem_UploadFailureAbortsMove(t *testing.T) {
	t.Parallel()
	w, m := newWorkflows(t)

	m.images.EXPECT().
		Upload(gomock.Any(), gomock.Any(), 8).
		Return("", http.StatusBadGateway, errors.New("upload failed"))

	err := w.MoveWishlistItem(context.Background(), workflow.MoveWishlistInput{
		ItemID: 8,
		Move:   model.MoveToBooksRequest{ReadingStatus: model.ReadingStatusRead},
		Files:  []model.UploadFile{{Name: "cover.jpg"}},
	})
	require.Error(t, err)
}
