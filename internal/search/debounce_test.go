package search_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dula827/booknest-frontend/internal/search"
)

func TestDebouncer_CoalescesKeystrokes(t *testing.T) {
	t.Parallel()
	var calls int32
	fn := func(_ context.Context, query string) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{query}, nil
	}

	d := search.New[[]string](50 * time.Millisecond)

	firstErr := make(chan error, 1)
	go func() {
		_, err := d.Do(context.Background(), "dun", fn)
		firstErr <- err
	}()
	time.Sleep(10 * time.Millisecond)

	// "dune" arrives within the window: only it runs
	got, err := d.Do(context.Background(), "dune", fn)
	require.NoError(t, err)
	require.Equal(t, []string{"dune"}, got)
	require.ErrorIs(t, <-firstErr, search.ErrSuperseded)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestDebouncer_EmptyQueryDismissesWithoutRequest(t *testing.T) {
	t.Parallel()
	var calls int32
	fn := func(_ context.Context, query string) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	}

	d := search.New[[]string](50 * time.Millisecond)

	pendingErr := make(chan error, 1)
	go func() {
		_, err := d.Do(context.Background(), "dun", fn)
		pendingErr <- err
	}()
	time.Sleep(10 * time.Millisecond)

	// clearing the query cancels the pending search and issues nothing
	_, err := d.Do(context.Background(), "  ", fn)
	require.ErrorIs(t, err, search.ErrEmptyQuery)
	require.ErrorIs(t, <-pendingErr, search.ErrSuperseded)

	time.Sleep(80 * time.Millisecond)
	require.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestDebouncer_RunsAfterQuietPeriod(t *testing.T) {
	t.Parallel()
	var calls int32
	fn := func(_ context.Context, query string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "hit:" + query, nil
	}

	d := search.New[string](20 * time.Millisecond)
	got, err := d.Do(context.Background(), "herbert", fn)
	require.NoError(t, err)
	require.Equal(t, "hit:herbert", got)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}
