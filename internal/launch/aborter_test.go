package launch

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/half-nothing/simple-launch/internal/base"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbort(t *testing.T) {
	ctx := context.Background()
	logger := base.NewLoggerWithWriter(io.Discard)

	t.Run("should fail with not found on an empty store", func(t *testing.T) {
		aborter := NewAborter(logger, newMemoryLaunchOperation())
		assert.ErrorIs(t, aborter.Abort(ctx, 999), ErrLaunchNotFound)
	})

	t.Run("should mark the launch aborted and allow aborting again", func(t *testing.T) {
		store := newMemoryLaunchOperation(&operation.Launch{FlightNumber: 100, Mission: "M", Upcoming: true, Success: true})
		aborter := NewAborter(logger, store)

		require.NoError(t, aborter.Abort(ctx, 100))
		launch, err := store.GetLaunchByFlightNumber(ctx, 100)
		require.NoError(t, err)
		assert.False(t, launch.Upcoming)
		assert.False(t, launch.Success)

		require.NoError(t, aborter.Abort(ctx, 100))
		assert.True(t, launch.IsAborted())
		assert.Equal(t, "M", launch.Mission)
	})

	t.Run("should report not aborted when the update matches nothing", func(t *testing.T) {
		store := newMemoryLaunchOperation(&operation.Launch{FlightNumber: 100, Upcoming: true, Success: true})
		store.forcedUnmatched = true
		aborter := NewAborter(logger, store)

		err := aborter.Abort(ctx, 100)
		assert.ErrorIs(t, err, ErrNotAborted)
		assert.False(t, errors.Is(err, ErrLaunchNotFound))
	})

	t.Run("should pass store errors through", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		store := newMemoryLaunchOperation()
		store.failWith = storeErr
		aborter := NewAborter(logger, store)
		assert.ErrorIs(t, aborter.Abort(ctx, 100), storeErr)
	})
}

func TestFlightNumberAllocator(t *testing.T) {
	tests := []struct {
		name     string
		baseline int
		existing []int
		expected int
	}{
		{"empty store", 100, nil, 100},
		{"after baseline", 100, []int{100}, 101},
		{"after catalog import", 100, []int{1, 2, 187}, 188},
		{"custom baseline", 500, nil, 500},
		{"non positive baseline", 0, nil, DefaultBaselineFlightNumber},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := newMemoryLaunchOperation()
			for _, number := range test.existing {
				store.launches[number] = &operation.Launch{FlightNumber: number}
			}
			next, err := NewFlightNumberAllocator(store, test.baseline).Next(context.Background())
			require.NoError(t, err)
			assert.Equal(t, test.expected, next)
		})
	}
}

func TestStaticDestinations(t *testing.T) {
	destinations := NewStaticDestinations([]string{"Kepler-62 f", "Kepler-442 b"})
	assert.Equal(t, 2, destinations.Len())

	ok, err := destinations.DestinationExists(context.Background(), "Kepler-442 b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = destinations.DestinationExists(context.Background(), "Kepler-442")
	require.NoError(t, err)
	assert.False(t, ok)
}
