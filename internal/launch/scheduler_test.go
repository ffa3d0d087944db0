package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/half-nothing/simple-launch/internal/base"
	"github.com/half-nothing/simple-launch/internal/database"
	"github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

var launchDate = time.Date(2030, time.December, 27, 0, 0, 0, 0, time.UTC)

func testLaunchConfig() *config.LaunchConfig {
	return &config.LaunchConfig{
		BaselineFlightNumber:      100,
		DefaultCustomers:          []string{"ZTM", "NASA"},
		AllocateRetries:           5,
		AllowFlightNumberOverride: true,
		Destinations:              []string{"Kepler-62 f", "Kepler-442 b"},
	}
}

func newTestScheduler(cfg *config.LaunchConfig, store operation.LaunchOperationInterface) *Scheduler {
	return NewScheduler(base.NewLoggerWithWriter(io.Discard), cfg, store, NewStaticDestinations(cfg.Destinations))
}

func newRequest(target string) *LaunchRequest {
	return &LaunchRequest{Mission: "M", Rocket: "R", LaunchDate: launchDate, Target: target}
}

func TestScheduleOnEmptyStoreUsesBaseline(t *testing.T) {
	store := newMemoryLaunchOperation()
	scheduler := newTestScheduler(testLaunchConfig(), store)

	launch, err := scheduler.Schedule(context.Background(), newRequest("Kepler-62 f"))
	require.NoError(t, err)
	assert.Equal(t, 100, launch.FlightNumber)
	assert.Equal(t, 1, store.writes())
}

func TestScheduleFollowsLatestFlightNumber(t *testing.T) {
	store := newMemoryLaunchOperation(&operation.Launch{FlightNumber: 100, Mission: "Existing"})
	scheduler := newTestScheduler(testLaunchConfig(), store)

	launch, err := scheduler.Schedule(context.Background(), newRequest("Kepler-62 f"))
	require.NoError(t, err)
	assert.Equal(t, 101, launch.FlightNumber)

	next, err := scheduler.Schedule(context.Background(), newRequest("Kepler-442 b"))
	require.NoError(t, err)
	assert.Equal(t, 102, next.FlightNumber)
}

func TestScheduleAppliesDefaults(t *testing.T) {
	cfg := testLaunchConfig()
	scheduler := newTestScheduler(cfg, newMemoryLaunchOperation())

	launch, err := scheduler.Schedule(context.Background(), newRequest("Kepler-62 f"))
	require.NoError(t, err)
	assert.True(t, launch.Upcoming)
	assert.True(t, launch.Success)
	assert.Equal(t, []string{"ZTM", "NASA"}, []string(launch.Customers))
	assert.Equal(t, "M", launch.Mission)
	assert.Equal(t, "R", launch.Rocket)
	assert.Equal(t, "Kepler-62 f", launch.Target)
	assert.True(t, launch.LaunchDate.Equal(launchDate))

	launch.Customers[0] = "changed"
	assert.Equal(t, []string{"ZTM", "NASA"}, cfg.DefaultCustomers, "launch must not alias the configured customers")
}

func TestScheduleUnknownDestination(t *testing.T) {
	store := newMemoryLaunchOperation()
	scheduler := newTestScheduler(testLaunchConfig(), store)

	for _, target := range []string{"Nonexistent", "", "kepler-62 f"} {
		launch, err := scheduler.Schedule(context.Background(), newRequest(target))
		assert.ErrorIs(t, err, ErrUnknownDestination, "target %q", target)
		assert.Nil(t, launch)
	}
	assert.Zero(t, store.writes())
}

func TestScheduleRetriesOnConflict(t *testing.T) {
	store := newMemoryLaunchOperation()
	store.forcedConflicts = 2
	scheduler := newTestScheduler(testLaunchConfig(), store)

	launch, err := scheduler.Schedule(context.Background(), newRequest("Kepler-62 f"))
	require.NoError(t, err)
	assert.Equal(t, 100, launch.FlightNumber)
	assert.Zero(t, store.forcedConflicts)
}

func TestScheduleGivesUpAfterRetries(t *testing.T) {
	store := newMemoryLaunchOperation()
	store.forcedConflicts = 100
	cfg := testLaunchConfig()
	cfg.AllocateRetries = 3
	scheduler := newTestScheduler(cfg, store)

	_, err := scheduler.Schedule(context.Background(), newRequest("Kepler-62 f"))
	assert.ErrorIs(t, err, ErrFlightNumberExhausted)
	assert.Equal(t, 97, store.forcedConflicts)
	assert.Zero(t, store.writes())
}

func TestSchedulePropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := newMemoryLaunchOperation()
	store.failWith = storeErr
	scheduler := newTestScheduler(testLaunchConfig(), store)

	_, err := scheduler.Schedule(context.Background(), newRequest("Kepler-62 f"))
	assert.ErrorIs(t, err, storeErr)
}

func TestScheduleWithFlightNumberOverride(t *testing.T) {
	t.Run("should use the requested flight number", func(t *testing.T) {
		store := newMemoryLaunchOperation()
		scheduler := newTestScheduler(testLaunchConfig(), store)
		request := newRequest("Kepler-62 f")
		request.TestFlightNumber = 99

		launch, err := scheduler.Schedule(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, 99, launch.FlightNumber)
		assert.True(t, launch.Upcoming)
		assert.Equal(t, 1, store.saves)
	})

	t.Run("should replace a colliding launch", func(t *testing.T) {
		store := newMemoryLaunchOperation(&operation.Launch{FlightNumber: 99, Mission: "Old", Upcoming: false})
		scheduler := newTestScheduler(testLaunchConfig(), store)
		request := newRequest("Kepler-62 f")
		request.TestFlightNumber = 99

		_, err := scheduler.Schedule(context.Background(), request)
		require.NoError(t, err)
		stored, err := store.GetLaunchByFlightNumber(context.Background(), 99)
		require.NoError(t, err)
		assert.Equal(t, "M", stored.Mission)
		assert.True(t, stored.Upcoming)
	})

	t.Run("should reject an override when disabled", func(t *testing.T) {
		store := newMemoryLaunchOperation()
		cfg := testLaunchConfig()
		cfg.AllowFlightNumberOverride = false
		scheduler := newTestScheduler(cfg, store)
		request := newRequest("Kepler-62 f")
		request.TestFlightNumber = 99

		_, err := scheduler.Schedule(context.Background(), request)
		assert.ErrorIs(t, err, ErrFlightNumberOverrideDisabled)
		assert.Zero(t, store.writes())
	})

	t.Run("should reject a negative flight number", func(t *testing.T) {
		store := newMemoryLaunchOperation()
		scheduler := newTestScheduler(testLaunchConfig(), store)
		request := newRequest("Kepler-62 f")
		request.TestFlightNumber = -1

		_, err := scheduler.Schedule(context.Background(), request)
		assert.ErrorIs(t, err, ErrInvalidFlightNumber)
		assert.Zero(t, store.writes())
	})
}

func TestNewLaunchDoesNotModifyInputs(t *testing.T) {
	request := newRequest("Kepler-62 f")
	customers := []string{"ZTM"}

	launch := NewLaunch(request, 7, customers)
	launch.Customers[0] = "changed"
	launch.Mission = "changed"

	assert.Equal(t, []string{"ZTM"}, customers)
	assert.Equal(t, "M", request.Mission)
	assert.Zero(t, request.TestFlightNumber)
}

func TestConcurrentScheduleAssignsUniqueFlightNumbers(t *testing.T) {
	db, err := database.OpenDatabase(sqlite.Open(filepath.Join(t.TempDir(), "launches.db")), false)
	require.NoError(t, err)
	dbPool, err := db.DB()
	require.NoError(t, err)
	dbPool.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbPool.Close() })

	const workers = 8
	cfg := testLaunchConfig()
	cfg.AllocateRetries = workers
	scheduler := newTestScheduler(cfg, database.NewLaunchOperation(db, 5*time.Second))

	var wg sync.WaitGroup
	results := make(chan int, workers)
	failures := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			request := newRequest("Kepler-62 f")
			request.Mission = fmt.Sprintf("Mission %d", i)
			launch, err := scheduler.Schedule(context.Background(), request)
			if err != nil {
				failures <- err
				return
			}
			results <- launch.FlightNumber
		}(i)
	}
	wg.Wait()
	close(results)
	close(failures)

	for err := range failures {
		t.Errorf("schedule failed: %v", err)
	}
	seen := make(map[int]bool)
	for number := range results {
		assert.False(t, seen[number], "flight number %d assigned twice", number)
		seen[number] = true
	}
	assert.Len(t, seen, workers)
	for number := 100; number < 100+workers; number++ {
		assert.True(t, seen[number], "flight number %d missing", number)
	}
}
