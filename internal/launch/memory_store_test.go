package launch

import (
	"context"
	"slices"
	"sync"

	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
)

// memoryLaunchOperation is an in-memory store with hooks for failure injection
type memoryLaunchOperation struct {
	mu              sync.Mutex
	launches        map[int]*operation.Launch
	forcedConflicts int
	forcedUnmatched bool
	failWith        error
	inserts         int
	saves           int
}

var _ operation.LaunchOperationInterface = (*memoryLaunchOperation)(nil)

func newMemoryLaunchOperation(launches ...*operation.Launch) *memoryLaunchOperation {
	store := &memoryLaunchOperation{launches: make(map[int]*operation.Launch)}
	for _, launch := range launches {
		store.launches[launch.FlightNumber] = launch
	}
	return store
}

func (m *memoryLaunchOperation) GetLaunches(_ context.Context, skip, limit int) ([]*operation.Launch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	numbers := make([]int, 0, len(m.launches))
	for number := range m.launches {
		numbers = append(numbers, number)
	}
	slices.Sort(numbers)
	result := make([]*operation.Launch, 0)
	for i, number := range numbers {
		if i < skip || (limit > 0 && len(result) >= limit) {
			continue
		}
		result = append(result, m.launches[number])
	}
	return result, nil
}

func (m *memoryLaunchOperation) CountLaunches(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.launches)), m.failWith
}

func (m *memoryLaunchOperation) GetLaunchByFlightNumber(_ context.Context, flightNumber int) (*operation.Launch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	launch, ok := m.launches[flightNumber]
	if !ok {
		return nil, operation.ErrLaunchNotFound
	}
	return launch, nil
}

func (m *memoryLaunchOperation) GetLaunchBySignature(ctx context.Context, flightNumber int, rocket, mission string) (*operation.Launch, error) {
	launch, err := m.GetLaunchByFlightNumber(ctx, flightNumber)
	if err != nil {
		return nil, err
	}
	if launch.Rocket != rocket || launch.Mission != mission {
		return nil, operation.ErrLaunchNotFound
	}
	return launch, nil
}

func (m *memoryLaunchOperation) GetLatestFlightNumber(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return 0, m.failWith
	}
	if len(m.launches) == 0 {
		return 0, operation.ErrLaunchNotFound
	}
	latest := 0
	for number := range m.launches {
		latest = max(latest, number)
	}
	return latest, nil
}

func (m *memoryLaunchOperation) InsertLaunch(_ context.Context, launch *operation.Launch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if m.forcedConflicts > 0 {
		m.forcedConflicts--
		return operation.ErrFlightNumberTaken
	}
	if _, ok := m.launches[launch.FlightNumber]; ok {
		return operation.ErrFlightNumberTaken
	}
	m.inserts++
	m.launches[launch.FlightNumber] = launch
	return nil
}

func (m *memoryLaunchOperation) SaveLaunch(_ context.Context, launch *operation.Launch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.saves++
	m.launches[launch.FlightNumber] = launch
	return nil
}

func (m *memoryLaunchOperation) UpdateLaunchStatus(_ context.Context, flightNumber int, status operation.LaunchStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return 0, m.failWith
	}
	launch, ok := m.launches[flightNumber]
	if !ok || m.forcedUnmatched {
		return 0, nil
	}
	launch.Upcoming = status.Upcoming
	launch.Success = status.Success
	return 1, nil
}

func (m *memoryLaunchOperation) writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inserts + m.saves
}
