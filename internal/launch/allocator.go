package launch

import (
	"context"
	"errors"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
)

const DefaultBaselineFlightNumber = 100

// FlightNumberAllocator proposes the next flight number. The proposal is not reserved,
// callers must insert with InsertLaunch and retry on ErrFlightNumberTaken.
type FlightNumberAllocator struct {
	launchOperation operation.LaunchOperationInterface
	baseline        int
}

func NewFlightNumberAllocator(launchOperation operation.LaunchOperationInterface, baseline int) *FlightNumberAllocator {
	if baseline <= 0 {
		baseline = DefaultBaselineFlightNumber
	}
	return &FlightNumberAllocator{launchOperation: launchOperation, baseline: baseline}
}

func (allocator *FlightNumberAllocator) Next(ctx context.Context) (int, error) {
	latest, err := allocator.launchOperation.GetLatestFlightNumber(ctx)
	if errors.Is(err, operation.ErrLaunchNotFound) {
		return allocator.baseline, nil
	}
	if err != nil {
		return 0, err
	}
	return latest + 1, nil
}
