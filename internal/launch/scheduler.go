package launch

import (
	"context"
	"errors"
	"github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"time"
)

// LaunchRequest is a launch that already passed request-shape validation.
// TestFlightNumber is zero unless the caller asks for a fixed flight number.
type LaunchRequest struct {
	Mission          string
	Rocket           string
	LaunchDate       time.Time
	Target           string
	TestFlightNumber int
}

// NewLaunch builds a new upcoming launch, it never modifies request or customers
func NewLaunch(request *LaunchRequest, flightNumber int, customers []string) *operation.Launch {
	ownCustomers := make([]string, len(customers))
	copy(ownCustomers, customers)
	return &operation.Launch{
		FlightNumber: flightNumber,
		Mission:      request.Mission,
		Rocket:       request.Rocket,
		LaunchDate:   request.LaunchDate,
		Target:       request.Target,
		Customers:    ownCustomers,
		Upcoming:     true,
		Success:      true,
	}
}

type Scheduler struct {
	logger          log.LoggerInterface
	config          *config.LaunchConfig
	launchOperation operation.LaunchOperationInterface
	destinations    operation.DestinationLookupInterface
	allocator       *FlightNumberAllocator
}

func NewScheduler(
	logger log.LoggerInterface,
	config *config.LaunchConfig,
	launchOperation operation.LaunchOperationInterface,
	destinations operation.DestinationLookupInterface,
) *Scheduler {
	return &Scheduler{
		logger:          logger,
		config:          config,
		launchOperation: launchOperation,
		destinations:    destinations,
		allocator:       NewFlightNumberAllocator(launchOperation, config.BaselineFlightNumber),
	}
}

func (scheduler *Scheduler) Schedule(ctx context.Context, request *LaunchRequest) (*operation.Launch, error) {
	if request.TestFlightNumber < 0 {
		return nil, ErrInvalidFlightNumber
	}
	if request.TestFlightNumber > 0 && !scheduler.config.AllowFlightNumberOverride {
		return nil, ErrFlightNumberOverrideDisabled
	}

	exists, err := scheduler.destinations.DestinationExists(ctx, request.Target)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUnknownDestination
	}

	if request.TestFlightNumber > 0 {
		return scheduler.scheduleWithFlightNumber(ctx, request)
	}

	retries := max(scheduler.config.AllocateRetries, 1)
	for attempt := 1; attempt <= retries; attempt++ {
		flightNumber, err := scheduler.allocator.Next(ctx)
		if err != nil {
			return nil, err
		}
		launch := NewLaunch(request, flightNumber, scheduler.config.DefaultCustomers)
		err = scheduler.launchOperation.InsertLaunch(ctx, launch)
		if err == nil {
			scheduler.logger.InfoF("Launch %d (%s) scheduled to %s", launch.FlightNumber, launch.Mission, launch.Target)
			return launch, nil
		}
		if !errors.Is(err, operation.ErrFlightNumberTaken) {
			return nil, err
		}
		scheduler.logger.WarnF("Flight number %d was taken concurrently, retrying (%d/%d)", flightNumber, attempt, retries)
	}
	return nil, ErrFlightNumberExhausted
}

func (scheduler *Scheduler) scheduleWithFlightNumber(ctx context.Context, request *LaunchRequest) (*operation.Launch, error) {
	existing, err := scheduler.launchOperation.GetLaunchByFlightNumber(ctx, request.TestFlightNumber)
	switch {
	case err == nil:
		scheduler.logger.WarnF("Flight number override %d replaces existing launch %q", existing.FlightNumber, existing.Mission)
	case !errors.Is(err, operation.ErrLaunchNotFound):
		return nil, err
	}

	launch := NewLaunch(request, request.TestFlightNumber, scheduler.config.DefaultCustomers)
	if err := scheduler.launchOperation.SaveLaunch(ctx, launch); err != nil {
		return nil, err
	}
	scheduler.logger.InfoF("Launch %d (%s) scheduled to %s with a fixed flight number", launch.FlightNumber, launch.Mission, launch.Target)
	return launch, nil
}
