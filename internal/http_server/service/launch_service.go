// Package service
package service

import (
	"context"
	"errors"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	. "github.com/half-nothing/simple-launch/internal/interfaces/service"
	"github.com/half-nothing/simple-launch/internal/launch"
	"math"
	"strings"
	"time"
)

// launchDateLayouts are tried in order when parsing a requested launch date
var launchDateLayouts = []string{
	time.RFC3339,
	time.DateOnly,
	"January 2, 2006",
	"Jan 2, 2006",
	time.DateTime,
}

func parseLaunchDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range launchDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

type LaunchService struct {
	logger          log.LoggerInterface
	launchOperation operation.LaunchOperationInterface
	scheduler       *launch.Scheduler
	aborter         *launch.Aborter
}

func NewLaunchService(
	logger log.LoggerInterface,
	launchOperation operation.LaunchOperationInterface,
	scheduler *launch.Scheduler,
	aborter *launch.Aborter,
) *LaunchService {
	return &LaunchService{
		logger:          logger,
		launchOperation: launchOperation,
		scheduler:       scheduler,
		aborter:         aborter,
	}
}

var SuccessGetLaunches = ApiStatus{StatusName: "GET_LAUNCHES", Description: "Launches fetched", HttpCode: Ok}

func (launchService *LaunchService) GetLaunches(ctx context.Context, req *RequestGetLaunches) *ApiResponse[ResponseGetLaunches] {
	if req.Page < 0 || req.Limit < 0 {
		return NewApiResponse[ResponseGetLaunches](&ErrIllegalParam, Unsatisfied, nil)
	}
	page := max(req.Page, 1)
	if req.Limit > 0 && page-1 > math.MaxInt/req.Limit {
		return NewApiResponse[ResponseGetLaunches](&ErrIllegalParam, Unsatisfied, nil)
	}
	skip := (page - 1) * req.Limit

	launches, err := launchService.launchOperation.GetLaunches(ctx, skip, req.Limit)
	if err != nil {
		launchService.logger.ErrorF("LaunchService.GetLaunches query launches error: %v", err)
		return NewApiResponse[ResponseGetLaunches](&ErrDatabaseFail, Unsatisfied, nil)
	}
	total, err := launchService.launchOperation.CountLaunches(ctx)
	if err != nil {
		launchService.logger.ErrorF("LaunchService.GetLaunches count launches error: %v", err)
		return NewApiResponse[ResponseGetLaunches](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetLaunches, Unsatisfied, &ResponseGetLaunches{
		Items: launches,
		Page:  page,
		Limit: req.Limit,
		Total: total,
	})
}

var (
	ErrInvalidLaunchDate = ApiStatus{StatusName: "INVALID_LAUNCH_DATE", Description: "Invalid launch date", HttpCode: BadRequest}
	ErrNoMatchingPlanet  = ApiStatus{StatusName: "NO_MATCHING_PLANET", Description: "No matching planet found", HttpCode: BadRequest}
	ErrOverrideDisabled  = ApiStatus{StatusName: "OVERRIDE_DISABLED", Description: "Choosing a flight number is disabled", HttpCode: BadRequest}
	ErrAllocateFail      = ApiStatus{StatusName: "ALLOCATE_FAIL", Description: "Could not allocate a flight number, please retry", HttpCode: Conflict}
	SuccessAddLaunch     = ApiStatus{StatusName: "ADD_LAUNCH", Description: "Launch scheduled", HttpCode: Created}
)

func (launchService *LaunchService) AddLaunch(ctx context.Context, req *RequestAddLaunch) *ApiResponse[ResponseAddLaunch] {
	request := &launch.LaunchRequest{
		Mission:          strings.TrimSpace(req.Mission),
		Rocket:           strings.TrimSpace(req.Rocket),
		Target:           strings.TrimSpace(req.Target),
		TestFlightNumber: req.Test,
	}
	if request.Mission == "" || request.Rocket == "" || request.Target == "" || strings.TrimSpace(req.LaunchDate) == "" {
		return NewApiResponse[ResponseAddLaunch](&ErrLackParam, Unsatisfied, nil)
	}

	launchDate, ok := parseLaunchDate(req.LaunchDate)
	if !ok {
		return NewApiResponse[ResponseAddLaunch](&ErrInvalidLaunchDate, Unsatisfied, nil)
	}
	request.LaunchDate = launchDate

	scheduled, err := launchService.scheduler.Schedule(ctx, request)
	switch {
	case errors.Is(err, launch.ErrUnknownDestination):
		return NewApiResponse[ResponseAddLaunch](&ErrNoMatchingPlanet, Unsatisfied, nil)
	case errors.Is(err, launch.ErrInvalidFlightNumber):
		return NewApiResponse[ResponseAddLaunch](&ErrIllegalParam, Unsatisfied, nil)
	case errors.Is(err, launch.ErrFlightNumberOverrideDisabled):
		return NewApiResponse[ResponseAddLaunch](&ErrOverrideDisabled, Unsatisfied, nil)
	case errors.Is(err, launch.ErrFlightNumberExhausted):
		launchService.logger.WarnF("LaunchService.AddLaunch allocate flight number error: %v", err)
		return NewApiResponse[ResponseAddLaunch](&ErrAllocateFail, Unsatisfied, nil)
	case err != nil:
		launchService.logger.ErrorF("LaunchService.AddLaunch schedule launch error: %v", err)
		return NewApiResponse[ResponseAddLaunch](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessAddLaunch, Unsatisfied, (*ResponseAddLaunch)(scheduled))
}

var (
	ErrLaunchNotAborted = ApiStatus{StatusName: "LAUNCH_NOT_ABORTED", Description: "Launch not aborted", HttpCode: BadRequest}
	SuccessAbortLaunch  = ApiStatus{StatusName: "ABORT_LAUNCH", Description: "Launch aborted", HttpCode: Ok}
)

func (launchService *LaunchService) AbortLaunch(ctx context.Context, req *RequestAbortLaunch) *ApiResponse[ResponseAbortLaunch] {
	if req.FlightNumber <= 0 {
		return NewApiResponse[ResponseAbortLaunch](&ErrLaunchNotFound, Unsatisfied, nil)
	}
	err := launchService.aborter.Abort(ctx, req.FlightNumber)
	if errors.Is(err, launch.ErrNotAborted) {
		return NewApiResponse[ResponseAbortLaunch](&ErrLaunchNotAborted, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[ResponseAbortLaunch, ResponseAbortLaunch](launchService.logger, func() (*ResponseAbortLaunch, error) {
		return nil, err
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessAbortLaunch, Unsatisfied, &ResponseAbortLaunch{Ok: true})
}
