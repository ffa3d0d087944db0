// Package operation
package operation

import (
	"context"
	"errors"
)

var (
	ErrLaunchNotFound    = errors.New("launch not found")
	ErrFlightNumberTaken = errors.New("flight number has been taken")
)

type LaunchOperationInterface interface {
	// GetLaunches returns launches ordered by flight number, a limit of zero or less means no limit
	GetLaunches(ctx context.Context, skip, limit int) (launches []*Launch, err error)
	CountLaunches(ctx context.Context) (total int64, err error)
	GetLaunchByFlightNumber(ctx context.Context, flightNumber int) (launch *Launch, err error)
	GetLaunchBySignature(ctx context.Context, flightNumber int, rocket, mission string) (launch *Launch, err error)
	// GetLatestFlightNumber returns ErrLaunchNotFound when the store is empty
	GetLatestFlightNumber(ctx context.Context) (flightNumber int, err error)
	// InsertLaunch never replaces an existing record, it fails with ErrFlightNumberTaken instead
	InsertLaunch(ctx context.Context, launch *Launch) (err error)
	// SaveLaunch inserts the launch or fully replaces the record with the same flight number
	SaveLaunch(ctx context.Context, launch *Launch) (err error)
	// UpdateLaunchStatus returns the number of records matched by flight number
	UpdateLaunchStatus(ctx context.Context, flightNumber int, status LaunchStatus) (matched int64, err error)
}
