package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"math"
	"time"
)

var _ LaunchOperationInterface = (*LaunchOperation)(nil)

var launchReplaceColumns = []string{"mission", "rocket", "launch_date", "target", "customers", "upcoming", "success", "updated_at"}

type LaunchOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewLaunchOperation(db *gorm.DB, queryTimeout time.Duration) *LaunchOperation {
	return &LaunchOperation{db: db, queryTimeout: queryTimeout}
}

func (launchOperation *LaunchOperation) GetLaunches(ctx context.Context, skip, limit int) (launches []*Launch, err error) {
	launches = make([]*Launch, 0)
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	if limit <= 0 {
		// some dialects reject OFFSET without LIMIT
		limit = math.MaxInt32
	}
	err = launchOperation.db.WithContext(ctx).
		Order("flight_number asc").
		Offset(max(skip, 0)).
		Limit(limit).
		Find(&launches).Error
	return
}

func (launchOperation *LaunchOperation) CountLaunches(ctx context.Context) (total int64, err error) {
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	err = launchOperation.db.WithContext(ctx).Model(&Launch{}).Count(&total).Error
	return
}

func (launchOperation *LaunchOperation) GetLaunchByFlightNumber(ctx context.Context, flightNumber int) (launch *Launch, err error) {
	launch = &Launch{}
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	err = launchOperation.db.WithContext(ctx).
		Where("flight_number = ?", flightNumber).
		Take(launch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLaunchNotFound
	}
	return
}

func (launchOperation *LaunchOperation) GetLaunchBySignature(ctx context.Context, flightNumber int, rocket, mission string) (launch *Launch, err error) {
	launch = &Launch{}
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	err = launchOperation.db.WithContext(ctx).
		Where("flight_number = ? AND rocket = ? AND mission = ?", flightNumber, rocket, mission).
		Take(launch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLaunchNotFound
	}
	return
}

func (launchOperation *LaunchOperation) GetLatestFlightNumber(ctx context.Context) (flightNumber int, err error) {
	launch := &Launch{}
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	err = launchOperation.db.WithContext(ctx).
		Select("flight_number").
		Order("flight_number desc").
		Take(launch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrLaunchNotFound
	}
	return launch.FlightNumber, err
}

func (launchOperation *LaunchOperation) InsertLaunch(ctx context.Context, launch *Launch) error {
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	err := launchOperation.db.WithContext(ctx).Create(launch).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrFlightNumberTaken
	}
	return err
}

func (launchOperation *LaunchOperation) SaveLaunch(ctx context.Context, launch *Launch) error {
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	return launchOperation.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "flight_number"}},
			DoUpdates: clause.AssignmentColumns(launchReplaceColumns),
		}).
		Create(launch).Error
}

func (launchOperation *LaunchOperation) UpdateLaunchStatus(ctx context.Context, flightNumber int, status LaunchStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, launchOperation.queryTimeout)
	defer cancel()
	result := launchOperation.db.WithContext(ctx).
		Model(&Launch{}).
		Where("flight_number = ?", flightNumber).
		Updates(map[string]interface{}{
			"upcoming": status.Upcoming,
			"success":  status.Success,
		})
	return result.RowsAffected, result.Error
}
