// Package operation
package operation

import (
	"gorm.io/datatypes"
	"time"
)

type Launch struct {
	ID           uint                        `gorm:"primarykey" json:"-"`
	FlightNumber int                         `gorm:"uniqueIndex;not null" json:"flightNumber"`
	Mission      string                      `gorm:"size:128;not null" json:"mission"`
	Rocket       string                      `gorm:"size:128;not null" json:"rocket"`
	LaunchDate   time.Time                   `gorm:"not null" json:"launchDate"`
	Target       string                      `gorm:"size:128" json:"target,omitempty"`
	Customers    datatypes.JSONSlice[string] `json:"customers"`
	Upcoming     bool                        `gorm:"not null" json:"upcoming"`
	Success      bool                        `gorm:"not null" json:"success"`
	CreatedAt    time.Time                   `json:"-"`
	UpdatedAt    time.Time                   `json:"-"`
}

// LaunchStatus holds the only fields that may change after a launch is written
type LaunchStatus struct {
	Upcoming bool
	Success  bool
}

var AbortedStatus = LaunchStatus{Upcoming: false, Success: false}

func (launch *Launch) Status() LaunchStatus {
	return LaunchStatus{Upcoming: launch.Upcoming, Success: launch.Success}
}

func (launch *Launch) IsAborted() bool {
	return launch.Status() == AbortedStatus
}
