package mongodb

import (
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"time"
)

type launchDocument struct {
	FlightNumber int       `bson:"flightNumber"`
	Mission      string    `bson:"mission"`
	Rocket       string    `bson:"rocket"`
	LaunchDate   time.Time `bson:"launchDate"`
	Target       string    `bson:"target,omitempty"`
	Customers    []string  `bson:"customers"`
	Upcoming     bool      `bson:"upcoming"`
	Success      bool      `bson:"success"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func newLaunchDocument(launch *operation.Launch) *launchDocument {
	customers := make([]string, len(launch.Customers))
	copy(customers, launch.Customers)
	return &launchDocument{
		FlightNumber: launch.FlightNumber,
		Mission:      launch.Mission,
		Rocket:       launch.Rocket,
		LaunchDate:   launch.LaunchDate,
		Target:       launch.Target,
		Customers:    customers,
		Upcoming:     launch.Upcoming,
		Success:      launch.Success,
		UpdatedAt:    time.Now(),
	}
}

func (document *launchDocument) toLaunch() *operation.Launch {
	customers := document.Customers
	if customers == nil {
		customers = make([]string, 0)
	}
	return &operation.Launch{
		FlightNumber: document.FlightNumber,
		Mission:      document.Mission,
		Rocket:       document.Rocket,
		LaunchDate:   document.LaunchDate,
		Target:       document.Target,
		Customers:    customers,
		Upcoming:     document.Upcoming,
		Success:      document.Success,
		UpdatedAt:    document.UpdatedAt,
	}
}
