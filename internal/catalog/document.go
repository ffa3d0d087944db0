// Package catalog imports historical launches from the public SpaceX catalog
package catalog

import (
	"fmt"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"github.com/half-nothing/simple-launch/internal/utils"
	"time"
)

type rocketDocument struct {
	Name string `json:"name"`
}

type payloadDocument struct {
	Customers []string `json:"customers"`
}

// Document is one launch as returned by the catalog query endpoint with rocket and payloads populated
type Document struct {
	FlightNumber int                `json:"flight_number"`
	Name         string             `json:"name"`
	DateLocal    string             `json:"date_local"`
	Upcoming     bool               `json:"upcoming"`
	Success      *bool              `json:"success"`
	Rocket       rocketDocument     `json:"rocket"`
	Payloads     []*payloadDocument `json:"payloads"`
}

type queryResponse struct {
	Docs []*Document `json:"docs"`
}

func (document *Document) Customers() []string {
	return utils.FlatMap(document.Payloads, func(payload *payloadDocument) []string {
		if payload == nil {
			return nil
		}
		return payload.Customers
	})
}

func (document *Document) ToLaunch() (*operation.Launch, error) {
	launchDate, err := time.Parse(time.RFC3339, document.DateLocal)
	if err != nil {
		return nil, fmt.Errorf("flight %d has invalid date_local %q: %w", document.FlightNumber, document.DateLocal, err)
	}
	return &operation.Launch{
		FlightNumber: document.FlightNumber,
		Mission:      document.Name,
		Rocket:       document.Rocket.Name,
		LaunchDate:   launchDate,
		Customers:    document.Customers(),
		Upcoming:     document.Upcoming,
		Success:      document.Success != nil && *document.Success,
	}, nil
}
