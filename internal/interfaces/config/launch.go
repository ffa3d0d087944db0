// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/utils"
	"slices"
	"strings"
)

type LaunchConfig struct {
	BaselineFlightNumber      int      `json:"baseline_flight_number"`       // 空库时分配的第一个航班号
	DefaultCustomers          []string `json:"default_customers"`            // 新建发射任务的默认客户
	AllocateRetries           int      `json:"allocate_retries"`             // 航班号冲突时的最大重试次数
	AllowFlightNumberOverride bool     `json:"allow_flight_number_override"` // 是否允许请求指定航班号
	Destinations              []string `json:"destinations"`                 // 可选目的地
}

func defaultLaunchConfig() *LaunchConfig {
	return &LaunchConfig{
		BaselineFlightNumber:      100,
		DefaultCustomers:          []string{"ZTM", "NASA"},
		AllocateRetries:           5,
		AllowFlightNumberOverride: true,
		Destinations: []string{
			"Kepler-62 f",
			"Kepler-442 b",
			"Kepler-1652 b",
			"Kepler-1410 b",
			"Kepler-1649 b",
			"Kepler-296 f",
			"Kepler-296 e",
			"Kepler-62 e",
		},
	}
}

func (config *LaunchConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.BaselineFlightNumber <= 0 {
		return ValidFail(errors.New("invalid json field baseline_flight_number, must be greater than zero"))
	}

	if config.AllocateRetries <= 0 {
		return ValidFail(errors.New("invalid json field allocate_retries, must be greater than zero"))
	}

	if len(config.DefaultCustomers) == 0 || slices.Contains(config.DefaultCustomers, "") {
		return ValidFail(errors.New("invalid json field default_customers, must contain at least one non-empty customer"))
	}

	destinations := utils.Filter(config.Destinations, func(destination string) bool {
		return strings.TrimSpace(destination) != ""
	})
	for i, destination := range destinations {
		destination = strings.TrimSpace(destination)
		if slices.Contains(destinations[:i], destination) {
			return ValidFail(fmt.Errorf("invalid json field destinations, duplicated destination %s", destination))
		}
		destinations[i] = destination
	}
	config.Destinations = destinations

	if len(config.Destinations) == 0 {
		logger.Warn("No destination configured, every schedule request will be rejected")
	}

	if config.AllowFlightNumberOverride {
		logger.Warn("allow_flight_number_override is enabled, requests may overwrite existing launches")
	}
	return ValidPass()
}
