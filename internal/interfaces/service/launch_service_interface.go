// Package service
package service

import (
	"context"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
)

type LaunchServiceInterface interface {
	GetLaunches(ctx context.Context, req *RequestGetLaunches) *ApiResponse[ResponseGetLaunches]
	AddLaunch(ctx context.Context, req *RequestAddLaunch) *ApiResponse[ResponseAddLaunch]
	AbortLaunch(ctx context.Context, req *RequestAbortLaunch) *ApiResponse[ResponseAbortLaunch]
}

type RequestGetLaunches struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

type ResponseGetLaunches struct {
	Items []*operation.Launch `json:"items"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
	Total int64               `json:"total"`
}

type RequestAddLaunch struct {
	Mission    string `json:"mission"`
	Rocket     string `json:"rocket"`
	LaunchDate string `json:"launchDate"`
	Target     string `json:"target"`
	Test       int    `json:"test"`
}

type ResponseAddLaunch operation.Launch

type RequestAbortLaunch struct {
	FlightNumber int `param:"id"`
}

type ResponseAbortLaunch struct {
	Ok bool `json:"ok"`
}
