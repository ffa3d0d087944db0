// Package service
package service

type ServerServiceInterface interface {
	GetHealth() *ApiResponse[ResponseGetHealth]
}

type ResponseGetHealth struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
