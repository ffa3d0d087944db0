// Package service
package service

import (
	"github.com/half-nothing/simple-launch/internal/interfaces/global"
	. "github.com/half-nothing/simple-launch/internal/interfaces/service"
)

type ServerService struct{}

func NewServerService() *ServerService {
	return &ServerService{}
}

var SuccessGetHealth = ApiStatus{StatusName: "GET_HEALTH", Description: "Service is healthy", HttpCode: Ok}

func (serverService *ServerService) GetHealth() *ApiResponse[ResponseGetHealth] {
	return NewApiResponse(&SuccessGetHealth, Unsatisfied, &ResponseGetHealth{Status: "ok", Version: global.AppVersion})
}
