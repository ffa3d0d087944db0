// Package controller
package controller

import (
	. "github.com/half-nothing/simple-launch/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type ServerControllerInterface interface {
	GetHealth(ctx echo.Context) error
}

type ServerController struct {
	serverService ServerServiceInterface
}

func NewServerController(serverService ServerServiceInterface) *ServerController {
	return &ServerController{serverService: serverService}
}

func (controller *ServerController) GetHealth(ctx echo.Context) error {
	return controller.serverService.GetHealth().Response(ctx)
}
