// Package controller
package controller

import (
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	. "github.com/half-nothing/simple-launch/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type LaunchControllerInterface interface {
	GetLaunches(ctx echo.Context) error
	AddLaunch(ctx echo.Context) error
	AbortLaunch(ctx echo.Context) error
}

type LaunchController struct {
	logger        log.LoggerInterface
	launchService LaunchServiceInterface
}

func NewLaunchController(logger log.LoggerInterface, launchService LaunchServiceInterface) *LaunchController {
	return &LaunchController{
		logger:        logger,
		launchService: launchService,
	}
}

func (controller *LaunchController) GetLaunches(ctx echo.Context) error {
	data := &RequestGetLaunches{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.WarnF("LaunchController.GetLaunches bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.launchService.GetLaunches(ctx.Request().Context(), data).Response(ctx)
}

func (controller *LaunchController) AddLaunch(ctx echo.Context) error {
	data := &RequestAddLaunch{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.WarnF("LaunchController.AddLaunch bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.launchService.AddLaunch(ctx.Request().Context(), data).Response(ctx)
}

func (controller *LaunchController) AbortLaunch(ctx echo.Context) error {
	data := &RequestAbortLaunch{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.WarnF("LaunchController.AbortLaunch bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLaunchNotFound)
	}
	return controller.launchService.AbortLaunch(ctx.Request().Context(), data).Response(ctx)
}
