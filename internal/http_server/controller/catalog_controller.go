// Package controller
package controller

import (
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	. "github.com/half-nothing/simple-launch/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type CatalogControllerInterface interface {
	ImportLaunches(ctx echo.Context) error
}

type CatalogController struct {
	logger         log.LoggerInterface
	catalogService CatalogServiceInterface
}

func NewCatalogController(logger log.LoggerInterface, catalogService CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		logger:         logger,
		catalogService: catalogService,
	}
}

func (controller *CatalogController) ImportLaunches(ctx echo.Context) error {
	data := &RequestImportLaunches{}
	// Bind skips query parameters on POST
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, data); err != nil {
		controller.logger.WarnF("CatalogController.ImportLaunches bind error: %v", err)
		return NewErrorResponse(ctx, &ErrIllegalParam)
	}
	return controller.catalogService.ImportLaunches(ctx.Request().Context(), data).Response(ctx)
}
