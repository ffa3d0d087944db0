// Package service
package service

import (
	"context"
	"errors"
	"github.com/half-nothing/simple-launch/internal/interfaces/catalog"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	. "github.com/half-nothing/simple-launch/internal/interfaces/service"
)

type CatalogService struct {
	logger   log.LoggerInterface
	importer catalog.ImporterInterface
}

func NewCatalogService(logger log.LoggerInterface, importer catalog.ImporterInterface) *CatalogService {
	return &CatalogService{logger: logger, importer: importer}
}

var (
	ErrCatalogFetchFailed  = ApiStatus{StatusName: "CATALOG_FETCH_FAILED", Description: "Could not download the launch catalog", HttpCode: BadGateway}
	SuccessImportLaunches  = ApiStatus{StatusName: "IMPORT_LAUNCHES", Description: "Launch catalog imported", HttpCode: Ok}
	SuccessSkipImportation = ApiStatus{StatusName: "IMPORT_SKIPPED", Description: "Launch catalog already imported", HttpCode: Ok}
)

func (catalogService *CatalogService) ImportLaunches(ctx context.Context, req *RequestImportLaunches) *ApiResponse[ResponseImportLaunches] {
	result, err := catalogService.importer.Load(ctx, req.Force)
	switch {
	case errors.Is(err, catalog.ErrCatalogFetchFailed):
		return NewApiResponse[ResponseImportLaunches](&ErrCatalogFetchFailed, Unsatisfied, nil)
	case err != nil:
		if result != nil {
			catalogService.logger.ErrorF("CatalogService.ImportLaunches import stopped, %d of %d saved: %v", result.Saved, result.Total, err)
		} else {
			catalogService.logger.ErrorF("CatalogService.ImportLaunches import error: %v", err)
		}
		return NewApiResponse[ResponseImportLaunches](&ErrDatabaseFail, Unsatisfied, nil)
	case result.Skipped:
		return NewApiResponse(&SuccessSkipImportation, Unsatisfied, (*ResponseImportLaunches)(result))
	default:
		return NewApiResponse(&SuccessImportLaunches, Unsatisfied, (*ResponseImportLaunches)(result))
	}
}
