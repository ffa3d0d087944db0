// Package service
package service

import (
	"context"
	"github.com/half-nothing/simple-launch/internal/interfaces/catalog"
)

type CatalogServiceInterface interface {
	ImportLaunches(ctx context.Context, req *RequestImportLaunches) *ApiResponse[ResponseImportLaunches]
}

type RequestImportLaunches struct {
	Force bool `query:"force"`
}

type ResponseImportLaunches catalog.ImportResult
