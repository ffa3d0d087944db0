// Package service
package service

import (
	"errors"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	Created             HttpCode = 201
	BadRequest          HttpCode = 400
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	ServerInternalError HttpCode = 500
	BadGateway          HttpCode = 502
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam   = ApiStatus{"PARAM_ERROR", "Invalid parameters", BadRequest}
	ErrLackParam      = ApiStatus{"PARAM_LACK_ERROR", "Some parameters are missing", BadRequest}
	ErrDatabaseFail   = ApiStatus{"DATABASE_ERROR", "Internal server error", ServerInternalError}
	ErrLaunchNotFound = ApiStatus{"LAUNCH_NOT_FOUND", "Launch not found", NotFound}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError runs a store call and maps store errors to a response
func CallDBFuncAndCheckError[R any, T any](logger log.LoggerInterface, fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	switch {
	case errors.Is(err, operation.ErrLaunchNotFound):
		return nil, NewApiResponse[T](&ErrLaunchNotFound, Unsatisfied, nil)
	case err != nil:
		logger.ErrorF("Error in DB function: %v", err)
		return nil, NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
	default:
		return result, nil
	}
}
