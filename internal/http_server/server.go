// Package http_server
package http_server

import (
	"context"
	"errors"
	"github.com/half-nothing/simple-launch/internal/http_server/controller"
	impl "github.com/half-nothing/simple-launch/internal/http_server/service"
	. "github.com/half-nothing/simple-launch/internal/interfaces"
	"github.com/half-nothing/simple-launch/internal/interfaces/global"
	"github.com/half-nothing/simple-launch/internal/launch"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

// NewHttpServer builds the echo instance with middlewares and routes, it does not listen
func NewHttpServer(applicationContent *ApplicationContent) *echo.Echo {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()
	httpConfig := config.HttpServer

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	if httpConfig.RequestDuration > 0 {
		e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: httpConfig.RequestDuration}))
	}
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	secureConfig := middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}
	if httpConfig.SSL.EnableHSTS {
		secureConfig.HSTSMaxAge = httpConfig.SSL.HstsExpiredTime
		secureConfig.HSTSExcludeSubdomains = !httpConfig.SSL.IncludeDomain
	}
	e.Use(middleware.SecureWithConfig(secureConfig))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	launchConfig := config.Launch
	launchOperation := applicationContent.Operations().LaunchOperation()
	destinations := launch.NewStaticDestinations(launchConfig.Destinations)
	scheduler := launch.NewScheduler(logger, launchConfig, launchOperation, destinations)
	aborter := launch.NewAborter(logger, launchOperation)

	launchService := impl.NewLaunchService(logger, launchOperation, scheduler, aborter)
	catalogService := impl.NewCatalogService(logger, applicationContent.Importer())
	serverService := impl.NewServerService()

	launchController := controller.NewLaunchController(logger, launchService)
	catalogController := controller.NewCatalogController(logger, catalogService)
	serverController := controller.NewServerController(serverService)

	apiGroup := e.Group(global.ApiVersionPrefix)
	apiGroup.GET("/health", serverController.GetHealth)

	launchGroup := apiGroup.Group("/launches")
	launchGroup.GET("", launchController.GetLaunches)
	launchGroup.POST("", launchController.AddLaunch)
	launchGroup.POST("/import", catalogController.ImportLaunches)
	launchGroup.DELETE("/:id", launchController.AbortLaunch)

	return e
}

func StartHttpServer(applicationContent *ApplicationContent) {
	httpConfig := applicationContent.ConfigManager().Config().HttpServer
	logger := applicationContent.Logger()

	e := NewHttpServer(applicationContent)
	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
