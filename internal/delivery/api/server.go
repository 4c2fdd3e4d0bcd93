// Package api is the HTTP delivery of the backend: an echo server serving the device,
// dashboard, session and webhook routes.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"peeko/config"
	"peeko/internal/delivery"
	apimiddleware "peeko/internal/delivery/api/middleware"
	"peeko/internal/delivery/api/router"
	"peeko/internal/delivery/api/validator"
	"peeko/internal/delivery/middleware"
	"peeko/internal/domain/lifecycle"
	"peeko/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	addr   string
	idle   http2.Server
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		addr:   net.JoinHostPort(params.Cfg.HTTP.Host, strconv.Itoa(params.Cfg.HTTP.Port)),
		idle:   http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
		logger: params.Logger,
		echo:   newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	timeouts := params.Cfg.HTTP.Timeouts

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout
	e.Server.ErrorLog = slog.NewLogLogger(params.Logger.Handler(), slog.LevelWarn)

	// Devices build URLs by concatenation and occasionally send a trailing slash.
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(globalMiddleware(params)...)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

// globalMiddleware is ordered: panics are recovered first and the request ID exists before anything logs.
func globalMiddleware(params ServerParams) []echo.MiddlewareFunc {
	requestID := middleware.NewRequestIDMiddleware(params.Logger)
	requestLogger := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)

	return []echo.MiddlewareFunc{
		echomiddleware.Recover(),
		requestID.Process,
		requestLogger.Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
	}
}

func (s *apiServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting API HTTP server",
		slog.String("host_port", s.addr),
		slog.Int("routes", len(s.echo.Routes())),
	)

	if err := s.echo.StartH2CServer(s.addr, &s.idle); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
