package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/zipweather/internal/ctxlog"
	"github.com/specialistvlad/zipweather/internal/report"
	"github.com/specialistvlad/zipweather/internal/tracing"
	"github.com/specialistvlad/zipweather/internal/weather"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// traceFlushTimeout bounds how long exit waits on an unreachable collector.
const traceFlushTimeout = 5 * time.Second

// App wires the fetcher and the printer for one lookup.
type App struct {
	logger  *slog.Logger
	config  *Config
	client  *weather.Client
	printer *report.Printer
}

// NewApp builds an App that prints the report to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	printer := report.NewPrinter(outW, cfg.ColorMode)
	logger.Debug("Printer configured.", "color_mode", cfg.ColorMode, "colored", printer.Colored())

	return &App{
		logger:  logger,
		config:  cfg,
		client:  weather.NewClient(cfg.Endpoint),
		printer: printer,
	}
}

// Run resolves, fetches and prints exactly once. Nothing is printed unless
// the fetch succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "run_id", uuid.NewString())
	logger := ctxlog.FromContext(ctx)

	shutdown, err := tracing.Init(a.config.ZipkinURL, "zipweather", Version)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if serr := flushTraces(shutdown, traceFlushTimeout); serr != nil {
			logger.Warn("Failed to flush traces.", "error", serr)
		}
	}()

	ctx, span := otel.Tracer("zipweather/app").Start(ctx, "zipweather.run")
	defer span.End()
	span.SetAttributes(attribute.Int("weather.postal_code", a.config.Query.PostalCode))

	logger.Debug("Looking up current weather.", "postal_code", a.config.Query.PostalCode, "endpoint", a.config.Endpoint)
	resp, err := a.client.Current(ctx, a.config.Query)
	if err != nil {
		span.SetStatus(codes.Error, "lookup failed")
		logger.Debug("Weather lookup failed.", "error", err)
		return fmt.Errorf("lookup for postal code %d failed: %w", a.config.Query.PostalCode, err)
	}

	if err := a.printer.Print(a.config.Query.PostalCode, resp); err != nil {
		span.SetStatus(codes.Error, "print failed")
		return err
	}

	logger.Debug("Report printed.")
	return nil
}

func flushTraces(shutdown tracing.ShutdownFunc, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return shutdown(ctx)
}

// Close releases the HTTP client's idle connections.
func (a *App) Close() error {
	return a.client.Close()
}
