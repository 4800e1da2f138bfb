package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/geoframe/sez2ecef/internal/config"
	"github.com/geoframe/sez2ecef/internal/geo"
	"github.com/geoframe/sez2ecef/internal/logging"
	intOtel "github.com/geoframe/sez2ecef/internal/otel"
	"github.com/geoframe/sez2ecef/internal/render"
	"github.com/geoframe/sez2ecef/pkg/core"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const shutdownTimeout = 2 * time.Second

func usage(program string) string {
	return fmt.Sprintf("Usage: %s %s", program, strings.Join(geo.ArgNames, " "))
}

// run converts one SEZ vector given as six positional arguments and returns
// the process exit code. Results go to stdout, diagnostics to stderr.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer, configDirs []string) int {
	program := ProgramName
	if len(argv) > 0 {
		program = filepath.Base(argv[0])
	}
	args := argv[min(1, len(argv)):]

	if len(args) != len(geo.ArgNames) {
		fmt.Fprintln(stdout, usage(program))
		return 0
	}

	if err := config.Load(configDirs...); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logFile, err := logging.OpenLogFile(config.GetString("logsDir"), ProgramName, time.Now())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	var logWriter io.Writer
	if logFile != nil {
		defer logFile.Close()
		logWriter = logFile
	}

	oc := config.GetOTelConfig()
	provider, err := intOtel.New(ctx, intOtel.Config{
		Enabled:      oc.Enabled,
		ServiceName:  oc.ServiceName,
		BatchTimeout: oc.BatchTimeout,
		LogWriter:    logWriter,
		Endpoint:     oc.Endpoint,
		Insecure:     oc.Insecure,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = provider.Shutdown(sctx)
	}()

	slogManager := logging.NewSlogManager(ProgramName, stderr)
	// the OTel exporter already writes to the log file when enabled
	if provider.Enabled() {
		slogManager.Setup(nil, config.GetString("logLevel"), provider.LoggerProvider())
	} else {
		slogManager.Setup(logWriter, config.GetString("logLevel"), nil)
	}
	logger := slogManager.Logger().With("version", Version)
	if f := config.UsedFile(); f != "" {
		logger.Debug("Config loaded", "file", f)
	}

	format, err := render.ParseFormat(config.GetString("output.format"))
	if err != nil {
		logger.Error("Bad output format", "error", err)
		return 1
	}

	observer, sez, err := geo.ParseArgs(args)
	if err != nil {
		logger.Error("Failed to parse arguments", "error", err)
		fmt.Fprintln(stderr, usage(program))
		return 1
	}

	converter := geo.NewConverter(config.GetBool("validation.strict"))
	result, err := converter.Convert(observer, sez)
	if err != nil {
		logger.Error("Observer rejected", "error", err, "strict", converter.Strict)
		return 1
	}
	logger.Debug("Converted",
		"lat_deg", observer.LatDeg, "lon_deg", observer.LonDeg, "hae_km", observer.HAEKm,
		"x_km", result.XKm, "y_km", result.YKm, "z_km", result.ZKm,
	)

	if vc := config.GetVerifyConfig(); vc.Enabled {
		verifyOrigin(logger, observer, converter.Ellipsoid, vc.ToleranceKm)
	}

	countConversion(ctx, provider.Meter(ProgramName), format, logger)

	if err := render.Render(stdout, format, result); err != nil {
		logger.Error("Failed to write result", "error", err)
		return 1
	}
	return 0
}

func verifyOrigin(logger *slog.Logger, observer core.GeodeticPosition, ell core.Ellipsoid, toleranceKm float64) {
	dev := geo.OriginDeviationKm(observer, ell)
	if dev > toleranceKm {
		logger.Warn("Observer origin differs from WGS-84 reference", "deviation_km", dev, "tolerance_km", toleranceKm)
		return
	}
	logger.Debug("Observer origin verified", "deviation_km", dev)
}

func countConversion(ctx context.Context, meter metric.Meter, format render.Format, logger *slog.Logger) {
	counter, err := meter.Int64Counter(ProgramName+".conversions",
		metric.WithDescription("SEZ vectors converted to ECEF"),
	)
	if err != nil {
		logger.Debug("Conversion counter unavailable", "error", err)
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("format", string(format))))
}
