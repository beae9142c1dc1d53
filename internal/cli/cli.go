package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/zipweather/internal/app"
	"github.com/specialistvlad/zipweather/internal/report"
	"github.com/specialistvlad/zipweather/internal/weather"
)

// Parse resolves args and the environment (read through getenv) into a
// validated Config. It returns shouldExit=true when the caller should stop
// cleanly, e.g. after -h. Input problems come back as *ExitError. Parse never
// touches the network.
//
// Requested output (-h, -version) goes to stdout; usage shown because of bad
// input goes to stderr so stdout stays empty on failure.
func Parse(args []string, getenv func(string) string, stdout, stderr io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("zipweather", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	// The flag package calls Usage on both -h and parse errors; which stream
	// gets it is decided after Parse returns.
	flagSet.Usage = func() {}

	printUsage := func(w io.Writer) {
		flagSet.SetOutput(w)
		defer flagSet.SetOutput(stderr)
		fmt.Fprintf(w, `
zipweather - current weather for a US postal code.

Usage:
  zipweather [options] POSTAL_CODE

Arguments:
  POSTAL_CODE
    A numeric US postal code, e.g. 90210.

Environment:
  %s     OpenWeatherMap API key (required).
  %s  Zipkin collector URL (optional).

Options:
`, app.APIKeyEnv, app.ZipkinURLEnv)
		flagSet.PrintDefaults()
	}

	colorFlag := flagSet.String("color", string(report.ColorAuto), "Colorize output. Options: 'auto', 'always' or 'never'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	endpointFlag := flagSet.String("endpoint", weather.DefaultEndpoint, "Weather API endpoint.")
	zipkinFlag := flagSet.String("zipkin-url", getenv(app.ZipkinURLEnv), "Zipkin collector URL. Empty disables tracing.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return nil, true, nil
		}
		printUsage(stderr)
		return nil, false, invalid(err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintln(stdout, "zipweather", app.Version)
		return nil, true, nil
	}

	if flagSet.NArg() == 0 {
		printUsage(stderr)
		return nil, false, invalid("missing POSTAL_CODE argument")
	}
	if flagSet.NArg() > 1 {
		slog.Debug("Ignoring extra arguments.", "extra", flagSet.Args()[1:])
	}

	raw := flagSet.Arg(0)
	// Postal codes are bounded to a 32-bit signed integer on every platform.
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil, false, invalid(fmt.Sprintf("invalid postal code %q: must be a 32-bit integer", raw))
	}
	postalCode := int(parsed)

	colorMode, err := report.ParseColorMode(*colorFlag)
	if err != nil {
		return nil, false, invalid(err.Error())
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, invalid("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, invalid("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if *endpointFlag == "" {
		return nil, false, invalid("invalid endpoint: must not be empty")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Query:     weather.NewQuery(postalCode, getenv(app.APIKeyEnv)),
		Endpoint:  *endpointFlag,
		ColorMode: colorMode,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		ZipkinURL: *zipkinFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: exitCodeOf(err), Message: err.Error(), Err: err}
	}

	slog.Debug("CLI parser finished successfully.", "postal_code", config.Query.PostalCode)
	return config, false, nil
}

func invalid(msg string) *ExitError {
	return &ExitError{
		Code:    ExitInvalidArgument,
		Message: msg,
		Err:     fmt.Errorf("%w: %s", app.ErrInvalidArgument, msg),
	}
}
