package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/zipweather/internal/app"
	"github.com/specialistvlad/zipweather/internal/cli"
)

// main is the entrypoint for the zipweather CLI.
func main() {
	// Use a minimal logger until the app builds its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// A .env file only seeds variables that are not already set.
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err)
	}

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:], os.Getenv); err != nil {
		fmt.Fprintln(os.Stderr, "zipweather:", err)
		os.Exit(cli.ExitCodeFor(err))
	}
}

// run holds everything main does except touching the real process state, so
// tests can drive it with fake args, environment and writers.
func run(ctx context.Context, outW, errW io.Writer, args []string, getenv func(string) string) error {
	cfg, shouldExit, err := cli.Parse(args, getenv, outW, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	zw := app.NewApp(outW, errW, cfg)
	defer zw.Close()

	return zw.Run(ctx)
}
