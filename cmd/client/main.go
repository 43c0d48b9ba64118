package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/MKhiriev/climate-scenarios/internal/adapter"
	"github.com/MKhiriev/climate-scenarios/internal/client"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fs := flag.NewFlagSet("climate-client", flag.ExitOnError)
	addr := fs.String("addr", getenv("CLIMATE_API_ADDR", "http://localhost:8080"), "API server address")
	prefix := fs.String("prefix", getenv("CLIMATE_API_PREFIX", "/api"), "API route prefix")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	logLevel := fs.String("log-level", "warn", "log level")
	version := fs.Bool("version", false, "print build info and exit")
	_ = fs.Parse(os.Args[1:])

	if *version {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("climate-scenarios-client", *logLevel)

	api, err := adapter.NewHTTPAPIClient(adapter.Config{
		BaseURL:   *addr,
		APIPrefix: *prefix,
		Timeout:   *timeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var app client.Client = client.NewApp(api, os.Stdout, log)
	if err = app.Run(ctx, fs.Args()); err != nil {
		if !errors.Is(err, client.ErrNoCommand) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
