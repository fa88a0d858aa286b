package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/hrload/internal"
	"github.com/2beens/hrload/internal/config"
	"github.com/2beens/hrload/internal/logging"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// recompute is the one-shot counterpart of the service: it recomputes a date
// range (or a single activity) and exits non-zero if anything failed.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("env-file", ".env", "optional dotenv file with the secrets")
	fromStr := flag.String("from", "", "first date to recompute, YYYY-MM-DD (default today)")
	toStr := flag.String("to", "", "last date to recompute, YYYY-MM-DD (default from)")
	activityID := flag.String("activity", "", "recompute only this activity")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		fmt.Printf("load env file %s: %s\n", *envFile, err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	loggingCleanup := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "hrload-recompute",
	})

	from, to, err := parseRange(*fromStr, *toStr, time.Now())
	if err != nil {
		log.Errorf("invalid range: %s", err)
		loggingCleanup()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rt, err := internal.NewRuntime(ctx, internal.NewRuntimeParams{
		Config:                  cfg,
		RedisPassword:           os.Getenv("HRLOAD_REDIS_PASS"),
		HoneycombTracingEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
		ServiceName:             "recompute",
	})
	if err != nil {
		log.Errorf("new runtime: %s", err)
		cancel()
		loggingCleanup()
		os.Exit(1)
	}

	exitCode := run(ctx, rt, from, to, *activityID)

	cancel()
	rt.Close()
	loggingCleanup()
	os.Exit(exitCode)
}

func run(ctx context.Context, rt *internal.Runtime, from, to time.Time, activityID string) int {
	if activityID != "" {
		out, err := rt.Service.RecomputeActivity(ctx, activityID)
		if err != nil {
			log.Errorf("recompute activity %s: %s", activityID, err)
			return 1
		}
		log.Infof("activity %s: detected %t, trimp %.2f, %s",
			out.ActivityID, out.Detected, out.Result.Total, out.Classification)
		return 0
	}

	start := time.Now()
	outputs, err := rt.Service.RecomputeRange(ctx, from, to)
	for _, out := range outputs {
		log.Infof("%s: trimp %.2f, score %.1f, %s, cache hit %t",
			out.Date.Format(time.DateOnly), out.Result.Total, out.DailyScore, out.Classification, out.CacheHit)
	}
	log.Infof("recomputed %d days in %s", len(outputs), time.Since(start))

	if err != nil {
		for _, e := range multierr.Errors(err) {
			log.Errorf("recompute: %s", e)
		}
		return 1
	}
	return 0
}

func parseRange(fromStr, toStr string, now time.Time) (time.Time, time.Time, error) {
	from := now.UTC().Truncate(24 * time.Hour)
	if fromStr != "" {
		parsed, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from: %w", err)
		}
		from = parsed
	}

	to := from
	if toStr != "" {
		parsed, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to: %w", err)
		}
		to = parsed
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("to %s before from %s", to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	return from, to, nil
}
