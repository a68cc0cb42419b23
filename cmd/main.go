package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"mtv_cron/internal/config"
	"mtv_cron/internal/logger"
	"mtv_cron/internal/random"
	"mtv_cron/internal/service"

	"github.com/spf13/pflag"
)

const appName = "mtv-cron"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, random.NewCryptoSource(), time.Now); err != nil {
		logger.Get(logger.ErrorLevel).Fatalw("mtv-cron failed", "err", err)
	}
}

// run prints a randomized crontab block for mtv-cli to stdout.
// Everything else (logs, preview, usage) goes to stderr.
func run(args []string, stdout, stderr io.Writer, src random.Source, now func() time.Time) error {
	fs := config.NewFlagSet(appName)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// load config (file, env, flags)
	cfg, err := config.Load(fs)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.LogLevel, stderr).WithRunID()
	defer func() { _ = log.Sync() }()

	// wire dependencies
	services := service.NewService(src, cfg.Commands)

	sched, err := services.Generate()
	if err != nil {
		log.Errorw("failed to generate schedule", "err", err)
		return err
	}
	log.Debugw("schedule generated",
		"minute_for_update", sched.MinuteForUpdate,
		"hour_for_update", sched.HourForUpdate,
		"minute_for_download", sched.MinuteForDownload,
		"hour_for_download", sched.HourForDownload,
	)

	entries := services.Entries(sched)
	if err := services.Validate(entries); err != nil {
		log.Errorw("generated entry rejected by cron parser", "err", err)
		return err
	}

	if err := services.Write(stdout, sched); err != nil {
		log.Errorw("failed to write schedule", "err", err)
		return err
	}

	if cfg.Next > 0 {
		runs, err := services.NextRuns(entries, now(), cfg.Next)
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Fprintf(stderr, "# next: %s %s\n", r.At.Format(time.RFC3339), r.Command)
		}
	}
	return nil
}
