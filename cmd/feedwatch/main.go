package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/feedwatch/feedwatch/pkg/collector"
	"github.com/feedwatch/feedwatch/pkg/config"
	"github.com/feedwatch/feedwatch/pkg/content"
	"github.com/feedwatch/feedwatch/pkg/detector"
	"github.com/feedwatch/feedwatch/pkg/fetcher"
	"github.com/feedwatch/feedwatch/pkg/metrics"
	"github.com/feedwatch/feedwatch/pkg/prioritizer"
	"github.com/feedwatch/feedwatch/pkg/quality"
	"github.com/feedwatch/feedwatch/pkg/registry"
	"github.com/feedwatch/feedwatch/pkg/responder"
	"github.com/feedwatch/feedwatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" description:"config file (yaml)"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Mode   string `short:"m" long:"mode" env:"MODE" default:"serve" choice:"serve" choice:"collect" choice:"priority" choice:"monitor" description:"run mode"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting feedwatch version %s, mode %s", revision, opts.Mode)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] feedwatch failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	reg, err := registry.New(ctx, registry.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open registry: %w", err)
	}
	defer func() {
		if cerr := reg.Close(); cerr != nil {
			log.Printf("[WARN] registry close: %v", cerr)
		}
	}()

	proc := fetcher.New(fetcher.Config{
		MaxConcurrent: cfg.Collector.MaxConcurrent,
		FetchTimeout:  cfg.Collector.FetchTimeout,
		UserAgent:     cfg.Collector.UserAgent,
	})
	analyzer := quality.NewAnalyzer(cfg.Quality.Vocabulary, cfg.Quality.RelevanceFloor)
	prio := prioritizer.New(cfg.Priority)
	det := detector.New(cfg.Detection)
	extractor := content.NewExtractor(cfg.Collector.FetchTimeout, cfg.Collector.UserAgent)
	resp := responder.New(extractor, cfg.Collector.ResponseBudget)
	m := metrics.New()

	coll := collector.New(collector.Params{
		Fetcher:     proc,
		Analyzer:    analyzer,
		Prioritizer: prio,
		Detector:    det,
		Responder:   resp,
		Store:       reg,
		Metrics:     m,
		Config:      cfg.Collector,
	})
	defer coll.Stop()

	switch opts.Mode {
	case "collect":
		return runCollect(ctx, coll, reg)
	case "priority":
		return runPriority(ctx, coll, reg)
	case "monitor":
		return runMonitor(ctx, coll, reg)
	default:
		srv := server.New(cfg, reg, coll, revision, opts.Debug)
		return srv.Run(ctx)
	}
}

// loadConfig reads the config file or falls back to defaults, applying CLI
// overrides on top
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
}

// runCollect performs one parallel collection pass and reports the outcome
func runCollect(ctx context.Context, coll *collector.Collector, reg *registry.Registry) error {
	sources, err := reg.GetSources(ctx, true)
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}
	outcome, err := coll.Collect(ctx, sources)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	log.Printf("[INFO] collected %d items from %d sources, %d emergencies, %d alerts",
		len(outcome.Items), len(outcome.Results), len(outcome.Emergencies), len(outcome.Alerts))
	return nil
}

// runPriority performs one priority-ordered sequential pass
func runPriority(ctx context.Context, coll *collector.Collector, reg *registry.Registry) error {
	sources, err := reg.GetSources(ctx, true)
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}
	results, err := coll.CollectByPriority(ctx, sources)
	if err != nil {
		return fmt.Errorf("priority collect: %w", err)
	}
	for _, res := range results {
		log.Printf("[INFO] %s: value %.1f, %d items (%s)",
			res.Result.SourceID, res.RealizedValue, len(res.Result.Items), res.Ranked.Reasoning)
	}
	return nil
}

// runMonitor starts a monitoring session and blocks until terminated
func runMonitor(ctx context.Context, coll *collector.Collector, reg *registry.Registry) error {
	sources, err := reg.GetSources(ctx, true)
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}
	sess, err := coll.StartMonitoring(ctx, sources, nil)
	if err != nil {
		return fmt.Errorf("start monitoring: %w", err)
	}
	log.Printf("[INFO] monitoring session %s running over %d sources", sess.ID, len(sess.SourceIDs))
	<-ctx.Done()
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
