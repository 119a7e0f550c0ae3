// Command cellwatch runs the connectivity observer against a simulated
// telephony platform.
//
// The observer follows the data SIM, its radio override and the cellular
// network capabilities, and prints every status it publishes.
//
// Usage:
//
//	cellwatch [flags]
//
// Flags:
//
//	-config string      Device configuration file (YAML)
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-event-log string   File path for observer event logging (CBOR format)
//	-scenario string    Run a scenario file or directory and exit
//	-interactive        Enable the interactive command shell
//
// Examples:
//
//	# Interactive session on the default single-SIM device
//	cellwatch -interactive
//
//	# Dual-SIM device from a config file, events to a log
//	cellwatch -config dual-sim.yaml -event-log session.clog -interactive
//
//	# Run all scenarios in a directory
//	cellwatch -scenario ./scenarios -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cellwatch/cellwatch-go/cmd/cellwatch/interactive"
	"github.com/cellwatch/cellwatch-go/pkg/lifecycle"
	cwlog "github.com/cellwatch/cellwatch-go/pkg/log"
	"github.com/cellwatch/cellwatch-go/pkg/observer"
	"github.com/cellwatch/cellwatch-go/pkg/scenario"
	"github.com/cellwatch/cellwatch-go/pkg/simulator"
)

// Config holds the command configuration.
type Config struct {
	ConfigFile  string
	LogLevel    string
	EventLog    string
	Scenario    string
	Interactive bool
}

var config Config

func init() {
	flag.StringVar(&config.ConfigFile, "config", "", "Device configuration file (YAML)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.EventLog, "event-log", "", "File path for observer event logging (CBOR format)")
	flag.StringVar(&config.Scenario, "scenario", "", "Run a scenario file or directory and exit")
	flag.BoolVar(&config.Interactive, "interactive", false, "Enable the interactive command shell")
}

func main() {
	flag.Parse()

	logger, err := setupLogging(config.LogLevel)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up event logging if requested
	var fileLogger *cwlog.FileLogger
	if config.EventLog != "" {
		fileLogger, err = cwlog.NewFileLogger(config.EventLog)
		if err != nil {
			log.Fatalf("Failed to create event logger: %v", err)
		}
		defer fileLogger.Close()
		log.Printf("Event logging to: %s", config.EventLog)
	}
	events := newEventLogger(fileLogger, logger)

	if config.Scenario != "" {
		code := runScenarios(config.Scenario, logger, events)
		if fileLogger != nil {
			fileLogger.Close()
		}
		os.Exit(code)
	}

	device, err := loadDeviceConfig(config.ConfigFile)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	simConfig, err := device.simulatorConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	simConfig.Logger = logger

	platform := simulator.New(simConfig)
	defer platform.Close()

	obsConfig := observer.DefaultConfig()
	obsConfig.Permissions = platform
	obsConfig.Subscriptions = platform
	obsConfig.Network = platform
	obsConfig.Logger = logger
	obsConfig.EventLogger = events

	obs, err := observer.New(obsConfig, nil)
	if err != nil {
		log.Fatalf("Failed to create observer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if config.Interactive {
		runInteractive(ctx, cancel, platform, obs, logger)
		return
	}

	host := lifecycle.New(obs, lifecycle.RendererFunc(func(s observer.Status) {
		log.Printf("[STATUS] %s", interactive.StatusLine(s))
	}), logger)
	if err := host.Create(); err != nil {
		log.Fatalf("Failed to create host: %v", err)
	}
	if err := host.Resume(); err != nil {
		log.Fatalf("Failed to resume host: %v", err)
	}
	log.Printf("Observing (session %s)", obs.SessionID())

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log.Printf("Received signal: %v", sig)
	if err := host.Destroy(); err != nil {
		log.Printf("Error stopping host: %v", err)
	}
}

func runInteractive(ctx context.Context, cancel context.CancelFunc, platform *simulator.Platform, obs *observer.Observer, logger *slog.Logger) {
	shell, err := interactive.New(platform, obs, logger)
	if err != nil {
		log.Fatalf("Failed to start interactive mode: %v", err)
	}
	log.SetOutput(shell.Stdout())

	host := shell.Host()
	if err := host.Create(); err != nil {
		log.Fatalf("Failed to create host: %v", err)
	}
	if err := host.Resume(); err != nil {
		log.Printf("Failed to resume host: %v", err)
	}

	shell.Run(ctx, cancel)

	if err := host.Destroy(); err != nil {
		log.Printf("Error stopping host: %v", err)
	}
}

// setupLogging configures the standard logger and returns the slog logger
// handed to the observer and simulator.
func setupLogging(level string) (*slog.Logger, error) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
		log.SetFlags(log.Ltime)
	case "error":
		lvl = slog.LevelError
		log.SetFlags(log.Ltime)
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// newEventLogger sends observer events to the event file and, at debug
// level, to the operational log.
func newEventLogger(file *cwlog.FileLogger, logger *slog.Logger) cwlog.Logger {
	var loggers []cwlog.Logger
	// Only add the file logger when non-nil to avoid a typed-nil interface.
	if file != nil {
		loggers = append(loggers, file)
	}
	if logger != nil && logger.Enabled(context.Background(), slog.LevelDebug) {
		loggers = append(loggers, cwlog.NewSlogAdapter(logger))
	}
	if len(loggers) == 0 {
		return cwlog.NoopLogger{}
	}
	return cwlog.NewMultiLogger(loggers...)
}

// runScenarios runs a scenario file or every scenario in a directory and
// returns the process exit code.
func runScenarios(path string, logger *slog.Logger, events cwlog.Logger) int {
	scenarios, err := loadScenarios(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	r := scenario.NewRunner(scenario.RunnerConfig{
		Logger:      logger,
		EventLogger: events,
	})

	failed := 0
	for _, sc := range scenarios {
		result := r.Run(context.Background(), sc)
		printResult(os.Stdout, result)
		if !result.Passed {
			failed++
		}
	}

	fmt.Printf("\n%d scenarios, %d passed, %d failed\n", len(scenarios), len(scenarios)-failed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}

func loadScenarios(path string) ([]*scenario.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return scenario.LoadDirectory(path)
	}
	sc, err := scenario.LoadScenario(path)
	if err != nil {
		return nil, err
	}
	return []*scenario.Scenario{sc}, nil
}
