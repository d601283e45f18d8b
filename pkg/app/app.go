package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"vending/internal/console"
	"vending/pkg/catalog"
	"vending/pkg/sales"
	"vending/pkg/session"
	"vending/pkg/suggest"
	"vending/pkg/version"
)

// LogLevelEnv overrides the default log level when --log-level is not given.
const LogLevelEnv = "VENDING_LOG_LEVEL"

// Config captures CLI flags so the machine can run with a single Run call.
type Config struct {
	showVersion bool
	logLevel    string
	envFile     string
}

// Run parses args, builds the machine around in and out and serves one customer session.
// When logger is nil one is built from the configured level.
func Run(ctx context.Context, args []string, in io.Reader, out io.Writer, logger *zap.Logger) error {
	cfg, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if cfg.showVersion {
		fmt.Fprintf(out, "vending version %s\n", version.Version())
		return nil
	}

	if logger == nil {
		logger, err = NewLogger(cfg.logLevel)
		if err != nil {
			return err
		}
		// Sync on a terminal's stderr commonly fails with EINVAL; nothing is buffered to lose.
		defer func() { _ = logger.Sync() }()
	}

	machine, err := session.New(session.Config{
		Console:     console.New(in, out),
		Catalog:     catalog.Default(),
		Suggestions: suggest.Default(),
		Ledger:      sales.NewLedger(),
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("unable to build session: %w", err)
	}

	logger.Info("vending machine started", zap.String("version", version.Version()))
	if err := machine.Run(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			logger.Warn("input closed, ending session", zap.Stringer("state", machine.State()))
			return nil
		}
		return fmt.Errorf("session stopped unexpectedly: %w", err)
	}
	return nil
}

// parseFlags uses a dedicated FlagSet so Run can be called from multiple entry points.
// The optional env file is loaded before the log level is resolved.
func parseFlags(args []string) (Config, error) {
	set := pflag.NewFlagSet("vending", pflag.ContinueOnError)
	set.SetOutput(io.Discard)

	var cfg Config
	set.BoolVar(&cfg.showVersion, "version", false, "Show the application version")
	set.StringVar(&cfg.logLevel, "log-level", "warn", "Log level for the stderr log: debug, info, warn or error")
	set.StringVar(&cfg.envFile, "env-file", ".env", "Optional dotenv file read before resolving settings")

	if err := set.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.envFile); err != nil {
		return Config{}, err
	}
	if !set.Changed("log-level") {
		if level := os.Getenv(LogLevelEnv); level != "" {
			cfg.logLevel = level
		}
	}
	return cfg, nil
}

// loadEnvFile ignores a missing file; existing variables win over the file.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("unable to load env file %s: %w", path, err)
	}
	return nil
}
