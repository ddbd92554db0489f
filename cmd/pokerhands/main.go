package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerhands/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"pokerhands.hcl" help:"Path to HCL configuration file"`
	EnvFile  string           `name:"env-file" default:".env" help:"Dotenv file loaded before reading POKERHANDS_* variables"`
	LogLevel string           `short:"l" name:"log-level" help:"Log level (overrides config)"`
	Seed     int64            `help:"Random seed for reproducible shuffles (overrides config)"`
	NoColor  bool             `name:"no-color" help:"Disable styled output"`

	Rank    RankCmd    `cmd:"" help:"Classify exactly five cards"`
	Best    BestCmd    `cmd:"" help:"Find the best five-card hand among five or more cards"`
	Compare CompareCmd `cmd:"" help:"Compare the best hands of two card sets"`
	Deal    DealCmd    `cmd:"" help:"Deal cards from a freshly shuffled deck"`
	Odds    OddsCmd    `cmd:"" help:"Estimate showdown equity by Monte Carlo simulation"`
}

// Runtime carries what every command needs.
type Runtime struct {
	Config *config.Config
	Logger *log.Logger
	Clock  quartz.Clock
	Out    io.Writer
	View   *View
}

func main() {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhands"),
		kong.Description("Five-card poker hand evaluation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(sigCtx, (*context.Context)(nil)),
	)

	rt, err := cli.runtime(os.Stdout, os.Stderr, quartz.NewReal())
	ctx.FatalIfErrorf(err)

	err = ctx.Run(rt)
	ctx.FatalIfErrorf(err)
}

// runtime loads configuration, applies flag overrides and builds the logger
// and view.
func (c *CLI) runtime(out, logOut io.Writer, clock quartz.Clock) (*Runtime, error) {
	cfg, err := config.Load(c.Config, c.EnvFile)
	if err != nil {
		return nil, err
	}

	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.NoColor {
		off := false
		cfg.Color = &off
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(logOut, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: cfg.Level() == log.DebugLevel,
	})
	logger.Debug("Configuration loaded", "file", c.Config, "seed", cfg.Seed, "color", cfg.ColorEnabled())

	return &Runtime{
		Config: cfg,
		Logger: logger,
		Clock:  clock,
		Out:    out,
		View:   NewView(out, cfg.ColorEnabled()),
	}, nil
}
