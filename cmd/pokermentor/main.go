package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"

	"github.com/lox/pokermentor/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"pokermentor.hcl" env:"POKERMENTOR_CONFIG" help:"HCL config file; a missing file uses the defaults"`
	LogLevel string `env:"POKERMENTOR_LOG_LEVEL" help:"Log level (debug|info|warn|error), overrides the config file"`
	Seed     int64  `env:"POKERMENTOR_SEED" help:"Seed for deterministic deals (0 uses the config file or the clock)"`
	NoColor  bool   `env:"NO_COLOR" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play heads-up against a computer opponent"`
	Simulate SimulateCmd      `cmd:"" help:"Pit two opponent styles against each other"`
	Analyze  AnalyzeCmd       `cmd:"" help:"Coach a starting hand or a hand on a board"`
	Equity   EquityCmd        `cmd:"" help:"Estimate equity against a random hand"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate the best five-card hand"`
	Bots     BotsCmd          `cmd:"" help:"List the computer opponents"`
}

func main() {
	// A .env file is optional.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokermentor"),
		kong.Description("Heads-up Texas Hold'em trainer with hand analysis"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// load reads and validates the config file with flag overrides applied.
func (g *Globals) load() (*config.Config, error) {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Seed != 0 {
		cfg.Seed = g.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the root logger writing to w.
func newLogger(cfg *config.Config, w *os.File) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.Level(),
	})
}

// signalContext is cancelled on interrupt or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
