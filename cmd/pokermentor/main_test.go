package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"

	"github.com/lox/pokermentor/internal/bot"
	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/internal/history"
	"github.com/lox/pokermentor/internal/randutil"
	"github.com/lox/pokermentor/poker"
)

func TestCLIParses(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
	}{
		{"default is play", nil, "play"},
		{"play plain", []string{"play", "--plain", "-o", "nit"}, "play"},
		{"play export", []string{"play", "--plain", "--export", "hands.phhs"}, "play"},
		{"simulate", []string{"simulate", "--hands", "10", "--hero", "lag"}, "simulate"},
		{"simulate stats", []string{"simulate", "--write-stats", "stats.json"}, "simulate"},
		{"analyze", []string{"analyze", "AKs", "-p", "late"}, "analyze <hand>"},
		{"equity", []string{"equity", "AsKd", "-b", "Td7s8h"}, "equity <hole>"},
		{"eval", []string{"eval", "AsAhKdKcQd"}, "eval <cards>"},
		{"bots", []string{"bots"}, "bots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI
			parser, err := kong.New(&cli, kong.Vars{"version": "test"})
			if err != nil {
				t.Fatalf("kong.New: %v", err)
			}
			ctx, err := parser.Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%v): %v", tt.args, err)
			}
			if got := ctx.Command(); got != tt.command {
				t.Errorf("command = %q, want %q", got, tt.command)
			}
		})
	}
}

func TestPlayValidateRejectsUnknownOpponent(t *testing.T) {
	cmd := PlayCmd{Opponent: "shark"}
	if err := cmd.Validate(); !errors.Is(err, bot.ErrUnknownKind) {
		t.Errorf("Validate() = %v, want ErrUnknownKind", err)
	}
	cmd.Opponent = ""
	if err := cmd.Validate(); err != nil {
		t.Errorf("Validate() with default opponent = %v", err)
	}
}

func TestPlayExport(t *testing.T) {
	store := history.NewStore(10, nil)
	for seed := int64(1); seed <= 2; seed++ {
		s, err := game.New([]game.PlayerID{"you", "fish"}, game.WithRNG(randutil.New(seed)))
		if err != nil {
			t.Fatal(err)
		}
		fold := game.DeciderFunc(func(game.View, game.PlayerID) (game.Action, int) { return game.Fold, 0 })
		if _, err := game.PlayHand(s, map[game.PlayerID]game.Decider{"you": fold, "fish": fold}); err != nil {
			t.Fatal(err)
		}
		if _, err := store.Record("you", "fish", "you", s, time.Now()); err != nil {
			t.Fatal(err)
		}
	}

	for _, name := range []string{"hands.phhs", "hands.jsonl"} {
		cmd := PlayCmd{Name: "you", Export: filepath.Join(t.TempDir(), name)}
		n, err := cmd.export(store)
		if err != nil {
			t.Fatalf("export %s: %v", name, err)
		}
		if n != 2 {
			t.Errorf("export %s wrote %d hands, want 2", name, n)
		}
		data, err := os.ReadFile(cmd.Export)
		if err != nil {
			t.Fatal(err)
		}
		if name == "hands.phhs" && !strings.HasPrefix(string(data), "[1]\n") {
			t.Errorf("expected a .phhs file, got:\n%s", data)
		}
		if name == "hands.jsonl" && strings.Count(string(data), "\n") != 2 {
			t.Errorf("expected two JSON lines, got:\n%s", data)
		}
	}
}

func TestParseHole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		hasError bool
	}{
		{"concrete cards", "AsKd", false},
		{"with spaces", "As Kd", false},
		{"too many cards", "AsKdQh", true},
		{"too few cards", "As", true},
		{"duplicate", "AsAs", true},
		{"bad card", "AsXy", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseHole(tt.input)
			if (err != nil) != tt.hasError {
				t.Errorf("parseHole(%q) error = %v, want error %v", tt.input, err, tt.hasError)
			}
		})
	}
}

func TestParseStartingHand(t *testing.T) {
	for input, want := range map[string]string{"AKs": "AKs", "99": "99", "AsKd": "AKo", "7h2h": "72s"} {
		h, err := parseStartingHand(input)
		if err != nil {
			t.Fatalf("parseStartingHand(%q): %v", input, err)
		}
		if h.String() != want {
			t.Errorf("parseStartingHand(%q) = %s, want %s", input, h, want)
		}
	}
	if _, err := parseStartingHand("AK"); err == nil {
		t.Error("expected an error for AK")
	}
}

func TestAnalyzePreflop(t *testing.T) {
	var out strings.Builder
	cmd := AnalyzeCmd{Hand: "AKs", Position: "late"}
	if err := cmd.run(context.Background(), &out, 100, 1); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"AKs from late position", "Strength:", "Advice:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestAnalyzePostflop(t *testing.T) {
	var out strings.Builder
	cmd := AnalyzeCmd{Hand: "AsAh", Board: "KdKcQd", Position: "middle"}
	if err := cmd.run(context.Background(), &out, 500, 1); err != nil {
		t.Fatalf("run: %v", err)
	}
	rank, err := poker.Evaluate(poker.MustParseCards("AsAhKdKcQd"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Postflop analysis", rank.String(), "over 500 samples"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestEquity(t *testing.T) {
	var out strings.Builder
	cmd := EquityCmd{Hole: "AsAd"}
	if err := cmd.run(context.Background(), &out, 1000, 1); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"vs a random hand", "Equity:", "Samples:", "1000"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	bad := EquityCmd{Hole: "AsAd", Board: "AsKdQh"}
	if err := bad.run(context.Background(), &out, 100, 1); err == nil {
		t.Error("expected an error for a board repeating a hole card")
	}
}

func TestEval(t *testing.T) {
	var out strings.Builder
	cmd := EvalCmd{Cards: "AsAhKdKcQd2h3s", Compare: "KsKhKd2c2d"}
	if err := cmd.run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}
	rank, err := poker.Evaluate(poker.MustParseCards("AsAhKdKcQd2h3s"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{rank.String(), "Best five:", "second hand wins"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	bad := EvalCmd{Cards: "AsKd"}
	if err := bad.run(&out); !errors.Is(err, poker.ErrInvalidHand) {
		t.Errorf("run with two cards = %v, want ErrInvalidHand", err)
	}
}

func TestBots(t *testing.T) {
	var out strings.Builder
	if err := (&BotsCmd{}).run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, kind := range bot.Kinds() {
		if !strings.Contains(out.String(), kind) {
			t.Errorf("output missing %q:\n%s", kind, out.String())
		}
	}
}
