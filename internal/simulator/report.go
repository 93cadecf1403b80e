package simulator

import (
	"time"

	"github.com/lox/pokermentor/internal/fileutil"
	"github.com/lox/pokermentor/internal/statistics"
)

// Report is the machine-readable summary written by WriteReport.
type Report struct {
	Hero      string    `json:"hero"`
	Opponent  string    `json:"opponent"`
	Seed      int64     `json:"seed"`
	Hands     int       `json:"hands"`
	Timestamp time.Time `json:"timestamp"`

	BBPer100 float64    `json:"bb_per_100"`
	Mean     float64    `json:"mean_bb"`
	Median   float64    `json:"median_bb"`
	StdDev   float64    `json:"std_dev_bb"`
	CI95     [2]float64 `json:"ci_95"`

	Wins          int     `json:"wins"`
	ShowdownWins  int     `json:"showdown_wins"`
	ShowdownBB    float64 `json:"showdown_bb"`
	NonShowdownBB float64 `json:"non_showdown_bb"`

	VPIP       float64 `json:"vpip"`
	PFR        float64 `json:"pfr"`
	Aggression float64 `json:"aggression"`
	BestHand   string  `json:"best_hand,omitempty"`

	SmallBlindBB float64 `json:"small_blind_bb"`
	BigBlindBB   float64 `json:"big_blind_bb"`
}

// NewReport summarises stats for hero against opponent.
func NewReport(stats *statistics.Statistics, hero, opponent string, seed int64, now time.Time) Report {
	low, high := stats.ConfidenceInterval95()
	r := Report{
		Hero:          hero,
		Opponent:      opponent,
		Seed:          seed,
		Hands:         stats.Hands,
		Timestamp:     now,
		BBPer100:      stats.BBPer100(),
		Mean:          stats.Mean(),
		Median:        stats.Median(),
		StdDev:        stats.StdDev(),
		CI95:          [2]float64{low, high},
		Wins:          stats.Wins,
		ShowdownWins:  stats.ShowdownWins,
		ShowdownBB:    stats.ShowdownBB,
		NonShowdownBB: stats.NonShowdownBB,
		VPIP:          stats.VPIP(),
		PFR:           stats.PFR(),
		Aggression:    stats.AggressionFactor(),
		SmallBlindBB:  stats.PositionMean(0),
		BigBlindBB:    stats.PositionMean(1),
	}
	if stats.BestHand != nil {
		r.BestHand = stats.BestHand.String()
	}
	return r
}

// WriteReport atomically writes the report as JSON.
func WriteReport(filename string, r Report) error {
	return fileutil.WriteJSON(filename, r)
}
