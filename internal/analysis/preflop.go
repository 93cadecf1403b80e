package analysis

import (
	"fmt"

	"github.com/lox/pokermentor/poker"
)

// Position is where the player sits relative to the button.
type Position string

const (
	PositionEarly  Position = "early"
	PositionMiddle Position = "middle"
	PositionLate   Position = "late"
	PositionBlinds Position = "blinds"
)

var positionMultipliers = map[Position]float64{
	PositionEarly:  0.8,
	PositionMiddle: 1.0,
	PositionLate:   1.2,
	PositionBlinds: 0.9,
}

// ParsePosition parses a position name.
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if _, ok := positionMultipliers[p]; !ok {
		return "", fmt.Errorf("unknown position %q (want early, middle, late or blinds)", s)
	}
	return p, nil
}

// StrengthCategory buckets an adjusted preflop strength.
type StrengthCategory string

const (
	StrengthPremium  StrengthCategory = "premium"
	StrengthStrong   StrengthCategory = "strong"
	StrengthMedium   StrengthCategory = "medium"
	StrengthMarginal StrengthCategory = "marginal"
	StrengthWeak     StrengthCategory = "weak"
)

func categorize(strength float64) StrengthCategory {
	switch {
	case strength >= 0.85:
		return StrengthPremium
	case strength >= 0.75:
		return StrengthStrong
	case strength >= 0.60:
		return StrengthMedium
	case strength >= 0.45:
		return StrengthMarginal
	}
	return StrengthWeak
}

// PreflopReport is the coaching summary for a starting hand.
type PreflopReport struct {
	Hand            poker.StartingHand
	Position        Position
	BaseStrength    float64
	Strength        float64 // after the position multiplier
	Category        StrengthCategory
	Bucket          poker.HoleCardCategory
	Percentile      float64
	Recommendations []string
}

var pairStrengths = [poker.NumRanks]float64{
	poker.Two: 0.54, poker.Three: 0.58, poker.Four: 0.62, poker.Five: 0.66,
	poker.Six: 0.70, poker.Seven: 0.74, poker.Eight: 0.78, poker.Nine: 0.82,
	poker.Ten: 0.88, poker.Jack: 0.92, poker.Queen: 0.95, poker.King: 0.98,
	poker.Ace: 0.99,
}

// HandStrength scores a starting hand on a 0..1 scale before position.
func HandStrength(h poker.StartingHand) float64 {
	if h.Pair() {
		return pairStrengths[h.High]
	}
	strength := float64(h.High) / 12 * 0.6
	if h.Suited {
		strength += 0.1
	}
	strength += max(0, 0.15-float64(h.Gap())*0.03)
	return min(strength, 1)
}

// AnalyzePreflop scores a starting hand for a position and recommends a line.
func AnalyzePreflop(h poker.StartingHand, pos Position) (PreflopReport, error) {
	mult, ok := positionMultipliers[pos]
	if !ok {
		return PreflopReport{}, fmt.Errorf("unknown position %q", pos)
	}
	base := HandStrength(h)
	adjusted := min(base*mult, 1)

	r := PreflopReport{
		Hand:         h,
		Position:     pos,
		BaseStrength: base,
		Strength:     adjusted,
		Category:     categorize(adjusted),
		Bucket:       poker.Categorize(h),
		Percentile:   Percentile(h),
	}

	switch {
	case adjusted >= 0.8:
		r.Recommendations = append(r.Recommendations, "Strong hand: raise for value.")
	case adjusted >= 0.6:
		r.Recommendations = append(r.Recommendations, "Playable hand: call or raise depending on the action in front.")
		if pos == PositionLate {
			r.Recommendations = append(r.Recommendations, "Late position makes a raise more attractive.")
		}
	case adjusted >= 0.45:
		r.Recommendations = append(r.Recommendations, "Marginal hand: proceed with caution and avoid big pots.")
	default:
		r.Recommendations = append(r.Recommendations, "Weak hand: folding is usually best.")
	}

	if h.Pair() {
		r.Recommendations = append(r.Recommendations, "Pocket pairs can flop a set; consider the implied odds.")
	}
	if h.Suited {
		r.Recommendations = append(r.Recommendations, "Suited cards add flush potential.")
	}
	switch pos {
	case PositionEarly:
		r.Recommendations = append(r.Recommendations, "Early position calls for a tighter range.")
	case PositionLate:
		r.Recommendations = append(r.Recommendations, "Late position lets you play a wider range.")
	}
	return r, nil
}
