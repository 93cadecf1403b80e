package game

// Street is a betting round.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	}
	return "unknown"
}

// Phase tracks where a hand is in its lifecycle. Every transition is
// triggered by the caller.
type Phase uint8

const (
	PhaseCreated Phase = iota
	PhaseHoleCardsDealt
	PhaseBlindsPosted
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhaseHoleCardsDealt:
		return "hole-cards-dealt"
	case PhaseBlindsPosted:
		return "blinds-posted"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// street maps a phase to the betting round it belongs to.
func (p Phase) street() Street {
	switch p {
	case PhaseFlop:
		return Flop
	case PhaseTurn:
		return Turn
	case PhaseRiver:
		return River
	case PhaseComplete:
		return Showdown
	}
	return Preflop
}
