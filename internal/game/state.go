package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/pokermentor/poker"
)

// PlayerID identifies a seated player.
type PlayerID string

// State is a heads-up hand in progress. It is not safe for concurrent use;
// callers that share a State must serialize access.
type State struct {
	cfg    config
	logger *log.Logger

	players     [2]PlayerID
	stacks      [2]int
	hole        [2][2]poker.Card
	committed   [2]int // this street
	contributed [2]int // this hand
	folded      [2]bool

	deck       *poker.Deck
	community  []poker.Card
	pot        int
	currentBet int
	phase      Phase
	handNum    int
	actions    []ActionRecord
	result     *Result
}

// New seats exactly two distinct players. Seat 0 posts the small blind and
// seat 1 the big blind. No cards are dealt until StartHand.
func New(players []PlayerID, opts ...Option) (*State, error) {
	if len(players) != 2 {
		return nil, fmt.Errorf("%w: need exactly 2 players, got %d", ErrInvalidPlayers, len(players))
	}
	if players[0] == "" || players[1] == "" {
		return nil, fmt.Errorf("%w: empty player id", ErrInvalidPlayers)
	}
	if players[0] == players[1] {
		return nil, fmt.Errorf("%w: duplicate player %q", ErrInvalidPlayers, players[0])
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &State{
		cfg:     cfg,
		logger:  cfg.logger,
		players: [2]PlayerID{players[0], players[1]},
		phase:   PhaseCreated,
	}
	if cfg.stacks != nil {
		s.stacks = [2]int{cfg.stacks[0], cfg.stacks[1]}
	} else {
		s.stacks = [2]int{cfg.startingStack, cfg.startingStack}
	}
	return s, nil
}

func (s *State) seat(p PlayerID) (int, error) {
	for i, id := range s.players {
		if id == p {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNotFound, p)
}

// StartHand begins a new hand from any phase: a fresh deck, an empty board
// and pot, and two hole cards per player. Stacks carry over.
func (s *State) StartHand() error {
	deck := s.newDeck()
	cards, err := deck.Deal(4)
	if err != nil {
		return fmt.Errorf("dealing hole cards: %w", err)
	}

	s.deck = deck
	s.hole[0] = [2]poker.Card{cards[0], cards[1]}
	s.hole[1] = [2]poker.Card{cards[2], cards[3]}
	s.committed = [2]int{}
	s.contributed = [2]int{}
	s.folded = [2]bool{}
	s.community = s.community[:0]
	s.pot = 0
	s.currentBet = 0
	s.actions = nil
	s.result = nil
	s.phase = PhaseHoleCardsDealt
	s.handNum++

	s.logger.Debug("Started hand", "hand", s.handNum,
		string(s.players[0]), poker.FormatCards(s.hole[0][:]),
		string(s.players[1]), poker.FormatCards(s.hole[1][:]))
	return nil
}

func (s *State) newDeck() *poker.Deck {
	if s.cfg.newDeck != nil {
		return s.cfg.newDeck()
	}
	return poker.NewDeck(s.cfg.rng)
}

// PostBlinds commits the small blind from seat 0 and the big blind from
// seat 1. The current bet becomes the big blind.
func (s *State) PostBlinds() error {
	if s.phase != PhaseHoleCardsDealt {
		return fmt.Errorf("%w: cannot post blinds in phase %s", ErrInvalidStreetTransition, s.phase)
	}
	if s.cfg.policy == StackPolicyReject {
		if s.stacks[0] < s.cfg.smallBlind || s.stacks[1] < s.cfg.bigBlind {
			return fmt.Errorf("%w: cannot cover blinds %d/%d", ErrInsufficientChips, s.cfg.smallBlind, s.cfg.bigBlind)
		}
	}
	// Checked above, so neither debit can fail.
	_, _ = s.debit(0, s.cfg.smallBlind)
	_, _ = s.debit(1, s.cfg.bigBlind)
	s.currentBet = s.cfg.bigBlind
	s.phase = PhaseBlindsPosted

	s.logger.Debug("Posted blinds", "small", s.committed[0], "big", s.committed[1], "pot", s.pot)
	return nil
}

// debit moves chips from a stack into the pot, applying the stack policy.
// It returns the amount actually paid.
func (s *State) debit(seat, amount int) (int, error) {
	if amount <= 0 {
		return 0, nil
	}
	if amount > s.stacks[seat] {
		if s.cfg.policy == StackPolicyReject {
			return 0, fmt.Errorf("%w: %s owes %d with %d behind", ErrInsufficientChips, s.players[seat], amount, s.stacks[seat])
		}
		amount = s.stacks[seat]
	}
	s.stacks[seat] -= amount
	s.committed[seat] += amount
	s.contributed[seat] += amount
	s.pot += amount
	return amount, nil
}

// DealFlop burns one card and deals three.
func (s *State) DealFlop() error {
	if s.phase != PhaseBlindsPosted || len(s.community) != 0 {
		return fmt.Errorf("%w: flop requires posted blinds and an empty board (phase %s, board %d)",
			ErrInvalidStreetTransition, s.phase, len(s.community))
	}
	return s.dealStreet(3, PhaseFlop)
}

// DealTurn burns one card and deals one. The flop must be out.
func (s *State) DealTurn() error {
	if s.phase != PhaseFlop || len(s.community) != 3 {
		return fmt.Errorf("%w: turn requires the flop (phase %s, board %d)",
			ErrInvalidStreetTransition, s.phase, len(s.community))
	}
	return s.dealStreet(1, PhaseTurn)
}

// DealRiver burns one card and deals one. The turn must be out.
func (s *State) DealRiver() error {
	if s.phase != PhaseTurn || len(s.community) != 4 {
		return fmt.Errorf("%w: river requires the turn (phase %s, board %d)",
			ErrInvalidStreetTransition, s.phase, len(s.community))
	}
	return s.dealStreet(1, PhaseRiver)
}

// dealStreet takes the burn and the street's cards in one Deal so a short
// deck leaves the state untouched.
func (s *State) dealStreet(n int, next Phase) error {
	cards, err := s.deck.Deal(n + 1)
	if err != nil {
		return fmt.Errorf("dealing %s: %w", next.street(), err)
	}
	s.community = append(s.community, cards[1:]...)
	s.committed = [2]int{}
	s.currentBet = 0
	s.phase = next

	s.logger.Debug("Dealt street", "street", next.street(), "board", poker.FormatCards(s.community))
	return nil
}

// Advance moves the hand forward by one step based on the board: it deals
// the flop, turn or river, or runs the showdown once five cards are out. The
// result is nil until the showdown.
func (s *State) Advance() (*Result, error) {
	if s.result != nil {
		return s.result, nil
	}
	switch len(s.community) {
	case 0:
		return nil, s.DealFlop()
	case 3:
		return nil, s.DealTurn()
	case 4:
		return nil, s.DealRiver()
	}
	return s.Showdown()
}

// ApplyAction applies one player action. Call matches the current bet;
// Raise treats amount as the new bet level for the street and pays the
// difference; Fold ends the hand. Bet sizing is not validated.
func (s *State) ApplyAction(player PlayerID, action Action, amount int) error {
	seat, err := s.seat(player)
	if err != nil {
		return err
	}
	if s.phase == PhaseComplete {
		return fmt.Errorf("%w: %s cannot %s", ErrHandComplete, player, action)
	}
	if s.phase < PhaseBlindsPosted {
		return fmt.Errorf("%w: blinds not posted", ErrInvalidAction)
	}

	rec := ActionRecord{Player: player, Street: s.phase.street(), Action: action}
	switch action {
	case Fold:
		s.folded[seat] = true
		s.actions = append(s.actions, rec)
		s.logger.Debug("Player folded", "player", player, "street", rec.Street)
		s.awardUncontested(1 - seat)
		return nil
	case Check:
	case Call:
		paid, err := s.debit(seat, s.currentBet-s.committed[seat])
		if err != nil {
			return err
		}
		rec.Paid = paid
	case Raise:
		paid, err := s.debit(seat, amount-s.committed[seat])
		if err != nil {
			return err
		}
		rec.Amount = amount
		rec.Paid = paid
		s.currentBet = max(s.currentBet, s.committed[seat])
	default:
		return fmt.Errorf("%w: %d", ErrInvalidAction, action)
	}
	s.actions = append(s.actions, rec)
	s.logger.Debug("Applied action", "player", player, "action", action, "paid", rec.Paid, "pot", s.pot)
	return nil
}

// Rebuy resets any stack that cannot cover the big blind to the starting
// stack. It only applies between hands.
func (s *State) Rebuy() bool {
	if s.phase != PhaseCreated && s.phase != PhaseComplete {
		return false
	}
	var topped bool
	for i := range s.stacks {
		if s.stacks[i] < s.cfg.bigBlind {
			s.stacks[i] = s.cfg.startingStack
			topped = true
		}
	}
	return topped
}

// SwapSeats exchanges the two players' seats, and their stacks with them, so
// the blinds alternate. It only applies between hands.
func (s *State) SwapSeats() error {
	if s.phase != PhaseCreated && s.phase != PhaseComplete {
		return fmt.Errorf("%w: hand in progress", ErrInvalidStreetTransition)
	}
	s.players[0], s.players[1] = s.players[1], s.players[0]
	s.stacks[0], s.stacks[1] = s.stacks[1], s.stacks[0]
	return nil
}

// Players returns the seated players in seat order.
func (s *State) Players() [2]PlayerID { return s.players }

// Opponent returns the other seated player.
func (s *State) Opponent(p PlayerID) (PlayerID, error) {
	seat, err := s.seat(p)
	if err != nil {
		return "", err
	}
	return s.players[1-seat], nil
}

// Stack returns a player's remaining chips.
func (s *State) Stack(p PlayerID) (int, error) {
	seat, err := s.seat(p)
	if err != nil {
		return 0, err
	}
	return s.stacks[seat], nil
}

// HoleCards returns a player's hole cards.
func (s *State) HoleCards(p PlayerID) ([2]poker.Card, error) {
	seat, err := s.seat(p)
	if err != nil {
		return [2]poker.Card{}, err
	}
	return s.hole[seat], nil
}

// Contributed returns what a player has put in the pot this hand.
func (s *State) Contributed(p PlayerID) (int, error) {
	seat, err := s.seat(p)
	if err != nil {
		return 0, err
	}
	return s.contributed[seat], nil
}

// Community returns a copy of the board.
func (s *State) Community() []poker.Card {
	return append([]poker.Card(nil), s.community...)
}

// Pot returns the chips in the pot. It is zero once the pot is awarded.
func (s *State) Pot() int { return s.pot }

// CurrentBet returns the bet level for the current street.
func (s *State) CurrentBet() int { return s.currentBet }

// Phase returns the lifecycle phase.
func (s *State) Phase() Phase { return s.phase }

// Street returns the current betting round.
func (s *State) Street() Street { return s.phase.street() }

// HandNumber counts hands started on this State.
func (s *State) HandNumber() int { return s.handNum }

// Blinds returns the small and big blind.
func (s *State) Blinds() (int, int) { return s.cfg.smallBlind, s.cfg.bigBlind }

// StartingStack returns the configured starting stack.
func (s *State) StartingStack() int { return s.cfg.startingStack }

// Actions returns the actions applied this hand.
func (s *State) Actions() []ActionRecord {
	return append([]ActionRecord(nil), s.actions...)
}

// IsComplete reports whether the hand has been decided.
func (s *State) IsComplete() bool { return s.phase == PhaseComplete }

// Result returns the outcome once the hand is complete.
func (s *State) Result() (*Result, bool) {
	return s.result, s.result != nil
}
