package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/pokermentor/internal/analysis"
	"github.com/lox/pokermentor/internal/bot"
	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/internal/history"
	"github.com/lox/pokermentor/internal/randutil"
	"github.com/lox/pokermentor/internal/statistics"
)

var (
	// ErrSessionExists is returned when creating a second session for a user.
	ErrSessionExists = errors.New("session already exists")
	// ErrHandInProgress is returned when dealing a new hand before the
	// current one is finished.
	ErrHandInProgress = errors.New("hand in progress")
)

// Config describes the table every session is created with.
type Config struct {
	SmallBlind      int
	BigBlind        int
	StartingStack   int
	StackPolicy     game.StackPolicy
	DefaultOpponent string
	// IdleTimeout is how long a session may go without a call before
	// eviction. Zero disables eviction.
	IdleTimeout time.Duration
	// Seed fixes every deal and opponent decision. Zero picks one from the
	// clock.
	Seed int64
}

// DefaultConfig returns the stock 1/2 table with 100 chip stacks.
func DefaultConfig() Config {
	return Config{
		SmallBlind:      game.DefaultSmallBlind,
		BigBlind:        game.DefaultBigBlind,
		StartingStack:   game.DefaultStartingStack,
		StackPolicy:     game.StackPolicyAllIn,
		DefaultOpponent: "fish",
		IdleTimeout:     30 * time.Minute,
	}
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used for timestamps and idle eviction.
func WithClock(clock quartz.Clock) Option {
	return func(m *Manager) { m.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithHistory sets the store completed hands are recorded into.
func WithHistory(store *history.Store) Option {
	return func(m *Manager) { m.history = store }
}

// WithStatistics sets the tracker completed hands are counted into.
func WithStatistics(tracker *statistics.Tracker) Option {
	return func(m *Manager) { m.stats = tracker }
}

// Manager owns every user's session.
type Manager struct {
	cfg     Config
	clock   quartz.Clock
	logger  *log.Logger
	history *history.Store
	stats   *statistics.Tracker

	rngMu sync.Mutex
	rng   *rand.Rand

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager validates cfg and builds a manager. Without options it uses the
// real clock, a discarding logger and fresh history and statistics stores.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	if !bot.Valid(cfg.DefaultOpponent) {
		return nil, fmt.Errorf("default opponent: %w: %q", bot.ErrUnknownKind, cfg.DefaultOpponent)
	}
	if cfg.IdleTimeout < 0 {
		return nil, fmt.Errorf("idle timeout must not be negative, got %s", cfg.IdleTimeout)
	}
	if cfg.StartingStack < cfg.BigBlind {
		return nil, fmt.Errorf("starting stack %d cannot cover the big blind %d", cfg.StartingStack, cfg.BigBlind)
	}
	// Surface bad blinds here rather than on the first Create.
	if _, err := game.New([]game.PlayerID{"a", "b"}, gameOptions(cfg, nil, nil)...); err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clock == nil {
		m.clock = quartz.NewReal()
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.history == nil {
		m.history = history.NewStore(history.DefaultLimit, m.clock)
	}
	if m.stats == nil {
		m.stats = statistics.NewTracker()
	}
	seed := randutil.Resolve(cfg.Seed)
	m.rng = randutil.New(seed)
	m.logger = m.logger.WithPrefix("session")
	m.logger.Debug("Session manager ready", "seed", seed, "idle_timeout", cfg.IdleTimeout)
	return m, nil
}

func gameOptions(cfg Config, rng *rand.Rand, logger *log.Logger) []game.Option {
	opts := []game.Option{
		game.WithBlinds(cfg.SmallBlind, cfg.BigBlind),
		game.WithStartingStack(cfg.StartingStack),
		game.WithStackPolicy(cfg.StackPolicy),
	}
	if rng != nil {
		opts = append(opts, game.WithRNG(rng))
	}
	if logger != nil {
		opts = append(opts, game.WithLogger(logger))
	}
	return opts
}

func (m *Manager) childRNG() *rand.Rand {
	m.rngMu.Lock()
	defer m.rngMu.Unlock()
	return randutil.Child(m.rng)
}

// History returns the store completed hands are recorded into.
func (m *Manager) History() *history.Store { return m.history }

// Statistics returns the tracker completed hands are counted into.
func (m *Manager) Statistics() *statistics.Tracker { return m.stats }

// Create opens a session for user against an opponent of the given kind and
// deals the first hand. An empty kind uses the configured default.
func (m *Manager) Create(user, kind string) (Snapshot, error) {
	if user == "" {
		return Snapshot{}, fmt.Errorf("%w: empty user id", game.ErrInvalidPlayers)
	}
	if kind == "" {
		kind = m.cfg.DefaultOpponent
	}
	logger := m.logger.With("user", user)
	b, err := bot.New(kind, m.childRNG(), logger)
	if err != nil {
		return Snapshot{}, err
	}

	hero := game.PlayerID(user)
	villain := game.PlayerID(kind)
	if villain == hero {
		villain += "-bot"
	}
	st, err := game.New([]game.PlayerID{hero, villain}, gameOptions(m.cfg, m.childRNG(), logger)...)
	if err != nil {
		return Snapshot{}, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return Snapshot{}, fmt.Errorf("generating session id: %w", err)
	}

	now := m.clock.Now()
	s := &Session{
		id:         id,
		user:       user,
		hero:       hero,
		villain:    villain,
		bot:        b,
		state:      st,
		created:    now,
		lastActive: now,
	}
	if err := m.deal(s); err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[user]; ok {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrSessionExists, user)
	}
	m.sessions[user] = s
	logger.Info("Session started", "opponent", kind, "id", id)
	return s.snapshot(), nil
}

func (m *Manager) lookup(user string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[user]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: no session for %q", game.ErrNotFound, user)
	}
	return s, nil
}

// acquire locks the user's session. The caller must unlock it.
func (m *Manager) acquire(user string) (*Session, error) {
	s, err := m.lookup(user)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: session for %q has ended", game.ErrNotFound, user)
	}
	s.lastActive = m.clock.Now()
	return s, nil
}

// State returns a snapshot of the user's session.
func (m *Manager) State(user string) (Snapshot, error) {
	s, err := m.acquire(user)
	if err != nil {
		return Snapshot{}, err
	}
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// ProcessAction plays one turn for the user: their action, the opponent's
// reply if the hand is still live, then the next street or the showdown.
// A completed hand is recorded and reviewed.
func (m *Manager) ProcessAction(user string, action game.Action, amount int) (TurnResult, error) {
	s, err := m.acquire(user)
	if err != nil {
		return TurnResult{}, err
	}
	defer s.mu.Unlock()

	if !s.inProgress() {
		return TurnResult{}, fmt.Errorf("%w: deal the next hand first", game.ErrHandComplete)
	}

	before := len(s.state.Community())
	if err := s.state.ApplyAction(s.hero, action, amount); err != nil {
		return TurnResult{}, err
	}
	actions := s.state.Actions()
	tr := TurnResult{Hero: actions[len(actions)-1]}

	if !s.state.IsComplete() {
		rec, err := m.opponentTurn(s)
		if err != nil {
			return TurnResult{}, err
		}
		tr.Opponent = &rec
	}
	if !s.state.IsComplete() {
		if _, err := s.state.Advance(); err != nil {
			return TurnResult{}, err
		}
		if board := s.state.Community(); len(board) > before {
			tr.Dealt = board[before:]
		}
	}

	if res, ok := s.state.Result(); ok {
		tr.Result = res
		if err := m.finish(s, &tr); err != nil {
			return TurnResult{}, err
		}
	}
	tr.Snapshot = s.snapshot()
	return tr, nil
}

// opponentTurn asks the bot for its action. An action the table rejects,
// such as an oversized raise under the reject policy, falls back to the
// cheapest legal continuation.
func (m *Manager) opponentTurn(s *Session) (game.ActionRecord, error) {
	rec, err := s.state.Decide(s.villain, s.bot)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, game.ErrInsufficientChips) {
		return game.ActionRecord{}, err
	}
	m.logger.Warn("Opponent action rejected", "user", s.user, "err", err)

	fallback := game.DeciderFunc(func(v game.View, _ game.PlayerID) (game.Action, int) {
		if v.CanCheck() {
			return game.Check, 0
		}
		return game.Fold, 0
	})
	return s.state.Decide(s.villain, fallback)
}

func (m *Manager) finish(s *Session, tr *TurnResult) error {
	rec, err := m.history.Record(s.user, s.bot.Kind(), s.hero, s.state, s.handStarted)
	if err != nil {
		return fmt.Errorf("recording hand: %w", err)
	}
	m.stats.Record(rec)
	review := analysis.ReviewHand(rec)
	tr.Record = &rec
	tr.Review = &review

	m.logger.Info("Hand complete",
		"user", s.user,
		"hand", rec.Hand,
		"pot", rec.Pot,
		"net", rec.Net,
		"showdown", rec.Showdown,
		"rating", review.Rating)
	return nil
}

// deal starts the next hand: short stacks are rebought, the blinds rotate
// after the first hand, and the blinds are posted.
func (m *Manager) deal(s *Session) error {
	if s.inProgress() {
		return fmt.Errorf("%w: hand %d", ErrHandInProgress, s.state.HandNumber())
	}
	if s.state.Rebuy() {
		m.logger.Debug("Rebuy", "user", s.user)
	}
	if s.state.HandNumber() > 0 {
		if err := s.state.SwapSeats(); err != nil {
			return err
		}
	}
	if err := s.state.StartHand(); err != nil {
		return err
	}
	if err := s.state.PostBlinds(); err != nil {
		return err
	}
	s.handStarted = m.clock.Now()
	return nil
}

// NextHand deals the user's next hand. The current hand must be complete.
func (m *Manager) NextHand(user string) (Snapshot, error) {
	s, err := m.acquire(user)
	if err != nil {
		return Snapshot{}, err
	}
	defer s.mu.Unlock()
	if err := m.deal(s); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), nil
}

// End closes the user's session. Their history and statistics are kept.
func (m *Manager) End(user string) error {
	m.mu.Lock()
	s, ok := m.sessions[user]
	delete(m.sessions, user)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: no session for %q", game.ErrNotFound, user)
	}

	s.mu.Lock()
	s.closed = true
	hands := s.state.HandNumber()
	s.mu.Unlock()
	m.logger.Info("Session ended", "user", user, "hands", hands)
	return nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// EvictIdle closes every session that has been idle for at least the idle
// timeout and returns how many were closed.
func (m *Manager) EvictIdle() int {
	if m.cfg.IdleTimeout <= 0 {
		return 0
	}
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	var evicted int
	for user, s := range m.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastActive)
		if idle >= m.cfg.IdleTimeout {
			s.closed = true
			delete(m.sessions, user)
			evicted++
			m.logger.Info("Evicted idle session", "user", user, "idle", idle)
		}
		s.mu.Unlock()
	}
	return evicted
}

// StartEviction sweeps idle sessions every half idle timeout until ctx is
// done. The returned waiter reports why it stopped.
func (m *Manager) StartEviction(ctx context.Context) quartz.Waiter {
	interval := m.cfg.IdleTimeout / 2
	if interval <= 0 {
		interval = time.Minute
	}
	return m.clock.TickerFunc(ctx, interval, func() error {
		m.EvictIdle()
		return nil
	}, "session", "evict")
}

// Run sweeps idle sessions until ctx is done.
func (m *Manager) Run(ctx context.Context) error {
	return m.StartEviction(ctx).Wait()
}
