// Package session implements the timed whack-a-mole session: countdown,
// scoring with combo bonus, pause-on-feedback, round transitions and the
// learner-state updates made on every answer.
//
// A Session is stepped once per tick by the platform layer. All game logic
// runs on the caller's goroutine; only prompt pronunciation runs in the
// background.
package session

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-moles/internal/core"
	"github.com/vovakirdan/word-moles/internal/learning"
	"github.com/vovakirdan/word-moles/internal/round"
	"github.com/vovakirdan/word-moles/internal/vocab"
)

// Scoring and timing constants.
const (
	BasePoints   = 10 // Points for any correct answer
	ComboStep    = 3  // Every ComboStep combo adds ComboBonus
	ComboBonus   = 5
	WrongPenalty = 5 // Score lost on a wrong answer, floored at 0

	DefaultDuration  = 60   // Session length in seconds
	FeedbackDelayMs  = 3000 // How long the result card stays up
	PronounceDelayMs = 200  // Lets the round render before speaking
)

var (
	// ErrNotActive is returned when answering outside an active round.
	ErrNotActive = errors.New("session: no active round")
	// ErrNoSuchHole is returned when whacking a hole with no mole in it.
	ErrNoSuchHole = errors.New("session: hole is empty")
)

// Mode selects where the term pool comes from.
type Mode int

const (
	// ModePractice draws from one catalog scope and feeds mastery.
	ModePractice Mode = iota
	// ModeChallenge draws from the remediation queue.
	ModeChallenge
)

func (m Mode) String() string {
	if m == ModeChallenge {
		return "challenge"
	}
	return "practice"
}

// State is the session lifecycle state.
type State int

const (
	StateInitializing State = iota
	StateActive
	StateFeedback
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateActive:
		return "active"
	case StateFeedback:
		return "feedback"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason says why a session ended.
type EndReason int

const (
	EndNone      EndReason = iota
	EndTimeUp              // Countdown reached zero
	EndPoolEmpty           // No terms left to ask
	EndAborted             // Closed before finishing
)

func (r EndReason) String() string {
	switch r {
	case EndTimeUp:
		return "time-up"
	case EndPoolEmpty:
		return "pool-empty"
	case EndAborted:
		return "aborted"
	default:
		return "none"
	}
}

// Config selects what a session plays.
type Config struct {
	Mode     Mode
	Scope    string // Practice scope; ignored in challenge mode
	Duration int    // Seconds; DefaultDuration when <= 0
	Runtime  core.RuntimeConfig
}

// Deps are the collaborators a session reads and updates.
type Deps struct {
	Catalog     *vocab.Catalog
	Mastery     *learning.MasteryStore
	Remediation *learning.RemediationQueue
	Pronouncer  Pronouncer  // Optional
	Logger      *log.Logger // Optional
}

// Feedback describes the outcome of one answer.
type Feedback struct {
	Correct bool
	Points  int // Points gained; 0 on a wrong answer
	Chosen  string
	Answer  string
	Entry   vocab.Entry
	Combo   int
	Streak  int  // Remediation streak after the answer (challenge mode)
	Cleared bool // The term left the remediation queue
}

// Snapshot is a read-only view for rendering.
type Snapshot struct {
	State     State
	Mode      Mode
	Scope     string
	Round     round.Round
	Feedback  *Feedback
	Score     int
	Combo     int
	MaxCombo  int
	TimeLeft  int
	Duration  int
	Answered  int
	Correct   int
	Remaining int // Queued terms left (challenge mode)
}

// Session is one timed play-through.
type Session struct {
	cfg    Config
	deps   Deps
	logger *log.Logger

	gen   *round.Generator
	sched *core.Scheduler

	state     State
	endReason EndReason
	pool      []vocab.Entry
	current   round.Round
	feedback  *Feedback
	feedbackT core.TaskID
	speakT    core.TaskID

	score    int
	combo    int
	maxCombo int
	answered int
	correct  int
	cleared  int
	learned  map[string]bool // Terms answered correctly this session

	timeLeft      int // Seconds left on the countdown
	tickAcc       int // Ticks since the last countdown second
	ticksPerSec   int
	feedbackTicks int
	speakTicks    int

	ctx          context.Context
	cancel       context.CancelFunc
	speechCancel context.CancelFunc
	wg           sync.WaitGroup
}

// New builds a session and runs its initialization: the term pool is loaded
// and the first round generated. A session whose pool is empty starts out
// ended with EndPoolEmpty.
func New(cfg Config, deps Deps) *Session {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Mode == ModePractice && deps.Catalog != nil {
		cfg.Scope = deps.Catalog.Resolve(cfg.Scope)
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		cfg:           cfg,
		deps:          deps,
		logger:        logger.With("mode", cfg.Mode.String()),
		gen:           round.NewGenerator(cfg.Runtime.Seed),
		sched:         core.NewScheduler(),
		state:         StateInitializing,
		learned:       make(map[string]bool),
		timeLeft:      cfg.Duration,
		ticksPerSec:   cfg.Runtime.Ticks(1000),
		feedbackTicks: cfg.Runtime.Ticks(FeedbackDelayMs),
		speakTicks:    cfg.Runtime.Ticks(PronounceDelayMs),
		ctx:           ctx,
		cancel:        cancel,
	}

	if cfg.Mode == ModePractice && deps.Catalog != nil {
		s.pool = deps.Catalog.Entries(cfg.Scope)
	}
	s.nextRound()
	return s
}

// Step advances the session by one tick. Due timers fire first, then the
// countdown moves, then input is applied. Input is read against the state
// the player saw during the previous tick: a card closed by its timer this
// tick swallows the frame's whacks.
//
// Only ticks that start and stay Active count toward the countdown, so the
// ticks that open and close a result card are not charged to the player.
// A result card opened on tick t closes on tick t+feedbackTicks.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.state == StateEnded {
		return s.result()
	}
	seen := s.state

	s.sched.Advance()

	if seen == StateActive && s.state == StateActive {
		s.tickAcc++
		if s.tickAcc >= s.ticksPerSec {
			s.tickAcc = 0
			s.timeLeft--
			if s.timeLeft <= 0 {
				s.timeLeft = 0
				s.end(EndTimeUp)
			}
		}
	}
	if s.state != seen {
		return s.result()
	}

	if in.Has(core.ActionReplay) {
		s.Replay()
	}
	switch s.state {
	case StateActive:
		if hole, ok := in.FirstHole(); ok {
			if _, err := s.Select(hole); err != nil {
				s.logger.Debug("whack ignored", "hole", hole, "error", err)
			}
		}
	case StateFeedback:
		if in.Has(core.ActionDismiss) || in.Has(core.ActionConfirm) {
			s.Dismiss()
		}
	}

	return s.result()
}

// Select whacks the mole in hole, says the whacked word and applies scoring.
// A prompt still waiting to be spoken is dropped.
func (s *Session) Select(hole int) (Feedback, error) {
	if s.state != StateActive {
		return Feedback{}, ErrNotActive
	}
	opt, ok := s.current.OptionAt(hole)
	if !ok {
		return Feedback{}, ErrNoSuchHole
	}
	s.sched.Cancel(s.speakT)
	s.speak(opt.Text, !s.current.PromptForeign())

	entry := s.current.Entry
	id := entry.ID()
	fb := Feedback{
		Correct: opt.IsCorrect,
		Chosen:  opt.Text,
		Answer:  s.current.Answer(),
		Entry:   entry,
	}
	s.answered++

	if opt.IsCorrect {
		fb.Points = Points(s.combo)
		s.score += fb.Points
		s.combo++
		s.correct++
		if s.combo > s.maxCombo {
			s.maxCombo = s.combo
		}

		switch s.cfg.Mode {
		case ModePractice:
			s.deps.Mastery.MarkMastered(id, s.cfg.Scope)
			s.learned[id] = true
		case ModeChallenge:
			fb.Streak = s.deps.Remediation.MarkCorrect(id)
			fb.Cleared = fb.Streak >= learning.ClearStreak
			if fb.Cleared {
				s.cleared++
			}
		}
	} else {
		s.score = Penalize(s.score)
		s.combo = 0

		switch s.cfg.Mode {
		case ModePractice:
			s.deps.Mastery.Revoke(id)
			s.deps.Remediation.AddWrong(entry, s.cfg.Scope)
		case ModeChallenge:
			s.deps.Remediation.MarkWrongAgain(id)
		}
	}
	fb.Combo = s.combo

	s.logger.Debug("answer",
		"term", id,
		"correct", fb.Correct,
		"points", fb.Points,
		"score", s.score,
		"combo", s.combo,
	)

	s.feedback = &fb
	s.state = StateFeedback
	s.feedbackT = s.sched.After(s.feedbackTicks, s.nextRound)
	return fb, nil
}

// Dismiss closes the result card early. It reports whether a card was up.
func (s *Session) Dismiss() bool {
	if s.state != StateFeedback {
		return false
	}
	s.sched.Cancel(s.feedbackT)
	s.nextRound()
	return true
}

// Replay pronounces the current prompt again.
func (s *Session) Replay() {
	if s.state != StateActive && s.state != StateFeedback {
		return
	}
	s.speak(s.current.Prompt, s.current.PromptForeign())
}

// Close tears the session down: pending timers are cancelled and any
// in-flight pronunciation is stopped and waited for. Safe to call twice.
func (s *Session) Close() {
	s.sched.CancelAll()
	s.cancel()
	s.wg.Wait()
	if s.state != StateEnded {
		s.state = StateEnded
		s.endReason = EndAborted
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// EndReason returns why the session ended, or EndNone.
func (s *Session) EndReason() EndReason {
	return s.endReason
}

// Snapshot returns the current view of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:    s.state,
		Mode:     s.cfg.Mode,
		Scope:    s.cfg.Scope,
		Round:    s.current,
		Score:    s.score,
		Combo:    s.combo,
		MaxCombo: s.maxCombo,
		TimeLeft: s.timeLeft,
		Duration: s.cfg.Duration,
		Answered: s.answered,
		Correct:  s.correct,
	}
	if s.feedback != nil {
		fb := *s.feedback
		snap.Feedback = &fb
	}
	if s.cfg.Mode == ModeChallenge && s.deps.Remediation != nil {
		snap.Remaining = s.deps.Remediation.Count()
	}
	return snap
}

// nextRound re-derives the pool and starts a new round, or ends the
// session when nothing is left to ask.
func (s *Session) nextRound() {
	s.sched.Cancel(s.speakT)
	s.feedback = nil

	if s.cfg.Mode == ModeChallenge && s.deps.Remediation != nil {
		s.pool = s.deps.Remediation.Entries()
	}
	if len(s.pool) == 0 {
		s.end(EndPoolEmpty)
		return
	}

	r, err := s.gen.Generate(s.pool)
	if err != nil {
		s.logger.Error("failed to generate round", "error", err)
		s.end(EndPoolEmpty)
		return
	}
	s.current = r
	s.state = StateActive

	prompt, foreign := r.Prompt, r.PromptForeign()
	s.speakT = s.sched.After(s.speakTicks, func() {
		s.speak(prompt, foreign)
	})
}

// speak starts a background pronunciation, cancelling the previous one.
func (s *Session) speak(text string, foreign bool) {
	if s.deps.Pronouncer == nil || s.ctx.Err() != nil {
		return
	}
	if s.speechCancel != nil {
		s.speechCancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.speechCancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		if err := s.deps.Pronouncer.Pronounce(ctx, text, foreign); err != nil && ctx.Err() == nil {
			s.logger.Warn("pronunciation failed", "text", text, "error", err)
		}
	}()
}

func (s *Session) end(reason EndReason) {
	if s.state == StateEnded {
		return
	}
	s.state = StateEnded
	s.endReason = reason
	s.sched.CancelAll()
	s.logger.Info("session ended",
		"reason", reason.String(),
		"score", s.score,
		"answered", s.answered,
		"correct", s.correct,
	)
}

func (s *Session) result() core.StepResult {
	return core.StepResult{
		State: core.GameState{
			Score:    s.score,
			TimeLeft: s.timeLeft,
			Combo:    s.combo,
			GameOver: s.state == StateEnded,
			Paused:   s.state == StateFeedback,
		},
	}
}

// Points returns the score for a correct answer given the combo before it.
func Points(combo int) int {
	return BasePoints + (combo/ComboStep)*ComboBonus
}

// Penalize applies the wrong-answer penalty, never going below zero.
func Penalize(score int) int {
	if score < WrongPenalty {
		return 0
	}
	return score - WrongPenalty
}
