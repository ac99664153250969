// Package session drives one battle between a human and a computer opponent.
//
// The battle engine is synchronous. The only asynchronous piece is the
// pause before the opponent replies: a timer that signals Due and never
// touches the battle. The goroutine reading Due calls Reply, so a Session and
// its Battle stay on a single goroutine.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ross1116/pokebattle/internal/battle"
)

var (
	ErrNotYourTurn    = errors.New("not your turn")
	ErrNoReplyPending = errors.New("no opponent reply pending")
)

// Timer is the handle of a scheduled callback.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Option func(*Session)

// WithDelay sets the pause before the opponent replies.
func WithDelay(d time.Duration) Option {
	return func(s *Session) {
		s.delay = d
	}
}

func WithClock(c Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

type Session struct {
	id     uuid.UUID
	logger zerolog.Logger
	battle *battle.Battle
	human  battle.Side
	policy battle.MovePolicy
	delay  time.Duration
	clock  Clock

	reply   Timer
	pending bool
	due     chan struct{}
}

func New(b *battle.Battle, human battle.Side, policy battle.MovePolicy, opts ...Option) *Session {
	id := uuid.New()
	s := &Session{
		id:     id,
		logger: log.With().Str("battle_id", id.String()).Logger(),
		battle: b,
		human:  human,
		policy: policy,
		delay:  time.Second,
		clock:  realClock{},
		due:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID identifies the battle in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Battle() *battle.Battle {
	return s.battle
}

func (s *Session) Human() battle.Side {
	return s.human
}

// Start schedules the opponent's reply when the opponent holds the first turn.
func (s *Session) Start() {
	if !s.battle.Over() && s.battle.Turn() != s.human && !s.pending {
		s.schedule()
	}
}

// Pending reports whether the opponent's reply is scheduled but not applied.
func (s *Session) Pending() bool {
	return s.pending
}

// Due fires once the scheduled reply may be applied.
func (s *Session) Due() <-chan struct{} {
	return s.due
}

// Play applies the human's move at a zero-based index and schedules the
// opponent's reply if the battle goes on.
func (s *Session) Play(index int) (battle.Result, error) {
	if s.battle.Over() {
		return battle.Result{}, fmt.Errorf("play: %w", battle.ErrBattleOver)
	}
	if s.pending || s.battle.Turn() != s.human {
		return battle.Result{}, fmt.Errorf("play: %w", ErrNotYourTurn)
	}

	result, err := s.battle.ApplyMoveIndex(index)
	if err != nil {
		return battle.Result{}, fmt.Errorf("play: %w", err)
	}
	if result.Fainted {
		s.logger.Info().Stringer("status", result.Status).Int("turns", result.Turn).Msg("Battle over")
	} else {
		s.schedule()
	}
	return result, nil
}

// Reply applies the opponent's move. It is meant to be called after Due fires.
func (s *Session) Reply() (battle.Result, error) {
	if !s.pending {
		return battle.Result{}, fmt.Errorf("reply: %w", ErrNoReplyPending)
	}
	s.pending = false
	s.reply = nil

	opponent := s.battle.Side(s.human.Opponent())
	move := s.policy.ChooseMove(opponent.Base)
	result, err := s.battle.ApplyMove(move)
	if err != nil {
		return battle.Result{}, fmt.Errorf("reply: %w", err)
	}
	s.logger.Debug().Str("pokemon", opponent.Name()).Str("move", move.Name).Msg("Opponent replied")
	if result.Fainted {
		s.logger.Info().Stringer("status", result.Status).Int("turns", result.Turn).Msg("Battle over")
	}
	return result, nil
}

// Close cancels a scheduled reply. The battle itself is left as is.
func (s *Session) Close() {
	if s.reply != nil {
		s.reply.Stop()
		s.reply = nil
	}
	s.pending = false
	select {
	case <-s.due:
	default:
	}
}

func (s *Session) schedule() {
	s.pending = true
	due := s.due
	s.reply = s.clock.AfterFunc(s.delay, func() {
		select {
		case due <- struct{}{}:
		default:
		}
	})
	s.logger.Debug().Dur("delay", s.delay).Int("turn", s.battle.TurnCount()).Msg("Opponent reply scheduled")
}
