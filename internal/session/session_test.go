package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ross1116/pokebattle/internal/battle"
	"github.com/ross1116/pokebattle/internal/pokemon"
	"github.com/ross1116/pokebattle/internal/session"
)

type fakeTimer struct {
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

// fakeClock records scheduled callbacks so tests decide when they fire.
type fakeClock struct {
	delays    []time.Duration
	callbacks []func()
	timers    []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) session.Timer {
	timer := &fakeTimer{}
	c.delays = append(c.delays, d)
	c.callbacks = append(c.callbacks, f)
	c.timers = append(c.timers, timer)
	return timer
}

func (c *fakeClock) fireLast(t *testing.T) {
	t.Helper()
	if len(c.callbacks) == 0 {
		t.Fatal("nothing scheduled")
	}
	c.callbacks[len(c.callbacks)-1]()
}

var (
	slash = pokemon.Move{Name: "Slash", Power: 5, Element: pokemon.Normal}
	bite  = pokemon.Move{Name: "Bite", Power: 3, Element: pokemon.Normal}
)

func newSession(t *testing.T, clock *fakeClock, attackA, attackB int) *session.Session {
	t.Helper()
	a := &pokemon.Pokemon{Name: "Raticate", Element: pokemon.Normal, Attack: attackA, Moves: []pokemon.Move{slash}}
	b := &pokemon.Pokemon{Name: "Persian", Element: pokemon.Normal, Attack: attackB, Moves: []pokemon.Move{bite}}
	bt, err := battle.NewBattle(a, b)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	policy := battle.PolicyFunc(func(p *pokemon.Pokemon) pokemon.Move { return p.Moves[0] })
	return session.New(bt, battle.SideA, policy, session.WithClock(clock), session.WithDelay(750*time.Millisecond))
}

func TestPlaySchedulesReply(t *testing.T) {
	clock := &fakeClock{}
	s := newSession(t, clock, 10, 10)

	result, err := s.Play(0)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if result.Damage != 5 {
		t.Fatalf("expected 5 damage, got %v", result.Damage)
	}
	if !s.Pending() || len(clock.callbacks) != 1 || clock.delays[0] != 750*time.Millisecond {
		t.Fatalf("expected one reply scheduled after 750ms, got %v", clock.delays)
	}

	// The human may not move again while the reply is pending.
	if _, err := s.Play(0); !errors.Is(err, session.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	select {
	case <-s.Due():
		t.Fatal("reply signalled before the timer fired")
	default:
	}

	clock.fireLast(t)
	select {
	case <-s.Due():
	default:
		t.Fatal("expected Due to fire")
	}

	reply, err := s.Reply()
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Attacker != battle.SideB || reply.Move != bite {
		t.Fatalf("expected Persian to use Bite, got %+v", reply)
	}
	if s.Pending() || s.Battle().Turn() != battle.SideA {
		t.Fatal("expected the turn back with the human")
	}
	if _, err := s.Reply(); !errors.Is(err, session.ErrNoReplyPending) {
		t.Fatalf("expected ErrNoReplyPending, got %v", err)
	}
}

func TestPlayFinishingMoveSchedulesNothing(t *testing.T) {
	clock := &fakeClock{}
	// 40 attack * 5 power = 20 bars, one hit knocks out.
	s := newSession(t, clock, 40, 1)

	result, err := s.Play(0)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !result.Fainted || s.Battle().Status() != battle.StatusBFainted {
		t.Fatalf("expected knockout, got %+v", result)
	}
	if s.Pending() || len(clock.callbacks) != 0 {
		t.Fatal("expected no reply after a knockout")
	}
	if _, err := s.Play(0); !errors.Is(err, battle.ErrBattleOver) {
		t.Fatalf("expected ErrBattleOver, got %v", err)
	}
}

func TestPlayInvalidIndex(t *testing.T) {
	clock := &fakeClock{}
	s := newSession(t, clock, 10, 10)

	if _, err := s.Play(3); !errors.Is(err, battle.ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if s.Pending() {
		t.Fatal("expected nothing scheduled after a rejected move")
	}
}

func TestCloseCancelsReply(t *testing.T) {
	clock := &fakeClock{}
	s := newSession(t, clock, 10, 10)

	if _, err := s.Play(0); err != nil {
		t.Fatalf("Play: %v", err)
	}
	s.Close()

	if !clock.timers[0].stopped {
		t.Fatal("expected the reply timer to be stopped")
	}
	if s.Pending() {
		t.Fatal("expected no pending reply after Close")
	}
	if _, err := s.Reply(); !errors.Is(err, session.ErrNoReplyPending) {
		t.Fatalf("expected ErrNoReplyPending, got %v", err)
	}
}

func TestStartWhenOpponentMovesFirst(t *testing.T) {
	clock := &fakeClock{}
	a := &pokemon.Pokemon{Name: "Raticate", Element: pokemon.Normal, Attack: 10, Moves: []pokemon.Move{slash}}
	b := &pokemon.Pokemon{Name: "Persian", Element: pokemon.Normal, Attack: 10, Moves: []pokemon.Move{bite}}
	bt, err := battle.NewBattle(a, b)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	policy := battle.PolicyFunc(func(p *pokemon.Pokemon) pokemon.Move { return p.Moves[0] })
	s := session.New(bt, battle.SideB, policy, session.WithClock(clock))

	if _, err := s.Play(0); !errors.Is(err, session.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn before the opponent moved, got %v", err)
	}

	s.Start()
	s.Start()
	if len(clock.callbacks) != 1 {
		t.Fatalf("expected exactly one reply scheduled, got %d", len(clock.callbacks))
	}
	clock.fireLast(t)
	<-s.Due()
	if _, err := s.Reply(); err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if bt.Turn() != battle.SideB {
		t.Fatalf("expected the human (side B) to hold the turn, got %s", bt.Turn())
	}
}

func TestRealClockDelivers(t *testing.T) {
	a := &pokemon.Pokemon{Name: "Raticate", Element: pokemon.Normal, Attack: 10, Moves: []pokemon.Move{slash}}
	b := &pokemon.Pokemon{Name: "Persian", Element: pokemon.Normal, Attack: 10, Moves: []pokemon.Move{bite}}
	bt, err := battle.NewBattle(a, b)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	s := session.New(bt, battle.SideA, battle.PolicyFunc(func(p *pokemon.Pokemon) pokemon.Move { return p.Moves[0] }), session.WithDelay(time.Millisecond))
	defer s.Close()

	if _, err := s.Play(0); err != nil {
		t.Fatalf("Play: %v", err)
	}
	select {
	case <-s.Due():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the reply timer")
	}
	if _, err := s.Reply(); err != nil {
		t.Fatalf("Reply: %v", err)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	first := newSession(t, &fakeClock{}, 10, 10)
	second := newSession(t, &fakeClock{}, 10, 10)
	if first.ID() == second.ID() {
		t.Fatalf("expected distinct battle ids, got %s twice", first.ID())
	}
}
