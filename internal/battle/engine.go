package battle

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ross1116/pokebattle/internal/pokemon"
	"github.com/ross1116/pokebattle/internal/stats"
)

var (
	// ErrInvalidMove is returned when the move does not belong to the pokemon
	// holding the turn.
	ErrInvalidMove = errors.New("invalid move")
	// ErrBattleOver is returned for any move attempted after a pokemon fainted.
	ErrBattleOver = errors.New("battle already over")
)

// Battle is a single fight between two pokemon. It is not safe for
// concurrent use; the owner applies moves one at a time.
type Battle struct {
	sides     [2]*BattlePokemon
	turn      Side
	status    Status
	turnCount int
	history   []Result
}

// Result describes one resolved move.
type Result struct {
	Attacker          Side
	Defender          Side
	AttackerName      string
	DefenderName      string
	Move              pokemon.Move
	Multiplier        float64
	Effect            pokemon.Effect
	Damage            float64
	DefenderHealth    float64
	DefenderHealthPct int
	AttackerHealthPct int
	Fainted           bool
	Status            Status
	Turn              int
}

// NewBattle pairs two roster pokemon at full health. Side A moves first.
// The roster entries themselves are never modified, so the same entry may
// be used for both sides.
func NewBattle(a, b *pokemon.Pokemon) (*Battle, error) {
	sideA, err := NewBattlePokemon(a)
	if err != nil {
		return nil, fmt.Errorf("side A: %w", err)
	}
	sideB, err := NewBattlePokemon(b)
	if err != nil {
		return nil, fmt.Errorf("side B: %w", err)
	}
	return &Battle{
		sides:  [2]*BattlePokemon{sideA, sideB},
		turn:   SideA,
		status: StatusInProgress,
	}, nil
}

// ApplyMove resolves move for the pokemon holding the turn against its
// opponent. State is left untouched when an error is returned.
func (b *Battle) ApplyMove(move pokemon.Move) (Result, error) {
	if b.status.Terminal() {
		return Result{}, fmt.Errorf("%w: %s", ErrBattleOver, b.status)
	}

	attackerSide := b.turn
	defenderSide := attackerSide.Opponent()
	attacker := b.sides[attackerSide]
	defender := b.sides[defenderSide]

	if !attacker.Base.HasMove(move) {
		return Result{}, fmt.Errorf("%w: %s does not know %s (side %s holds the turn)", ErrInvalidMove, attacker.Name(), move.Name, attackerSide)
	}

	multiplier := pokemon.Effectiveness(move.Element, defender.Base.Element)
	dmg := stats.Damage(move.Power, attacker.Base.Attack, multiplier, defender.Base.Defense)
	fainted := defender.applyDamage(dmg)
	b.advance(defenderSide, fainted)

	result := Result{
		Attacker:          attackerSide,
		Defender:          defenderSide,
		AttackerName:      attacker.Name(),
		DefenderName:      defender.Name(),
		Move:              move,
		Multiplier:        multiplier,
		Effect:            pokemon.Classify(multiplier),
		Damage:            dmg.Bars(),
		DefenderHealth:    defender.Health(),
		DefenderHealthPct: defender.HealthPercent(),
		AttackerHealthPct: attacker.HealthPercent(),
		Fainted:           fainted,
		Status:            b.status,
		Turn:              b.turnCount,
	}
	b.history = append(b.history, result)

	log.Debug().
		Int("turn", result.Turn).
		Str("attacker", result.AttackerName).
		Str("move", move.Name).
		Str("defender", result.DefenderName).
		Float64("multiplier", multiplier).
		Float64("damage", result.Damage).
		Int("defender_hp_pct", result.DefenderHealthPct).
		Msg("Move applied")
	if fainted {
		log.Debug().Str("pokemon", result.DefenderName).Stringer("status", b.status).Msg("Pokemon fainted")
	}

	return result, nil
}

// ApplyMoveIndex applies the turn holder's move at a zero-based index.
func (b *Battle) ApplyMoveIndex(i int) (Result, error) {
	if b.status.Terminal() {
		return Result{}, fmt.Errorf("%w: %s", ErrBattleOver, b.status)
	}
	moves := b.sides[b.turn].Base.Moves
	if i < 0 || i >= len(moves) {
		return Result{}, fmt.Errorf("%w: move %d out of range 1-%d", ErrInvalidMove, i+1, len(moves))
	}
	return b.ApplyMove(moves[i])
}

func (b *Battle) Turn() Side {
	return b.turn
}

func (b *Battle) Status() Status {
	return b.status
}

func (b *Battle) Over() bool {
	return b.status.Terminal()
}

// Side returns the combatant on side s.
func (b *Battle) Side(s Side) *BattlePokemon {
	if !s.valid() {
		return nil
	}
	return b.sides[s]
}

func (b *Battle) Attacker() *BattlePokemon {
	return b.sides[b.turn]
}

func (b *Battle) Defender() *BattlePokemon {
	return b.sides[b.turn.Opponent()]
}

// Winner reports the side still standing once the battle is over.
func (b *Battle) Winner() (Side, bool) {
	switch b.status {
	case StatusAFainted:
		return SideB, true
	case StatusBFainted:
		return SideA, true
	default:
		return 0, false
	}
}

// TurnCount is the number of moves resolved so far.
func (b *Battle) TurnCount() int {
	return b.turnCount
}

func (b *Battle) History() []Result {
	out := make([]Result, len(b.history))
	copy(out, b.history)
	return out
}

func (b *Battle) Summary() [2]PokemonSummary {
	return [2]PokemonSummary{b.sides[SideA].Summary(), b.sides[SideB].Summary()}
}
