package battle

import (
	"fmt"
	"math/rand/v2"

	"github.com/ross1116/pokebattle/internal/pokemon"
)

// MovePolicy picks the move for a computer-controlled pokemon.
type MovePolicy interface {
	ChooseMove(p *pokemon.Pokemon) pokemon.Move
}

// PolicyFunc adapts a function to MovePolicy.
type PolicyFunc func(p *pokemon.Pokemon) pokemon.Move

func (f PolicyFunc) ChooseMove(p *pokemon.Pokemon) pokemon.Move {
	return f(p)
}

// RandomPolicy chooses uniformly among the pokemon's moves.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (rp *RandomPolicy) ChooseMove(p *pokemon.Pokemon) pokemon.Move {
	return p.Moves[rp.rng.IntN(len(p.Moves))]
}

// Describe renders a result as battle log lines.
func Describe(r Result) []string {
	events := []string{fmt.Sprintf("%s used %s!", r.AttackerName, r.Move.Name)}

	switch r.Effect {
	case pokemon.SuperEffective:
		events = append(events, "It's super effective!")
	case pokemon.NotVeryEffective:
		events = append(events, "It's not very effective...")
	}

	events = append(events, fmt.Sprintf("%s took %.1f damage! (%d%% HP left)", r.DefenderName, r.Damage, r.DefenderHealthPct))
	if r.Fainted {
		events = append(events, fmt.Sprintf("%s fainted!", r.DefenderName))
	}
	return events
}
