package battle

import (
	"fmt"

	"github.com/ross1116/pokebattle/internal/pokemon"
	"github.com/ross1116/pokebattle/internal/stats"
)

// BattlePokemon is a combatant: a roster pokemon plus its health in this
// battle. Health is the only thing that changes while the battle runs.
type BattlePokemon struct {
	Base   *pokemon.Pokemon
	health stats.Points
	max    stats.Points
}

type PokemonSummary struct {
	Name      string
	Element   pokemon.Element
	Health    float64
	MaxHealth float64
	HPPercent int
	Fainted   bool
}

func NewBattlePokemon(p *pokemon.Pokemon) (*BattlePokemon, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("new battle pokemon: %w", err)
	}
	maxHP := stats.FromBars(stats.MaxHealthBars)
	return &BattlePokemon{
		Base:   p,
		health: maxHP,
		max:    maxHP,
	}, nil
}

func (bp *BattlePokemon) Name() string {
	return bp.Base.Name
}

// Health returns the current health in bars.
func (bp *BattlePokemon) Health() float64 {
	return bp.health.Bars()
}

func (bp *BattlePokemon) MaxHealth() float64 {
	return bp.max.Bars()
}

// HealthPercent is floor(health/maxHealth*100). It never changes state.
func (bp *BattlePokemon) HealthPercent() int {
	return stats.Percent(bp.health, bp.max)
}

func (bp *BattlePokemon) Fainted() bool {
	return bp.health <= 0
}

// applyDamage subtracts damage and reports whether the pokemon fainted.
func (bp *BattlePokemon) applyDamage(dmg stats.Points) bool {
	bp.health = stats.Subtract(bp.health, dmg)
	return bp.Fainted()
}

func (bp *BattlePokemon) Summary() PokemonSummary {
	return PokemonSummary{
		Name:      bp.Base.Name,
		Element:   bp.Base.Element,
		Health:    bp.Health(),
		MaxHealth: bp.MaxHealth(),
		HPPercent: bp.HealthPercent(),
		Fainted:   bp.Fainted(),
	}
}
