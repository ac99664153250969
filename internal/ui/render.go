package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/ross1116/pokebattle/internal/battle"
	"github.com/ross1116/pokebattle/internal/pokemon"
	"github.com/ross1116/pokebattle/internal/stats"
)

// HealthBarWidth matches the 20 health bars every pokemon starts with.
const HealthBarWidth = stats.MaxHealthBars

// HealthBar draws pct as a fixed-width bar.
func HealthBar(pct, width int) string {
	pct = min(max(pct, 0), 100)
	filled := pct * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func DisplayRoster(w io.Writer, roster *pokemon.Roster) {
	fmt.Fprintln(w, "\n=== POKEMON ===")
	for i, p := range roster.All() {
		fmt.Fprintf(w, "%2d. %-12s %-9s ATK %2d  DEF %2d\n", i+1, p.Name, p.Element, p.Attack, p.Defense)
	}
}

func DisplayBattleStatus(w io.Writer, b *battle.Battle, human battle.Side) {
	fmt.Fprintln(w, "\n=== BATTLEFIELD STATUS ===")
	summary := b.Summary()
	for _, side := range []battle.Side{human.Opponent(), human} {
		s := summary[side]
		owner := "Foe "
		if side == human {
			owner = "Your"
		}
		fmt.Fprintf(w, "%s %-12s %-9s %s %3d%%\n", owner, s.Name, s.Element, HealthBar(s.HPPercent, HealthBarWidth), s.HPPercent)
	}
	fmt.Fprintln(w, "==========================")
}

func DisplayMoveOptions(w io.Writer, p *pokemon.Pokemon) {
	fmt.Fprintln(w, "\nMoveset:")
	for i, m := range p.Moves {
		fmt.Fprintf(w, "%d. %-14s %-9s power %d\n", i+1, m.Name, m.Element, m.Power)
	}
}

func DisplayResult(w io.Writer, r battle.Result) {
	for _, line := range battle.Describe(r) {
		fmt.Fprintln(w, line)
	}
}
