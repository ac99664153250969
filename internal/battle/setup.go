package battle

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/ross1116/pokebattle/internal/pokemon"
)

// RandomChoice selects a random roster entry in Pick.
const RandomChoice = "random"

// Pick resolves a selection typed by the player: a 1-based roster number,
// a pokemon name, or "random".
func Pick(roster *pokemon.Roster, choice string, rng *rand.Rand) (*pokemon.Pokemon, error) {
	choice = strings.TrimSpace(choice)
	if strings.EqualFold(choice, RandomChoice) {
		return roster.Random(rng), nil
	}
	if n, err := strconv.Atoi(choice); err == nil {
		return roster.At(n - 1)
	}
	return roster.Lookup(choice)
}

// Setup builds a battle from two selections. The player is always side A.
func Setup(roster *pokemon.Roster, player, opponent string, rng *rand.Rand) (*Battle, error) {
	p, err := Pick(roster, player, rng)
	if err != nil {
		return nil, fmt.Errorf("select player pokemon: %w", err)
	}
	o, err := Pick(roster, opponent, rng)
	if err != nil {
		return nil, fmt.Errorf("select opponent pokemon: %w", err)
	}
	return NewBattle(p, o)
}
