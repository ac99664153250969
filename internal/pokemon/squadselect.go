package pokemon

import "math/rand/v2"

// Random picks a roster entry uniformly.
func (r *Roster) Random(rng *rand.Rand) *Pokemon {
	return r.pokemon[rng.IntN(len(r.pokemon))]
}
