package pokemon

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// MovesetSize is the number of moves every roster entry carries.
const MovesetSize = 4

//go:embed roster.yaml
var defaultRoster []byte

var (
	ErrInvalidRoster  = errors.New("invalid roster")
	ErrUnknownPokemon = errors.New("unknown pokemon")
)

// Roster is the static, read-only list of pokemon available for battle.
type Roster struct {
	pokemon []*Pokemon
	byName  map[string]*Pokemon
}

type rosterFile struct {
	Pokemon []*Pokemon `yaml:"pokemon"`
}

func DefaultRoster() (*Roster, error) {
	return ParseRoster(bytes.NewReader(defaultRoster))
}

func LoadRoster(path string) (*Roster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer file.Close()

	roster, err := ParseRoster(file)
	if err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}
	return roster, nil
}

func ParseRoster(r io.Reader) (*Roster, error) {
	var raw rosterFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidRoster, err)
	}
	return NewRoster(raw.Pokemon)
}

// NewRoster validates entries and indexes them by folded name.
func NewRoster(entries []*Pokemon) (*Roster, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no pokemon", ErrInvalidRoster)
	}

	fold := cases.Fold()
	roster := &Roster{
		pokemon: make([]*Pokemon, 0, len(entries)),
		byName:  make(map[string]*Pokemon, len(entries)),
	}
	for i, p := range entries {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidRoster, i+1, err)
		}
		if len(p.Moves) != MovesetSize {
			return nil, fmt.Errorf("%w: %s has %d moves, want %d", ErrInvalidRoster, p.Name, len(p.Moves), MovesetSize)
		}
		key := fold.String(strings.TrimSpace(p.Name))
		if _, exists := roster.byName[key]; exists {
			return nil, fmt.Errorf("%w: duplicate pokemon %s", ErrInvalidRoster, p.Name)
		}
		roster.byName[key] = p
		roster.pokemon = append(roster.pokemon, p)
	}
	return roster, nil
}

// Lookup finds a pokemon by name, ignoring case.
func (r *Roster) Lookup(name string) (*Pokemon, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	if p, ok := r.byName[key]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPokemon, name)
}

func (r *Roster) All() []*Pokemon {
	out := make([]*Pokemon, len(r.pokemon))
	copy(out, r.pokemon)
	return out
}

func (r *Roster) Len() int {
	return len(r.pokemon)
}

// At returns the entry at a zero-based index.
func (r *Roster) At(i int) (*Pokemon, error) {
	if i < 0 || i >= len(r.pokemon) {
		return nil, fmt.Errorf("%w: index %d out of range 1-%d", ErrUnknownPokemon, i+1, len(r.pokemon))
	}
	return r.pokemon[i], nil
}
