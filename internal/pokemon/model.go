package pokemon

import (
	"errors"
	"fmt"
	"strings"
)

// Element is the type classification of a pokemon or a move.
type Element int

const (
	Fire Element = iota
	Water
	Grass
	Electric
	Ice
	Dragon
	Psychic
	Normal

	elementCount
)

var elementNames = [elementCount]string{
	Fire:     "Fire",
	Water:    "Water",
	Grass:    "Grass",
	Electric: "Electric",
	Ice:      "Ice",
	Dragon:   "Dragon",
	Psychic:  "Psychic",
	Normal:   "Normal",
}

var ErrUnknownElement = errors.New("unknown element")

func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

func (e Element) Valid() bool {
	return e >= 0 && e < elementCount
}

// Elements lists every element in declaration order.
func Elements() []Element {
	all := make([]Element, 0, elementCount)
	for e := Element(0); e < elementCount; e++ {
		all = append(all, e)
	}
	return all
}

// ParseElement resolves an element name, ignoring case and surrounding space.
func ParseElement(name string) (Element, error) {
	trimmed := strings.TrimSpace(name)
	for e, n := range elementNames {
		if strings.EqualFold(n, trimmed) {
			return Element(e), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, name)
}

func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownElement, int(e))
	}
	return []byte(strings.ToLower(elementNames[e])), nil
}

func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := ParseElement(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

type Move struct {
	Name    string  `yaml:"name"`
	Power   int     `yaml:"power"`
	Element Element `yaml:"element"`
}

func (m Move) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("move name is empty")
	}
	if m.Power < 0 {
		return fmt.Errorf("move %s has negative power %d", m.Name, m.Power)
	}
	if !m.Element.Valid() {
		return fmt.Errorf("move %s: %w: %d", m.Name, ErrUnknownElement, int(m.Element))
	}
	return nil
}

// Pokemon is a roster definition. It is never mutated once loaded; battle
// state lives in battle.BattlePokemon.
type Pokemon struct {
	Name    string  `yaml:"name"`
	Element Element `yaml:"element"`
	Moves   []Move  `yaml:"moves"`
	Attack  int     `yaml:"attack"`
	Defense int     `yaml:"defense"`
}

func (p *Pokemon) Validate() error {
	if p == nil {
		return errors.New("pokemon is nil")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("pokemon name is empty")
	}
	if !p.Element.Valid() {
		return fmt.Errorf("pokemon %s: %w: %d", p.Name, ErrUnknownElement, int(p.Element))
	}
	if len(p.Moves) == 0 {
		return fmt.Errorf("pokemon %s has no moves", p.Name)
	}
	for _, m := range p.Moves {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("pokemon %s: %w", p.Name, err)
		}
	}
	if p.Attack <= 0 {
		return fmt.Errorf("pokemon %s has non-positive attack %d", p.Name, p.Attack)
	}
	if p.Defense < 0 {
		return fmt.Errorf("pokemon %s has negative defense %d", p.Name, p.Defense)
	}
	return nil
}

// HasMove reports whether m is one of the pokemon's moves.
func (p *Pokemon) HasMove(m Move) bool {
	for _, own := range p.Moves {
		if own == m {
			return true
		}
	}
	return false
}
