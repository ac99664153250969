package pokemon

const (
	Advantage    = 1.5
	Disadvantage = 0.75
	Neutral      = 1.0
)

// Effect classifies a multiplier for battle messages.
type Effect int

const (
	NeutralEffect Effect = iota
	SuperEffective
	NotVeryEffective
)

func (e Effect) String() string {
	switch e {
	case SuperEffective:
		return "super effective"
	case NotVeryEffective:
		return "not very effective"
	default:
		return "neutral"
	}
}

// typeChart is indexed [move element][defender element]. Pairs not listed in
// init stay neutral.
var typeChart [elementCount][elementCount]float64

func init() {
	for atk := range typeChart {
		for def := range typeChart[atk] {
			typeChart[atk][def] = Neutral
		}
	}

	set := func(move, defender Element, mult float64) {
		typeChart[move][defender] = mult
	}

	set(Fire, Grass, Advantage)
	set(Fire, Ice, Advantage)
	set(Fire, Water, Disadvantage)

	set(Water, Fire, Advantage)
	set(Water, Grass, Disadvantage)
	set(Water, Electric, Disadvantage)

	set(Grass, Water, Advantage)
	set(Grass, Fire, Disadvantage)
	set(Grass, Ice, Disadvantage)

	set(Electric, Water, Advantage)

	set(Ice, Grass, Advantage)
	set(Ice, Dragon, Advantage)
	set(Ice, Fire, Disadvantage)

	set(Dragon, Ice, Disadvantage)
}

// Effectiveness returns the damage multiplier of a move element against a
// defender element. Unknown elements are neutral.
func Effectiveness(move, defender Element) float64 {
	if !move.Valid() || !defender.Valid() {
		return Neutral
	}
	return typeChart[move][defender]
}

func Classify(multiplier float64) Effect {
	switch {
	case multiplier > Neutral:
		return SuperEffective
	case multiplier < Neutral:
		return NotVeryEffective
	default:
		return NeutralEffect
	}
}
