package battle

import "fmt"

// Side identifies one of the two combatants.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

func (s Side) valid() bool {
	return s == SideA || s == SideB
}

// Status is the battle state machine. AFainted and BFainted are terminal.
type Status int

const (
	StatusInProgress Status = iota
	StatusAFainted
	StatusBFainted
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusAFainted:
		return "A fainted"
	case StatusBFainted:
		return "B fainted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) Terminal() bool {
	return s == StatusAFainted || s == StatusBFainted
}

func faintedStatus(side Side) Status {
	if side == SideA {
		return StatusAFainted
	}
	return StatusBFainted
}

// advance moves the battle to the next state after a move landed on the
// defender.
func (b *Battle) advance(defender Side, fainted bool) {
	b.turnCount++
	if fainted {
		b.status = faintedStatus(defender)
		return
	}
	b.turn = defender
}
