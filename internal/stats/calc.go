// Package stats holds the damage and health arithmetic.
//
// Attack, defense and health are all divided by ten somewhere in the damage
// formula, so values are carried in tenths (Points). With the type chart
// multipliers limited to quarters, every intermediate result is exactly
// representable as a float64 and percentages do not drift.
package stats

import "math"

// Scale is the number of points per health bar.
const Scale = 10

// MaxHealthBars is the starting health of every combatant.
const MaxHealthBars = 20

// MinDamage is the smallest damage a move may deal, in points.
const MinDamage Points = 1 * Scale

// Points is a health or damage amount in tenths of a bar.
type Points float64

func (p Points) Bars() float64 {
	return float64(p) / Scale
}

func FromBars(bars int) Points {
	return Points(bars * Scale)
}

// RawDamage computes power*(attack/10)*multiplier - defense/10 in points,
// before any clamping. It may be zero or negative.
func RawDamage(power, attack int, multiplier float64, defense int) Points {
	return Points(float64(power*attack)*multiplier - float64(defense))
}

// Damage is RawDamage clamped to MinDamage.
func Damage(power, attack int, multiplier float64, defense int) Points {
	return max(RawDamage(power, attack, multiplier, defense), MinDamage)
}

// Subtract removes damage from health without going below zero.
func Subtract(health, damage Points) Points {
	return max(health-damage, 0)
}

// Percent returns floor(current/maximum*100) bounded to [0,100].
func Percent(current, maximum Points) int {
	if maximum <= 0 || current <= 0 {
		return 0
	}
	if current >= maximum {
		return 100
	}
	return int(math.Floor(float64(current) * 100 / float64(maximum)))
}
