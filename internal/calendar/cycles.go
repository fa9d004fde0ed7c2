package calendar

import "time"

// Cycle identifies the three-year Sunday lectionary cycle.
type Cycle string

const (
	CycleA Cycle = "A"
	CycleB Cycle = "B"
	CycleC Cycle = "C"
)

// LiturgicalYear returns the liturgical year a date belongs to. The
// liturgical year N begins on the first Sunday of Advent of calendar
// year N-1, so dates on or after Advent carry the next year's number.
func LiturgicalYear(date time.Time, feasts *MovableFeasts) int {
	if !Normalize(date).Before(feasts.AdventStart) {
		return date.Year() + 1
	}
	return date.Year()
}

// SundayCycle returns the A/B/C Sunday lectionary cycle for a date.
// The cycle follows the liturgical year modulo 3: A when the liturgical
// year leaves remainder 1, B for 2, C for 0.
func SundayCycle(date time.Time, feasts *MovableFeasts) Cycle {
	switch LiturgicalYear(date, feasts) % 3 {
	case 1:
		return CycleA
	case 2:
		return CycleB
	default:
		return CycleC
	}
}

// WeekdayCycle returns the two-year weekday lectionary cycle (1 or 2)
// for a calendar year: odd years read cycle 1, even years cycle 2.
func WeekdayCycle(year int) int {
	if year%2 == 1 {
		return 1
	}
	return 2
}
