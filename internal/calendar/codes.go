package calendar

import (
	"fmt"
	"time"
)

// Reserved numeric day codes. These literals are the keys the external
// reading tables use for days that fall outside the season-week-weekday
// pattern; they must not change between releases.
const (
	CodeEpiphany       = "2030"
	CodeAscension      = "4390"
	CodePentecostVigil = "5000"
	CodePentecost      = "5001"
	CodeTrinity        = "8061"
	CodeCorpusChristi  = "8062"
	CodeSacredHeart    = "8063"
	CodeImmaculateHeart = "8441"

	// Tết days carry their own reserved block.
	CodeTetMung1 = "70001"
	CodeTetMung2 = "70002"
	CodeTetMung3 = "70003"
)

// AfterEpiphanyCode returns the reserved code for the n-th day after
// Epiphany (1..6), the weekdays between Epiphany and the Baptism of
// the Lord.
func AfterEpiphanyCode(n int) string {
	return fmt.Sprintf("203%d", n)
}

// DayMonthCode builds the "2DDMM" literal used for Dec 17 - Jan 1 and
// the remaining Christmastide days, whose lectionary texts are keyed by
// calendar date rather than by week.
func DayMonthCode(d time.Time) string {
	return fmt.Sprintf("2%02d%02d", d.Day(), int(d.Month()))
}

// SanctoralCode returns the "7DDMM" key used against the saints'
// reading tables for the given date.
func SanctoralCode(d time.Time) string {
	return fmt.Sprintf("7%02d%02d", d.Day(), int(d.Month()))
}

// SpecialFeastCode returns the "8DDMM" key used against the special
// feast reading tables for the given date.
func SpecialFeastCode(d time.Time) string {
	return fmt.Sprintf("8%02d%02d", d.Day(), int(d.Month()))
}

// seasonWeekCode renders the regular "S WW D" pattern: season digit,
// zero-padded week, weekday digit.
func seasonWeekCode(s Season, week int, weekday time.Weekday) string {
	return fmt.Sprintf("%d%02d%d", int(s), week, int(weekday))
}
