package calendar

import (
	"fmt"
	"time"
)

// codeRule is one branch of the classifier. Rules are evaluated in
// order; the first one that claims the date produces its code. The
// ordering is part of the contract, not an accident of code layout.
type codeRule struct {
	name string
	fn   func(d time.Time, f *MovableFeasts, lc LunarSource) (string, bool)
}

var codeRules = []codeRule{
	{"tet", tetCode},
	{"fixed-numeric", fixedNumericCode},
	{"day-month", dayMonthCode},
	{"lent", lentCode},
	{"easter-season", easterSeasonCode},
	{"advent", adventCode},
	{"ordinary", ordinaryCode},
}

// DayCode maps a date to its canonical liturgical day code, the key
// consumers use against the external reading tables. The empty string
// is returned only for dates no rule claims, which callers treat as a
// generic Ordinary-Time weekday.
func DayCode(d time.Time, f *MovableFeasts, lc LunarSource) string {
	code, _ := ClassifyDay(d, f, lc)
	return code
}

// ClassifyDay returns the day code together with the name of the
// classifier rule that produced it. The rule name feeds diagnostics and
// the dategen self-check.
func ClassifyDay(d time.Time, f *MovableFeasts, lc LunarSource) (string, string) {
	d = Normalize(d)
	for _, r := range codeRules {
		if code, ok := r.fn(d, f, lc); ok {
			return code, r.name
		}
	}
	return "", ""
}

// tetCode claims the three days of Tết.
func tetCode(d time.Time, _ *MovableFeasts, lc LunarSource) (string, bool) {
	if lc == nil {
		return "", false
	}
	switch lc.DayOfTet(d) {
	case 1:
		return CodeTetMung1, true
	case 2:
		return CodeTetMung2, true
	case 3:
		return CodeTetMung3, true
	}
	return "", false
}

// fixedNumericCode claims the days with reserved numeric codes:
// Epiphany and the weekdays before the Baptism of the Lord, Ascension,
// the Pentecost vigil and Pentecost, and the post-Pentecost solemnities.
func fixedNumericCode(d time.Time, f *MovableFeasts, _ LunarSource) (string, bool) {
	switch {
	case SameDay(d, f.Epiphany):
		return CodeEpiphany, true
	case d.After(f.Epiphany) && d.Before(f.BaptismLord):
		return AfterEpiphanyCode(DaysBetween(f.Epiphany, d)), true
	case SameDay(d, f.Ascension):
		return CodeAscension, true
	case SameDay(d, f.Pentecost.AddDate(0, 0, -1)):
		return CodePentecostVigil, true
	case SameDay(d, f.Pentecost):
		return CodePentecost, true
	case SameDay(d, f.Trinity):
		return CodeTrinity, true
	case SameDay(d, f.CorpusChristi):
		return CodeCorpusChristi, true
	case SameDay(d, f.SacredHeart):
		return CodeSacredHeart, true
	case SameDay(d, f.ImmaculateHeart):
		return CodeImmaculateHeart, true
	}
	return "", false
}

// dayMonthCode claims Dec 17 through Jan 1 plus the Christmastide days
// before Epiphany, whose readings are keyed by calendar date. Sundays
// of Dec 17-24 stay regular Advent Sundays and are passed over.
func dayMonthCode(d time.Time, f *MovableFeasts, _ LunarSource) (string, bool) {
	m, day := d.Month(), d.Day()
	switch {
	case m == time.December && day >= 17 && day <= 24:
		if d.Weekday() == time.Sunday {
			return "", false
		}
		return DayMonthCode(d), true
	case m == time.December && day >= 25:
		return DayMonthCode(d), true
	case m == time.January && d.Before(f.Epiphany):
		return DayMonthCode(d), true
	}
	return "", false
}

// lentCode claims Ash Wednesday through Holy Saturday. The four days
// starting at the Ash Wednesday celebration carry the fixed block
// 3004-3007; Holy Week is week 6; the full weeks count from the first
// Sunday of Lent.
func lentCode(d time.Time, f *MovableFeasts, _ LunarSource) (string, bool) {
	if !f.InLent(d) {
		return "", false
	}
	if f.InHolyWeek(d) {
		return fmt.Sprintf("306%d", int(d.Weekday())), true
	}
	firstSunday := FirstSundayOnOrAfter(f.AshWednesday)
	if d.Before(firstSunday) {
		off := DaysBetween(f.AshWednesdayCelebration, d)
		if off >= 0 && off <= 3 {
			return fmt.Sprintf("300%d", 4+off), true
		}
		// Days between the original Ash Wednesday and a transferred
		// celebration are Tết days and are claimed earlier; anything
		// left keys off the original date.
		off = DaysBetween(f.AshWednesday, d)
		return fmt.Sprintf("300%d", 4+off), true
	}
	week := DaysBetween(firstSunday, d)/7 + 1
	return seasonWeekCode(SeasonLent, week, d.Weekday()), true
}

// easterSeasonCode claims Easter Sunday through the day before
// Pentecost (the vigil and Ascension are claimed earlier).
func easterSeasonCode(d time.Time, f *MovableFeasts, _ LunarSource) (string, bool) {
	if d.Before(f.Easter) || !d.Before(f.Pentecost) {
		return "", false
	}
	week := DaysBetween(f.Easter, d)/7 + 1
	return seasonWeekCode(SeasonEaster, week, d.Weekday()), true
}

// adventCode claims Advent weeks 1-4; the non-Sunday days of Dec 17-24
// were already claimed by the day-month rule.
func adventCode(d time.Time, f *MovableFeasts, _ LunarSource) (string, bool) {
	if !f.InAdvent(d) {
		return "", false
	}
	week := DaysBetween(f.AdventStart, d)/7 + 1
	return seasonWeekCode(SeasonAdvent, week, d.Weekday()), true
}

// ordinaryCode claims both blocks of Ordinary Time: counted forward
// from the Sunday of the Baptism of the Lord, and counted backward from
// Christ the King as week 34.
func ordinaryCode(d time.Time, f *MovableFeasts, _ LunarSource) (string, bool) {
	if !d.Before(f.BaptismLord) && d.Before(f.AshWednesday) {
		anchor := SundayOnOrBefore(f.BaptismLord)
		week := DaysBetween(anchor, d)/7 + 1
		return seasonWeekCode(SeasonOrdinary, week, d.Weekday()), true
	}
	if d.After(f.Pentecost) && d.Before(f.AdventStart) {
		sunday := SundayOnOrBefore(d)
		week := 34 - DaysBetween(sunday, f.ChristKing)/7
		return seasonWeekCode(SeasonOrdinary, week, d.Weekday()), true
	}
	return "", false
}
