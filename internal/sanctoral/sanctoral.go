// Package sanctoral holds the fixed-date saints calendar and the rules
// deciding whether a fixed feast stands, transfers or is suppressed on
// a given date.
package sanctoral

import (
	"github.com/vntruongson/phungvu-api/internal/calendar"
	"time"
)

// Rank grades a fixed celebration, descending: solemnity (TRONG),
// feast (KINH), obligatory memorial (NHO), optional memorial (NHOKB).
type Rank int

const (
	RankTrong Rank = iota + 1
	RankKinh
	RankNho
	RankNhoKB
)

// String returns the Vietnamese rank token used in data files and API
// payloads.
func (r Rank) String() string {
	switch r {
	case RankTrong:
		return "TRONG"
	case RankKinh:
		return "KINH"
	case RankNho:
		return "NHO"
	case RankNhoKB:
		return "NHOKB"
	default:
		return "UNKNOWN"
	}
}

// ParseRank converts a rank token back to its Rank. Unknown tokens map
// to the optional-memorial rank so imported rows degrade gracefully.
func ParseRank(s string) Rank {
	switch s {
	case "TRONG":
		return RankTrong
	case "KINH":
		return RankKinh
	case "NHO":
		return RankNho
	default:
		return RankNhoKB
	}
}

// Liturgical colors.
const (
	ColorRed    = "red"
	ColorWhite  = "white"
	ColorPurple = "purple"
	ColorGreen  = "green"
	ColorRose   = "rose"
)

// FixedSaint is one fixed-date entry of the sanctoral calendar.
type FixedSaint struct {
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Name  string `json:"name"`
	Rank  Rank   `json:"rank"`
	Color string `json:"color"`
}

// Table is the immutable month-day keyed saints lookup, built once at
// startup.
type Table struct {
	m map[int]FixedSaint
}

func key(month, day int) int { return month*100 + day }

// NewTable builds a table from a saints list. Later entries for the
// same month-day replace earlier ones, letting an imported list
// override the built-in one.
func NewTable(saints []FixedSaint) *Table {
	m := make(map[int]FixedSaint, len(saints))
	for _, s := range saints {
		m[key(s.Month, s.Day)] = s
	}
	return &Table{m: m}
}

// Merge returns a new table with the given entries replacing any
// existing month-day keys. The receiver is left untouched.
func (t *Table) Merge(saints []FixedSaint) *Table {
	m := make(map[int]FixedSaint, len(t.m)+len(saints))
	for k, v := range t.m {
		m[k] = v
	}
	for _, s := range saints {
		m[key(s.Month, s.Day)] = s
	}
	return &Table{m: m}
}

// Lookup returns the fixed feast for a month-day, if any.
func (t *Table) Lookup(month, day int) (FixedSaint, bool) {
	s, ok := t.m[key(month, day)]
	return s, ok
}

// LookupDate is Lookup for a time.Time value.
func (t *Table) LookupDate(d time.Time) (FixedSaint, bool) {
	return t.Lookup(int(d.Month()), d.Day())
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.m) }

// Suppressed reports whether a fixed feast is omitted entirely on the
// given date. Feast rank (KINH) yields only to Holy Week, the Triduum
// and the Easter octave; memorials additionally yield to the final
// Advent days (Dec 17-24), the Christmas octave and Lenten weekdays.
// Solemnities are never suppressed; they transfer instead.
func Suppressed(s FixedSaint, d time.Time, f *calendar.MovableFeasts) bool {
	d = calendar.Normalize(d)
	privileged := f.InHolyWeek(d) || f.InTriduum(d) || f.InEasterOctave(d)

	switch s.Rank {
	case RankTrong:
		return false
	case RankKinh:
		return privileged
	default:
		if privileged {
			return true
		}
		if d.Month() == time.December && d.Day() >= 17 && d.Day() <= 24 {
			return true
		}
		if f.InChristmasOctave(d) {
			return true
		}
		if f.InLent(d) && d.Weekday() != time.Sunday {
			return true
		}
		return false
	}
}
