package sanctoral

import (
	"time"

	"github.com/vntruongson/phungvu-api/internal/calendar"
)

// Transferred describes a solemnity observed away from its nominal
// date.
type Transferred struct {
	Name         string    `json:"name"`
	OriginalDate time.Time `json:"original_date"`
	Rank         Rank      `json:"rank"`
	Color        string    `json:"color"`
}

// FeastProvider returns the movable feasts of a Gregorian year. The
// transfer scan crosses year boundaries around Jan 1, so it resolves
// feasts per candidate year rather than assuming one set.
type FeastProvider func(year int) *calendar.MovableFeasts

// TransferDestination computes where a solemnity nominally falling on
// orig is actually observed. ok is false when the feast stands on its
// own date.
//
// Destinations: Holy Week and the Easter octave both push to the
// Monday after the octave; the Christmas octave pushes to Jan 2; any
// other Sunday yields to Monday.
func TransferDestination(orig time.Time, f *calendar.MovableFeasts) (time.Time, bool) {
	orig = calendar.Normalize(orig)
	switch {
	case f.InHolyWeek(orig), f.InEasterOctave(orig):
		return f.Easter.AddDate(0, 0, 8), true
	case f.InChristmasOctave(orig):
		year := orig.Year()
		if orig.Month() == time.December {
			year++
		}
		return calendar.Date(year, time.January, 2), true
	case orig.Weekday() == time.Sunday:
		return orig.AddDate(0, 0, 1), true
	}
	return time.Time{}, false
}

// transferScanWindow bounds the backward scan. The longest move is a
// solemnity on Palm Sunday landing on the Monday after the Easter
// octave, 15 days later.
const transferScanWindow = 16

// TransferredLandingOn scans the days before date for a solemnity-rank
// fixed feast whose transfer destination is exactly date. The scan is
// a bounded backward walk, not a full-year search.
//
// St Joseph, the Annunciation and the Immaculate Conception are skipped
// here: their moves are precomputed as movable-feast fields and would
// otherwise be reported twice.
func TransferredLandingOn(date time.Time, feastsFor FeastProvider, t *Table) *Transferred {
	date = calendar.Normalize(date)
	for back := 1; back <= transferScanWindow; back++ {
		orig := date.AddDate(0, 0, -back)
		if hasOwnMoveRule(orig) {
			continue
		}
		s, ok := t.LookupDate(orig)
		if !ok || s.Rank != RankTrong {
			continue
		}
		dest, moved := TransferDestination(orig, feastsFor(orig.Year()))
		if moved && calendar.SameDay(dest, date) {
			return &Transferred{
				Name:         s.Name,
				OriginalDate: orig,
				Rank:         s.Rank,
				Color:        s.Color,
			}
		}
	}
	return nil
}

// hasOwnMoveRule reports whether a nominal date belongs to one of the
// solemnities with a bespoke override rule in the movable computation.
func hasOwnMoveRule(d time.Time) bool {
	switch {
	case d.Month() == time.March && d.Day() == 19:
		return true
	case d.Month() == time.March && d.Day() == 25:
		return true
	case d.Month() == time.December && d.Day() == 8:
		return true
	}
	return false
}
