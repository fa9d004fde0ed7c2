package calendar

import (
	"fmt"
	"time"

	"github.com/vntruongson/phungvu-api/internal/lunar"
)

// LunarSource supplies lunar conversions to the movable-feast
// computation. *lunar.Converter satisfies it; tests may substitute.
type LunarSource interface {
	Convert(day, month, year int) lunar.Date
	DayOfTet(t time.Time) int
	IsNewYearEve(t time.Time) bool
}

// MovableFeasts holds every anchor date of one Gregorian year that the
// rest of the system derives from. Computed once per year, never
// mutated afterwards.
type MovableFeasts struct {
	Year int `json:"year"`

	Easter       time.Time `json:"easter"`
	AshWednesday time.Time `json:"ash_wednesday"`
	// AshWednesdayCelebration is the date the Ash Wednesday Mass and the
	// fast/abstinence obligation are kept. It differs from AshWednesday
	// only when Ash Wednesday coincides with Tết Mùng 1-3; Lent itself
	// (color, no Alleluia) still starts on AshWednesday.
	AshWednesdayCelebration time.Time `json:"ash_wednesday_celebration"`
	AshWednesdayTransferred bool      `json:"ash_wednesday_transferred"`
	AshTransferNote         string    `json:"ash_transfer_note,omitempty"`

	HolyThursday time.Time `json:"holy_thursday"`
	PalmSunday   time.Time `json:"palm_sunday"`
	GoodFriday   time.Time `json:"good_friday"`
	Ascension    time.Time `json:"ascension"`
	Pentecost    time.Time `json:"pentecost"`
	Trinity      time.Time `json:"trinity"`
	CorpusChristi  time.Time `json:"corpus_christi"`
	SacredHeart    time.Time `json:"sacred_heart"`
	ImmaculateHeart time.Time `json:"immaculate_heart"`

	AdventStart time.Time `json:"advent_start"`
	ChristKing  time.Time `json:"christ_king"`
	Christmas   time.Time `json:"christmas"`
	Epiphany    time.Time `json:"epiphany"`
	BaptismLord time.Time `json:"baptism_lord"`

	VietnameseMartyrs time.Time `json:"vietnamese_martyrs"`
	MissionSunday     time.Time `json:"mission_sunday"`
	RosarySunday      time.Time `json:"rosary_sunday"`

	Annunciation         time.Time `json:"annunciation"`
	StJoseph             time.Time `json:"st_joseph"`
	ImmaculateConception time.Time `json:"immaculate_conception"`
}

// ComputeYear computes all movable feasts of a Gregorian year.
// lc feeds the Ash-Wednesday/Tết transfer check; a nil source skips the
// transfer (the celebration then always equals Ash Wednesday itself).
func ComputeYear(year int, lc LunarSource) *MovableFeasts {
	f := &MovableFeasts{Year: year}

	f.Easter = CalculateEaster(year)
	f.AshWednesday = f.Easter.AddDate(0, 0, -46)
	f.AshWednesdayCelebration = f.AshWednesday
	f.PalmSunday = f.Easter.AddDate(0, 0, -7)
	f.HolyThursday = f.Easter.AddDate(0, 0, -3)
	f.GoodFriday = f.Easter.AddDate(0, 0, -2)
	f.Ascension = f.Easter.AddDate(0, 0, 39)
	f.Pentecost = f.Easter.AddDate(0, 0, 49)
	f.Trinity = f.Pentecost.AddDate(0, 0, 7)
	f.CorpusChristi = f.Trinity.AddDate(0, 0, 7)
	f.SacredHeart = f.CorpusChristi.AddDate(0, 0, 5)
	f.ImmaculateHeart = f.SacredHeart.AddDate(0, 0, 1)

	// Fourth Sunday of Advent is the Sunday on or before Dec 24; when
	// Christmas itself is a Sunday the fourth Sunday is one week prior.
	f.Christmas = Date(year, time.December, 25)
	var fourthAdvent time.Time
	if f.Christmas.Weekday() == time.Sunday {
		fourthAdvent = f.Christmas.AddDate(0, 0, -7)
	} else {
		fourthAdvent = SundayOnOrBefore(Date(year, time.December, 24))
	}
	f.AdventStart = fourthAdvent.AddDate(0, 0, -21)
	f.ChristKing = f.AdventStart.AddDate(0, 0, -7)

	// Vietnam keeps Epiphany on the first Sunday of January; when Jan 1
	// is itself a Sunday, Epiphany moves to Jan 8.
	jan1 := Date(year, time.January, 1)
	if jan1.Weekday() == time.Sunday {
		f.Epiphany = Date(year, time.January, 8)
	} else {
		f.Epiphany = FirstSundayOnOrAfter(jan1)
	}
	if f.Epiphany.Day() == 7 || f.Epiphany.Day() == 8 {
		f.BaptismLord = f.Epiphany.AddDate(0, 0, 1)
	} else {
		f.BaptismLord = f.Epiphany.AddDate(0, 0, 7)
	}

	f.VietnameseMartyrs = f.ChristKing.AddDate(0, 0, -7)
	f.MissionSunday = LastSundayOfMonth(year, time.October).AddDate(0, 0, -7)
	f.RosarySunday = FirstSundayOnOrAfter(Date(year, time.October, 1))

	f.Annunciation = movedAnnunciation(year, f)
	f.StJoseph = movedStJoseph(year, f)
	f.ImmaculateConception = movedImmaculateConception(year)

	applyTetTransfer(f, lc)

	return f
}

// movedAnnunciation applies the override rules to Mar 25: inside the
// span from Palm Sunday through Divine Mercy Sunday it moves to the
// Monday after the Easter octave; on an earlier Sunday it yields one day.
func movedAnnunciation(year int, f *MovableFeasts) time.Time {
	d := Date(year, time.March, 25)
	divineMercy := f.Easter.AddDate(0, 0, 7)
	if !d.Before(f.PalmSunday) && !d.After(divineMercy) {
		return f.Easter.AddDate(0, 0, 8)
	}
	if d.Weekday() == time.Sunday && d.Before(f.PalmSunday) {
		return d.AddDate(0, 0, 1)
	}
	return d
}

// movedStJoseph applies the override rules to Mar 19: within Holy Week
// it anticipates to the day before Palm Sunday; on an earlier Sunday it
// yields one day.
func movedStJoseph(year int, f *MovableFeasts) time.Time {
	d := Date(year, time.March, 19)
	if !d.Before(f.PalmSunday) && d.Before(f.Easter) {
		return f.PalmSunday.AddDate(0, 0, -1)
	}
	if d.Weekday() == time.Sunday && d.Before(f.PalmSunday) {
		return d.AddDate(0, 0, 1)
	}
	return d
}

func movedImmaculateConception(year int) time.Time {
	d := Date(year, time.December, 8)
	if d.Weekday() == time.Sunday {
		return d.AddDate(0, 0, 1)
	}
	return d
}

// applyTetTransfer moves the Ash Wednesday celebration to Mùng 4 Tết
// when Ash Wednesday falls on Tết Mùng 1-3. Only the celebration and
// obligation move; the start of Lent stays on the original date.
func applyTetTransfer(f *MovableFeasts, lc LunarSource) {
	if lc == nil {
		return
	}
	aw := f.AshWednesday
	ld := lc.Convert(aw.Day(), int(aw.Month()), aw.Year())
	if ld.Month != 1 || ld.Leap || ld.Day < 1 || ld.Day > 3 {
		return
	}
	f.AshWednesdayCelebration = aw.AddDate(0, 0, 4-ld.Day)
	f.AshWednesdayTransferred = true
	f.AshTransferNote = fmt.Sprintf(
		"Thứ Tư Lễ Tro trùng ngày Mùng %d Tết %s; thánh lễ và việc giữ chay kiêng thịt dời sang Mùng 4 Tết (%s)",
		ld.Day, lunar.YearName(ld.Year), FormatDate(f.AshWednesdayCelebration))
}

// ----------------------------------------------------------------------
// Season membership helpers
// ----------------------------------------------------------------------

// InTriduum reports whether the date falls within the Paschal Triduum
// (Holy Thursday through Easter Sunday).
func (f *MovableFeasts) InTriduum(d time.Time) bool {
	d = Normalize(d)
	return !d.Before(f.HolyThursday) && !d.After(f.Easter)
}

// InHolyWeek reports whether the date falls within Holy Week
// (Palm Sunday through Holy Saturday).
func (f *MovableFeasts) InHolyWeek(d time.Time) bool {
	d = Normalize(d)
	return !d.Before(f.PalmSunday) && d.Before(f.Easter)
}

// InEasterOctave reports whether the date falls within the Easter
// octave (Easter Sunday through Divine Mercy Sunday).
func (f *MovableFeasts) InEasterOctave(d time.Time) bool {
	d = Normalize(d)
	return !d.Before(f.Easter) && !d.After(f.Easter.AddDate(0, 0, 7))
}

// InChristmasOctave reports whether the date falls within the Christmas
// octave (Dec 25 through Jan 1).
func (f *MovableFeasts) InChristmasOctave(d time.Time) bool {
	if d.Month() == time.December && d.Day() >= 25 {
		return true
	}
	return d.Month() == time.January && d.Day() == 1
}

// InLent reports whether the date falls within Lent (Ash Wednesday up
// to but excluding Easter). Lent begins on the original Ash Wednesday
// even in a Tết-transfer year.
func (f *MovableFeasts) InLent(d time.Time) bool {
	d = Normalize(d)
	return !d.Before(f.AshWednesday) && d.Before(f.Easter)
}

// InAdvent reports whether the date falls within Advent.
func (f *MovableFeasts) InAdvent(d time.Time) bool {
	d = Normalize(d)
	return !d.Before(f.AdventStart) && d.Before(f.Christmas)
}

// InEasterSeason reports whether the date falls within the Easter
// season (Easter through Pentecost).
func (f *MovableFeasts) InEasterSeason(d time.Time) bool {
	d = Normalize(d)
	return !d.Before(f.Easter) && !d.After(f.Pentecost)
}

// InOrdinaryTime reports whether the date falls in either block of
// Ordinary Time.
func (f *MovableFeasts) InOrdinaryTime(d time.Time) bool {
	d = Normalize(d)
	if d.After(f.BaptismLord) && d.Before(f.AshWednesday) {
		return true
	}
	return d.After(f.Pentecost) && d.Before(f.AdventStart)
}

// Season classifies the date into one of the five seasons. The Baptism
// of the Lord closes the Christmas season; Pentecost closes Easter.
func (f *MovableFeasts) Season(d time.Time) Season {
	d = Normalize(d)
	switch {
	case f.InAdvent(d):
		return SeasonAdvent
	case f.InLent(d):
		return SeasonLent
	case f.InEasterSeason(d):
		return SeasonEaster
	case f.InOrdinaryTime(d):
		return SeasonOrdinary
	default:
		// Christmas through Baptism of the Lord, spanning the year
		// boundary on both sides.
		return SeasonChristmas
	}
}
