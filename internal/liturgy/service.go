// Package liturgy resolves the full liturgical identity of a date:
// season, day code, cycles, the winning celebration and everything
// demoted around it.
package liturgy

import (
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vntruongson/phungvu-api/internal/calendar"
	"github.com/vntruongson/phungvu-api/internal/lunar"
	"github.com/vntruongson/phungvu-api/internal/precedence"
	"github.com/vntruongson/phungvu-api/internal/sanctoral"
	"github.com/vntruongson/phungvu-api/internal/tet"
)

// DayInfo is the resolved record for one date. Consumers own all
// formatting; nothing here depends on how it is rendered.
type DayInfo struct {
	Date         string         `json:"date"`
	Code         string         `json:"code"`
	Season       string         `json:"season"`
	SeasonName   string         `json:"season_name"`
	Color        string         `json:"color"`
	WeekLabel    string         `json:"week_label"`
	SundayCycle  calendar.Cycle `json:"sunday_cycle"`
	WeekdayCycle int            `json:"weekday_cycle"`

	Celebration    precedence.Candidate   `json:"celebration"`
	Rank           int                    `json:"rank"`
	Commemorations []precedence.Candidate `json:"commemorations,omitempty"`
	Reason         string                 `json:"reason,omitempty"`

	Saints      []sanctoral.FixedSaint `json:"saints,omitempty"`
	Transferred *sanctoral.Transferred `json:"transferred,omitempty"`
	Vigil       *calendar.VigilInfo    `json:"vigil,omitempty"`

	Lunar      lunar.Date `json:"lunar"`
	LunarLabel string     `json:"lunar_label"`
	Tet        *tet.Event `json:"tet,omitempty"`
	TetNote    string     `json:"tet_note,omitempty"`
	AshNote    string     `json:"ash_note,omitempty"`
}

// Options configures a Service. Zero values fall back to the Vietnam
// timezone, Vietnamese labels and modest cache sizes.
type Options struct {
	TZOffset       float64
	Lang           string
	YearCacheSize  int
	DayCacheSize   int
	LunarCacheSize int
	Saints         *sanctoral.Table
	Logger         *slog.Logger
}

// Service computes per-date liturgical data with bounded memoization.
// All cached values are immutable once built, so concurrent readers
// need no locking beyond what the caches provide.
type Service struct {
	lc      *lunar.Converter
	saints  *sanctoral.Table
	labeler *calendar.Labeler
	logger  *slog.Logger

	years *lru.Cache[int, *calendar.MovableFeasts]
	days  *lru.Cache[string, *DayInfo]
}

// New builds a Service.
func New(opts Options) (*Service, error) {
	if opts.TZOffset == 0 {
		opts.TZOffset = 7
	}
	if opts.Lang == "" {
		opts.Lang = "vi"
	}
	if opts.YearCacheSize <= 0 {
		opts.YearCacheSize = 16
	}
	if opts.DayCacheSize <= 0 {
		opts.DayCacheSize = 1024
	}
	if opts.LunarCacheSize <= 0 {
		opts.LunarCacheSize = 2048
	}
	if opts.Saints == nil {
		opts.Saints = sanctoral.DefaultTable()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	labeler, err := calendar.NewLabeler(opts.Lang)
	if err != nil {
		return nil, fmt.Errorf("build labeler: %w", err)
	}
	years, err := lru.New[int, *calendar.MovableFeasts](opts.YearCacheSize)
	if err != nil {
		return nil, fmt.Errorf("year cache: %w", err)
	}
	days, err := lru.New[string, *DayInfo](opts.DayCacheSize)
	if err != nil {
		return nil, fmt.Errorf("day cache: %w", err)
	}

	return &Service{
		lc:      lunar.NewConverter(opts.TZOffset, opts.LunarCacheSize),
		saints:  opts.Saints,
		labeler: labeler,
		logger:  opts.Logger,
		years:   years,
		days:    days,
	}, nil
}

// Feasts returns the movable-feast set of a Gregorian year, cached.
func (s *Service) Feasts(year int) *calendar.MovableFeasts {
	if f, ok := s.years.Get(year); ok {
		return f
	}
	f := calendar.ComputeYear(year, s.lc)
	s.years.Add(year, f)
	return f
}

// Day resolves one date. Results are memoized; the returned record is
// shared and must not be mutated.
func (s *Service) Day(d time.Time) *DayInfo {
	d = calendar.Normalize(d)
	key := calendar.FormatDate(d)
	if info, ok := s.days.Get(key); ok {
		return info
	}
	info := s.buildDay(d)
	s.days.Add(key, info)
	return info
}

// Range resolves every date from `from` through `to` inclusive.
func (s *Service) Range(from, to time.Time) []*DayInfo {
	from, to = calendar.Normalize(from), calendar.Normalize(to)
	var out []*DayInfo
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, s.Day(d))
	}
	return out
}

// YearDays resolves every date of a Gregorian year.
func (s *Service) YearDays(year int) []*DayInfo {
	return s.Range(calendar.Date(year, time.January, 1), calendar.Date(year, time.December, 31))
}

// InvalidateDays drops the per-date cache. Year-level feast data and
// lunar conversions stay valid; they are keyed by their own year/date.
func (s *Service) InvalidateDays() {
	s.days.Purge()
}

// DayCode returns the lectionary lookup key for a date.
func (s *Service) DayCode(d time.Time) string {
	d = calendar.Normalize(d)
	return calendar.DayCode(d, s.Feasts(d.Year()), s.lc)
}

// Vigil reports the vigil Mass on the evening of a date, if any.
func (s *Service) Vigil(d time.Time) *calendar.VigilInfo {
	d = calendar.Normalize(d)
	return calendar.GetVigilInfo(d, s.Feasts(d.Year()))
}

// Lunar converts a date to the Vietnamese lunar calendar.
func (s *Service) Lunar(d time.Time) lunar.Date {
	return s.lc.ConvertTime(d)
}

func (s *Service) buildDay(d time.Time) *DayInfo {
	f := s.Feasts(d.Year())
	season := f.Season(d)
	ld := s.lc.ConvertTime(d)

	temporal := s.temporalCandidate(d, f, season)
	sanct, saints, transferred := s.sanctoralCandidate(d, f)

	res := precedence.Resolve(temporal, sanct)

	info := &DayInfo{
		Date:         calendar.FormatDate(d),
		Code:         calendar.DayCode(d, f, s.lc),
		Season:       season.String(),
		SeasonName:   season.VietnameseName(),
		WeekLabel:    s.labeler.WeekLabel(d, f, s.lc),
		SundayCycle:  calendar.SundayCycle(d, f),
		WeekdayCycle: calendar.WeekdayCycle(d.Year()),
		Saints:       saints,
		Transferred:  transferred,
		Vigil:        calendar.GetVigilInfo(d, f),
		Lunar:        ld,
		LunarLabel:   ld.String(),
	}

	if ev := tet.EventFor(d, s.lc); ev != nil {
		out := tet.Apply(ev, &res, d, f)
		if out.Celebrated {
			info.Tet = ev
		}
		info.TetNote = out.Note
	}

	info.Celebration = res.Winner
	info.Rank = res.Winner.Rank
	info.Commemorations = res.Commemorations
	info.Reason = res.Reason
	info.Color = res.Winner.Color
	if info.Color == "" {
		info.Color = season.DefaultColor()
	}

	if f.AshWednesdayTransferred &&
		(calendar.SameDay(d, f.AshWednesday) || calendar.SameDay(d, f.AshWednesdayCelebration)) {
		info.AshNote = f.AshTransferNote
	}

	return info
}

// temporalCandidate builds the seasonal celebration of the date with
// its precedence level. The name never reflects Tết: the overlay adds
// that afterwards.
func (s *Service) temporalCandidate(d time.Time, f *calendar.MovableFeasts, season calendar.Season) precedence.Candidate {
	name := s.labeler.WeekLabel(d, f, nil)
	rank, grade := temporalRank(d, f)
	return precedence.Candidate{
		Name:     name,
		Rank:     rank,
		Grade:    grade,
		Category: precedence.CategoryOf(name),
		Color:    temporalColor(d, f, season),
		Source:   "temporal",
	}
}

func temporalRank(d time.Time, f *calendar.MovableFeasts) (int, precedence.Grade) {
	sunday := d.Weekday() == time.Sunday
	switch {
	case f.InTriduum(d):
		return precedence.RankTriduum, precedence.GradeSolemnity
	case calendar.SameDay(d, f.Easter),
		calendar.SameDay(d, f.Christmas),
		calendar.SameDay(d, f.Epiphany),
		calendar.SameDay(d, f.Ascension),
		calendar.SameDay(d, f.Pentecost):
		return precedence.RankHighDay, precedence.GradeSolemnity
	// In a Tết transfer year the rank follows the celebration date,
	// not the nominal Ash Wednesday.
	case calendar.SameDay(d, f.AshWednesdayCelebration):
		return precedence.RankHighDay, precedence.GradeWeekday
	case f.InHolyWeek(d), f.InEasterOctave(d):
		return precedence.RankHighDay, precedence.GradeWeekday
	case sunday && (f.InAdvent(d) || f.InLent(d) || f.InEasterSeason(d)):
		return precedence.RankHighDay, precedence.GradeWeekday
	case calendar.SameDay(d, f.Trinity),
		calendar.SameDay(d, f.CorpusChristi),
		calendar.SameDay(d, f.SacredHeart),
		calendar.SameDay(d, f.ChristKing),
		d.Month() == time.January && d.Day() == 1:
		return precedence.RankSolemnity, precedence.GradeSolemnity
	case calendar.SameDay(d, f.BaptismLord):
		return precedence.RankLordFeast, precedence.GradeFeast
	case calendar.SameDay(d, f.ImmaculateHeart):
		return precedence.RankObligatoryMemorial, precedence.GradeMemorial
	case sunday:
		return precedence.RankSunday, precedence.GradeWeekday
	case d.Month() == time.December && d.Day() >= 17 && d.Day() <= 24,
		f.InChristmasOctave(d),
		f.InLent(d):
		return precedence.RankPrivilegedWeekday, precedence.GradeWeekday
	default:
		return precedence.RankWeekday, precedence.GradeWeekday
	}
}

func temporalColor(d time.Time, f *calendar.MovableFeasts, season calendar.Season) string {
	switch {
	case calendar.SameDay(d, f.PalmSunday),
		calendar.SameDay(d, f.GoodFriday),
		calendar.SameDay(d, f.Pentecost):
		return "red"
	case calendar.SameDay(d, f.Easter),
		calendar.SameDay(d, f.Christmas),
		calendar.SameDay(d, f.Epiphany),
		calendar.SameDay(d, f.Ascension),
		calendar.SameDay(d, f.Trinity),
		calendar.SameDay(d, f.CorpusChristi),
		calendar.SameDay(d, f.SacredHeart),
		calendar.SameDay(d, f.BaptismLord),
		calendar.SameDay(d, f.ChristKing),
		calendar.SameDay(d, f.HolyThursday),
		d.Month() == time.January && d.Day() == 1:
		return "white"
	// Gaudete and Laetare Sundays
	case calendar.SameDay(d, f.AdventStart.AddDate(0, 0, 14)),
		f.InLent(d) && d.Weekday() == time.Sunday &&
			calendar.SameDay(d, calendar.FirstSundayOnOrAfter(f.AshWednesday).AddDate(0, 0, 21)):
		return "rose"
	default:
		return season.DefaultColor()
	}
}

// sanctoralCandidate assembles the fixed-calendar side of the date: the
// strongest competing candidate, the list of saints standing on the
// date, and any solemnity transferred onto it.
func (s *Service) sanctoralCandidate(d time.Time, f *calendar.MovableFeasts) (*precedence.Candidate, []sanctoral.FixedSaint, *sanctoral.Transferred) {
	var (
		cands  []precedence.Candidate
		saints []sanctoral.FixedSaint
	)

	add := func(fs sanctoral.FixedSaint) {
		saints = append(saints, fs)
		cat := precedence.CategoryOf(fs.Name)
		cands = append(cands, precedence.Candidate{
			Name:     fs.Name,
			Rank:     precedence.SanctoralRank(fs.Rank, cat),
			Grade:    precedence.GradeOf(fs.Rank),
			Category: cat,
			Color:    fs.Color,
			Source:   "sanctoral",
		})
	}

	// The plain month-day entry. St Joseph, the Annunciation and the
	// Immaculate Conception are handled through their precomputed
	// movable fields below, so their nominal dates are skipped here.
	if fs, ok := s.saints.LookupDate(d); ok && !ownMoveDate(d) {
		switch {
		case sanctoral.Suppressed(fs, d, f):
			// omitted entirely
		case fs.Rank == sanctoral.RankTrong && transfersAway(d, f):
			// appears on its destination date instead
		default:
			add(fs)
		}
	}

	for _, m := range []struct {
		when  time.Time
		month int
		day   int
	}{
		{f.StJoseph, 3, 19},
		{f.Annunciation, 3, 25},
		{f.ImmaculateConception, 12, 8},
	} {
		if calendar.SameDay(d, m.when) {
			if fs, ok := s.saints.Lookup(m.month, m.day); ok {
				add(fs)
			}
		}
	}

	transferred := sanctoral.TransferredLandingOn(d, s.Feasts, s.saints)
	if transferred != nil {
		cat := precedence.CategoryOf(transferred.Name)
		cands = append(cands, precedence.Candidate{
			Name:     transferred.Name,
			Rank:     precedence.SanctoralRank(transferred.Rank, cat),
			Grade:    precedence.GradeOf(transferred.Rank),
			Category: cat,
			Color:    transferred.Color,
			Source:   "sanctoral",
		})
	}

	if len(cands) == 0 {
		return nil, saints, transferred
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if precedence.Less(c, best) {
			best = c
		}
	}
	return &best, saints, transferred
}

func transfersAway(d time.Time, f *calendar.MovableFeasts) bool {
	_, moved := sanctoral.TransferDestination(d, f)
	return moved
}

func ownMoveDate(d time.Time) bool {
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
