package calendar

import (
	"embed"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/vntruongson/phungvu-api/internal/lunar"
)

//go:embed locales/*.json
var localeFS embed.FS

// Labeler renders human-readable week descriptions and notes in the
// requested language. Vietnamese is the canonical locale; English is
// provided for API consumers.
type Labeler struct {
	loc *i18n.Localizer
}

// NewLabeler builds a labeler for the given BCP 47 language tag.
// Unknown tags fall back to Vietnamese.
func NewLabeler(lang string) (*Labeler, error) {
	bundle := i18n.NewBundle(language.Vietnamese)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, name := range []string{"locales/active.vi.json", "locales/active.en.json"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", name, err)
		}
	}
	return &Labeler{loc: i18n.NewLocalizer(bundle, lang, "vi")}, nil
}

// msg localizes a message ID with optional template data, falling back
// to the ID itself if the message is missing from every bundle.
func (l *Labeler) msg(id string, data map[string]any) string {
	s, err := l.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return s
}

// romanNumerals covers liturgical week numbers 1-34.
func romanNumeral(n int) string {
	if n < 1 || n > 39 {
		return strconv.Itoa(n)
	}
	tens := []string{"", "X", "XX", "XXX"}
	ones := []string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}
	return tens[n/10] + ones[n%10]
}

// WeekLabel produces the human-readable description of a date's place
// in the liturgical year, e.g. "Tuần III Mùa Chay" or "Tuần Bát Nhật
// Phục Sinh". Named high feasts take precedence over week naming.
func (l *Labeler) WeekLabel(d time.Time, f *MovableFeasts, lc LunarSource) string {
	d = Normalize(d)

	if lc != nil {
		if n := lc.DayOfTet(d); n >= 1 && n <= 3 {
			ld := lc.Convert(d.Day(), int(d.Month()), d.Year())
			return l.msg("TetDay", map[string]any{"N": n, "YearName": lunar.YearName(ld.Year)})
		}
		if lc.IsNewYearEve(d) {
			return l.msg("NewYearEve", nil)
		}
	}

	if id, ok := namedFeastID(d, f); ok {
		return l.msg(id, nil)
	}

	switch {
	case f.InChristmasOctave(d):
		return l.msg("ChristmasOctave", nil)
	case f.InHolyWeek(d):
		return l.msg("HolyWeek", nil)
	case f.InEasterOctave(d):
		return l.msg("EasterOctave", nil)
	case d.Month() == time.December && d.Day() >= 17 && d.Day() <= 24 && d.Weekday() != time.Sunday:
		return l.msg("AdventFinalWeek", nil)
	case d.After(f.Epiphany) && d.Before(f.BaptismLord):
		return l.msg("AfterEpiphany", map[string]any{"N": DaysBetween(f.Epiphany, d)})
	}

	// Regular weeks: recover season and week from the day code.
	code := DayCode(d, f, lc)
	if len(code) == 4 && code[0] >= '1' && code[0] <= '5' {
		season := Season(code[0] - '0')
		week, err := strconv.Atoi(code[1:3])
		if err == nil && week > 0 {
			return l.msg("WeekOfSeason", map[string]any{
				"Week":   romanNumeral(week),
				"Season": l.msg("Season"+seasonKey(season), nil),
			})
		}
	}
	return l.msg("SeasonChristmas", nil)
}

// namedFeastID matches the date against the high feasts that replace
// week naming.
func namedFeastID(d time.Time, f *MovableFeasts) (string, bool) {
	switch {
	case SameDay(d, f.Christmas):
		return "FeastChristmas", true
	case d.Month() == time.January && d.Day() == 1:
		return "FeastMaryMotherOfGod", true
	case SameDay(d, f.Epiphany):
		return "FeastEpiphany", true
	case SameDay(d, f.BaptismLord):
		return "FeastBaptism", true
	case SameDay(d, f.AshWednesdayCelebration) && f.InLent(d):
		return "AshWednesday", true
	case SameDay(d, f.PalmSunday):
		return "PalmSunday", true
	case SameDay(d, f.HolyThursday):
		return "HolyThursday", true
	case SameDay(d, f.GoodFriday):
		return "GoodFriday", true
	case SameDay(d, f.Easter.AddDate(0, 0, -1)):
		return "HolySaturday", true
	case SameDay(d, f.Easter):
		return "FeastEaster", true
	case SameDay(d, f.Ascension):
		return "FeastAscension", true
	case SameDay(d, f.Pentecost):
		return "FeastPentecost", true
	case SameDay(d, f.Trinity):
		return "FeastTrinity", true
	case SameDay(d, f.CorpusChristi):
		return "FeastCorpusChristi", true
	case SameDay(d, f.SacredHeart):
		return "FeastSacredHeart", true
	case SameDay(d, f.ImmaculateHeart):
		return "FeastImmaculateHeart", true
	case SameDay(d, f.ChristKing):
		return "FeastChristKing", true
	case SameDay(d, f.VietnameseMartyrs):
		return "FeastVietnameseMartyrs", true
	}
	return "", false
}

func seasonKey(s Season) string {
	switch s {
	case SeasonAdvent:
		return "Advent"
	case SeasonChristmas:
		return "Christmas"
	case SeasonLent:
		return "Lent"
	case SeasonEaster:
		return "Easter"
	default:
		return "Ordinary"
	}
}
