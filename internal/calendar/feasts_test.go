package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vntruongson/phungvu-api/internal/lunar"
)

func testLunar() *lunar.Converter {
	return lunar.NewConverter(7, 1024)
}

func TestCalculateEaster_KnownYears(t *testing.T) {
	// Published Gregorian Easter dates.
	known := map[int]string{
		2000: "2000-04-23", 2001: "2001-04-15", 2002: "2002-03-31",
		2003: "2003-04-20", 2004: "2004-04-11", 2005: "2005-03-27",
		2006: "2006-04-16", 2007: "2007-04-08", 2008: "2008-03-23",
		2009: "2009-04-12", 2010: "2010-04-04", 2011: "2011-04-24",
		2012: "2012-04-08", 2013: "2013-03-31", 2014: "2014-04-20",
		2015: "2015-04-05", 2016: "2016-03-27", 2017: "2017-04-16",
		2018: "2018-04-01", 2019: "2019-04-21", 2020: "2020-04-12",
		2021: "2021-04-04", 2022: "2022-04-17", 2023: "2023-04-09",
		2024: "2024-03-31", 2025: "2025-04-20", 2026: "2026-04-05",
		2027: "2027-03-28", 2028: "2028-04-16", 2029: "2029-04-01",
		2030: "2030-04-21",
	}
	for year, want := range known {
		got := FormatDate(CalculateEaster(year))
		assert.Equal(t, want, got, "easter %d", year)
	}
}

func TestComputeYear_AnchorOffsets(t *testing.T) {
	for year := 1990; year <= 2050; year++ {
		f := ComputeYear(year, nil)

		assert.Equal(t, f.Easter.AddDate(0, 0, -46), f.AshWednesday, "%d ash", year)
		assert.Equal(t, f.Easter.AddDate(0, 0, -7), f.PalmSunday, "%d palm", year)
		assert.Equal(t, f.Easter.AddDate(0, 0, -2), f.GoodFriday, "%d good friday", year)
		assert.Equal(t, f.Easter.AddDate(0, 0, 39), f.Ascension, "%d ascension", year)
		assert.Equal(t, f.Easter.AddDate(0, 0, 49), f.Pentecost, "%d pentecost", year)
		assert.Equal(t, f.Pentecost.AddDate(0, 0, 7), f.Trinity, "%d trinity", year)
		assert.Equal(t, f.Trinity.AddDate(0, 0, 7), f.CorpusChristi, "%d corpus", year)
		assert.Equal(t, f.CorpusChristi.AddDate(0, 0, 5), f.SacredHeart, "%d sacred heart", year)
		assert.Equal(t, f.SacredHeart.AddDate(0, 0, 1), f.ImmaculateHeart, "%d imm heart", year)

		assert.Equal(t, time.Sunday, f.AdventStart.Weekday(), "%d advent weekday", year)
		assert.Equal(t, f.AdventStart.AddDate(0, 0, -7), f.ChristKing, "%d christ king", year)
		assert.Equal(t, f.ChristKing.AddDate(0, 0, -7), f.VietnameseMartyrs, "%d martyrs", year)

		// Advent has exactly four Sundays before Christmas.
		fourth := f.AdventStart.AddDate(0, 0, 21)
		assert.True(t, fourth.Before(f.Christmas), "%d fourth advent sunday", year)
		assert.True(t, f.Christmas.Sub(fourth).Hours() <= 7*24, "%d advent span", year)

		assert.Equal(t, time.Sunday, f.Epiphany.Weekday(), "%d epiphany weekday", year)
	}
}

func TestComputeYear_AdventStart(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2022, "2022-11-27"}, // Christmas on Sunday
		{2023, "2023-12-03"},
		{2024, "2024-12-01"},
		{2025, "2025-11-30"},
	}
	for _, tt := range tests {
		f := ComputeYear(tt.year, nil)
		assert.Equal(t, tt.want, FormatDate(f.AdventStart), "advent %d", tt.year)
	}
}

func TestComputeYear_EpiphanyAndBaptism(t *testing.T) {
	tests := []struct {
		year         int
		epiphany     string
		baptism      string
	}{
		{2023, "2023-01-08", "2023-01-09"}, // Jan 1 Sunday: Epiphany Jan 8, Baptism Monday
		{2024, "2024-01-07", "2024-01-08"}, // Epiphany Jan 7: Baptism Monday after
		{2025, "2025-01-05", "2025-01-12"}, // Baptism the Sunday one week later
	}
	for _, tt := range tests {
		f := ComputeYear(tt.year, nil)
		assert.Equal(t, tt.epiphany, FormatDate(f.Epiphany), "epiphany %d", tt.year)
		assert.Equal(t, tt.baptism, FormatDate(f.BaptismLord), "baptism %d", tt.year)
	}
}

func TestComputeYear_TetTransfer(t *testing.T) {
	lc := testLunar()

	// Ash Wednesday 2026 (Feb 18) falls on Mùng 2 Tết Bính Ngọ.
	f := ComputeYear(2026, lc)
	require.True(t, f.AshWednesdayTransferred)
	assert.Equal(t, "2026-02-18", FormatDate(f.AshWednesday))
	assert.Equal(t, "2026-02-20", FormatDate(f.AshWednesdayCelebration))
	assert.NotEmpty(t, f.AshTransferNote)

	// The celebration lands on Mùng 4 of the same lunar year.
	ld := lc.Convert(20, 2, 2026)
	assert.Equal(t, lunar.Date{Day: 4, Month: 1, Year: 2026}, ld)

	// Ordinary years keep the celebration on Ash Wednesday itself.
	for _, year := range []int{2023, 2024, 2025, 2027} {
		f := ComputeYear(year, lc)
		assert.False(t, f.AshWednesdayTransferred, "year %d", year)
		assert.Equal(t, f.AshWednesday, f.AshWednesdayCelebration, "year %d", year)
	}
}

func TestComputeYear_MovedSolemnities(t *testing.T) {
	// 2024: Easter Mar 31, Palm Sunday Mar 24. Mar 25 falls on Holy
	// Monday, so the Annunciation moves to the Monday after the Easter
	// octave (Apr 8); St Joseph's Mar 19 stands (Tuesday before Palm
	// Sunday).
	f := ComputeYear(2024, nil)
	assert.Equal(t, "2024-04-08", FormatDate(f.Annunciation))
	assert.Equal(t, "2024-03-19", FormatDate(f.StJoseph))

	// 2027: Easter Mar 28, Palm Sunday Mar 21. Mar 19 is the Friday
	// before Palm Sunday and stands; Mar 25 is within Holy Week.
	f = ComputeYear(2027, nil)
	assert.Equal(t, "2027-03-19", FormatDate(f.StJoseph))
	assert.Equal(t, "2027-04-05", FormatDate(f.Annunciation))

	// 2023: Mar 19 falls on a Sunday of Lent, yielding one day.
	f = ComputeYear(2023, nil)
	assert.Equal(t, "2023-03-20", FormatDate(f.StJoseph))

	// 2024: Dec 8 falls on a Sunday (2nd of Advent), moving to Dec 9.
	f = ComputeYear(2024, nil)
	assert.Equal(t, "2024-12-09", FormatDate(f.ImmaculateConception))
	// 2023: Dec 8 is a Friday and stands.
	f = ComputeYear(2023, nil)
	assert.Equal(t, "2023-12-08", FormatDate(f.ImmaculateConception))
}

func TestSeasonMembership(t *testing.T) {
	f := ComputeYear(2025, nil)

	assert.Equal(t, SeasonLent, f.Season(Date(2025, time.March, 10)))
	assert.Equal(t, SeasonEaster, f.Season(Date(2025, time.May, 1)))
	assert.Equal(t, SeasonOrdinary, f.Season(Date(2025, time.July, 4)))
	assert.Equal(t, SeasonAdvent, f.Season(Date(2025, time.December, 10)))
	assert.Equal(t, SeasonChristmas, f.Season(Date(2025, time.December, 26)))
	assert.Equal(t, SeasonChristmas, f.Season(Date(2025, time.January, 3)))
	assert.Equal(t, SeasonOrdinary, f.Season(Date(2025, time.January, 20)))

	assert.True(t, f.InTriduum(Date(2025, time.April, 18)))  // Good Friday
	assert.True(t, f.InTriduum(Date(2025, time.April, 20)))  // Easter
	assert.False(t, f.InTriduum(Date(2025, time.April, 21))) // Easter Monday
	assert.True(t, f.InHolyWeek(Date(2025, time.April, 13))) // Palm Sunday
	assert.False(t, f.InHolyWeek(Date(2025, time.April, 20)))
	assert.True(t, f.InEasterOctave(Date(2025, time.April, 27))) // Divine Mercy
	assert.False(t, f.InEasterOctave(Date(2025, time.April, 28)))
	assert.True(t, f.InChristmasOctave(Date(2025, time.January, 1)))
	assert.False(t, f.InChristmasOctave(Date(2025, time.January, 2)))
}
