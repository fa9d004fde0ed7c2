package liturgy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vntruongson/phungvu-api/internal/calendar"
	"github.com/vntruongson/phungvu-api/internal/precedence"
)

func testService(t *testing.T) *Service {
	t.Helper()
	s, err := New(Options{})
	require.NoError(t, err)
	return s
}

func day(t *testing.T, s *Service, y int, m time.Month, d int) *DayInfo {
	t.Helper()
	return s.Day(calendar.Date(y, m, d))
}

func TestDay_OrdinaryWeekday(t *testing.T) {
	s := testService(t)
	info := day(t, s, 2025, time.June, 9)

	assert.Equal(t, "5101", info.Code)
	assert.Equal(t, "ordinary", info.Season)
	assert.Equal(t, "green", info.Color)
	assert.Equal(t, precedence.RankWeekday, info.Rank)
	assert.Equal(t, calendar.Cycle("C"), info.SundayCycle)
	assert.Equal(t, 1, info.WeekdayCycle)
	assert.Empty(t, info.Commemorations)
}

func TestDay_MemorialWinsWeekday(t *testing.T) {
	s := testService(t)
	info := day(t, s, 2025, time.August, 27)

	assert.Equal(t, "Thánh Mônica", info.Celebration.Name)
	assert.Equal(t, precedence.RankObligatoryMemorial, info.Rank)
	assert.Equal(t, "white", info.Color)
	require.Len(t, info.Saints, 1)
	assert.Equal(t, "Thánh Mônica", info.Saints[0].Name)
}

func TestDay_SundayBeatsMemorial(t *testing.T) {
	// Jun 1, 2025 is the 7th Sunday of Easter and the memorial of
	// St Justin. The Sunday wins and the memorial is not even noted.
	s := testService(t)
	info := day(t, s, 2025, time.June, 1)

	assert.Equal(t, precedence.RankHighDay, info.Rank)
	assert.NotEqual(t, "Thánh Justinô, tử đạo", info.Celebration.Name)
	assert.Empty(t, info.Commemorations)
}

func TestDay_FeastLosesToOrdinarySunday(t *testing.T) {
	// Sep 21, 2025: St Matthew's feast falls on an Ordinary Time
	// Sunday and disappears for the year.
	s := testService(t)
	info := day(t, s, 2025, time.September, 21)

	assert.Equal(t, precedence.RankSunday, info.Rank)
	assert.Empty(t, info.Commemorations)
}

func TestDay_LordFeastTakesOrdinarySunday(t *testing.T) {
	// Sep 14, 2025: the Exaltation of the Holy Cross is a feast of
	// the Lord and replaces the Ordinary Time Sunday.
	s := testService(t)
	info := day(t, s, 2025, time.September, 14)

	assert.Equal(t, "Suy Tôn Thánh Giá Chúa", info.Celebration.Name)
	assert.Equal(t, precedence.RankLordFeast, info.Rank)
	assert.Equal(t, "red", info.Color)
}

func TestDay_TemporalSolemnities(t *testing.T) {
	s := testService(t)

	trinity := day(t, s, 2025, time.June, 15)
	assert.Equal(t, "Lễ Chúa Ba Ngôi", trinity.Celebration.Name)
	assert.Equal(t, precedence.RankSolemnity, trinity.Rank)
	assert.Equal(t, "white", trinity.Color)

	newYear := day(t, s, 2025, time.January, 1)
	assert.Equal(t, "Lễ Đức Maria, Mẹ Thiên Chúa", newYear.Celebration.Name)
	assert.Equal(t, precedence.RankSolemnity, newYear.Rank)

	goodFriday := day(t, s, 2025, time.April, 18)
	assert.Equal(t, precedence.RankTriduum, goodFriday.Rank)
	assert.Equal(t, "red", goodFriday.Color)
}

func TestDay_TransferredSolemnity(t *testing.T) {
	// Nov 24, 2024 is Christ the King; the Vietnamese Martyrs
	// solemnity moves to Monday.
	s := testService(t)

	sunday := day(t, s, 2024, time.November, 24)
	assert.Equal(t, "Lễ Chúa Kitô Vua Vũ Trụ", sunday.Celebration.Name)
	assert.Empty(t, sunday.Saints)

	monday := day(t, s, 2024, time.November, 25)
	assert.Equal(t, "Các Thánh Tử Đạo Việt Nam", monday.Celebration.Name)
	assert.Equal(t, precedence.RankSolemnity, monday.Rank)
	require.NotNil(t, monday.Transferred)
	assert.Equal(t, "2024-11-24", calendar.FormatDate(monday.Transferred.OriginalDate))
}

func TestDay_SuppressedMemorial(t *testing.T) {
	// Mar 7, 2025 is a Lenten Friday; the memorial of Perpetua and
	// Felicity is omitted entirely.
	s := testService(t)
	info := day(t, s, 2025, time.March, 7)

	assert.Empty(t, info.Saints)
	assert.Equal(t, precedence.RankPrivilegedWeekday, info.Rank)
	assert.Equal(t, "purple", info.Color)
}

func TestDay_Tet(t *testing.T) {
	s := testService(t)

	mung1 := day(t, s, 2024, time.February, 10)
	require.NotNil(t, mung1.Tet)
	assert.Equal(t, 1, mung1.Tet.Day)
	assert.Equal(t, "tet", mung1.Celebration.Source)
	assert.Contains(t, mung1.Celebration.Name, "Giáp Thìn")
	assert.Equal(t, "70001", mung1.Code)
	require.NotEmpty(t, mung1.Commemorations)

	eve := day(t, s, 2024, time.February, 9)
	require.NotNil(t, eve.Tet)
	assert.Equal(t, 0, eve.Tet.Day)
}

func TestDay_AshTetTransferYear(t *testing.T) {
	// 2026: Ash Wednesday falls on Mùng 2 Tết; the celebration moves
	// to Friday while Lent still starts Wednesday.
	s := testService(t)

	wed := day(t, s, 2026, time.February, 18)
	assert.Equal(t, "70002", wed.Code)
	assert.NotEmpty(t, wed.AshNote)
	assert.Equal(t, "lent", wed.Season)
	// The Tết Mass is kept (at feast rank) because the Ash Wednesday
	// celebration moved off this date.
	assert.Equal(t, "tet", wed.Celebration.Source)
	assert.Equal(t, precedence.RankFeast, wed.Rank)

	fri := day(t, s, 2026, time.February, 20)
	assert.Equal(t, "3004", fri.Code)
	assert.NotEmpty(t, fri.AshNote)
	assert.Equal(t, "Thứ Tư Lễ Tro", fri.Celebration.Name)
	assert.Equal(t, precedence.RankHighDay, fri.Rank)
}

func TestDay_Vigil(t *testing.T) {
	s := testService(t)
	info := day(t, s, 2025, time.December, 24)
	require.NotNil(t, info.Vigil)
	assert.True(t, info.Vigil.HasVigil)
	assert.Equal(t, "Lễ Vọng Giáng Sinh", info.Vigil.VigilName)
}

func TestDay_Idempotent(t *testing.T) {
	s := testService(t)
	d := calendar.Date(2025, time.November, 24)

	first := s.Day(d)
	assert.Same(t, first, s.Day(d))

	s.InvalidateDays()
	rebuilt := s.Day(d)
	assert.NotSame(t, first, rebuilt)
	assert.Equal(t, first, rebuilt)
}

func TestRange(t *testing.T) {
	s := testService(t)
	days := s.Range(calendar.Date(2025, time.April, 18), calendar.Date(2025, time.April, 21))
	require.Len(t, days, 4)
	assert.Equal(t, "2025-04-18", days[0].Date)
	assert.Equal(t, "2025-04-21", days[3].Date)
}

func TestYearDays(t *testing.T) {
	s := testService(t)
	days := s.YearDays(2025)
	assert.Len(t, days, 365)
	for _, d := range days {
		assert.NotEmpty(t, d.Code, d.Date)
		assert.NotEmpty(t, d.Celebration.Name, d.Date)
	}
}

func TestEnglishLabels(t *testing.T) {
	s, err := New(Options{Lang: "en"})
	require.NoError(t, err)
	info := s.Day(calendar.Date(2025, time.April, 20))
	assert.Equal(t, "Easter Sunday", info.WeekLabel)
}
