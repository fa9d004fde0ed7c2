package lunar

import "time"

// DayOfTet reports which day of Tết the given Gregorian date is:
// 1 for Mùng 1, 2 for Mùng 2, 3 for Mùng 3, and 0 for any other day.
func (c *Converter) DayOfTet(t time.Time) int {
	d := c.ConvertTime(t)
	if d.Month == 1 && !d.Leap && d.Day >= 1 && d.Day <= 3 {
		return d.Day
	}
	return 0
}

// IsNewYearEve reports whether the given date is Giao Thừa, the last
// day of the lunar year (lunar month 12, non-leap, with Mùng 1 Tết
// falling on the following day).
func (c *Converter) IsNewYearEve(t time.Time) bool {
	today := c.ConvertTime(t)
	if today.Month != 12 || today.Leap {
		return false
	}
	tomorrow := c.ConvertTime(t.AddDate(0, 0, 1))
	return tomorrow.Month == 1 && !tomorrow.Leap && tomorrow.Day == 1
}

// IsFirstDayOfMonth reports whether the date is the first day of a
// lunar month (a new-moon day in the civil calendar).
func (c *Converter) IsFirstDayOfMonth(t time.Time) bool {
	return c.ConvertTime(t).Day == 1
}
