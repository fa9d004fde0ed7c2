// Package lunar converts Gregorian dates to the Vietnamese lunar calendar.
//
// The conversion runs on Julian Day Number arithmetic with truncated
// trigonometric series for new moons and apparent sun longitude, anchored
// on lunar month 11 (the month containing the winter solstice). Results
// are exact for the Vietnamese civil calendar at the configured timezone
// offset (UTC+7 for Vietnam).
package lunar

import (
	"math"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Date is a Vietnamese lunar calendar date.
type Date struct {
	Day   int  `json:"day"`   // 1..30
	Month int  `json:"month"` // 1..12
	Year  int  `json:"year"`
	Leap  bool `json:"leap"` // true if this is the inserted leap month
}

const (
	// synodicMonth is the mean length of a lunation in days.
	synodicMonth = 29.530588853

	// newMoonEpoch is the JDN of the reference new moon (Jan 1900).
	newMoonEpoch = 2415021.076998695

	// leapSearchLimit bounds the leap-month scan. A lunar year has at
	// most 13 lunations; if the sun-longitude sector never repeats
	// within the bound the year is treated as having no leap month.
	leapSearchLimit = 14
)

// Converter converts Gregorian dates to lunar dates. Conversions are
// memoized in a bounded LRU cache because the new-moon search is
// iterative and callers resolve hundreds of dates per rendered year.
type Converter struct {
	tzOffset float64
	cache    *lru.Cache[int, Date]
}

// NewConverter returns a converter for the given timezone offset in
// hours (7 for Vietnam). cacheSize bounds the conversion cache; a
// non-positive size disables caching.
func NewConverter(tzOffset float64, cacheSize int) *Converter {
	c := &Converter{tzOffset: tzOffset}
	if cacheSize > 0 {
		// NewLRU only fails for a non-positive size.
		c.cache, _ = lru.New[int, Date](cacheSize)
	}
	return c
}

// Convert returns the lunar date for the given Gregorian calendar date.
func (c *Converter) Convert(day, month, year int) Date {
	key := year*10000 + month*100 + day
	if c.cache != nil {
		if d, ok := c.cache.Get(key); ok {
			return d
		}
	}
	d := solarToLunar(day, month, year, c.tzOffset)
	if c.cache != nil {
		c.cache.Add(key, d)
	}
	return d
}

// ConvertTime is Convert for a time.Time value.
func (c *Converter) ConvertTime(t time.Time) Date {
	return c.Convert(t.Day(), int(t.Month()), t.Year())
}

// JulianDayNumber returns the JDN at noon for a Gregorian calendar date.
// Dates before the Gregorian reform (JDN 2299161) fall back to the
// Julian calendar formula.
func JulianDayNumber(day, month, year int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jd := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	if jd < 2299161 {
		jd = day + (153*m+2)/5 + 365*y + y/4 - 32083
	}
	return jd
}

// jdnToDate converts a JDN back to Gregorian (or Julian, below the
// reform) calendar day, month, year.
func jdnToDate(jd int) (day, month, year int) {
	var a, b, c int
	if jd > 2299160 {
		a = jd + 32044
		b = (4*a + 3) / 146097
		c = a - (b*146097)/4
	} else {
		b = 0
		c = jd + 32082
	}
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153
	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = b*100 + d - 4800 + m/10
	return day, month, year
}

// newMoonDay returns the JDN of the day the k-th new moon after the
// 1900 epoch falls on, in local time at the given timezone offset.
// The correction series is the truncated trigonometric expansion used
// by the published Vietnamese calendar algorithm.
func newMoonDay(k int, tzOffset float64) int {
	kf := float64(k)
	t := kf / 1236.85 // time in Julian centuries from 1900 January 0.5
	t2 := t * t
	t3 := t2 * t
	dr := math.Pi / 180

	jd1 := 2415020.75933 + 29.53058868*kf + 0.0001178*t2 - 0.000000155*t3
	jd1 += 0.00033 * math.Sin((166.56+132.87*t-0.009173*t2)*dr)

	m := 359.2242 + 29.10535608*kf - 0.0000333*t2 - 0.00000347*t3   // sun's mean anomaly
	mpr := 306.0253 + 385.81691806*kf + 0.0107306*t2 + 0.00001236*t3 // moon's mean anomaly
	f := 21.2964 + 390.67050646*kf - 0.0016528*t2 - 0.00000239*t3    // moon's argument of latitude

	c1 := (0.1734-0.000393*t)*math.Sin(m*dr) + 0.0021*math.Sin(2*dr*m)
	c1 = c1 - 0.4068*math.Sin(mpr*dr) + 0.0161*math.Sin(dr*2*mpr)
	c1 = c1 - 0.0004*math.Sin(dr*3*mpr)
	c1 = c1 + 0.0104*math.Sin(dr*2*f) - 0.0051*math.Sin(dr*(m+mpr))
	c1 = c1 - 0.0074*math.Sin(dr*(m-mpr)) + 0.0004*math.Sin(dr*(2*f+m))
	c1 = c1 - 0.0004*math.Sin(dr*(2*f-m)) - 0.0006*math.Sin(dr*(2*f+mpr))
	c1 = c1 + 0.0010*math.Sin(dr*(2*f-mpr)) + 0.0005*math.Sin(dr*(2*mpr+m))

	var deltat float64
	if t < -11 {
		deltat = 0.001 + 0.000839*t + 0.0002261*t2 - 0.00000845*t3 - 0.000000081*t*t3
	} else {
		deltat = -0.000278 + 0.000265*t + 0.000262*t2
	}

	jdNew := jd1 + c1 - deltat
	return int(jdNew + 0.5 + tzOffset/24)
}

// sunLongitudeSector returns the 30-degree sector (0..11) of the
// apparent sun longitude at local midnight of the given JDN. Sector
// boundaries are the major solar terms; sector 0 starts at the March
// equinox.
func sunLongitudeSector(jdn int, tzOffset float64) int {
	t := (float64(jdn) - 2451545.5 - tzOffset/24) / 36525
	t2 := t * t
	dr := math.Pi / 180

	m := 357.52910 + 35999.05030*t - 0.0001559*t2 - 0.00000048*t*t2
	l0 := 280.46645 + 36000.76983*t + 0.0003032*t2
	dl := (1.914600 - 0.004817*t - 0.000014*t2) * math.Sin(dr*m)
	dl += (0.019993-0.000101*t)*math.Sin(dr*2*m) + 0.000290*math.Sin(dr*3*m)

	l := (l0 + dl) * dr
	l -= 2 * math.Pi * math.Floor(l/(2*math.Pi))
	return int(l / math.Pi * 6)
}

// lunarMonth11 returns the JDN of the first day of the lunar month
// containing the winter solstice of the given solar year.
func lunarMonth11(year int, tzOffset float64) int {
	off := float64(JulianDayNumber(31, 12, year)) - 2415021
	k := int(math.Floor(off / synodicMonth))
	nm := newMoonDay(k, tzOffset)
	if sunLongitudeSector(nm, tzOffset) >= 9 {
		nm = newMoonDay(k-1, tzOffset)
	}
	return nm
}

// leapMonthOffset locates the leap month in a 13-lunation year: the
// first lunation after month 11 whose sun-longitude sector repeats the
// previous one. Returns ok=false if the bounded search does not find a
// repeat, in which case the caller treats the year as having no leap
// month.
func leapMonthOffset(a11 int, tzOffset float64) (int, bool) {
	k := int(math.Floor((float64(a11)-newMoonEpoch)/synodicMonth + 0.5))
	last := 0
	i := 1
	arc := sunLongitudeSector(newMoonDay(k+i, tzOffset), tzOffset)
	for {
		last = arc
		i++
		if i >= leapSearchLimit {
			return 0, false
		}
		arc = sunLongitudeSector(newMoonDay(k+i, tzOffset), tzOffset)
		if arc == last {
			return i - 1, true
		}
	}
}

// solarToLunar implements the published Vietnamese solar-to-lunar
// conversion.
func solarToLunar(day, month, year int, tzOffset float64) Date {
	dayNumber := JulianDayNumber(day, month, year)
	k := int(math.Floor((float64(dayNumber) - newMoonEpoch) / synodicMonth))

	monthStart := newMoonDay(k+1, tzOffset)
	if monthStart > dayNumber {
		monthStart = newMoonDay(k, tzOffset)
	}

	a11 := lunarMonth11(year, tzOffset)
	b11 := a11
	var lunarYear int
	if a11 >= monthStart {
		lunarYear = year
		a11 = lunarMonth11(year-1, tzOffset)
	} else {
		lunarYear = year + 1
		b11 = lunarMonth11(year+1, tzOffset)
	}

	lunarDay := dayNumber - monthStart + 1
	diff := (monthStart - a11) / 29

	leap := false
	lunarMonth := diff + 11
	if b11-a11 > 365 {
		if leapOff, ok := leapMonthOffset(a11, tzOffset); ok && diff >= leapOff {
			lunarMonth = diff + 10
			if diff == leapOff {
				leap = true
			}
		}
	}
	if lunarMonth > 12 {
		lunarMonth -= 12
	}
	if lunarMonth >= 11 && diff < 4 {
		lunarYear--
	}

	return Date{Day: lunarDay, Month: lunarMonth, Year: lunarYear, Leap: leap}
}
