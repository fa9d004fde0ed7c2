package database

// ReadingRef points into the external lectionary text tables for one
// day code. Cycle is "A"/"B"/"C" for Sundays, "1"/"2" for weekdays, or
// empty when the readings do not vary by cycle.
type ReadingRef struct {
	ID            int64  `json:"id"`
	DayCode       string `json:"day_code"`
	Cycle         string `json:"cycle,omitempty"`
	FirstReading  string `json:"first_reading,omitempty"`
	Psalm         string `json:"psalm,omitempty"`
	SecondReading string `json:"second_reading,omitempty"`
	Alleluia      string `json:"alleluia,omitempty"`
	Gospel        string `json:"gospel,omitempty"`
}

// SaintRow is one imported sanctoral override.
type SaintRow struct {
	ID    int64  `json:"id"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Name  string `json:"name"`
	Rank  string `json:"rank"`
	Color string `json:"color"`
}
