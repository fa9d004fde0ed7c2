package calendar

// Season represents a liturgical season. The numeric value doubles as
// the leading digit of season-week-weekday day codes.
type Season int

const (
	SeasonAdvent    Season = 1
	SeasonChristmas Season = 2
	SeasonLent      Season = 3
	SeasonEaster    Season = 4
	SeasonOrdinary  Season = 5
)

// String returns the season identifier used in API payloads.
func (s Season) String() string {
	switch s {
	case SeasonAdvent:
		return "advent"
	case SeasonChristmas:
		return "christmas"
	case SeasonLent:
		return "lent"
	case SeasonEaster:
		return "easter"
	case SeasonOrdinary:
		return "ordinary"
	default:
		return "unknown"
	}
}

// VietnameseName returns the conventional Vietnamese season name.
func (s Season) VietnameseName() string {
	switch s {
	case SeasonAdvent:
		return "Mùa Vọng"
	case SeasonChristmas:
		return "Mùa Giáng Sinh"
	case SeasonLent:
		return "Mùa Chay"
	case SeasonEaster:
		return "Mùa Phục Sinh"
	case SeasonOrdinary:
		return "Mùa Thường Niên"
	default:
		return ""
	}
}

// DefaultColor returns the liturgical color worn on an unadorned day of
// the season.
func (s Season) DefaultColor() string {
	switch s {
	case SeasonAdvent, SeasonLent:
		return "purple"
	case SeasonChristmas, SeasonEaster:
		return "white"
	default:
		return "green"
	}
}
