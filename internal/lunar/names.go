package lunar

import "fmt"

// Thiên can (heavenly stems) and địa chi (earthly branches) for the
// sexagenary year cycle.
var (
	heavenlyStems = [10]string{
		"Giáp", "Ất", "Bính", "Đinh", "Mậu",
		"Kỷ", "Canh", "Tân", "Nhâm", "Quý",
	}
	earthlyBranches = [12]string{
		"Tý", "Sửu", "Dần", "Mão", "Thìn", "Tỵ",
		"Ngọ", "Mùi", "Thân", "Dậu", "Tuất", "Hợi",
	}
	monthNames = [12]string{
		"Giêng", "Hai", "Ba", "Tư", "Năm", "Sáu",
		"Bảy", "Tám", "Chín", "Mười", "Mười Một", "Chạp",
	}
)

// YearName returns the can-chi name of a lunar year, e.g. "Giáp Thìn"
// for 2024.
func YearName(lunarYear int) string {
	stem := heavenlyStems[(lunarYear+6)%10]
	branch := earthlyBranches[(lunarYear+8)%12]
	return stem + " " + branch
}

// MonthName returns the Vietnamese name of a lunar month, e.g.
// "Tháng Giêng" for month 1 or "Tháng Chạp" for month 12. Leap months
// carry the "nhuận" suffix.
func MonthName(month int, leap bool) string {
	if month < 1 || month > 12 {
		return ""
	}
	name := "Tháng " + monthNames[month-1]
	if leap {
		name += " nhuận"
	}
	return name
}

// String renders the lunar date in the conventional day/month/year
// form with the can-chi year name, e.g. "1/1 Giáp Thìn".
func (d Date) String() string {
	if d.Leap {
		return fmt.Sprintf("%d/%d (nhuận) %s", d.Day, d.Month, YearName(d.Year))
	}
	return fmt.Sprintf("%d/%d %s", d.Day, d.Month, YearName(d.Year))
}
