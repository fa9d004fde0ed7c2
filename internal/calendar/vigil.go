package calendar

import "time"

// VigilInfo describes the distinct vigil Mass some solemnities carry on
// their eve.
type VigilInfo struct {
	HasVigil      bool   `json:"has_vigil"`
	VigilName     string `json:"vigil_name"`
	VigilCode     string `json:"vigil_code"`
	MainFeastCode string `json:"main_feast_code"`
}

// GetVigilInfo reports whether the evening of the given date carries a
// vigil Mass. Four solemnities have one: Christmas, Easter, Pentecost
// and All Saints.
func GetVigilInfo(d time.Time, f *MovableFeasts) *VigilInfo {
	d = Normalize(d)
	switch {
	case d.Month() == time.December && d.Day() == 24:
		return &VigilInfo{
			HasVigil:      true,
			VigilName:     "Lễ Vọng Giáng Sinh",
			VigilCode:     DayMonthCode(d),
			MainFeastCode: DayMonthCode(f.Christmas),
		}
	case SameDay(d, f.Easter.AddDate(0, 0, -1)):
		return &VigilInfo{
			HasVigil:      true,
			VigilName:     "Canh Thức Vượt Qua",
			VigilCode:     "3066",
			MainFeastCode: seasonWeekCode(SeasonEaster, 1, time.Sunday),
		}
	case SameDay(d, f.Pentecost.AddDate(0, 0, -1)):
		return &VigilInfo{
			HasVigil:      true,
			VigilName:     "Lễ Vọng Chúa Thánh Thần",
			VigilCode:     CodePentecostVigil,
			MainFeastCode: CodePentecost,
		}
	case d.Month() == time.October && d.Day() == 31:
		return &VigilInfo{
			HasVigil:      true,
			VigilName:     "Lễ Vọng Các Thánh",
			VigilCode:     SanctoralCode(d),
			MainFeastCode: SanctoralCode(Date(d.Year(), time.November, 1)),
		}
	}
	return nil
}
