// Package ics renders a year of resolved liturgical days as an
// iCalendar feed.
package ics

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/vntruongson/phungvu-api/internal/calendar"
	"github.com/vntruongson/phungvu-api/internal/liturgy"
	"github.com/vntruongson/phungvu-api/internal/precedence"
)

const (
	prodID  = "-//phungvu-api//Lich Phung Vu//VI"
	calName = "Lịch Phụng Vụ Công Giáo Việt Nam"
)

// Generator turns liturgy day records into an ICS document.
type Generator struct {
	svc *liturgy.Service
}

func NewGenerator(svc *liturgy.Service) *Generator {
	return &Generator{svc: svc}
}

// Year encodes the calendar feed of one Gregorian year. Plain
// weekdays are left out; every Sunday and every day with a celebration
// above weekday grade gets an all-day event.
func (g *Generator) Year(year int) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText("X-WR-CALNAME", fmt.Sprintf("%s %d", calName, year))
	cal.Props.SetText("CALSCALE", "GREGORIAN")

	now := time.Now().UTC()

	for _, day := range g.svc.YearDays(year) {
		if !notable(day) {
			continue
		}
		d, err := calendar.ParseDateString(day.Date)
		if err != nil {
			return nil, fmt.Errorf("bad day record %q: %w", day.Date, err)
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@phungvu", day.Date))
		event.Props.SetText(ical.PropSummary, day.Celebration.Name)
		event.Props.SetText(ical.PropDescription, describe(day))

		dtStart := ical.NewProp(ical.PropDateTimeStart)
		dtStart.SetDate(d)
		event.Props.Set(dtStart)

		dtStamp := ical.NewProp(ical.PropDateTimeStamp)
		dtStamp.SetDateTime(now)
		event.Props.Set(dtStamp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func notable(day *liturgy.DayInfo) bool {
	if day.Celebration.Grade != precedence.GradeWeekday {
		return true
	}
	d, err := calendar.ParseDateString(day.Date)
	return err == nil && d.Weekday() == time.Sunday
}

func describe(day *liturgy.DayInfo) string {
	parts := []string{day.WeekLabel, day.LunarLabel}
	for _, c := range day.Commemorations {
		parts = append(parts, "Kính nhớ: "+c.Name)
	}
	if day.TetNote != "" {
		parts = append(parts, day.TetNote)
	}
	if day.AshNote != "" {
		parts = append(parts, day.AshNote)
	}
	if day.Vigil != nil {
		parts = append(parts, "Lễ vọng: "+day.Vigil.VigilName)
	}
	return strings.Join(parts, "\n")
}
