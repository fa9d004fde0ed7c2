// Package tet overlays the Vietnamese lunar new year onto an already
// resolved liturgical day.
package tet

import (
	"fmt"
	"time"

	"github.com/vntruongson/phungvu-api/internal/calendar"
	"github.com/vntruongson/phungvu-api/internal/lunar"
	"github.com/vntruongson/phungvu-api/internal/precedence"
)

// Event is one lunar new year observance falling on a Gregorian date.
type Event struct {
	// Day is 1-3 for Mùng 1 through Mùng 3 and 0 for Giao Thừa.
	Day   int    `json:"day"`
	Name  string `json:"name"`
	Rank  int    `json:"rank"`
	Color string `json:"color"`
	Code  string `json:"code"`
}

// LunarSource is the slice of the lunar converter the overlay needs.
type LunarSource interface {
	ConvertTime(t time.Time) lunar.Date
	DayOfTet(t time.Time) int
	IsNewYearEve(t time.Time) bool
}

// Mass intentions of the three Tết days.
var tetNames = [4]string{
	"",
	"Mùng 1 Tết: Cầu Bình An Cho Năm Mới",
	"Mùng 2 Tết: Kính Nhớ Tổ Tiên, Ông Bà Cha Mẹ",
	"Mùng 3 Tết: Thánh Hóa Công Ăn Việc Làm",
}

// EventFor returns the Tết observance for a date, or nil. Mùng 1-3
// carry solemnity rank; the eve Mass of Giao Thừa ranks below the
// Sundays it can collide with.
func EventFor(d time.Time, lc LunarSource) *Event {
	if n := lc.DayOfTet(d); n > 0 {
		yearName := lunar.YearName(lc.ConvertTime(d).Year)
		return &Event{
			Day:   n,
			Name:  fmt.Sprintf("%s %s", tetNames[n], yearName),
			Rank:  precedence.RankSolemnity,
			Color: "red",
			Code:  fmt.Sprintf("7000%d", n),
		}
	}
	if lc.IsNewYearEve(d) {
		return &Event{
			Day:   0,
			Name:  "Lễ Giao Thừa",
			Rank:  precedence.RankEve,
			Color: "red",
			Code:  "70000",
		}
	}
	return nil
}

// Outcome describes what the overlay did to the day.
type Outcome struct {
	// Celebrated is false when Tết is reduced to a note.
	Celebrated bool
	// Won is true when the Tết Mass replaces the resolved celebration.
	Won bool
	// Rank the event is actually celebrated at after any seasonal
	// demotion.
	EffectiveRank int
	Note          string
}

// Apply decides how a Tết event composes with the resolved liturgical
// day. Inside the Triduum and Holy Week Tết is never celebrated and
// survives only as a note. On Lenten days outside Sunday it is
// celebrated at feast rank. On an Ordinary Time Sunday it wins
// outright. Everywhere else the numeric ranks decide.
//
// When Tết wins, the displaced celebration is pushed into the
// resolution's commemorations and the event becomes the winner.
func Apply(ev *Event, res *precedence.Resolution, d time.Time, f *calendar.MovableFeasts) Outcome {
	if ev == nil {
		return Outcome{}
	}
	d = calendar.Normalize(d)

	if f.InTriduum(d) || f.InHolyWeek(d) {
		return Outcome{
			Celebrated:    false,
			EffectiveRank: ev.Rank,
			Note:          fmt.Sprintf("%s trùng Tuần Thánh, chỉ ghi nhớ, không cử hành phụng vụ", ev.Name),
		}
	}

	rank := ev.Rank
	// Giao Thừa stays an evening Mass; only Mùng 1-3 displace a Sunday.
	ordinarySunday := ev.Day >= 1 && f.InOrdinaryTime(d) && d.Weekday() == time.Sunday

	switch {
	case ordinarySunday:
		// Full solemnity: Tết takes the Sunday.
	case f.InLent(d):
		if rank < precedence.RankFeast {
			rank = precedence.RankFeast
		}
	}

	// Sundays carry weekday grade but rank 5 or better; only genuine
	// weekday placeholders below eve level can be displaced freely.
	placeholder := res.Winner.Grade == precedence.GradeWeekday &&
		res.Winner.Rank > precedence.RankEve

	wins := ordinarySunday || rank <= res.Winner.Rank || placeholder

	out := Outcome{Celebrated: true, Won: wins, EffectiveRank: rank}
	if !wins {
		out.Note = fmt.Sprintf("%s được kính nhớ trong ngày", ev.Name)
		return out
	}

	prev := res.Winner
	res.Winner = precedence.Candidate{
		Name:     ev.Name,
		Rank:     rank,
		Grade:    gradeForRank(rank),
		Category: precedence.CategoryOther,
		Color:    ev.Color,
		Source:   "tet",
	}
	if prev.Name != "" && prev.Name != ev.Name {
		res.Commemorations = append([]precedence.Candidate{prev}, res.Commemorations...)
	}
	res.Reason = fmt.Sprintf("%s (rank %d) overrides %s", ev.Name, rank, prev.Name)
	return out
}

func gradeForRank(rank int) precedence.Grade {
	switch {
	case rank <= precedence.RankSolemnity:
		return precedence.GradeSolemnity
	case rank <= precedence.RankFeast:
		return precedence.GradeFeast
	default:
		return precedence.GradeMemorial
	}
}
