// Package precedence ranks competing celebrations for a single date
// and picks the one that is actually observed.
package precedence

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vntruongson/phungvu-api/internal/sanctoral"
)

// Category weights a candidate for tie-breaking at equal rank.
// Celebrations of the Lord beat Marian ones, which beat saints.
type Category int

const (
	CategoryLord Category = iota
	CategoryMary
	CategorySaint
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryLord:
		return "LORD"
	case CategoryMary:
		return "MARY"
	case CategorySaint:
		return "SAINT"
	default:
		return "OTHER"
	}
}

// CategoryOf classifies a celebration by its Vietnamese title.
func CategoryOf(name string) Category {
	switch {
	case strings.Contains(name, "Chúa"):
		return CategoryLord
	case strings.Contains(name, "Đức Mẹ"),
		strings.Contains(name, "Đức Maria"),
		strings.Contains(name, "Đức Trinh Nữ"):
		return CategoryMary
	case strings.HasPrefix(name, "Thánh"),
		strings.HasPrefix(name, "Các Thánh"),
		strings.HasPrefix(name, "Các Tổng Lãnh"),
		strings.HasPrefix(name, "Các Thiên Thần"):
		return CategorySaint
	default:
		return CategoryOther
	}
}

// Grade is the celebration class, ascending so that a numeric
// comparison reads naturally: higher grade outranks at equal level.
type Grade int

const (
	GradeWeekday Grade = iota
	GradeMemorial
	GradeFeast
	GradeSolemnity
)

func (g Grade) String() string {
	switch g {
	case GradeSolemnity:
		return "solemnity"
	case GradeFeast:
		return "feast"
	case GradeMemorial:
		return "memorial"
	default:
		return "weekday"
	}
}

// Precedence levels of the 13-step table. Temporal candidates are
// assigned directly; sanctoral candidates map through SanctoralRank.
const (
	RankTriduum            = 1
	RankHighDay            = 2 // principal feasts, privileged Sundays, Holy Week, Easter octave
	RankSolemnity          = 3
	RankLordFeast          = 4
	RankSunday             = 5 // Sundays of Christmas season and Ordinary Time
	RankEve                = 6
	RankFeast              = 7
	RankPrivilegedWeekday  = 9 // Dec 17-24, Christmas octave, Lent weekdays
	RankObligatoryMemorial = 10
	RankOptionalMemorial   = 12
	RankWeekday            = 13
)

// SanctoralRank assigns a fixed feast its precedence level. Rank and
// category alone decide it: a solemnity is level 3 whatever the
// season, and a feast of the Lord sits above ordinary feasts.
func SanctoralRank(r sanctoral.Rank, cat Category) int {
	switch r {
	case sanctoral.RankTrong:
		return RankSolemnity
	case sanctoral.RankKinh:
		if cat == CategoryLord {
			return RankLordFeast
		}
		return RankFeast
	case sanctoral.RankNho:
		return RankObligatoryMemorial
	default:
		return RankOptionalMemorial
	}
}

// GradeOf maps a fixed-feast rank to its celebration grade.
func GradeOf(r sanctoral.Rank) Grade {
	switch r {
	case sanctoral.RankTrong:
		return GradeSolemnity
	case sanctoral.RankKinh:
		return GradeFeast
	default:
		return GradeMemorial
	}
}

// Candidate is one celebration competing for a date.
type Candidate struct {
	Name     string   `json:"name"`
	Rank     int      `json:"rank"`
	Grade    Grade    `json:"grade"`
	Category Category `json:"category"`
	Color    string   `json:"color"`
	Source   string   `json:"source"` // temporal, sanctoral or tet
}

// Resolution is the outcome for a date: the observed celebration plus
// anything demoted to a commemoration.
type Resolution struct {
	Winner         Candidate   `json:"winner"`
	Commemorations []Candidate `json:"commemorations"`
	Reason         string      `json:"reason"`
}

// Vietnamese collation gives the final tie-break a stable,
// locale-correct order. The collator buffers internally, so calls are
// serialized.
var (
	collMu sync.Mutex
	coll   = collate.New(language.Vietnamese)
)

func compareNames(a, b string) int {
	collMu.Lock()
	defer collMu.Unlock()
	return coll.CompareString(a, b)
}

// Less orders candidates: ascending rank, then category weight, then
// descending grade, then collated name. The name step makes the order
// total, so equal inputs always resolve identically.
func Less(a, b Candidate) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	if a.Grade != b.Grade {
		return a.Grade > b.Grade
	}
	return compareNames(a.Name, b.Name) < 0
}

// Resolve picks the winner between the temporal celebration and an
// optional sanctoral one, and decides what the loser becomes.
//
// A losing memorial is commemorated only under a winner below feast
// level; against Sundays and solemnities it vanishes. A losing
// solemnity bumped by something at solemnity level or above is still
// noted. Losing feasts are dropped outright.
func Resolve(temporal Candidate, sanct *Candidate) Resolution {
	if sanct == nil {
		return Resolution{Winner: temporal, Reason: "no competing celebration"}
	}

	cands := []Candidate{temporal, *sanct}
	sort.SliceStable(cands, func(i, j int) bool { return Less(cands[i], cands[j]) })

	winner := cands[0]
	res := Resolution{
		Winner: winner,
		Reason: fmt.Sprintf("%s (rank %d) precedes %s (rank %d)",
			winner.Name, winner.Rank, cands[1].Name, cands[1].Rank),
	}
	for _, loser := range cands[1:] {
		if commemorated(loser, winner) {
			res.Commemorations = append(res.Commemorations, loser)
		}
	}
	return res
}

func commemorated(loser, winner Candidate) bool {
	switch loser.Grade {
	case GradeMemorial:
		return winner.Rank > RankEve
	case GradeSolemnity:
		return winner.Rank <= RankSolemnity
	default:
		return false
	}
}
