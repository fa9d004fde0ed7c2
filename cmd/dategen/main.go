// dategen prints the resolved liturgical calendar of a year, or checks
// that every date of a year range classifies cleanly.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/vntruongson/phungvu-api/internal/calendar"
	"github.com/vntruongson/phungvu-api/internal/liturgy"
	"github.com/vntruongson/phungvu-api/internal/lunar"
)

func main() {
	var (
		year  = flag.Int("year", time.Now().Year(), "Gregorian year to generate")
		lang  = flag.String("lang", "vi", "label language (vi or en)")
		check = flag.Bool("check", false, "verify every date classifies instead of printing")
		until = flag.Int("until", 0, "with -check, verify every year through this one")
	)
	flag.Parse()

	svc, err := liturgy.New(liturgy.Options{Lang: *lang})
	if err != nil {
		slog.Error("setup failed", slog.Any("error", err))
		os.Exit(1)
	}

	if *check {
		last := *until
		if last < *year {
			last = *year
		}
		if !runCheck(svc, *year, last) {
			os.Exit(1)
		}
		return
	}

	for _, day := range svc.YearDays(*year) {
		line := fmt.Sprintf("%s  %-6s %-9s %-7s %s",
			day.Date, day.Code, day.Season, day.Color, day.Celebration.Name)
		for _, c := range day.Commemorations {
			line += fmt.Sprintf("  [%s]", c.Name)
		}
		fmt.Println(line)
	}
}

// runCheck walks every date of the year range and reports dates that
// fail to classify or resolve.
func runCheck(svc *liturgy.Service, from, to int) bool {
	lc := lunar.NewConverter(7, 4096)
	ok := true
	days := 0

	for year := from; year <= to; year++ {
		f := svc.Feasts(year)
		end := calendar.Date(year, time.December, 31)
		for d := calendar.Date(year, time.January, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
			days++
			code, rule := calendar.ClassifyDay(d, f, lc)
			if code == "" || rule == "" {
				fmt.Fprintf(os.Stderr, "%s: no code rule fired\n", calendar.FormatDate(d))
				ok = false
				continue
			}
			info := svc.Day(d)
			if info.Celebration.Name == "" {
				fmt.Fprintf(os.Stderr, "%s: empty celebration\n", calendar.FormatDate(d))
				ok = false
			}
		}
	}

	if ok {
		fmt.Printf("checked %d days across %d-%d: all classified\n", days, from, to)
	}
	return ok
}
