package report

import (
	"sort"
	"time"

	"github.com/bryan-cox/reportledger/internal/model"
)

// DefaultRecent is the number of recent reports shown on the dashboard.
const DefaultRecent = 5

// Summary holds the dashboard figures for a set of reports.
type Summary struct {
	Total    int
	ByStatus map[model.Status]int

	// Growth is the month-over-month change, in percent, of the number of
	// reports dated in the latest month versus the month before it.
	// HasGrowth is false when the previous month has no reports.
	Growth    float64
	HasGrowth bool

	Recent []model.Report
}

// Summarize computes dashboard figures. The recent list holds at most recent
// reports, newest date first, ties broken by higher id.
func Summarize(reports []model.Report, recent int) Summary {
	s := Summary{
		Total:    len(reports),
		ByStatus: make(map[model.Status]int, len(model.Statuses)),
	}
	for _, status := range model.Statuses {
		s.ByStatus[status] = 0
	}

	perMonth := make(map[time.Time]int)
	var latest time.Time
	for _, r := range reports {
		s.ByStatus[r.Status]++
		if r.Date.IsZero() {
			continue
		}
		month := monthOf(r.Date)
		perMonth[month]++
		if month.After(latest) {
			latest = month
		}
	}

	if !latest.IsZero() {
		previous := perMonth[latest.AddDate(0, -1, 0)]
		if previous > 0 {
			s.Growth = float64(perMonth[latest]-previous) / float64(previous) * 100
			s.HasGrowth = true
		}
	}

	s.Recent = mostRecent(reports, recent)
	return s
}

func monthOf(d model.Date) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func mostRecent(reports []model.Report, n int) []model.Report {
	if n <= 0 {
		return []model.Report{}
	}
	sorted := make([]model.Report, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date.Time)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
