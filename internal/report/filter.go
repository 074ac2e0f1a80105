// Package report provides report querying, summaries and presentation.
package report

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/bryan-cox/reportledger/internal/model"
)

// Criteria narrows a report list. The zero value matches every report.
type Criteria struct {
	Search string
	Status model.Status
}

// Reset clears both the search term and the status filter.
func (c *Criteria) Reset() {
	*c = Criteria{}
}

// IsZero reports whether the criteria filter nothing.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Status == ""
}

// Filter returns the reports matching both the search term and the status
// filter, in input order. The input slice is not modified. When nothing
// matches the result is empty but non-nil.
func Filter(reports []model.Report, c Criteria) []model.Report {
	fold := cases.Fold()
	needle := fold.String(c.Search)

	matched := make([]model.Report, 0, len(reports))
	for _, r := range reports {
		if matchesSearch(fold, r, needle) && matchesStatus(r, c.Status) {
			matched = append(matched, r)
		}
	}
	return matched
}

// matchesSearch reports whether the folded needle occurs in the report's
// title or description. An empty needle matches everything.
func matchesSearch(fold cases.Caser, r model.Report, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold.String(r.Title), needle) ||
		strings.Contains(fold.String(r.Description), needle)
}

func matchesStatus(r model.Report, status model.Status) bool {
	return status == "" || r.Status == status
}
