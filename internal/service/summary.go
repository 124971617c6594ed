package service

import (
	"sort"

	"github.com/tracker-tv/restlens-action/models"
)

// Summarize counts violations per severity. Severities outside the closed
// set are counted as info so that Total always equals the sum of the parts.
func Summarize(violations []models.FlatViolation) models.ViolationSummary {
	var s models.ViolationSummary
	for _, v := range violations {
		switch v.Severity {
		case models.SeverityError:
			s.Error++
		case models.SeverityWarning:
			s.Warning++
		default:
			s.Info++
		}
	}
	s.Total = s.Error + s.Warning + s.Info
	return s
}

// SortViolations returns a copy ordered by severity, then path and line.
func SortViolations(violations []models.FlatViolation) []models.FlatViolation {
	sorted := make([]models.FlatViolation, len(violations))
	copy(sorted, violations)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Line < b.Line
	})
	return sorted
}
