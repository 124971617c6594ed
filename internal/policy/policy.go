// Package policy decides whether a run passes given its violation counts.
package policy

import (
	"fmt"
	"strings"

	"github.com/tracker-tv/restlens-action/models"
)

// Evaluate applies the thresholds. Info violations never fail a run.
func Evaluate(summary models.ViolationSummary, th models.Thresholds) models.GateDecision {
	var exceeded []models.ThresholdBreach
	if th.FailOnError && summary.Error > 0 {
		exceeded = append(exceeded, models.ThresholdBreach{Severity: models.SeverityError, Count: summary.Error})
	}
	if th.FailOnWarning && summary.Warning > 0 {
		exceeded = append(exceeded, models.ThresholdBreach{Severity: models.SeverityWarning, Count: summary.Warning})
	}
	return models.GateDecision{Passed: len(exceeded) == 0, Exceeded: exceeded}
}

func FailureMessage(d models.GateDecision) string {
	parts := make([]string, 0, len(d.Exceeded))
	for _, b := range d.Exceeded {
		parts = append(parts, fmt.Sprintf("%d %s(s)", b.Count, b.Severity))
	}
	return "API specification check failed: found " + strings.Join(parts, " and ")
}
