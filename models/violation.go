package models

import "strings"

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ParseSeverity maps the service's severity strings onto the closed set.
// Anything unrecognised, including "hint", is reported as info.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError
	case "warning", "warn":
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// Rank orders severities for display: error > warning > info.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

type Location struct {
	Path    []string `json:"path,omitempty"`
	Pointer string   `json:"pointer,omitempty"`
}

type RawViolation struct {
	RuleID   string   `json:"ruleId"`
	RuleName string   `json:"ruleName"`
	Severity string   `json:"severity"`
	Location Location `json:"location"`
	Message  string   `json:"message"`
}

type FlatViolation struct {
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Severity Severity `json:"severity"`
	RuleID   string   `json:"ruleId"`
	RuleName string   `json:"ruleName"`
	Message  string   `json:"message"`
}

type ViolationSummary struct {
	Total   int `json:"total"`
	Error   int `json:"error"`
	Warning int `json:"warning"`
	Info    int `json:"info"`
}
