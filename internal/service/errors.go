package service

import (
	"fmt"
	"time"
)

// NoMatchError means the spec-path pattern matched no files.
type NoMatchError struct {
	Pattern string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no files matched pattern %q", e.Pattern)
}

// EvaluationError is a terminal "failed" status reported by the service.
type EvaluationError struct {
	VersionID string
	Reason    string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation %s failed: %s", e.VersionID, e.Reason)
}

// TimeoutError means polling ran out of attempts before a terminal status.
type TimeoutError struct {
	VersionID string
	Attempts  int
	Interval  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("evaluation %s did not complete after %d attempts (%s apart)", e.VersionID, e.Attempts, e.Interval)
}
