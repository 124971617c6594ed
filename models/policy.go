package models

type Thresholds struct {
	FailOnError   bool
	FailOnWarning bool
}

type ThresholdBreach struct {
	Severity Severity
	Count    int
}

type GateDecision struct {
	Passed   bool
	Exceeded []ThresholdBreach
}
