package models

type EvaluationJob struct {
	VersionID        string
	ProjectSlug      string
	OrganizationSlug string
	Path             string
	Content          []byte
}

type EvaluationState string

const (
	EvaluationPending    EvaluationState = "pending"
	EvaluationInProgress EvaluationState = "in_progress"
	EvaluationReady      EvaluationState = "ready"
	EvaluationFailed     EvaluationState = "failed"
)

// EvaluationStatus is one poll response. Violations is only meaningful when
// State is ready and Reason only when it is failed.
type EvaluationStatus struct {
	State      EvaluationState `json:"status"`
	Violations []RawViolation  `json:"violations,omitempty"`
	Reason     string          `json:"error,omitempty"`
}

func (s EvaluationStatus) Terminal() bool {
	return s.State == EvaluationReady || s.State == EvaluationFailed
}
