package models

type FeedbackRequest struct {
	Owner              string           `json:"owner"`
	Repo               string           `json:"repo"`
	PullNumber         int              `json:"pullNumber"`
	CommitSHA          string           `json:"commitSha"`
	SpecFilePath       string           `json:"specFilePath"`
	Summary            ViolationSummary `json:"summary"`
	InlineViolations   []FlatViolation  `json:"inlineViolations"`
	PostInlineComments bool             `json:"postInlineComments"`
}

type FeedbackResponse struct {
	Success        bool   `json:"success"`
	CommentURL     string `json:"commentUrl,omitempty"`
	ReviewURL      string `json:"reviewUrl,omitempty"`
	ViolationCount int    `json:"violationCount"`
}
