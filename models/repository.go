package models

type Repository struct {
	Owner    string
	Name     string
	FullName string
}

// PullRequestContext is what the feedback step needs to know about the
// pull request that triggered the run.
type PullRequestContext struct {
	Repository Repository
	Number     int
	HeadSHA    string
}
