package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tracker-tv/restlens-action/internal/github"
	"github.com/tracker-tv/restlens-action/internal/policy"
	"github.com/tracker-tv/restlens-action/internal/service"
	"github.com/tracker-tv/restlens-action/models"
)

const maxSummaryRows = 50

// Reporter is where results become visible to the workflow.
type Reporter interface {
	SetOutput(name, value string) error
	AppendSummary(markdown string) error
	Warning(msg string)
	Logf(format string, args ...any)
}

type Options struct {
	Pattern            string
	Thresholds         models.Thresholds
	PostPRComment      bool
	PostInlineComments bool
}

// Trigger describes the workflow run that started the action.
type Trigger struct {
	Event      *github.Event
	Repository string
	SHA        string
	API        github.Client
}

type RunResult struct {
	Files         []string
	Violations    []models.FlatViolation
	Summary       models.ViolationSummary
	EvaluationURL string
	CommentURL    string
	Decision      models.GateDecision
}

func (r *RunResult) Passed() bool { return r.Decision.Passed }

type Action struct {
	batch    service.BatchService
	feedback service.FeedbackService
	reporter Reporter
	trigger  Trigger
	opts     Options
}

func NewAction(batch service.BatchService, feedback service.FeedbackService, reporter Reporter, trigger Trigger, opts Options) *Action {
	return &Action{
		batch:    batch,
		feedback: feedback,
		reporter: reporter,
		trigger:  trigger,
		opts:     opts,
	}
}

// Run evaluates every matched specification, sets the step outputs and posts
// pull request feedback when applicable. A failed gate is not an error: it is
// reported through RunResult.Decision after all outputs are set.
func (a *Action) Run(ctx context.Context) (*RunResult, error) {
	batch, err := a.batch.Run(ctx, a.opts.Pattern)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Files:         batch.Files,
		Violations:    batch.Violations,
		Summary:       batch.Summary,
		EvaluationURL: batch.EvaluationURL,
		Decision:      policy.Evaluate(batch.Summary, a.opts.Thresholds),
	}

	if err := a.setOutputs(map[string]string{
		"total-violations": strconv.Itoa(result.Summary.Total),
		"error-count":      strconv.Itoa(result.Summary.Error),
		"warning-count":    strconv.Itoa(result.Summary.Warning),
		"info-count":       strconv.Itoa(result.Summary.Info),
		"evaluation-url":   result.EvaluationURL,
		"passed":           strconv.FormatBool(result.Passed()),
	}); err != nil {
		return nil, err
	}

	result.CommentURL = a.publishFeedback(ctx, batch)
	if err := a.reporter.SetOutput("comment-url", result.CommentURL); err != nil {
		return nil, fmt.Errorf("setting output comment-url: %w", err)
	}

	a.report(result)
	return result, nil
}

var outputOrder = []string{"total-violations", "error-count", "warning-count", "info-count", "evaluation-url", "passed"}

func (a *Action) setOutputs(outputs map[string]string) error {
	for _, name := range outputOrder {
		if err := a.reporter.SetOutput(name, outputs[name]); err != nil {
			return fmt.Errorf("setting output %s: %w", name, err)
		}
	}
	return nil
}

// publishFeedback never fails the run: any problem posting feedback is
// downgraded to a warning and an empty comment URL.
func (a *Action) publishFeedback(ctx context.Context, batch *service.BatchResult) string {
	ev := a.trigger.Event
	if ev == nil {
		return ""
	}
	if !service.ShouldPublishFeedback(ev.Name, a.opts.PostPRComment, a.opts.PostInlineComments, ev.PullNumber()) {
		slog.DebugContext(ctx, "skipping pull request feedback", "event", ev.Name)
		return ""
	}

	pr := ev.PullRequestContext(ctx, a.trigger.Repository, a.trigger.SHA, a.trigger.API)
	res, err := a.feedback.Publish(ctx, service.FeedbackInput{
		PullRequest:        pr,
		Files:              batch.Files,
		Violations:         batch.Violations,
		Summary:            batch.Summary,
		PostInlineComments: a.opts.PostInlineComments,
	})
	if err != nil {
		slog.WarnContext(ctx, "pull request feedback failed", "pull", pr.Number, "error", err)
		a.reporter.Warning(fmt.Sprintf("Failed to post PR feedback: %v", err))
		return ""
	}

	if res.CommentURL != "" {
		a.reporter.Logf("PR comment: %s", res.CommentURL)
	}
	if res.ReviewURL != "" {
		a.reporter.Logf("PR review: %s", res.ReviewURL)
	}
	return res.CommentURL
}

func (a *Action) report(result *RunResult) {
	s := result.Summary
	a.reporter.Logf("Evaluated %d file(s): %d violation(s) (%d error, %d warning, %d info)",
		len(result.Files), s.Total, s.Error, s.Warning, s.Info)
	if result.EvaluationURL != "" {
		a.reporter.Logf("View full results: %s", result.EvaluationURL)
	}

	if err := a.reporter.AppendSummary(stepSummary(result)); err != nil {
		slog.Warn("could not write step summary", "error", err)
	}
}

func stepSummary(result *RunResult) string {
	s := result.Summary
	var sb strings.Builder

	status := "Passed"
	if !result.Passed() {
		status = "Failed"
	}
	fmt.Fprintf(&sb, "## RestLens API review: %s\n\n", status)
	sb.WriteString("| Severity | Count |\n|----------|-------|\n")
	fmt.Fprintf(&sb, "| Error | %d |\n| Warning | %d |\n| Info | %d |\n\n", s.Error, s.Warning, s.Info)

	if len(result.Violations) > 0 {
		sb.WriteString("| Severity | Location | Rule | Message |\n|---|---|---|---|\n")
		sorted := service.SortViolations(result.Violations)
		for i, v := range sorted {
			if i == maxSummaryRows {
				fmt.Fprintf(&sb, "\n_%d more not shown._\n", len(sorted)-maxSummaryRows)
				break
			}
			fmt.Fprintf(&sb, "| %s | `%s:%d` | %s | %s |\n", v.Severity, v.Path, v.Line, v.RuleName, tableCell(v.Message))
		}
		sb.WriteString("\n")
	}

	if result.EvaluationURL != "" {
		fmt.Fprintf(&sb, "[View full results](%s)\n", result.EvaluationURL)
	}
	return sb.String()
}

func tableCell(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
