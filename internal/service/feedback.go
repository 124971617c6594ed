package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tracker-tv/restlens-action/internal/restlens"
	"github.com/tracker-tv/restlens-action/models"
)

var pullRequestEvents = map[string]bool{
	"pull_request":        true,
	"pull_request_target": true,
}

// ShouldPublishFeedback reports whether the run has a pull request to talk
// to and at least one kind of feedback is enabled.
func ShouldPublishFeedback(eventName string, postComment, postInline bool, pullNumber int) bool {
	if !pullRequestEvents[eventName] {
		return false
	}
	if !postComment && !postInline {
		return false
	}
	return pullNumber > 0
}

type FeedbackInput struct {
	PullRequest        models.PullRequestContext
	Files              []string
	Violations         []models.FlatViolation
	Summary            models.ViolationSummary
	PostInlineComments bool
}

type FeedbackResult struct {
	CommentURL string
	ReviewURL  string
}

type FeedbackService interface {
	Publish(ctx context.Context, in FeedbackInput) (*FeedbackResult, error)
}

type feedbackService struct {
	client restlens.Client
}

func NewFeedbackService(client restlens.Client) FeedbackService {
	return &feedbackService{client: client}
}

func (s *feedbackService) Publish(ctx context.Context, in FeedbackInput) (*FeedbackResult, error) {
	req, err := BuildFeedbackRequest(in)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "posting pull request feedback",
		"repo", in.PullRequest.Repository.FullName,
		"pull", in.PullRequest.Number,
		"violations", len(req.InlineViolations))

	resp, err := s.client.PostFeedback(ctx, req)
	if err != nil {
		return nil, err
	}

	return &FeedbackResult{
		CommentURL: resp.CommentURL,
		ReviewURL:  resp.ReviewURL,
	}, nil
}

// BuildFeedbackRequest targets every violation at the first evaluated file;
// annotations for the other files of a multi-file run land on that file too.
func BuildFeedbackRequest(in FeedbackInput) (models.FeedbackRequest, error) {
	if len(in.Files) == 0 {
		return models.FeedbackRequest{}, &restlens.FeedbackError{Err: errors.New("no evaluated files to attach feedback to")}
	}
	specPath := in.Files[0]

	inline := make([]models.FlatViolation, len(in.Violations))
	for i, v := range in.Violations {
		v.Path = specPath
		inline[i] = v
	}

	return models.FeedbackRequest{
		Owner:              in.PullRequest.Repository.Owner,
		Repo:               in.PullRequest.Repository.Name,
		PullNumber:         in.PullRequest.Number,
		CommitSHA:          in.PullRequest.HeadSHA,
		SpecFilePath:       specPath,
		Summary:            in.Summary,
		InlineViolations:   inline,
		PostInlineComments: in.PostInlineComments,
	}, nil
}
