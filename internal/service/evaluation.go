package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tracker-tv/restlens-action/internal/restlens"
	"github.com/tracker-tv/restlens-action/models"
)

const (
	DefaultPollInterval = 2 * time.Second
	DefaultMaxAttempts  = 60
)

type Evaluation struct {
	Job        *models.EvaluationJob
	Violations []models.RawViolation
	URL        string
}

type EvaluationService interface {
	Submit(ctx context.Context, path string, content []byte) (*models.EvaluationJob, error)
	AwaitResult(ctx context.Context, job *models.EvaluationJob) ([]models.RawViolation, error)
	Evaluate(ctx context.Context, path string, content []byte) (*Evaluation, error)
}

type PollOptions struct {
	Interval    time.Duration
	MaxAttempts int
}

type evaluationService struct {
	client      restlens.Client
	appURL      string
	interval    time.Duration
	maxAttempts int
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewEvaluationService(client restlens.Client, appURL string, opts PollOptions) EvaluationService {
	if opts.Interval <= 0 {
		opts.Interval = DefaultPollInterval
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	return &evaluationService{
		client:      client,
		appURL:      appURL,
		interval:    opts.Interval,
		maxAttempts: opts.MaxAttempts,
		sleep:       sleep,
	}
}

func (s *evaluationService) Submit(ctx context.Context, path string, content []byte) (*models.EvaluationJob, error) {
	job, err := s.client.Submit(ctx, path, content)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "specification uploaded", "file", path, "version", job.VersionID)
	return job, nil
}

func (s *evaluationService) AwaitResult(ctx context.Context, job *models.EvaluationJob) ([]models.RawViolation, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		status, err := s.client.Violations(ctx, job.VersionID)
		if err != nil {
			var reqErr *restlens.RequestError
			if !errors.As(err, &reqErr) || !reqErr.NotFound() {
				return nil, err
			}
			status = &models.EvaluationStatus{State: models.EvaluationPending}
		}

		switch status.State {
		case models.EvaluationReady:
			return status.Violations, nil
		case models.EvaluationFailed:
			reason := status.Reason
			if reason == "" {
				reason = "evaluation failed"
			}
			return nil, &EvaluationError{VersionID: job.VersionID, Reason: reason}
		case models.EvaluationPending, models.EvaluationInProgress:
			slog.DebugContext(ctx, "evaluation not ready", "version", job.VersionID, "status", status.State, "attempt", attempt)
		default:
			return nil, &restlens.RequestError{
				VersionID: job.VersionID,
				Err:       fmt.Errorf("unexpected evaluation status %q", status.State),
			}
		}

		if attempt == s.maxAttempts {
			break
		}
		if err := s.sleep(ctx, s.interval); err != nil {
			return nil, err
		}
	}

	return nil, &TimeoutError{VersionID: job.VersionID, Attempts: s.maxAttempts, Interval: s.interval}
}

func (s *evaluationService) Evaluate(ctx context.Context, path string, content []byte) (*Evaluation, error) {
	job, err := s.Submit(ctx, path, content)
	if err != nil {
		return nil, err
	}

	violations, err := s.AwaitResult(ctx, job)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		Job:        job,
		Violations: violations,
		URL:        s.evaluationURL(job),
	}, nil
}

func (s *evaluationService) evaluationURL(job *models.EvaluationJob) string {
	return fmt.Sprintf("%s/%s/%s/specifications/%s", s.appURL, job.OrganizationSlug, job.ProjectSlug, job.VersionID)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
