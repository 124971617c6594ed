package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

const (
	maxRetries = 3
	baseDelay  = 1 * time.Second
)

func (c *client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error) {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pr, _, err := c.pullRequests.Get(ctx, owner, repo, number)
		if err == nil {
			return pr, nil
		}

		var rateLimitErr *gh.RateLimitError
		if !errors.As(err, &rateLimitErr) {
			return nil, err
		}

		if attempt == maxRetries {
			return nil, fmt.Errorf("max retries reached: %w", err)
		}

		waitDuration := time.Until(rateLimitErr.Rate.Reset.Time)
		if waitDuration < 0 || waitDuration > time.Minute {
			waitDuration = baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("unexpected retry loop exit")
}

func (c *client) HeadSHA(ctx context.Context, owner, repo string, number int) (string, error) {
	pr, err := c.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		return "", err
	}
	sha := pr.GetHead().GetSHA()
	if sha == "" {
		return "", fmt.Errorf("pull request %s/%s#%d has no head sha", owner, repo, number)
	}
	return sha, nil
}
