package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/restlens-action/models"
)

// Event is the workflow trigger. Payload is decoded as a pull request event;
// for other triggers its pull request fields are simply empty.
type Event struct {
	Name    string
	Payload *gh.PullRequestEvent
}

func ReadEvent(name, path string) (*Event, error) {
	ev := &Event{Name: name, Payload: &gh.PullRequestEvent{}}
	if path == "" {
		return ev, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading event payload: %w", err)
	}
	if err := json.Unmarshal(data, ev.Payload); err != nil {
		return nil, fmt.Errorf("decoding event payload: %w", err)
	}
	return ev, nil
}

func (e *Event) PullNumber() int {
	if n := e.Payload.GetPullRequest().GetNumber(); n > 0 {
		return n
	}
	return e.Payload.GetNumber()
}

// Repository prefers the payload and falls back to an "owner/name" string
// such as GITHUB_REPOSITORY.
func (e *Event) Repository(fullName string) models.Repository {
	if repo := e.Payload.GetRepo(); repo.GetName() != "" && repo.GetOwner().GetLogin() != "" {
		return models.Repository{
			Owner:    repo.GetOwner().GetLogin(),
			Name:     repo.GetName(),
			FullName: repo.GetFullName(),
		}
	}

	owner, name, _ := strings.Cut(fullName, "/")
	return models.Repository{Owner: owner, Name: name, FullName: fullName}
}

// PullRequestContext resolves the head commit in order: event payload, the
// GitHub API when a client is given, then fallbackSHA (the run's own commit).
func (e *Event) PullRequestContext(ctx context.Context, repository, fallbackSHA string, api Client) models.PullRequestContext {
	prc := models.PullRequestContext{
		Repository: e.Repository(repository),
		Number:     e.PullNumber(),
		HeadSHA:    e.Payload.GetPullRequest().GetHead().GetSHA(),
	}
	if prc.HeadSHA != "" {
		return prc
	}

	if api != nil && prc.Number > 0 {
		sha, err := api.HeadSHA(ctx, prc.Repository.Owner, prc.Repository.Name, prc.Number)
		if err == nil {
			prc.HeadSHA = sha
			return prc
		}
		slog.WarnContext(ctx, "could not look up pull request head", "pull", prc.Number, "error", err)
	}

	prc.HeadSHA = fallbackSHA
	return prc
}
