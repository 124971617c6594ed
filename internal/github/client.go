package github

import (
	"context"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v80/github"
)

const defaultAPIURL = "https://api.github.com"

type PullRequestsAdapter interface {
	Get(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, *gh.Response, error)
}

// Client is the part of the GitHub API the action needs: looking up a pull
// request head when the event payload does not carry it.
type Client interface {
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error)
	HeadSHA(ctx context.Context, owner, repo string, number int) (string, error)
}

type client struct {
	pullRequests PullRequestsAdapter
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// New returns a client for apiURL. An empty token yields an unauthenticated
// client; a non-default apiURL is treated as a GitHub Enterprise host.
func New(token, apiURL string) (Client, error) {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}

	ghClient := gh.NewClient(httpClient)
	apiURL = strings.TrimRight(apiURL, "/")
	if apiURL != "" && apiURL != defaultAPIURL {
		var err error
		ghClient, err = ghClient.WithEnterpriseURLs(apiURL+"/", apiURL+"/")
		if err != nil {
			return nil, err
		}
	}

	return &client{
		pullRequests: ghClient.PullRequests,
	}, nil
}
