// Package restlens is the HTTP client for the RestLens evaluation API.
package restlens

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tracker-tv/restlens-action/models"
)

const userAgent = "restlens-action"

type Client interface {
	Submit(ctx context.Context, filename string, content []byte) (*models.EvaluationJob, error)
	Violations(ctx context.Context, versionID string) (*models.EvaluationStatus, error)
	PostFeedback(ctx context.Context, req models.FeedbackRequest) (*models.FeedbackResponse, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("User-Agent", userAgent)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

func New(baseURL, token string) Client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   60 * time.Second,
			Transport: &authTransport{token: token},
		},
	}
}

type submitRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Evaluate bool   `json:"evaluate"`
}

type submitResponse struct {
	SpecificationVersionID string `json:"specificationVersionId"`
	ProjectSlug            string `json:"projectSlug"`
	OrganizationSlug       string `json:"organizationSlug"`
}

func (c *client) Submit(ctx context.Context, filename string, content []byte) (*models.EvaluationJob, error) {
	payload := submitRequest{Filename: filename, Content: string(content), Evaluate: true}

	status, body, err := c.do(ctx, http.MethodPost, "/v1/specifications", payload)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", filename, err)
	}
	if !success(status) {
		return nil, &UploadError{Filename: filename, StatusCode: status, Body: string(body)}
	}

	var resp submitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding upload response for %s: %w", filename, err)
	}
	if resp.SpecificationVersionID == "" {
		return nil, &UploadError{Filename: filename, StatusCode: status, Body: "response did not include a specification version id"}
	}

	return &models.EvaluationJob{
		VersionID:        resp.SpecificationVersionID,
		ProjectSlug:      resp.ProjectSlug,
		OrganizationSlug: resp.OrganizationSlug,
		Path:             filename,
		Content:          content,
	}, nil
}

func (c *client) Violations(ctx context.Context, versionID string) (*models.EvaluationStatus, error) {
	path := "/v1/specifications/" + url.PathEscape(versionID) + "/violations"

	status, body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &RequestError{VersionID: versionID, Err: err}
	}
	if !success(status) {
		return nil, &RequestError{VersionID: versionID, StatusCode: status, Body: string(body)}
	}

	var resp models.EvaluationStatus
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &RequestError{VersionID: versionID, StatusCode: status, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return &resp, nil
}

func (c *client) PostFeedback(ctx context.Context, req models.FeedbackRequest) (*models.FeedbackResponse, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/github-app/pr-feedback", req)
	if err != nil {
		return nil, &FeedbackError{Err: err}
	}
	if !success(status) {
		return nil, &FeedbackError{StatusCode: status, Body: string(body)}
	}

	var resp models.FeedbackResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &FeedbackError{StatusCode: status, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return &resp, nil
}

func (c *client) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}
