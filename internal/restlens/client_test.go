package restlens

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracker-tv/restlens-action/models"
)

func TestAuthTransport_RoundTrip(t *testing.T) {
	transport := &authTransport{token: "my-secret-token"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestSubmit_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/specifications", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "openapi.yaml", body["filename"])
		assert.Equal(t, "openapi: 3.0.3\n", body["content"])
		assert.Equal(t, true, body["evaluate"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"specificationVersionId":"v-1","projectSlug":"petstore","organizationSlug":"acme"}`)
	}))
	defer server.Close()

	c := New(server.URL+"/", "tok")
	job, err := c.Submit(context.Background(), "openapi.yaml", []byte("openapi: 3.0.3\n"))

	require.NoError(t, err)
	assert.Equal(t, "v-1", job.VersionID)
	assert.Equal(t, "petstore", job.ProjectSlug)
	assert.Equal(t, "acme", job.OrganizationSlug)
	assert.Equal(t, "openapi.yaml", job.Path)
	assert.Equal(t, []byte("openapi: 3.0.3\n"), job.Content)
}

func TestSubmit_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"error":"not an OpenAPI document"}`)
	}))
	defer server.Close()

	c := New(server.URL, "tok")
	job, err := c.Submit(context.Background(), "bad.yaml", []byte("x"))

	assert.Nil(t, job)
	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, http.StatusUnprocessableEntity, uploadErr.StatusCode)
	assert.Equal(t, `{"error":"not an OpenAPI document"}`, uploadErr.Body)
	assert.Equal(t, "bad.yaml", uploadErr.Filename)
}

func TestSubmit_MissingVersionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()

	_, err := New(server.URL, "tok").Submit(context.Background(), "a.yaml", nil)

	var uploadErr *UploadError
	assert.ErrorAs(t, err, &uploadErr)
}

func TestViolations_Ready(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/specifications/v-1/violations", r.URL.Path)
		_, _ = io.WriteString(w, `{
			"status": "ready",
			"violations": [
				{"ruleId":"R1","ruleName":"operation-summary","severity":"error","message":"missing summary","location":{"path":["paths","/pets","get"]}},
				{"ruleId":"R2","ruleName":"info-contact","severity":"info","message":"no contact","location":{"pointer":"/info"}}
			]
		}`)
	}))
	defer server.Close()

	status, err := New(server.URL, "tok").Violations(context.Background(), "v-1")

	require.NoError(t, err)
	assert.Equal(t, models.EvaluationReady, status.State)
	require.Len(t, status.Violations, 2)
	assert.Equal(t, "operation-summary", status.Violations[0].RuleName)
	assert.Equal(t, []string{"paths", "/pets", "get"}, status.Violations[0].Location.Path)
	assert.Equal(t, "/info", status.Violations[1].Location.Pointer)
}

func TestViolations_Failed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"failed","error":"parser crashed"}`)
	}))
	defer server.Close()

	status, err := New(server.URL, "tok").Violations(context.Background(), "v-1")

	require.NoError(t, err)
	assert.Equal(t, models.EvaluationFailed, status.State)
	assert.Equal(t, "parser crashed", status.Reason)
}

func TestViolations_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(server.URL, "tok").Violations(context.Background(), "v-1")

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.True(t, reqErr.NotFound())
}

func TestViolations_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "boom")
	}))
	defer server.Close()

	_, err := New(server.URL, "tok").Violations(context.Background(), "v-1")

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.False(t, reqErr.NotFound())
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Contains(t, err.Error(), "boom")
}

func TestViolations_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(url, "tok").Violations(context.Background(), "v-1")

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.False(t, reqErr.NotFound())
	assert.NotNil(t, errors.Unwrap(err))
}

func TestPostFeedback_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/github-app/pr-feedback", r.URL.Path)

		var req models.FeedbackRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "acme", req.Owner)
		assert.Equal(t, "petstore", req.Repo)
		assert.Equal(t, 7, req.PullNumber)
		assert.Equal(t, "deadbeef", req.CommitSHA)
		assert.Equal(t, 1, req.Summary.Error)
		assert.Len(t, req.InlineViolations, 1)
		assert.True(t, req.PostInlineComments)

		_, _ = io.WriteString(w, `{"success":true,"commentUrl":"https://github.com/acme/petstore/pull/7#issuecomment-1","violationCount":1}`)
	}))
	defer server.Close()

	req := models.FeedbackRequest{
		Owner:              "acme",
		Repo:               "petstore",
		PullNumber:         7,
		CommitSHA:          "deadbeef",
		SpecFilePath:       "openapi.yaml",
		Summary:            models.ViolationSummary{Total: 1, Error: 1},
		InlineViolations:   []models.FlatViolation{{Path: "openapi.yaml", Line: 3, Severity: models.SeverityError}},
		PostInlineComments: true,
	}

	resp, err := New(server.URL, "tok").PostFeedback(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "https://github.com/acme/petstore/pull/7#issuecomment-1", resp.CommentURL)
	assert.Empty(t, resp.ReviewURL)
	assert.Equal(t, 1, resp.ViolationCount)
}

func TestPostFeedback_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, "app not installed")
	}))
	defer server.Close()

	resp, err := New(server.URL, "tok").PostFeedback(context.Background(), models.FeedbackRequest{})

	assert.Nil(t, resp)
	var fbErr *FeedbackError
	require.ErrorAs(t, err, &fbErr)
	assert.Equal(t, http.StatusForbidden, fbErr.StatusCode)
	assert.Equal(t, "app not installed", fbErr.Body)
}
