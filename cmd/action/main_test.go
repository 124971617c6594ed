package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateFailureError(t *testing.T) {
	err := fmt.Errorf("run: %w", &GateFailureError{Message: "API specification check failed: found 1 error(s)"})

	var gate *GateFailureError
	require.True(t, errors.As(err, &gate))
	assert.Equal(t, "API specification check failed: found 1 error(s)", gate.Error())
}

func TestBuildOverrides(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]string
	}{
		{
			name: "no flags",
			args: nil,
			want: map[string]string{},
		},
		{
			name: "explicit flags only",
			args: []string{"--spec-path", "api/*.yaml", "--fail-on-warning", "--max-attempts", "3", "--verbose"},
			want: map[string]string{
				"spec-path":       "api/*.yaml",
				"fail-on-warning": "true",
				"max-attempts":    "3",
			},
		},
		{
			name: "default valued flag set explicitly",
			args: []string{"--fail-on-error=true", "--poll-interval", "500ms"},
			want: map[string]string{
				"fail-on-error": "true",
				"poll-interval": "500ms",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCommand()
			require.NoError(t, cmd.ParseFlags(tt.args))
			assert.Equal(t, tt.want, buildOverrides(cmd))
		})
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, version+"\n", out.String())
}

func setupRun(t *testing.T, violations string) (specDir, outputPath string) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/specifications":
			_, _ = io.WriteString(w, `{"specificationVersionId":"v-9","projectSlug":"petstore","organizationSlug":"acme"}`)
		case "/v1/specifications/v-9/violations":
			_, _ = io.WriteString(w, `{"status":"ready","violations":`+violations+`}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	specDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(specDir, "openapi.yaml"), []byte("openapi: 3.0.3\ninfo:\n  title: Petstore\n"), 0o644))

	runnerDir := t.TempDir()
	outputPath = filepath.Join(runnerDir, "output")

	t.Setenv("INPUT_API-TOKEN", "secret-token")
	t.Setenv("INPUT_API-URL", server.URL)
	t.Setenv("INPUT_POLL-INTERVAL", "1ms")
	t.Setenv("GITHUB_EVENT_NAME", "push")
	t.Setenv("GITHUB_EVENT_PATH", "")
	t.Setenv("GITHUB_OUTPUT", outputPath)
	t.Setenv("GITHUB_STEP_SUMMARY", filepath.Join(runnerDir, "summary.md"))
	return specDir, outputPath
}

func TestRunAction_Passes(t *testing.T) {
	specDir, outputPath := setupRun(t, `[{"ruleId":"R1","ruleName":"tags","severity":"warning","message":"no tags","location":{"path":["info"]}}]`)

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--spec-path", filepath.Join(specDir, "*.yaml")})

	require.NoError(t, cmd.Execute())

	assert.True(t, strings.HasPrefix(out.String(), "::add-mask::secret-token\n"))
	assert.Contains(t, out.String(), "::warning file=")
	assert.Contains(t, out.String(), "line=2,title=R1::tags: no tags")
	assert.Contains(t, out.String(), "API specification check passed")

	outputs, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(outputs), "warning-count=1\n")
	assert.Contains(t, string(outputs), "passed=true\n")
}

func TestRunAction_GateFails(t *testing.T) {
	specDir, outputPath := setupRun(t, `[{"ruleId":"R1","ruleName":"summary","severity":"error","message":"missing","location":{"pointer":"/info/title"}}]`)

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--spec-path", filepath.Join(specDir, "*.yaml")})

	err := cmd.Execute()

	var gate *GateFailureError
	require.ErrorAs(t, err, &gate)
	assert.Equal(t, "API specification check failed: found 1 error(s)", gate.Message)
	assert.Contains(t, out.String(), "::error::API specification check failed: found 1 error(s)")

	outputs, readErr := os.ReadFile(outputPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(outputs), "passed=false\n")
}

func TestRunAction_NoMatch(t *testing.T) {
	specDir, _ := setupRun(t, `[]`)

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--spec-path", filepath.Join(specDir, "*.json")})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, out.String(), "::error::no files matched pattern")
}

func TestRunAction_MissingToken(t *testing.T) {
	t.Setenv("INPUT_API-TOKEN", "")

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--spec-path", "*.yaml"})

	require.Error(t, cmd.Execute())
	assert.Contains(t, out.String(), "::error::invalid configuration")
}
