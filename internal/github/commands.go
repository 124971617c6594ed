package github

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/tracker-tv/restlens-action/models"
)

// Actions writes workflow commands to the job log and outputs to the
// runner's files.
type Actions struct {
	out         io.Writer
	outputPath  string
	summaryPath string
}

func NewActions(out io.Writer, outputPath, summaryPath string) *Actions {
	return &Actions{out: out, outputPath: outputPath, summaryPath: summaryPath}
}

func (a *Actions) Annotate(v models.FlatViolation) {
	props := fmt.Sprintf("file=%s,line=%d", escapeProperty(v.Path), v.Line)
	if v.RuleID != "" {
		props += ",title=" + escapeProperty(v.RuleID)
	}
	a.command(marker(v.Severity), props, v.RuleName+": "+v.Message)
}

func (a *Actions) Warning(msg string) { a.command("warning", "", msg) }

func (a *Actions) Error(msg string) { a.command("error", "", msg) }

func (a *Actions) Mask(secret string) {
	if secret == "" {
		return
	}
	a.command("add-mask", "", secret)
}

func (a *Actions) Group(title string) { a.command("group", "", title) }

func (a *Actions) EndGroup() { a.command("endgroup", "", "") }

func (a *Actions) Logf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// SetOutput appends name to $GITHUB_OUTPUT, using a heredoc delimiter for
// multi-line values. Without an output file it prints name=value instead.
func (a *Actions) SetOutput(name, value string) error {
	if a.outputPath == "" {
		fmt.Fprintf(a.out, "%s=%s\n", name, value)
		return nil
	}

	var entry string
	if strings.ContainsAny(value, "\r\n") {
		delim := "ghadelimiter_" + uuid.NewString()
		entry = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delim, value, delim)
	} else {
		entry = fmt.Sprintf("%s=%s\n", name, value)
	}
	return appendFile(a.outputPath, entry)
}

func (a *Actions) AppendSummary(markdown string) error {
	if a.summaryPath == "" {
		return nil
	}
	return appendFile(a.summaryPath, markdown)
}

func (a *Actions) command(name, props, msg string) {
	if props != "" {
		fmt.Fprintf(a.out, "::%s %s::%s\n", name, props, escapeData(msg))
		return
	}
	fmt.Fprintf(a.out, "::%s::%s\n", name, escapeData(msg))
}

func marker(s models.Severity) string {
	switch s {
	case models.SeverityError:
		return "error"
	case models.SeverityWarning:
		return "warning"
	default:
		return "notice"
	}
}

func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}

func escapeProperty(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C").Replace(s)
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
