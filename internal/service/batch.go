package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tracker-tv/restlens-action/internal/locate"
	"github.com/tracker-tv/restlens-action/models"
)

// Annotator receives each violation as soon as its line is resolved.
type Annotator interface {
	Annotate(v models.FlatViolation)
}

type BatchResult struct {
	Files         []string
	Violations    []models.FlatViolation
	Summary       models.ViolationSummary
	EvaluationURL string
}

type BatchService interface {
	Run(ctx context.Context, pattern string) (*BatchResult, error)
}

type batchService struct {
	evaluator EvaluationService
	annotator Annotator
	readFile  func(name string) ([]byte, error)
}

func NewBatchService(evaluator EvaluationService, annotator Annotator) BatchService {
	return &batchService{
		evaluator: evaluator,
		annotator: annotator,
		readFile:  os.ReadFile,
	}
}

// Run evaluates every file matched by pattern, one after the other. The
// first failure stops the batch.
func (s *batchService) Run(ctx context.Context, pattern string) (*BatchResult, error) {
	files, err := MatchFiles(pattern)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		Files:      files,
		Violations: []models.FlatViolation{},
	}

	for _, path := range files {
		content, err := s.readFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		slog.InfoContext(ctx, "evaluating specification", "file", path, "bytes", len(content))

		eval, err := s.evaluator.Evaluate(ctx, path, content)
		if err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", path, err)
		}

		doc := locate.Parse(content)
		for _, raw := range eval.Violations {
			v := Flatten(path, doc, raw)
			s.annotator.Annotate(v)
			result.Violations = append(result.Violations, v)
		}

		slog.InfoContext(ctx, "evaluation complete", "file", path, "violations", len(eval.Violations), "url", eval.URL)
		result.EvaluationURL = eval.URL
	}

	result.Summary = Summarize(result.Violations)
	return result, nil
}

// MatchFiles resolves a doublestar pattern to regular files in sorted order.
func MatchFiles(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("matching pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}

	if len(files) == 0 {
		return nil, &NoMatchError{Pattern: pattern}
	}

	sort.Strings(files)
	return files, nil
}

// Flatten resolves a raw violation against the document it was reported for.
func Flatten(path string, doc *locate.Document, raw models.RawViolation) models.FlatViolation {
	line := locate.FallbackLine
	switch {
	case len(raw.Location.Path) > 0:
		line = doc.Line(raw.Location.Path)
	case raw.Location.Pointer != "":
		line = doc.PointerLine(raw.Location.Pointer)
	}

	return models.FlatViolation{
		Path:     path,
		Line:     line,
		Severity: models.ParseSeverity(raw.Severity),
		RuleID:   raw.RuleID,
		RuleName: raw.RuleName,
		Message:  raw.Message,
	}
}
