package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tracker-tv/restlens-action/internal/config"
	"github.com/tracker-tv/restlens-action/internal/github"
	"github.com/tracker-tv/restlens-action/internal/orchestrator"
	"github.com/tracker-tv/restlens-action/internal/policy"
	"github.com/tracker-tv/restlens-action/internal/restlens"
	"github.com/tracker-tv/restlens-action/internal/service"
)

func runAction(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()

	cfg, err := config.Load(buildOverrides(cmd))
	if err != nil {
		github.NewActions(out, "", "").Error(err.Error())
		return err
	}

	actions := github.NewActions(out, cfg.Runner.OutputPath, cfg.Runner.StepSummary)
	actions.Mask(cfg.APIToken)
	actions.Mask(cfg.GithubToken)

	verbose, _ := cmd.Flags().GetBool("verbose")
	setupLogging(cmd.ErrOrStderr(), cfg.Runner.Debug || verbose)

	result, err := run(ctx, cfg, actions)
	if err != nil {
		actions.Error(err.Error())
		return err
	}

	if !result.Passed() {
		msg := policy.FailureMessage(result.Decision)
		actions.Error(msg)
		return &GateFailureError{Message: msg}
	}

	actions.Logf("API specification check passed")
	return nil
}

func run(ctx context.Context, cfg *config.Config, actions *github.Actions) (*orchestrator.RunResult, error) {
	client := restlens.New(cfg.APIURL, cfg.APIToken)
	evaluator := service.NewEvaluationService(client, cfg.AppURL, service.PollOptions{
		Interval:    cfg.PollInterval,
		MaxAttempts: cfg.MaxAttempts,
	})

	action := orchestrator.NewAction(
		service.NewBatchService(evaluator, actions),
		service.NewFeedbackService(client),
		actions,
		newTrigger(cfg, actions),
		orchestrator.Options{
			Pattern:            cfg.SpecPath,
			Thresholds:         cfg.Thresholds(),
			PostPRComment:      cfg.PostPRComment,
			PostInlineComments: cfg.PostInlineComments,
		},
	)

	actions.Group(fmt.Sprintf("RestLens evaluation of %s", cfg.SpecPath))
	defer actions.EndGroup()

	return action.Run(ctx)
}

// newTrigger never fails: without a readable event payload the run simply
// skips pull request feedback.
func newTrigger(cfg *config.Config, actions *github.Actions) orchestrator.Trigger {
	trigger := orchestrator.Trigger{
		Repository: cfg.Runner.Repository,
		SHA:        cfg.Runner.SHA,
	}

	if cfg.Runner.EventName != "" {
		ev, err := github.ReadEvent(cfg.Runner.EventName, cfg.Runner.EventPath)
		if err != nil {
			slog.Warn("could not read event payload", "path", cfg.Runner.EventPath, "error", err)
			actions.Warning(fmt.Sprintf("Could not read event payload: %v", err))
		} else {
			trigger.Event = ev
		}
	}

	if cfg.GithubToken != "" {
		api, err := github.New(cfg.GithubToken, cfg.Runner.APIURL)
		if err != nil {
			slog.Warn("github client unavailable", "error", err)
		} else {
			trigger.API = api
		}
	}

	return trigger
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger.With("run_id", uuid.NewString()))
}
