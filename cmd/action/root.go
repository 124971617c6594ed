package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

// inputFlags are the action inputs that may also be given on the command
// line. A flag only overrides the environment when it was set explicitly.
var inputFlags = []string{
	"spec-path",
	"api-url",
	"app-url",
	"fail-on-error",
	"fail-on-warning",
	"post-pr-comment",
	"post-inline-comments",
	"poll-interval",
	"max-attempts",
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restlens-action",
		Short: "Evaluate API specifications with RestLens",
		Long: `restlens-action uploads API specification files to RestLens, waits for the
evaluation, annotates the violations and fails the step when the configured
thresholds are exceeded.

Inputs are read from the INPUT_* environment the Actions runner provides.
Flags override them for local runs.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAction,
	}

	f := cmd.Flags()
	f.String("spec-path", "", "File path or glob pattern of the specifications to evaluate")
	f.String("api-url", "", "RestLens API base URL")
	f.String("app-url", "", "RestLens web app base URL used for result links")
	f.Bool("fail-on-error", true, "Fail when error-severity violations are found")
	f.Bool("fail-on-warning", false, "Fail when warning-severity violations are found")
	f.Bool("post-pr-comment", true, "Post a summary comment on the pull request")
	f.Bool("post-inline-comments", true, "Post inline review comments on the pull request")
	f.Duration("poll-interval", 0, "Delay between evaluation status checks")
	f.Int("max-attempts", 0, "Maximum number of evaluation status checks")
	f.BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version)
		},
	}
}

// buildOverrides collects the explicitly set input flags keyed by input name.
func buildOverrides(cmd *cobra.Command) map[string]string {
	m := make(map[string]string)
	for _, name := range inputFlags {
		if cmd.Flags().Changed(name) {
			m[name] = cmd.Flags().Lookup(name).Value.String()
		}
	}
	return m
}

func execute() error {
	return newRootCommand().Execute()
}
