// Package cli wires configuration, logging and the interactive session into
// the casedup root command.
package cli

import (
	"context"
	"errors"

	"github.com/backmassage/casedup/internal/check"
	"github.com/backmassage/casedup/internal/config"
	"github.com/backmassage/casedup/internal/display"
	"github.com/backmassage/casedup/internal/logging"
	"github.com/backmassage/casedup/internal/messages"
	"github.com/backmassage/casedup/internal/pipeline"
	"github.com/backmassage/casedup/internal/term"
	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the casedup command operating on fsys.
func NewRootCommand(fsys afero.Fs, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "casedup [flags] [root]",
		Short: "Find file names that differ only in letter case and delete the extras",
		Long: display.TitleStyle.Render("casedup") + display.MutedStyle.Render(" - case-insensitive duplicate name finder") + `

casedup walks a directory tree and groups files whose paths are equal
when compared without regard to letter case. For every group with more
than one member it lists the paths with an index and asks which ones to
delete. Answer with comma-separated indices, or press Enter to keep all.

Grouping keys:
  path   whole path, lowercased (default)
  name   base name only, so files in different directories can match`,
		Example: `  casedup                 scan the current directory
  casedup ~/Music         scan a specific tree
  casedup -k name ./docs  match base names across directories
  casedup --lang ko .     Korean prompts`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fsys, version, args)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// Execute runs the root command on the real filesystem and returns the
// process exit code.
func Execute(version, commit string) int {
	root := NewRootCommand(afero.NewOsFs(), version)
	err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithCommit(commit),
	)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return ExitConfig
	}
	return ExitOK
}

func run(cmd *cobra.Command, fsys afero.Fs, version string, args []string) error {
	// Bootstrap: no logger yet, so failures are returned for fang to render.
	cfg, err := config.Load(viper.New(), cmd.Flags(), args)
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}

	term.Configure(cfg.ColorMode, cmd.OutOrStdout())

	log, err := logging.NewLogger(&cfg, cmd.ErrOrStderr())
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}
	defer log.Close()

	if p := log.Path(); p != "" {
		log.Debug("Logging to %s", p)
	}
	if cfg.ConfigFile != "" {
		log.Debug("Using config file %s", cfg.ConfigFile)
	}

	msgs, err := messages.Load(cfg.Lang, cfg.Messages)
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}
	log.Debug("Messages: %s, colour: %v", msgs.Lang, term.Enabled())

	if err := check.CheckRoot(fsys, cfg.Root); err != nil {
		log.Audit("Aborted: %v", err)
		return &ExitError{Code: ExitRoot, Err: err}
	}

	display.PrintBanner(cmd.ErrOrStderr(), version, cfg.Root)
	log.Audit("Scan started: root=%s key=%s", cfg.Root, cfg.KeyMode)

	session := pipeline.NewSession(fsys, &cfg, log, msgs, cmd.InOrStdin(), cmd.OutOrStdout())
	stats, err := session.Run(cmd.Context())
	if err != nil {
		log.Error("%v", err)
		return &ExitError{Code: ExitConfig, Err: err}
	}

	log.Audit("Scan finished: files=%d groups=%d answered=%d deleted=%d failed=%d skipped=%d invalid=%d unanswered=%d walk_errors=%d freed=%s",
		stats.Files, stats.Duplicates, stats.Answered(), stats.Deleted, stats.Failed, stats.Skipped,
		stats.InvalidInput, stats.Unanswered, stats.WalkErrors, display.FormatBytes(stats.BytesFreed))
	return nil
}
