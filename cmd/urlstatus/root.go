package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/urlstatus/internal/checker"
	"github.com/nao1215/urlstatus/internal/config"
	seclog "github.com/nao1215/urlstatus/internal/log"
	"github.com/nao1215/urlstatus/internal/report"
	"github.com/nao1215/urlstatus/internal/runner"
)

// NewRootCmd creates the root command for urlstatus.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urlstatus",
		Short: "Check the reachability of a fixed list of image URLs",
		Long: `urlstatus requests every URL of its built-in list once, in order, and
records the HTTP status code, or the error that prevented a response.

Each result is printed as soon as it is known and appended to results.txt
in the current directory. The file is overwritten on every run.

Requests send "User-Agent: Mozilla/5.0", time out after 10 seconds and do
not verify TLS certificates.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheckCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runCheckCmd executes the URL check.
func runCheckCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := seclog.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Warn("received shutdown signal, stopping after the current request")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runCheck(ctx, cfg, cmd, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the built-in defaults and the verbose flag.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	targets, err := config.DefaultTargets()
	if err != nil {
		return nil, err
	}
	cfg.Targets = targets

	return cfg, nil
}

// runCheck checks every target and writes the report.
func runCheck(ctx context.Context, cfg *config.Config, cmd *cobra.Command, logger *slog.Logger) error {
	logger.Info("starting check",
		"targets", len(cfg.Targets),
		"timeout", cfg.Timeout,
		"report", cfg.ReportFile,
	)

	fileWriter, err := report.CreateFileWriter(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := fileWriter.Close(); err != nil {
			logger.Error("failed to close report file", "path", cfg.ReportFile, "error", err)
		}
	}()

	client := checker.NewClient(cfg.Timeout, cfg.UserAgent)
	defer client.Close()

	writer := report.NewMultiWriter(report.NewConsoleWriter(cmd.OutOrStdout()), fileWriter)

	if _, err := runner.New(client, writer, runner.WithLogger(logger)).Run(ctx, cfg.Targets); err != nil {
		return fmt.Errorf("check aborted: %w", err)
	}
	return nil
}
