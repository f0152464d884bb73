// Package main provides the CLI entrypoint for the election records tool.
// It wires subcommands (nas, person, candidate), loads configuration, and
// initializes logging.
package main

import (
	"context"
	"election/internal/config"
	"election/internal/render"
	"election/pkg/logger"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by all subcommands once the root command has
// loaded configuration.
type app struct {
	out        io.Writer
	configPath string
	format     string

	cfg      *config.Config
	renderer *render.Renderer
}

// setup loads configuration, prepares the logger and the renderer, and tags
// the command context with a run ID.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Setup(cfg.Environment); err != nil {
		return fmt.Errorf("could not setup logger: %w", err)
	}

	format := cfg.Output.Format
	if a.format != "" {
		format = a.format
	}
	a.renderer, err = render.New(a.out, format, cfg.Output.Color)
	if err != nil {
		return err
	}

	ctx, _ := logger.WithRunID(cmd.Context())
	cmd.SetContext(ctx)
	logger.Debug(ctx, "configuration loaded",
		zap.String("environment", cfg.Environment),
		zap.String("format", format),
	)

	return nil
}

// newRootCommand builds the command tree writing results to out.
func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:           "election",
		Short:         "Validates and renders electoral identity records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config File Path")
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", "Output format (text or json), overrides the config")

	rootCmd.AddCommand(
		nasCommand(a),
		personCommand(a),
		candidateCommand(a),
	)

	return rootCmd
}

// main executes the root command and maps failures to exit status 1.
func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := newRootCommand(os.Stdout).ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err) //nolint: forbidigo
		os.Exit(1)                             //nolint: gocritic
	}
}
