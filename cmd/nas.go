package main

import (
	"election/internal/render"
	"election/pkg/logger"
	"election/pkg/nas"
	"election/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// nasCommand groups NAS related subcommands.
func nasCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nas",
		Short: "Social insurance number utilities",
	}
	cmd.AddCommand(nasValidateCommand(a))

	return cmd
}

// nasValidateCommand checks every argument with nas.Validate and fails when
// at least one of them is invalid.
func nasValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "validate <nas>...",
		Short:   "Checks the format and checksum of one or more NAS",
		Example: `  election nas validate "046 454 286"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			verdicts := make([]render.Verdict, 0, len(args))
			invalid := 0
			for _, id := range args {
				ok := nas.Validate(id)
				if !ok {
					invalid++
				}
				verdicts = append(verdicts, render.Verdict{NAS: id, Valid: ok})
			}

			if err := a.renderer.Verdicts(verdicts); err != nil {
				return err
			}

			logger.Debug(ctx, "validated NAS", zap.Int("count", len(args)), zap.Int("invalid", invalid))
			if invalid > 0 {
				return serrors.With(serrors.ErrInvalidArgument, "%d of %d NAS are invalid", invalid, len(args))
			}

			return nil
		},
	}
}
