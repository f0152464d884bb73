package main

import (
	"context"
	"election/pkg/contract"
	"election/pkg/date"
	"election/pkg/domain"
	"election/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// recordFlags are the person fields accepted by the person and candidate
// commands.
type recordFlags struct {
	nas        string
	firstName  string
	lastName   string
	address    string
	birthDate  string
	newAddress string
}

func (f *recordFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.nas, "nas", "", `Social insurance number, e.g. "046 454 286"`)
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&f.address, "address", "", "Postal address")
	cmd.Flags().StringVar(&f.birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.newAddress, "new-address", "", "Address to move the person to after creation")

	for _, name := range []string{"nas", "first-name", "last-name", "address", "birth-date"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

// personCommand constructs the 'person' subcommand that builds a Person from
// flags and prints it.
func personCommand(a *app) *cobra.Command {
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "person",
		Short: "Creates a person record and prints it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			birthDate, err := date.Parse(flags.birthDate)
			if err != nil {
				return fmt.Errorf("invalid birth date: %w", err)
			}

			p, err := domain.NewPerson(flags.nas, flags.firstName, flags.lastName, flags.address, birthDate)
			if err != nil {
				return a.fail(cmd.Context(), "could not create person", err)
			}

			return a.finish(cmd.Context(), p, flags.newAddress)
		},
	}
	flags.bind(cmd)

	return cmd
}

// candidateCommand constructs the 'candidate' subcommand that builds a
// Candidate from flags and prints it.
func candidateCommand(a *app) *cobra.Command {
	var (
		flags recordFlags
		party string
	)

	cmd := &cobra.Command{
		Use:   "candidate",
		Short: "Creates a candidate record and prints it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			birthDate, err := date.Parse(flags.birthDate)
			if err != nil {
				return fmt.Errorf("invalid birth date: %w", err)
			}
			p, err := domain.ParseParty(party)
			if err != nil {
				return fmt.Errorf("invalid party: %w", err)
			}

			c, err := domain.NewCandidate(flags.nas, flags.firstName, flags.lastName, flags.address, birthDate, p)
			if err != nil {
				return a.fail(cmd.Context(), "could not create candidate", err)
			}

			return a.finish(cmd.Context(), c, flags.newAddress)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&party, "party", "", "Party: bloc-quebecois, conservative, independent, liberal, new-democratic-party")
	_ = cmd.MarkFlagRequired("party")

	return cmd
}

// finish applies the optional address change and renders rec.
func (a *app) finish(ctx context.Context, rec domain.Record, newAddress string) error {
	if newAddress != "" {
		if err := rec.SetAddress(newAddress); err != nil {
			return a.fail(ctx, "could not change address", err)
		}
		logger.Debug(ctx, "address changed", zap.String("nas", rec.ID()))
	}

	return a.renderer.Record(rec)
}

// fail logs err, prints the violation report when err is a contract
// violation, and returns err wrapped with msg.
func (a *app) fail(ctx context.Context, msg string, err error) error {
	if v, ok := contract.AsViolation(err); ok {
		logger.Error(ctx, msg,
			zap.String("violation", v.Message()),
			zap.String("expression", v.Expression),
			zap.String("function", v.Function),
			zap.String("location", fmt.Sprintf("%s:%d", v.File, v.Line)),
		)
		if rerr := a.renderer.Violation(v); rerr != nil {
			logger.Warn(ctx, "could not render violation", zap.Error(rerr))
		}
	} else {
		logger.Error(ctx, msg, zap.Error(err))
	}

	return fmt.Errorf("%s: %w", msg, err)
}
