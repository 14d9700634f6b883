package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/polkiloo/logidash/internal/config"
	"github.com/polkiloo/logidash/internal/di"
	"github.com/polkiloo/logidash/internal/pkg/auth"
	"github.com/polkiloo/logidash/internal/usecase"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "logidash",
		Short:         "Logistics dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newSeedCommand(), newHashTokenCommand())
	return root
}

// Configuration flags are parsed by the config package, so cobra passes them through untouched.
func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "serve [flags]",
		Short:              "Run the HTTP API",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return run(ctx, newApp(ctx, config.Args(args), di.Module()))
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "seed [flags]",
		Short:              "Replace stored orders and shipments with demo data",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var seeder *usecase.SeedUseCase
			app := newApp(ctx, config.Args(args), di.Core(), fx.Populate(&seeder))
			if err := app.Err(); err != nil {
				return err
			}
			return seed(ctx, app, seeder)
		},
	}
}

func newHashTokenCommand() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-token <token>",
		Short: "Print the bcrypt hash to use as ADMIN_TOKEN_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.NewBcryptHasher(cost).Hash(args[0])
			if err != nil {
				return fmt.Errorf("hash token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
	cmd.Flags().IntVar(&cost, "cost", 0, "bcrypt cost, 0 for the library default")
	return cmd
}

func newApp(ctx context.Context, args config.Args, opts ...fx.Option) *fx.App {
	options := []fx.Option{
		fx.Provide(func() context.Context { return ctx }),
		fx.Supply(args),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
	}
	return fx.New(append(options, opts...)...)
}
