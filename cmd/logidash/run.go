package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

type seeder interface {
	Seed(ctx context.Context) error
}

func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("failed to stop application: %w", err)
	}
	return nil
}

// seed starts app only for its lifecycle hooks so the pool is closed afterwards.
func seed(ctx context.Context, app *fx.App, s seeder) (err error) {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}
	defer func() {
		if stopErr := app.Stop(context.Background()); stopErr != nil && err == nil {
			err = fmt.Errorf("failed to stop application: %w", stopErr)
		}
	}()

	if err := s.Seed(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
