package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/logidash/internal/adapter/insights"
	"github.com/polkiloo/logidash/internal/app"
	"github.com/polkiloo/logidash/internal/config"
	"github.com/polkiloo/logidash/internal/logger"
	"github.com/polkiloo/logidash/internal/pkg/auth"
	"github.com/polkiloo/logidash/internal/server/http/router"
	"github.com/polkiloo/logidash/internal/storage/postgres"
	"github.com/polkiloo/logidash/internal/usecase"
)

// Core wires configuration, logging, storage and use cases. Maintenance
// commands that never serve HTTP build their graph from it.
func Core(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// Module wires the full HTTP server graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		Core(),
		auth.Module,
		insights.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
