package config

import "go.uber.org/fx"

// Module exposes configuration loader for fx graphs. Args must be supplied by the caller.
var Module = fx.Provide(Load)
