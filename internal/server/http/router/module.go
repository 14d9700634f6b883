package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/logidash/internal/app"
	pkgAuth "github.com/polkiloo/logidash/internal/pkg/auth"
	"github.com/polkiloo/logidash/internal/server/http/handlers"
	"github.com/polkiloo/logidash/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime together with the
// bindings from concrete services to the interfaces the HTTP layer consumes.
var Module = fx.Options(
	fx.Provide(
		func(f *app.LogisticsFacade) handlers.LogisticsFacade { return f },
		func(v *pkgAuth.Verifier) middleware.TokenVerifier { return v },
		Setup,
	),
)
