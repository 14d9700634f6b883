package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/logidash/internal/config"
)

// Module provides token hashing and the write guard verifier via fx.
var Module = fx.Options(
	fx.Provide(newTokenHasher),
	fx.Provide(newVerifier),
)

func newTokenHasher() TokenHasher {
	return NewBcryptHasher(0)
}

type verifierParams struct {
	fx.In

	Config *config.Config
	Hasher TokenHasher
}

func newVerifier(p verifierParams) (*Verifier, error) {
	return NewCheckedVerifier(p.Config.AdminTokenHash, p.Hasher)
}
