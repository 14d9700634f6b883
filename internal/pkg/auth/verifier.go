package auth

import "errors"

var (
	ErrMissingToken = errors.New("missing auth token")
	ErrInvalidToken = errors.New("invalid auth token")
)

// Verifier checks bearer tokens against a single configured hash.
// A verifier without a hash accepts everything.
type Verifier struct {
	hash   string
	hasher TokenHasher
}

// NewVerifier builds Verifier for the given hash.
func NewVerifier(hash string, hasher TokenHasher) *Verifier {
	return &Verifier{hash: hash, hasher: hasher}
}

// NewCheckedVerifier is NewVerifier that refuses a configured hash the hasher cannot read.
func NewCheckedVerifier(hash string, hasher TokenHasher) (*Verifier, error) {
	if hash != "" {
		if err := hasher.CheckHash(hash); err != nil {
			return nil, err
		}
	}
	return NewVerifier(hash, hasher), nil
}

// Enabled reports whether a hash is configured.
func (v *Verifier) Enabled() bool {
	return v != nil && v.hash != ""
}

// Verify returns nil when the token matches or verification is disabled.
// Mismatches yield ErrInvalidToken; any other hasher failure is returned as is.
func (v *Verifier) Verify(token string) error {
	if !v.Enabled() {
		return nil
	}
	if token == "" {
		return ErrMissingToken
	}
	return v.hasher.Compare(v.hash, token)
}
