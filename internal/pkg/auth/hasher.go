package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyToken    = errors.New("admin token must not be empty")
	ErrTokenPadding  = errors.New("admin token must not start or end with whitespace")
	ErrMalformedHash = errors.New("malformed admin token hash")
)

// TokenHasher hashes the shared admin token and checks bearer tokens against it.
type TokenHasher interface {
	Hash(token string) (string, error)
	Compare(hash string, token string) error
	CheckHash(hash string) error
}

// BcryptHasher stores admin tokens as bcrypt hashes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher; cost 0 selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash for a token. Bearer tokens are trimmed when
// read from the header, so a padded token could never match and is refused.
func (h *BcryptHasher) Hash(token string) (string, error) {
	if token == "" {
		return "", ErrEmptyToken
	}
	if strings.TrimSpace(token) != token {
		return "", ErrTokenPadding
	}
	encoded, err := bcrypt.GenerateFromPassword([]byte(token), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash admin token: %w", err)
	}
	return string(encoded), nil
}

// Compare returns ErrInvalidToken on mismatch and ErrMalformedHash when the
// stored hash cannot be read.
func (h *BcryptHasher) Compare(hash string, token string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidToken
	default:
		return fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

// CheckHash reports whether hash is a readable bcrypt hash.
func (h *BcryptHasher) CheckHash(hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	return nil
}
