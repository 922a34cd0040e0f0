package service

import (
	"github.com/lumapix/lumapix/internal/crypto"
	"github.com/pkg/errors"
)

// TokenIssuer mints the opaque bearer tokens embedded in share links.
// Uniqueness is enforced by the share store at persistence time, not
// here; the issuer only guarantees the token space is large enough that
// collisions are negligible.
type TokenIssuer struct {
	generate func() (string, error)
}

func (i *TokenIssuer) Issue() (string, error) {
	token, err := i.generate()
	if err != nil {
		return "", errors.WithStack(err)
	}

	return token, nil
}

type TokenIssuerOptionFunc func(i *TokenIssuer)

func WithTokenGenerator(generate func() (string, error)) TokenIssuerOptionFunc {
	return func(i *TokenIssuer) {
		i.generate = generate
	}
}

func NewTokenIssuer(funcs ...TokenIssuerOptionFunc) *TokenIssuer {
	issuer := &TokenIssuer{
		generate: crypto.GenerateShareToken,
	}
	for _, fn := range funcs {
		fn(issuer)
	}
	return issuer
}
