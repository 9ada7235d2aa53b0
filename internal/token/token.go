// Package token issues and decodes the mock session tokens.
//
// Tokens are not cryptographically signed: the value is a fixed prefix plus
// the account ID, matching what the frontend it serves already expects. Any
// well-formed token is trusted.
package token

import (
	"strings"

	"sentimock/internal/domain"
)

const prefix = "mock-jwt-token-"

// Service mints deterministic session tokens bound to an account ID.
// Issuing twice for the same account yields the same token; there is no
// expiry and no revocation.
type Service struct{}

var _ domain.TokenIssuer = (*Service)(nil)

func NewService() *Service {
	return &Service{}
}

// Issue returns the session token for the given account.
func (s *Service) Issue(account *domain.Account) string {
	return prefix + account.ID
}

// Resolve extracts the account ID a token was issued for. It performs no
// lookup against the user store; callers own any identity verification.
func (s *Service) Resolve(tok string) (string, error) {
	id, ok := strings.CutPrefix(tok, prefix)
	if !ok || id == "" {
		return "", domain.ErrMalformedToken
	}
	return id, nil
}
