package domain

import (
	"context"
	"time"
)

// Account is a registered user of the mock backend.
//
// The password is stored in plaintext. Rationale:
//   - The store simulates a development backend; credentials are fixtures,
//     never real secrets.
//   - Login compares for byte equality, exactly like the frontend mock this
//     service replaces.
//   - Hashing would change observable behavior for zero security gain in a
//     tool that only ever runs on a developer's machine.
type Account struct {
	ID        string
	Email     string
	Password  string
	CreatedAt time.Time
}

// UserStore is an append-only registry of accounts. IDs are assigned
// sequentially as stringified 1-based indexes. There are no update or delete
// operations for the lifetime of the process.
type UserStore interface {
	// FindByEmail returns the account registered under email, or
	// ErrAccountNotFound. Email comparison is case-sensitive.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// Add appends a new account and returns it. The uniqueness check the
	// caller already performed is re-enforced atomically; a lost race
	// surfaces as ErrEmailTaken.
	Add(ctx context.Context, email, password string) (*Account, error)

	// First returns the first-registered account, or ErrAccountNotFound
	// when the store is empty.
	First(ctx context.Context) (*Account, error)

	// Count returns the number of registered accounts.
	Count(ctx context.Context) (int, error)
}

// TokenIssuer mints and decodes session tokens. Tokens are deterministic,
// unexpiring, and derived only from the account ID.
type TokenIssuer interface {
	Issue(account *Account) string
	Resolve(token string) (accountID string, err error)
}
