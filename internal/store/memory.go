package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/jonboulle/clockwork"

	"sentimock/internal/domain"
)

// MemoryStore is an append-only, process-local account registry.
//
// The mutex covers the whole check-then-append sequence in Add: the
// dispatcher performs the user-facing duplicate check separately, but the
// email-uniqueness invariant must also survive concurrent registrations
// racing past that check.
type MemoryStore struct {
	mu       sync.RWMutex
	clock    clockwork.Clock
	accounts []*domain.Account
	byEmail  map[string]*domain.Account
}

var _ domain.UserStore = (*MemoryStore)(nil)

func NewMemoryStore(clock clockwork.Clock) *MemoryStore {
	return &MemoryStore{
		clock:   clock,
		byEmail: make(map[string]*domain.Account),
	}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (s *MemoryStore) Add(_ context.Context, email, password string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, domain.ErrEmailTaken
	}

	account := &domain.Account{
		ID:        strconv.Itoa(len(s.accounts) + 1),
		Email:     email,
		Password:  password,
		CreatedAt: s.clock.Now(),
	}
	s.accounts = append(s.accounts, account)
	s.byEmail[email] = account

	copied := *account
	return &copied, nil
}

func (s *MemoryStore) First(_ context.Context) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.accounts) == 0 {
		return nil, domain.ErrAccountNotFound
	}
	copied := *s.accounts[0]
	return &copied, nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts), nil
}
