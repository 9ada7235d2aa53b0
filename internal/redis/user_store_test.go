package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentimock/internal/domain"
)

func newTestUserStore(t *testing.T) *UserStore {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewUserStore(rdb, clockwork.NewFakeClock())
}

func TestUserStore_AddAssignsSequentialIDs(t *testing.T) {
	s := newTestUserStore(t)
	ctx := context.Background()

	first, err := s.Add(ctx, "a@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, "1", first.ID)

	second, err := s.Add(ctx, "b@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, "2", second.ID)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUserStore_AddDuplicate(t *testing.T) {
	s := newTestUserStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "a@x.com", "p")
	require.NoError(t, err)

	_, err = s.Add(ctx, "a@x.com", "q")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserStore_FindByEmail(t *testing.T) {
	s := newTestUserStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, "a@x.com", "secret")
	require.NoError(t, err)

	found, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, added.ID, found.ID)
	assert.Equal(t, "a@x.com", found.Email)
	assert.Equal(t, "secret", found.Password)
	assert.Equal(t, added.CreatedAt, found.CreatedAt)
}

func TestUserStore_FindByEmail_NotFound(t *testing.T) {
	s := newTestUserStore(t)
	_, err := s.FindByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUserStore_First(t *testing.T) {
	s := newTestUserStore(t)
	ctx := context.Background()

	_, err := s.First(ctx)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = s.Add(ctx, "first@x.com", "p")
	require.NoError(t, err)
	_, err = s.Add(ctx, "second@x.com", "p")
	require.NoError(t, err)

	first, err := s.First(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "first@x.com", first.Email)
}
