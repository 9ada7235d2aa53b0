package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"sentimock/internal/domain"
)

const (
	keyEmails    = "sentimock:accounts:emails"    // hash: email -> id
	keySeq       = "sentimock:accounts:seq"       // counter for sequential ids
	keyOrder     = "sentimock:accounts:order"     // list of ids in registration order
	keyByID      = "sentimock:accounts:byid"      // hash: id -> email
	keyPasswords = "sentimock:accounts:passwords" // hash: id -> password
	keyCreated   = "sentimock:accounts:created"   // hash: id -> unix ms
)

// addAccountScript atomically checks email uniqueness, assigns the next
// sequential id, and writes all account fields. Returns 0 when the email is
// already registered, the new id otherwise.
// KEYS: [1]=emails, [2]=seq, [3]=order, [4]=byid, [5]=passwords, [6]=created
// ARGV: [1]=email, [2]=password, [3]=now_ms
var addAccountScript = goredis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 1 then
	return 0
end
local id = redis.call('INCR', KEYS[2])
redis.call('HSET', KEYS[1], ARGV[1], id)
redis.call('RPUSH', KEYS[3], id)
redis.call('HSET', KEYS[4], id, ARGV[1])
redis.call('HSET', KEYS[5], id, ARGV[2])
redis.call('HSET', KEYS[6], id, ARGV[3])
return id
`)

var storeKeys = []string{keyEmails, keySeq, keyOrder, keyByID, keyPasswords, keyCreated}

// UserStore is the Redis-backed account registry. It implements the same
// append-only contract as the in-memory store, with uniqueness enforced
// atomically by addAccountScript so concurrent mock instances cannot race
// past the dispatcher's duplicate check.
type UserStore struct {
	rdb   *goredis.Client
	clock clockwork.Clock
}

var _ domain.UserStore = (*UserStore)(nil)

func NewUserStore(rdb *goredis.Client, clock clockwork.Clock) *UserStore {
	return &UserStore{rdb: rdb, clock: clock}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	id, err := s.rdb.HGet(ctx, keyEmails, email).Result()
	if err == goredis.Nil {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return s.load(ctx, id, email)
}

func (s *UserStore) Add(ctx context.Context, email, password string) (*domain.Account, error) {
	nowMs := s.clock.Now().UnixMilli()
	result, err := addAccountScript.Run(ctx, s.rdb, storeKeys,
		email, password, strconv.FormatInt(nowMs, 10),
	).Int64()
	if err != nil {
		return nil, fmt.Errorf("add account script failed: %w", err)
	}
	if result == 0 {
		return nil, domain.ErrEmailTaken
	}

	return &domain.Account{
		ID:        strconv.FormatInt(result, 10),
		Email:     email,
		Password:  password,
		CreatedAt: time.UnixMilli(nowMs),
	}, nil
}

func (s *UserStore) First(ctx context.Context) (*domain.Account, error) {
	id, err := s.rdb.LIndex(ctx, keyOrder, 0).Result()
	if err == goredis.Nil {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read first account: %w", err)
	}

	email, err := s.rdb.HGet(ctx, keyByID, id).Result()
	if err != nil {
		return nil, fmt.Errorf("read first account email: %w", err)
	}
	return s.load(ctx, id, email)
}

func (s *UserStore) Count(ctx context.Context) (int, error) {
	n, err := s.rdb.LLen(ctx, keyOrder).Result()
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return int(n), nil
}

// load assembles an Account from the per-field hashes.
func (s *UserStore) load(ctx context.Context, id, email string) (*domain.Account, error) {
	password, err := s.rdb.HGet(ctx, keyPasswords, id).Result()
	if err != nil {
		return nil, fmt.Errorf("read account password: %w", err)
	}

	createdMsStr, err := s.rdb.HGet(ctx, keyCreated, id).Result()
	if err != nil {
		return nil, fmt.Errorf("read account created_at: %w", err)
	}
	createdMs, err := strconv.ParseInt(createdMsStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("account %s has invalid created_at %q: %w", id, createdMsStr, err)
	}

	return &domain.Account{
		ID:        id,
		Email:     email,
		Password:  password,
		CreatedAt: time.UnixMilli(createdMs),
	}, nil
}
