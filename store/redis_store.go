package store

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// saveMaxScript writes ARGV[1] only if it beats the stored value, so
// concurrent sessions sharing a key can never lower it. GET on a missing
// key yields false in Lua, and a non-numeric value is overwritten.
var saveMaxScript = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '')
local v = tonumber(ARGV[1])
if not cur or v > cur then
  redis.call('SET', KEYS[1], ARGV[1])
  return 1
end
return 0
`)

// RedisStore keeps the high score in a single redis string key
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{
		client: client,
		key:    key,
	}
}

// DialRedis connects and pings before returning the store
func DialRedis(ctx context.Context, addr string, db int, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "pinging redis at %s", addr)
	}
	return NewRedisStore(client, key), nil
}

func (rs *RedisStore) Load(ctx context.Context) (int, error) {
	raw, err := rs.client.Get(ctx, rs.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrapf(err, "GET %s", rs.key)
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalid, "key %s holds %q", rs.key, raw)
	}
	return validate(score)
}

func (rs *RedisStore) Save(ctx context.Context, score int) error {
	if _, err := validate(score); err != nil {
		return err
	}
	if err := saveMaxScript.Run(ctx, rs.client, []string{rs.key}, score).Err(); err != nil {
		return errors.Wrapf(err, "saving %s", rs.key)
	}
	return nil
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
