package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"debenture/internal/debenture"
)

// RedisStore keeps a contract's fields in one hash, one hash field per key.
type RedisStore struct {
	client *redis.Client
	key    string
}

var _ debenture.BatchStore = (*RedisStore)(nil)

// NewRedisStore scopes client to the hash <prefix>contract:<contractID>.
func NewRedisStore(client *redis.Client, prefix, contractID string) *RedisStore {
	return &RedisStore{client: client, key: prefix + "contract:" + contractID}
}

func hashField(key debenture.FieldKey) string {
	return strconv.FormatUint(uint64(key), 10)
}

func (s *RedisStore) Get(ctx context.Context, key debenture.FieldKey) ([]byte, bool, error) {
	v, err := s.client.HGet(ctx, s.key, hashField(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key debenture.FieldKey, value []byte) error {
	return s.client.HSet(ctx, s.key, hashField(key), value).Err()
}

// SetBatch issues a single multi-field HSET, which Redis applies atomically.
func (s *RedisStore) SetBatch(ctx context.Context, entries []debenture.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	values := make([]interface{}, 0, 2*len(entries))
	for _, e := range entries {
		values = append(values, hashField(e.Key), e.Value)
	}
	return s.client.HSet(ctx, s.key, values...).Err()
}

// RedisProvider scopes a shared client per contract.
type RedisProvider struct {
	client *redis.Client
	prefix string
}

// NewRedisProvider creates a provider. prefix namespaces every hash key.
func NewRedisProvider(client *redis.Client, prefix string) *RedisProvider {
	return &RedisProvider{client: client, prefix: prefix}
}

func (p *RedisProvider) ForContract(contractID string) debenture.Store {
	return NewRedisStore(p.client, p.prefix, contractID)
}

func (p *RedisProvider) Backend() string { return BackendRedis }

func (p *RedisProvider) Close() error { return p.client.Close() }
