package ledger

import (
	"context"
	"errors"

	"geds_checkout/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the serialized ledger under a single Redis key.
type RedisSlot struct {
	client redis.Cmdable
	key    string
}

var _ interfaces.ILedgerSlot = (*RedisSlot)(nil)

func NewRedisSlot(client redis.Cmdable, key string) *RedisSlot {
	return &RedisSlot{client: client, key: key}
}

func (s *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return b, err
}

func (s *RedisSlot) Store(ctx context.Context, data []byte) error {
	return s.client.Set(ctx, s.key, data, 0).Err()
}
