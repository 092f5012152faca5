package ledger

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const isolatedLedgerTestRedisDB = 14

func TestMemorySlot(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySlot()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	in := []byte(`[{"id":1}]`)
	require.NoError(t, s.Store(ctx, in))
	in[0] = 'X'

	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(got))
}

func testRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD"), DB: isolatedLedgerTestRedisDB})
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisSlot(t *testing.T) {
	client := testRedisClient(t)
	ctx := context.Background()
	key := fmt.Sprintf("historicoPagamentos:test:%d", time.Now().UnixNano())
	t.Cleanup(func() { client.Del(context.Background(), key) })

	s := NewRedisSlot(client, key)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Store(ctx, []byte(`[]`)))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}
