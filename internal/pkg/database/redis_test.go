package database

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &RedisClient{Client: client}
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Miniredis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	config := models.RedisConfig{Host: mr.Host(), Port: atoiPort(t, mr.Port())}

	client, err := NewRedisClient(config)
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.GetClient())
	assert.NoError(t, client.Ping(context.Background()))
}

func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock redismock.ClientMock)
		call      func(c *RedisClient) (string, error)
		want      string
		wantError bool
	}{
		{
			name: "set without expiration",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectSet("payoutMerchant:m-1", `{"scope":"merchant_payout"}`, 0).SetVal("OK")
			},
			call: func(c *RedisClient) (string, error) {
				return "", c.Set(context.Background(), "payoutMerchant:m-1", `{"scope":"merchant_payout"}`, 0)
			},
		},
		{
			name: "get hit",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("payoutMerchant:m-1").SetVal("cached")
			},
			call: func(c *RedisClient) (string, error) {
				return c.Get(context.Background(), "payoutMerchant:m-1")
			},
			want: "cached",
		},
		{
			name: "get miss returns redis.Nil",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("payoutMerchant:m-2").RedisNil()
			},
			call: func(c *RedisClient) (string, error) {
				return c.Get(context.Background(), "payoutMerchant:m-2")
			},
			wantError: true,
		},
		{
			name: "set error",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectSet("k", "v", time.Minute).SetErr(errors.New("connection refused"))
			},
			call: func(c *RedisClient) (string, error) {
				return "", c.Set(context.Background(), "k", "v", time.Minute)
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}
			tt.setup(mock)

			got, err := tt.call(client)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_GetMissIsRedisNil(t *testing.T) {
	_, client := setupMiniredis(t)

	_, err := client.Get(context.Background(), "absent")

	assert.True(t, errors.Is(err, redis.Nil))
}

func TestRedisClient_DeleteMultipleKeys(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("a", "1"))
	require.NoError(t, mr.Set("b", "2"))
	require.NoError(t, mr.Set("c", "3"))

	require.NoError(t, client.Delete(ctx, "a", "b"))
	require.NoError(t, client.Delete(ctx))

	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
	assert.True(t, mr.Exists("c"))
}

func TestRedisClient_Counters(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	exists, err := client.Exists(ctx, "counter")
	require.NoError(t, err)
	assert.False(t, exists)

	ok, err := client.SetNX(ctx, "counter", 5, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, "counter", 99, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := client.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	n, err = client.Decr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	exists, err = client.Exists(ctx, "counter")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRedisClient_RunScript(t *testing.T) {
	_, client := setupMiniredis(t)
	script := redis.NewScript(`return redis.call("INCRBY", KEYS[1], ARGV[1])`)

	res, err := client.RunScript(context.Background(), script, []string{"scripted"}, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), res)
}

func atoiPort(t *testing.T, port string) int {
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return p
}
