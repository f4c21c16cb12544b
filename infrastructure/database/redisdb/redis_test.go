package redisdb

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
)

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("sem endereço retorna nil", func(t *testing.T) {
		client, err := NewClient(ctx, config.Redis{})
		assert.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("conecta no redis", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := NewClient(ctx, config.Redis{Addr: mr.Addr()})
		require.NoError(t, err)
		require.NotNil(t, client)
		defer client.Close()

		assert.NoError(t, client.Set(ctx, "k", "v", 0).Err())
		got, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("redis indisponível", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		client, err := NewClient(ctx, config.Redis{Addr: addr})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
