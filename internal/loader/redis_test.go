package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-datagen/internal/common/database"
	"sales-datagen/internal/common/logger"
	"sales-datagen/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newMiniredisClient(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { client.Close() })
	return client, mr
}

// ==========================
// RedisLoader Tests
// ==========================

func TestRedisLoader_Load(t *testing.T) {
	client, mr := newMiniredisClient(t)
	ds := testDataset()

	l := NewRedisLoader(client, logger.NewTestLogger(t))
	require.NoError(t, l.Load(context.Background(), ds))

	run := fmt.Sprintf("run:%d", ds.Seed)

	productKey := fmt.Sprintf("%s:products:%s", run, ds.Products[0].ID)
	raw, err := mr.Get(productKey)
	require.NoError(t, err)

	var stored models.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, ds.Products[0].Name, stored.Name)
	assert.Equal(t, ds.Products[0].Price, stored.Price)

	members, err := mr.SMembers(run + ":interactions")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{ds.Interactions[0].ID}, members)
}

func TestRedisLoader_IndexSetsPerCollection(t *testing.T) {
	client, mr := newMiniredisClient(t)
	ds := testDataset()

	l := NewRedisLoader(client, logger.NewTestLogger(t))
	require.NoError(t, l.Load(context.Background(), ds))

	run := fmt.Sprintf("run:%d", ds.Seed)
	for _, collection := range []string{"products", "salesPeople", "customers", "opportunities", "interactions"} {
		members, err := mr.SMembers(fmt.Sprintf("%s:%s", run, collection))
		require.NoError(t, err, collection)
		assert.Len(t, members, 1, collection)
	}
}

func TestRedisLoader_ReloadOverwrites(t *testing.T) {
	client, mr := newMiniredisClient(t)
	ds := testDataset()

	l := NewRedisLoader(client, logger.NewTestLogger(t))
	require.NoError(t, l.Load(context.Background(), ds))
	require.NoError(t, l.Load(context.Background(), ds))

	run := fmt.Sprintf("run:%d", ds.Seed)
	members, err := mr.SMembers(run + ":customers")
	require.NoError(t, err)
	assert.Len(t, members, 1, "reloading the same run must not accumulate ids")
}

func TestRedisLoader_ConnectionFailure(t *testing.T) {
	client, mr := newMiniredisClient(t)
	mr.Close()

	l := NewRedisLoader(client, logger.NewTestLogger(t))
	err := l.Load(context.Background(), testDataset())
	assert.Error(t, err)
}
