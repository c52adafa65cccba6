package loader

import (
	"context"
	"encoding/json"
	"fmt"

	"sales-datagen/internal/common/database"
	"sales-datagen/internal/common/logger"
	"sales-datagen/internal/common/metrics"
	"sales-datagen/internal/models"
)

// RedisLoader stores each record as a JSON document keyed
// `<run>:<collection>:<id>`, plus one set per collection holding the ids.
// The run prefix is derived from the dataset seed so repeated loads of the
// same run overwrite rather than accumulate.
type RedisLoader struct {
	client *database.RedisClient
	logger logger.Logger
}

func NewRedisLoader(client *database.RedisClient, log logger.Logger) *RedisLoader {
	return &RedisLoader{
		client: client,
		logger: log.WithFields(map[string]interface{}{"loader": "redis"}),
	}
}

func (l *RedisLoader) Load(ctx context.Context, ds *models.Dataset) error {
	run := fmt.Sprintf("run:%d", ds.Seed)

	if err := l.loadCollection(ctx, run, "products", len(ds.Products), func(i int) (string, interface{}) {
		return ds.Products[i].ID, ds.Products[i]
	}); err != nil {
		return err
	}
	if err := l.loadCollection(ctx, run, "salesPeople", len(ds.SalesPeople), func(i int) (string, interface{}) {
		return ds.SalesPeople[i].ID, ds.SalesPeople[i]
	}); err != nil {
		return err
	}
	if err := l.loadCollection(ctx, run, "customers", len(ds.Customers), func(i int) (string, interface{}) {
		return ds.Customers[i].ID, ds.Customers[i]
	}); err != nil {
		return err
	}
	if err := l.loadCollection(ctx, run, "opportunities", len(ds.Opportunities), func(i int) (string, interface{}) {
		return ds.Opportunities[i].ID, ds.Opportunities[i]
	}); err != nil {
		return err
	}
	if err := l.loadCollection(ctx, run, "interactions", len(ds.Interactions), func(i int) (string, interface{}) {
		return ds.Interactions[i].ID, ds.Interactions[i]
	}); err != nil {
		return err
	}

	l.logger.Info("dataset loaded into redis", map[string]interface{}{"run": run})
	return nil
}

func (l *RedisLoader) loadCollection(ctx context.Context, run, collection string, n int, record func(int) (string, interface{})) error {
	indexKey := fmt.Sprintf("%s:%s", run, collection)

	pipe := l.client.Pipeline()
	for i := 0; i < n; i++ {
		id, doc := record(i)
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s: %w", collection, id, err)
		}
		pipe.Set(ctx, fmt.Sprintf("%s:%s:%s", run, collection, id), raw, 0)
		pipe.SAdd(ctx, indexKey, id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to load %s into redis: %w", collection, err)
	}

	metrics.RecordsLoaded.WithLabelValues("redis", collection).Add(float64(n))
	return nil
}
