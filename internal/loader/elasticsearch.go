package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"sales-datagen/internal/common/database"
	"sales-datagen/internal/common/logger"
	"sales-datagen/internal/common/metrics"
	"sales-datagen/internal/models"
)

const interactionsIndex = "sales-interactions"

// interactionDocument is the search-facing shape of an interaction: the raw
// record enriched with the owning opportunity's stage and value so retrieval
// queries can filter on deal context without a join.
type interactionDocument struct {
	models.Interaction
	OpportunityStage models.Stage `json:"opportunityStage"`
	OpportunityValue float64      `json:"opportunityValue"`
}

// ElasticsearchLoader bulk-indexes interactions for downstream retrieval.
type ElasticsearchLoader struct {
	client    *database.ElasticsearchClient
	logger    logger.Logger
	batchSize int
}

func NewElasticsearchLoader(client *database.ElasticsearchClient, log logger.Logger) *ElasticsearchLoader {
	return &ElasticsearchLoader{
		client:    client,
		logger:    log.WithFields(map[string]interface{}{"loader": "elasticsearch"}),
		batchSize: 500,
	}
}

func (l *ElasticsearchLoader) Load(ctx context.Context, ds *models.Dataset) error {
	opportunities := make(map[string]models.Opportunity, len(ds.Opportunities))
	for _, opp := range ds.Opportunities {
		opportunities[opp.ID] = opp
	}

	var buf bytes.Buffer
	batched := 0

	for _, in := range ds.Interactions {
		owner := opportunities[in.OpportunityID]
		doc := interactionDocument{
			Interaction:      in,
			OpportunityStage: owner.Status,
			OpportunityValue: owner.Value,
		}

		action, _ := json.Marshal(map[string]interface{}{
			"index": map[string]interface{}{"_index": interactionsIndex, "_id": in.ID},
		})
		source, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal interaction %s: %w", in.ID, err)
		}

		buf.Write(action)
		buf.WriteByte('\n')
		buf.Write(source)
		buf.WriteByte('\n')
		batched++

		if batched >= l.batchSize {
			if err := l.flush(ctx, &buf, batched); err != nil {
				return err
			}
			batched = 0
		}
	}

	if batched > 0 {
		if err := l.flush(ctx, &buf, batched); err != nil {
			return err
		}
	}

	l.logger.Info("interactions indexed", map[string]interface{}{
		"index":        interactionsIndex,
		"interactions": len(ds.Interactions),
	})
	return nil
}

func (l *ElasticsearchLoader) flush(ctx context.Context, buf *bytes.Buffer, count int) error {
	if err := l.client.Bulk(ctx, buf.Bytes()); err != nil {
		return err
	}
	buf.Reset()
	metrics.RecordsLoaded.WithLabelValues("elasticsearch", "interactions").Add(float64(count))
	return nil
}
