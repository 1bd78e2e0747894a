// internal/catalog/elasticsearch.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"trimly-search/internal/common/database"
	"trimly-search/internal/models"
)

// ElasticsearchSource loads the catalog from the shop index on deployments
// that already index shops for other features. It still fetches the whole
// index into memory: filter evaluation stays in-process and pure rather
// than being pushed into query DSL.
type ElasticsearchSource struct {
	es    *database.ElasticsearchClient
	index string
}

func NewElasticsearchSource(es *database.ElasticsearchClient, index string) *ElasticsearchSource {
	return &ElasticsearchSource{es: es, index: index}
}

func (s *ElasticsearchSource) Name() string {
	return "elasticsearch"
}

const snapshotQuery = `{"query": {"match_all": {}}, "size": 10000, "sort": ["_doc"]}`

func (s *ElasticsearchSource) LoadCatalog(ctx context.Context) ([]models.ShopCatalogEntry, error) {
	body, err := s.es.Search(ctx, s.index, snapshotQuery)
	if err != nil {
		return nil, err
	}

	var response struct {
		Hits struct {
			Hits []struct {
				Source models.ShopCatalogEntry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode shop index response: %w", err)
	}

	catalog := make([]models.ShopCatalogEntry, 0, len(response.Hits.Hits))
	for _, hit := range response.Hits.Hits {
		shop := hit.Source
		if shop.Services == nil {
			shop.Services = []models.ServiceOffering{}
		}
		catalog = append(catalog, shop)
	}
	return catalog, nil
}
