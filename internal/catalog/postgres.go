// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"trimly-search/internal/models"
)

// PostgresSource loads the catalog from the platform's shops schema. Two
// queries, joined in memory: catalogs are small enough that one pass over
// the services table beats a per-shop query.
type PostgresSource struct {
	db *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Name() string {
	return "postgres"
}

func (s *PostgresSource) LoadCatalog(ctx context.Context) ([]models.ShopCatalogEntry, error) {
	shops, order, err := s.loadShops(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.attachServices(ctx, shops); err != nil {
		return nil, err
	}

	catalog := make([]models.ShopCatalogEntry, 0, len(order))
	for _, id := range order {
		catalog = append(catalog, *shops[id])
	}
	return catalog, nil
}

func (s *PostgresSource) loadShops(ctx context.Context) (map[string]*models.ShopCatalogEntry, []string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, address, rating, price_tier, description
		FROM shops
		ORDER BY created_at, id`)
	if err != nil {
		return nil, nil, fmt.Errorf("query shops: %w", err)
	}
	defer rows.Close()

	shops := make(map[string]*models.ShopCatalogEntry)
	var order []string

	for rows.Next() {
		var (
			shop        models.ShopCatalogEntry
			rating      sql.NullFloat64
			priceTier   sql.NullString
			description sql.NullString
		)
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.Address, &rating, &priceTier, &description); err != nil {
			return nil, nil, fmt.Errorf("scan shop: %w", err)
		}

		if rating.Valid {
			r := rating.Float64
			shop.Rating = &r
		}
		if priceTier.Valid {
			shop.PriceTier = models.PriceTier(priceTier.String)
		}
		shop.Description = description.String
		shop.Services = []models.ServiceOffering{}

		shops[shop.ID] = &shop
		order = append(order, shop.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate shops: %w", err)
	}

	return shops, order, nil
}

func (s *PostgresSource) attachServices(ctx context.Context, shops map[string]*models.ShopCatalogEntry) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, shop_id, name, price, duration_minutes, description
		FROM shop_services
		ORDER BY shop_id, name`)
	if err != nil {
		return fmt.Errorf("query shop services: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			svc         models.ServiceOffering
			shopID      string
			description sql.NullString
		)
		if err := rows.Scan(&svc.ID, &shopID, &svc.Name, &svc.Price, &svc.DurationMinutes, &description); err != nil {
			return fmt.Errorf("scan shop service: %w", err)
		}
		svc.Description = description.String

		// Orphaned service rows are skipped rather than failing the load.
		if shop, ok := shops[shopID]; ok {
			shop.Services = append(shop.Services, svc)
		}
	}
	return rows.Err()
}
