// Package postgres provides PostgreSQL implementations of domain service
// interfaces.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukerupert/dokimi"
)

// DB wraps the database connection pool and exposes domain services.
type DB struct {
	pool *pgxpool.Pool

	// Domain services (initialized in NewDB)
	RetailerService dokimi.RetailerService
	ReportService   dokimi.ReportService
}

// NewDB creates a new database wrapper with all services initialized.
func NewDB(pool *pgxpool.Pool) *DB {
	db := &DB{pool: pool}

	db.RetailerService = &RetailerService{db: db}
	db.ReportService = &ReportService{db: db}

	return db
}

// Pool returns the underlying connection pool.
// Use sparingly - prefer using service methods.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// schema is the idempotent bootstrap schema executed at startup.
const schema = `
CREATE TABLE IF NOT EXISTS retailers (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name text NOT NULL,
	slug text NOT NULL UNIQUE,
	guidelines text NOT NULL DEFAULT '',
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS placements (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	retailer_id uuid NOT NULL REFERENCES retailers(id) ON DELETE CASCADE,
	name text NOT NULL,
	description text NOT NULL DEFAULT '',
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS analysis_reports (
	id uuid PRIMARY KEY,
	retailer_id uuid NOT NULL,
	placement_id uuid NOT NULL,
	retailer_name text NOT NULL,
	placement_name text NOT NULL,
	creative_url text NOT NULL DEFAULT '',
	result jsonb NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_analysis_reports_created_at
	ON analysis_reports (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_placements_retailer_id
	ON placements (retailer_id);
`

// Bootstrap creates the schema if missing and seeds the default retailer
// catalog when the table is empty.
func (db *DB) Bootstrap(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	var count int
	if err := db.pool.QueryRow(ctx, `SELECT count(*) FROM retailers`).Scan(&count); err != nil {
		return fmt.Errorf("counting retailers: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.seedCatalog(ctx)
}

// seedCatalog inserts a starter retailer/placement catalog.
func (db *DB) seedCatalog(ctx context.Context) error {
	seed := []struct {
		name       string
		slug       string
		guidelines string
		placements []string
	}{
		{
			name:       "MegaMart",
			slug:       "megamart",
			guidelines: "Logo in top-left safe zone; minimum 4.5:1 text contrast; legal disclaimer required for price claims.",
			placements: []string{"Homepage banner", "Search results sidebar", "Product detail page"},
		},
		{
			name:       "FreshField Grocers",
			slug:       "freshfield",
			guidelines: "No competitor brand imagery; CTA must name the retailer; max 30% text coverage.",
			placements: []string{"Weekly flyer hero", "Category landing page"},
		},
		{
			name:       "ValuePoint",
			slug:       "valuepoint",
			guidelines: "Price callouts require effective-date disclaimer; white or brand-color backgrounds only.",
			placements: []string{"App interstitial", "Checkout upsell tile"},
		},
	}

	for _, r := range seed {
		var retailerID string
		err := db.pool.QueryRow(ctx,
			`INSERT INTO retailers (name, slug, guidelines) VALUES ($1, $2, $3) RETURNING id`,
			r.name, r.slug, r.guidelines,
		).Scan(&retailerID)
		if err != nil {
			return fmt.Errorf("seeding retailer %s: %w", r.slug, err)
		}

		for _, p := range r.placements {
			_, err := db.pool.Exec(ctx,
				`INSERT INTO placements (retailer_id, name) VALUES ($1, $2)`,
				retailerID, p,
			)
			if err != nil {
				return fmt.Errorf("seeding placement %s for %s: %w", p, r.slug, err)
			}
		}
	}

	return nil
}
