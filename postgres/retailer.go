package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dukerupert/dokimi"
)

// Compile-time check that RetailerService implements dokimi.RetailerService.
var _ dokimi.RetailerService = (*RetailerService)(nil)

// RetailerService implements dokimi.RetailerService using PostgreSQL.
type RetailerService struct {
	db *DB
}

func (s *RetailerService) FindRetailerByID(ctx context.Context, id uuid.UUID) (*dokimi.Retailer, error) {
	var r dokimi.Retailer
	err := s.db.pool.QueryRow(ctx,
		`SELECT id, name, slug, guidelines, created_at FROM retailers WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.Name, &r.Slug, &r.Guidelines, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dokimi.NotFound("Retailer not found")
		}
		return nil, dokimi.Internal("Failed to fetch retailer", err)
	}
	return &r, nil
}

func (s *RetailerService) FindRetailers(ctx context.Context) ([]*dokimi.Retailer, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT id, name, slug, guidelines, created_at FROM retailers ORDER BY name`,
	)
	if err != nil {
		return nil, dokimi.Internal("Failed to list retailers", err)
	}
	defer rows.Close()

	var retailers []*dokimi.Retailer
	for rows.Next() {
		var r dokimi.Retailer
		if err := rows.Scan(&r.ID, &r.Name, &r.Slug, &r.Guidelines, &r.CreatedAt); err != nil {
			return nil, dokimi.Internal("Failed to scan retailer", err)
		}
		retailers = append(retailers, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, dokimi.Internal("Failed to list retailers", err)
	}

	return retailers, nil
}

func (s *RetailerService) FindPlacementByID(ctx context.Context, id uuid.UUID) (*dokimi.Placement, error) {
	var p dokimi.Placement
	err := s.db.pool.QueryRow(ctx,
		`SELECT id, retailer_id, name, description, created_at FROM placements WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.RetailerID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dokimi.NotFound("Placement not found")
		}
		return nil, dokimi.Internal("Failed to fetch placement", err)
	}
	return &p, nil
}

func (s *RetailerService) FindPlacementsByRetailer(ctx context.Context, retailerID uuid.UUID) ([]*dokimi.Placement, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT id, retailer_id, name, description, created_at FROM placements
		 WHERE retailer_id = $1 ORDER BY name`,
		retailerID,
	)
	if err != nil {
		return nil, dokimi.Internal("Failed to list placements", err)
	}
	defer rows.Close()

	var placements []*dokimi.Placement
	for rows.Next() {
		var p dokimi.Placement
		if err := rows.Scan(&p.ID, &p.RetailerID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, dokimi.Internal("Failed to scan placement", err)
		}
		placements = append(placements, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, dokimi.Internal("Failed to list placements", err)
	}

	return placements, nil
}
