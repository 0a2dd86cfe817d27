package dokimi

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Retailer is a retail media network a creative can be submitted to.
type Retailer struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	// Slug is a URL-safe identifier (e.g. "megamart").
	Slug string `json:"slug"`

	// Guidelines summarizes the retailer's creative requirements and is fed
	// to the remote analysis prompts as context.
	Guidelines string `json:"guidelines,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Placement is an advertising slot offered by a retailer.
type Placement struct {
	ID         uuid.UUID `json:"id"`
	RetailerID uuid.UUID `json:"retailerId"`
	Name       string    `json:"name"`

	// Description explains where the placement appears (homepage banner,
	// search sidebar, product page, ...).
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// RetailerService defines operations on the retailer/placement catalog.
type RetailerService interface {
	// FindRetailerByID retrieves a retailer by ID.
	FindRetailerByID(ctx context.Context, id uuid.UUID) (*Retailer, error)

	// FindRetailers lists all retailers ordered by name.
	FindRetailers(ctx context.Context) ([]*Retailer, error)

	// FindPlacementByID retrieves a placement by ID.
	FindPlacementByID(ctx context.Context, id uuid.UUID) (*Placement, error)

	// FindPlacementsByRetailer lists a retailer's placements ordered by name.
	FindPlacementsByRetailer(ctx context.Context, retailerID uuid.UUID) ([]*Placement, error)
}
