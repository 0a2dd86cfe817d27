package mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukerupert/dokimi"
)

var _ dokimi.RetailerService = (*RetailerService)(nil)

// RetailerService is a mock implementation of dokimi.RetailerService.
type RetailerService struct {
	FindRetailerByIDFn         func(ctx context.Context, id uuid.UUID) (*dokimi.Retailer, error)
	FindRetailersFn            func(ctx context.Context) ([]*dokimi.Retailer, error)
	FindPlacementByIDFn        func(ctx context.Context, id uuid.UUID) (*dokimi.Placement, error)
	FindPlacementsByRetailerFn func(ctx context.Context, retailerID uuid.UUID) ([]*dokimi.Placement, error)
}

func (m *RetailerService) FindRetailerByID(ctx context.Context, id uuid.UUID) (*dokimi.Retailer, error) {
	return m.FindRetailerByIDFn(ctx, id)
}

func (m *RetailerService) FindRetailers(ctx context.Context) ([]*dokimi.Retailer, error) {
	return m.FindRetailersFn(ctx)
}

func (m *RetailerService) FindPlacementByID(ctx context.Context, id uuid.UUID) (*dokimi.Placement, error) {
	return m.FindPlacementByIDFn(ctx, id)
}

func (m *RetailerService) FindPlacementsByRetailer(ctx context.Context, retailerID uuid.UUID) ([]*dokimi.Placement, error) {
	return m.FindPlacementsByRetailerFn(ctx, retailerID)
}
