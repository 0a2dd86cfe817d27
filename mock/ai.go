// Package mock provides function-field mock implementations of the domain
// service interfaces for testing.
package mock

import (
	"context"

	"github.com/dukerupert/dokimi"
	"github.com/dukerupert/dokimi/internal/ai"
)

var _ ai.Service = (*AIService)(nil)

// AIService is a mock implementation of ai.Service.
type AIService struct {
	AnalyzeCreativeFn    func(ctx context.Context, req ai.CreativeRequest) (*ai.CreativeAnalysis, error)
	GenerateHeatmapFn    func(ctx context.Context, metrics dokimi.DesignMetrics) (*dokimi.HeatmapData, error)
	GeneratePlacementsFn func(ctx context.Context, req ai.PlacementRequest) ([]dokimi.PlacementSimulation, error)
}

func (m *AIService) AnalyzeCreative(ctx context.Context, req ai.CreativeRequest) (*ai.CreativeAnalysis, error) {
	return m.AnalyzeCreativeFn(ctx, req)
}

func (m *AIService) GenerateHeatmap(ctx context.Context, metrics dokimi.DesignMetrics) (*dokimi.HeatmapData, error) {
	return m.GenerateHeatmapFn(ctx, metrics)
}

func (m *AIService) GeneratePlacements(ctx context.Context, req ai.PlacementRequest) ([]dokimi.PlacementSimulation, error) {
	return m.GeneratePlacementsFn(ctx, req)
}
