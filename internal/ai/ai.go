package ai

import (
	"context"
	"log/slog"

	"github.com/dukerupert/dokimi"
)

// Service defines the three independent remote inference exchanges the
// analysis engine consumes. Each exchange is attempted once with no retry;
// the engine substitutes a local fallback for any exchange that returns an
// error, so a transient heatmap failure never discards a successful
// compliance result.
type Service interface {
	// AnalyzeCreative sends the creative image plus placement context to the
	// multimodal endpoint and returns structured compliance findings,
	// design metrics, risk factors, and suggestions.
	AnalyzeCreative(ctx context.Context, req CreativeRequest) (*CreativeAnalysis, error)

	// GenerateHeatmap asks the text endpoint to predict attention zones for
	// a creative with the given design metrics.
	GenerateHeatmap(ctx context.Context, metrics dokimi.DesignMetrics) (*dokimi.HeatmapData, error)

	// GeneratePlacements asks the text endpoint for exactly three placement
	// scenarios for the given retailer context.
	GeneratePlacements(ctx context.Context, req PlacementRequest) ([]dokimi.PlacementSimulation, error)
}

// CreativeRequest contains the data for the multimodal compliance exchange.
type CreativeRequest struct {
	// ImageData is the raw creative image bytes.
	ImageData []byte

	// MediaType is the image MIME type (e.g. "image/png").
	MediaType string

	// RetailerName and PlacementName describe the submission target.
	RetailerName  string
	PlacementName string

	// Guidelines optionally carries the retailer's creative requirements.
	Guidelines string
}

// PlacementRequest contains the context for the placement-scenario exchange.
type PlacementRequest struct {
	RetailerName  string
	PlacementName string
}

// CreativeAnalysis is the parsed payload of the compliance exchange.
type CreativeAnalysis struct {
	ComplianceChecks []dokimi.ComplianceCheck
	DesignMetrics    dokimi.DesignMetrics
	RiskFactors      []string
	Suggestions      []dokimi.Suggestion
}

// Config holds configuration for the remote analysis service.
type Config struct {
	// APIKey is the Anthropic API key. An empty key is a valid configuration
	// state: the caller skips remote analysis entirely.
	APIKey string

	// Model is the model identifier, e.g. "claude-sonnet-4-20250514".
	Model string

	MaxTokens   int
	Temperature float64
}

// NewService creates the Claude-backed remote analysis service.
func NewService(logger *slog.Logger, cfg Config) Service {
	return newClaudeService(logger, cfg)
}
