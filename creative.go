package dokimi

import (
	"context"

	"github.com/google/uuid"
)

// CreativeService defines the engine-facing contract for analyzing a retail
// advertising creative. Analysis never fails for quality reasons: the engine
// degrades to local heuristics instead of returning an error, so the result
// is always fully populated.
type CreativeService interface {
	// AnalyzeCreative analyzes an uploaded creative image against compliance,
	// design-quality, and attention criteria for a retailer placement.
	AnalyzeCreative(ctx context.Context, req AnalysisRequest) *AnalysisResult
}

// AnalysisRequest carries one creative image plus its placement context.
type AnalysisRequest struct {
	// Image is the raw image bytes as uploaded.
	Image []byte

	// RetailerID and PlacementID identify the submission target.
	RetailerID  uuid.UUID
	PlacementID uuid.UUID

	// RetailerName and PlacementName are display names passed to the
	// remote analysis prompts.
	RetailerName  string
	PlacementName string

	// Guidelines optionally carries the retailer's creative requirements
	// for the remote compliance exchange.
	Guidelines string
}

// ImageFeatureProfile holds aggregate pixel statistics derived once per
// analysis. It is owned by the engine for the duration of a single call and
// is never persisted.
type ImageFeatureProfile struct {
	// HasText indicates whether the creative likely contains text.
	HasText bool `json:"hasText"`

	// TextDensity estimates how much of the surface is text (0-100).
	TextDensity int `json:"textDensity"`

	// ColorCount is the number of distinct quantized colors (0-256).
	ColorCount int `json:"colorCount"`

	// Brightness is the mean pixel brightness (0-255).
	Brightness int `json:"brightness"`

	// Contrast is a bimodal luminance separation proxy (0-100).
	Contrast int `json:"contrast"`

	// EstimatedReadability estimates text legibility (0-100).
	EstimatedReadability int `json:"estimatedReadability"`
}

// CheckStatus is the outcome of a single compliance check.
type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckWarning CheckStatus = "warning"
	CheckFail    CheckStatus = "fail"
)

// ComplianceCheck is one entry of the compliance checklist. Checks are
// reported in evaluation order (logo, text, contrast, dimensions, legal,
// CTA); the order matters for display only.
type ComplianceCheck struct {
	Item    string      `json:"item"`
	Status  CheckStatus `json:"status"`
	Details string      `json:"details"`
}

// DesignMetrics holds four independent 0-100 design scores.
type DesignMetrics struct {
	Compliance       int `json:"compliance"`
	Attention        int `json:"attention"`
	Readability      int `json:"readability"`
	BrandConsistency int `json:"brandConsistency"`
}

// HeatmapZone is one predicted attention point in normalized creative-surface
// coordinates (0-100 on both axes).
type HeatmapZone struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Intensity   int    `json:"intensity"`
	Description string `json:"description"`
}

// HeatmapData is the predicted visual-attention map for a creative.
type HeatmapData struct {
	Zones      []HeatmapZone `json:"zones"`
	FocusAreas []string      `json:"focusAreas"`
}

// RiskLabel bands the aggregate risk score.
type RiskLabel string

const (
	RiskExcellent RiskLabel = "Excellent"
	RiskGood      RiskLabel = "Good"
	RiskFair      RiskLabel = "Fair"
	RiskNeedsWork RiskLabel = "Needs Work"
)

// RiskAnalysis is the aggregated risk score with its banded label and a
// fixed per-band recommendation. Score and Label are always consistent:
// >=90 Excellent, >=75 Good, >=60 Fair, else Needs Work.
type RiskAnalysis struct {
	Score          int       `json:"score"`
	Label          RiskLabel `json:"label"`
	Recommendation string    `json:"recommendation"`
	RiskFactors    []string  `json:"riskFactors"`
}

// Severity ranks a suggestion by urgency.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// SuggestionType distinguishes generated suggestions from manual ones.
type SuggestionType string

const (
	SuggestionAI     SuggestionType = "ai"
	SuggestionManual SuggestionType = "manual"
)

// Suggestion is one improvement recommendation for the creative.
type Suggestion struct {
	ID          string         `json:"id"`
	Type        SuggestionType `json:"type"`
	Category    string         `json:"category"`
	Severity    Severity       `json:"severity"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
}

// PlacementSimulation describes how the creative is expected to perform in
// one retail placement scenario.
type PlacementSimulation struct {
	Context        string `json:"context"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// AnalysisResult aggregates everything one analysis produces. A fresh value
// is created per invocation and owned exclusively by the caller; the engine
// holds no state across calls.
type AnalysisResult struct {
	ComplianceChecks     []ComplianceCheck     `json:"complianceChecks"`
	DesignMetrics        DesignMetrics         `json:"designMetrics"`
	HeatmapData          HeatmapData           `json:"heatmapData"`
	RiskAnalysis         RiskAnalysis          `json:"riskAnalysis"`
	Suggestions          []Suggestion          `json:"suggestions"`
	PlacementSimulations []PlacementSimulation `json:"placementSimulations"`
}
