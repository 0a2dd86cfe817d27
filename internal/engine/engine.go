// Package engine implements the creative analysis and risk-scoring engine:
// pixel feature extraction, heuristic metric synthesis, remote analysis with
// per-exchange fallback, and risk scoring.
package engine

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dukerupert/dokimi"
	"github.com/dukerupert/dokimi/internal/ai"
)

// Engine orchestrates one creative analysis. It holds no mutable state
// across calls: each invocation owns its own feature profile and result.
type Engine struct {
	logger *slog.Logger

	// remote is nil when no API credential is configured. The capability is
	// decided once at construction rather than checked ambiently per call.
	remote ai.Service
}

// Compile-time interface check
var _ dokimi.CreativeService = (*Engine)(nil)

// NewEngine creates an analysis engine. Pass a nil remote service to run in
// local-only mode; the engine then synthesizes all findings from pixel
// features.
func NewEngine(logger *slog.Logger, remote ai.Service) *Engine {
	e := &Engine{
		logger: logger,
		remote: remote,
	}

	if remote == nil {
		logger.Info("analysis engine running in local-only mode; no remote credential configured")
	}

	return e
}

// HasRemoteCapability reports whether a remote analysis endpoint is
// configured.
func (e *Engine) HasRemoteCapability() bool {
	return e.remote != nil
}

// AnalyzeCreative analyzes one creative image. It never fails: image decode
// errors resolve to a default feature profile, and each remote exchange that
// errors is replaced by its local fallback, so the result is always fully
// populated.
func (e *Engine) AnalyzeCreative(ctx context.Context, req dokimi.AnalysisRequest) *dokimi.AnalysisResult {
	profile := ExtractFeatures(req.Image)

	e.logger.Debug("extracted creative features",
		slog.Int("color_count", profile.ColorCount),
		slog.Int("brightness", profile.Brightness),
		slog.Int("contrast", profile.Contrast))

	if e.remote == nil {
		return e.analyzeLocal(profile)
	}
	return e.analyzeRemote(ctx, req, profile)
}

// analyzeLocal is the fully-local path used when no remote endpoint is
// configured.
func (e *Engine) analyzeLocal(profile dokimi.ImageFeatureProfile) *dokimi.AnalysisResult {
	syn := Synthesize(profile)

	return &dokimi.AnalysisResult{
		ComplianceChecks:     syn.Checks,
		DesignMetrics:        syn.Metrics,
		HeatmapData:          DefaultHeatmap(),
		RiskAnalysis:         ScoreRisk(syn.Metrics, syn.RiskFactors),
		Suggestions:          syn.Suggestions,
		PlacementSimulations: DefaultPlacements(),
	}
}

// analyzeRemote runs the three remote exchanges and merges their tagged
// results. Each exchange falls back independently: a failed heatmap exchange
// never discards a successful compliance exchange.
func (e *Engine) analyzeRemote(ctx context.Context, req dokimi.AnalysisRequest, profile dokimi.ImageFeatureProfile) *dokimi.AnalysisResult {
	// Exchange 1: compliance, metrics, risk factors, suggestions.
	analysis, err := e.remote.AnalyzeCreative(ctx, ai.CreativeRequest{
		ImageData:     req.Image,
		MediaType:     detectMediaType(req.Image),
		RetailerName:  req.RetailerName,
		PlacementName: req.PlacementName,
		Guidelines:    req.Guidelines,
	})
	complianceRemote := err == nil
	if err != nil {
		e.logger.Warn("remote compliance exchange failed, synthesizing locally",
			slog.String("error", err.Error()))
		syn := Synthesize(profile)
		analysis = &ai.CreativeAnalysis{
			ComplianceChecks: syn.Checks,
			DesignMetrics:    syn.Metrics,
			RiskFactors:      syn.RiskFactors,
			Suggestions:      syn.Suggestions,
		}
	}

	// Exchange 2: attention heatmap, driven by whichever metrics exchange 1
	// produced.
	heatmap, err := e.remote.GenerateHeatmap(ctx, analysis.DesignMetrics)
	heatmapRemote := err == nil
	if err != nil {
		e.logger.Warn("remote heatmap exchange failed, using default heatmap",
			slog.String("error", err.Error()))
		defaultHeatmap := DefaultHeatmap()
		heatmap = &defaultHeatmap
	}

	// Exchange 3: placement scenarios.
	placements, err := e.remote.GeneratePlacements(ctx, ai.PlacementRequest{
		RetailerName:  req.RetailerName,
		PlacementName: req.PlacementName,
	})
	placementsRemote := err == nil
	if err != nil {
		e.logger.Warn("remote placement exchange failed, using default scenarios",
			slog.String("error", err.Error()))
		placements = DefaultPlacements()
	}

	e.logger.Info("creative analysis complete",
		slog.String("compliance_source", sourceLabel(complianceRemote)),
		slog.String("heatmap_source", sourceLabel(heatmapRemote)),
		slog.String("placements_source", sourceLabel(placementsRemote)))

	return &dokimi.AnalysisResult{
		ComplianceChecks:     analysis.ComplianceChecks,
		DesignMetrics:        analysis.DesignMetrics,
		HeatmapData:          *heatmap,
		RiskAnalysis:         ScoreRisk(analysis.DesignMetrics, analysis.RiskFactors),
		Suggestions:          analysis.Suggestions,
		PlacementSimulations: placements,
	}
}

// detectMediaType sniffs the image MIME type for the multimodal request.
func detectMediaType(data []byte) string {
	if len(data) == 0 {
		return "image/jpeg"
	}
	contentType := http.DetectContentType(data)
	if dokimi.IsAcceptedImageType(contentType) {
		return contentType
	}
	return "image/jpeg"
}

func sourceLabel(remote bool) string {
	if remote {
		return "remote"
	}
	return "local"
}
