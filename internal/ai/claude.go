package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dukerupert/dokimi"
)

// claudeService implements Service using Claude (Anthropic).
type claudeService struct {
	client      *anthropic.Client
	logger      *slog.Logger
	model       string
	maxTokens   int
	temperature float64
}

// newClaudeService creates a new Claude analysis service.
func newClaudeService(logger *slog.Logger, cfg Config) *claudeService {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
	)

	return &claudeService{
		client:      &client,
		logger:      logger,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// AnalyzeCreative runs the multimodal compliance exchange.
func (s *claudeService) AnalyzeCreative(ctx context.Context, req CreativeRequest) (*CreativeAnalysis, error) {
	if len(req.ImageData) == 0 {
		return nil, fmt.Errorf("image data is required")
	}

	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = "image/jpeg"
	}

	s.logger.Info("analyzing creative with Claude",
		slog.String("model", s.model),
		slog.String("retailer", req.RetailerName),
		slog.String("placement", req.PlacementName))

	base64Image := base64.StdEncoding.EncodeToString(req.ImageData)

	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(s.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: creativeSystemPrompt(req)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(creativeUserPrompt(req)),
				anthropic.NewImageBlockBase64(mediaType, base64Image),
			),
		},
		Temperature: anthropic.Float(s.temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze creative: %w", err)
	}

	analysis, err := parseCreativeAnalysis(extractJSON(messageText(message)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse creative analysis: %w", err)
	}

	s.logger.Info("Claude creative analysis complete",
		slog.Int("checks", len(analysis.ComplianceChecks)),
		slog.Int("input_tokens", int(message.Usage.InputTokens)),
		slog.Int("output_tokens", int(message.Usage.OutputTokens)))

	return analysis, nil
}

// GenerateHeatmap runs the text-only attention-prediction exchange.
func (s *claudeService) GenerateHeatmap(ctx context.Context, metrics dokimi.DesignMetrics) (*dokimi.HeatmapData, error) {
	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(s.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(heatmapPrompt(metrics)),
			),
		},
		Temperature: anthropic.Float(s.temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate heatmap: %w", err)
	}

	heatmap, err := parseHeatmap(extractJSON(messageText(message)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse heatmap: %w", err)
	}

	return heatmap, nil
}

// GeneratePlacements runs the text-only placement-scenario exchange.
func (s *claudeService) GeneratePlacements(ctx context.Context, req PlacementRequest) ([]dokimi.PlacementSimulation, error) {
	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(s.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(placementPrompt(req)),
			),
		},
		Temperature: anthropic.Float(s.temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate placements: %w", err)
	}

	placements, err := parsePlacements(extractJSON(messageText(message)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse placements: %w", err)
	}

	return placements, nil
}

// creativeSystemPrompt builds the system prompt for the compliance exchange.
func creativeSystemPrompt(req CreativeRequest) string {
	var sb strings.Builder

	sb.WriteString("You are an expert retail media creative reviewer. Your task is to analyze advertising creatives before they are submitted to a retailer and identify compliance and design-quality issues.\n\n")
	sb.WriteString("You have deep knowledge of retail media network creative requirements, including:\n")
	sb.WriteString("- Logo placement and brand safe zones\n")
	sb.WriteString("- Text readability and contrast requirements\n")
	sb.WriteString("- Dimension and file specifications\n")
	sb.WriteString("- Legal disclaimer requirements\n")
	sb.WriteString("- Call-to-action clarity\n\n")

	if req.Guidelines != "" {
		sb.WriteString("Retailer guidelines to check against:\n")
		sb.WriteString(req.Guidelines)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Evaluate the creative in this order: logo placement, text readability, color contrast, dimension requirements, legal disclaimer, CTA clarity.\n\n")
	sb.WriteString("Respond ONLY with a JSON object with these fields:\n")
	sb.WriteString(`{"complianceChecks":[{"item":"...","status":"pass|warning|fail","details":"..."}],`)
	sb.WriteString(`"designMetrics":{"compliance":0,"attention":0,"readability":0,"brandConsistency":0},`)
	sb.WriteString(`"riskFactors":["..."],`)
	sb.WriteString(`"suggestions":[{"category":"...","severity":"critical|warning|info","title":"...","description":"..."}]}`)
	sb.WriteString("\n\nAll designMetrics values are integers from 0 to 100.")

	return sb.String()
}

// creativeUserPrompt builds the user prompt for the compliance exchange.
func creativeUserPrompt(req CreativeRequest) string {
	prompt := "Please analyze this retail advertising creative for compliance and design quality."

	if req.RetailerName != "" {
		prompt += fmt.Sprintf("\n\nTarget retailer: %s", req.RetailerName)
	}
	if req.PlacementName != "" {
		prompt += fmt.Sprintf("\nTarget placement: %s", req.PlacementName)
	}

	prompt += "\n\nRespond with the JSON object specified in the system instructions."

	return prompt
}

// heatmapPrompt builds the prompt for the attention-prediction exchange.
func heatmapPrompt(metrics dokimi.DesignMetrics) string {
	var sb strings.Builder

	sb.WriteString("You are predicting visual attention for a retail advertising creative. ")
	sb.WriteString(fmt.Sprintf(
		"Its design metrics (0-100) are: compliance %d, attention %d, readability %d, brand consistency %d.\n\n",
		metrics.Compliance, metrics.Attention, metrics.Readability, metrics.BrandConsistency))
	sb.WriteString("Predict 4 to 6 attention zones in normalized coordinates where x and y run 0-100 across the creative surface and intensity is 0-100.\n\n")
	sb.WriteString("Respond ONLY with a JSON object:\n")
	sb.WriteString(`{"zones":[{"x":50,"y":35,"intensity":85,"description":"..."}],"focusAreas":["..."]}`)

	return sb.String()
}

// placementPrompt builds the prompt for the placement-scenario exchange.
func placementPrompt(req PlacementRequest) string {
	var sb strings.Builder

	sb.WriteString("You are simulating how a retail advertising creative performs across placements")
	if req.RetailerName != "" {
		sb.WriteString(fmt.Sprintf(" on %s", req.RetailerName))
	}
	sb.WriteString(".")
	if req.PlacementName != "" {
		sb.WriteString(fmt.Sprintf(" The primary placement under review is %q.", req.PlacementName))
	}
	sb.WriteString("\n\nDescribe exactly 3 placement scenarios.\n\n")
	sb.WriteString("Respond ONLY with a JSON object:\n")
	sb.WriteString(`{"placements":[{"context":"...","description":"...","recommendation":"..."}]}`)

	return sb.String()
}

// messageText concatenates the text blocks of a Claude response.
func messageText(message *anthropic.Message) string {
	var text string
	for _, content := range message.Content {
		if content.Type == "text" {
			text += content.Text
		}
	}
	return text
}

// extractJSON strips markdown code fences Claude may wrap around JSON.
func extractJSON(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
		response = strings.TrimSuffix(response, "```")
		response = strings.TrimSpace(response)
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
		response = strings.TrimSuffix(response, "```")
		response = strings.TrimSpace(response)
	}

	return response
}

// parseCreativeAnalysis validates and converts the compliance exchange
// payload. A payload with no compliance checks is treated as malformed so
// the caller falls back to local synthesis.
func parseCreativeAnalysis(jsonStr string) (*CreativeAnalysis, error) {
	var raw struct {
		ComplianceChecks []struct {
			Item    string `json:"item"`
			Status  string `json:"status"`
			Details string `json:"details"`
		} `json:"complianceChecks"`
		DesignMetrics struct {
			Compliance       int `json:"compliance"`
			Attention        int `json:"attention"`
			Readability      int `json:"readability"`
			BrandConsistency int `json:"brandConsistency"`
		} `json:"designMetrics"`
		RiskFactors []string `json:"riskFactors"`
		Suggestions []struct {
			Category    string `json:"category"`
			Severity    string `json:"severity"`
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"suggestions"`
	}

	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, err
	}
	if len(raw.ComplianceChecks) == 0 {
		return nil, fmt.Errorf("response contains no compliance checks")
	}

	checks := make([]dokimi.ComplianceCheck, 0, len(raw.ComplianceChecks))
	for _, c := range raw.ComplianceChecks {
		checks = append(checks, dokimi.ComplianceCheck{
			Item:    c.Item,
			Status:  parseCheckStatus(c.Status),
			Details: c.Details,
		})
	}

	suggestions := make([]dokimi.Suggestion, 0, len(raw.Suggestions))
	for i, s := range raw.Suggestions {
		suggestions = append(suggestions, dokimi.Suggestion{
			ID:          fmt.Sprintf("ai-%d", i+1),
			Type:        dokimi.SuggestionAI,
			Category:    s.Category,
			Severity:    parseSeverity(s.Severity),
			Title:       s.Title,
			Description: s.Description,
		})
	}

	riskFactors := raw.RiskFactors
	if riskFactors == nil {
		riskFactors = []string{}
	}

	return &CreativeAnalysis{
		ComplianceChecks: checks,
		DesignMetrics: dokimi.DesignMetrics{
			Compliance:       clampScore(raw.DesignMetrics.Compliance),
			Attention:        clampScore(raw.DesignMetrics.Attention),
			Readability:      clampScore(raw.DesignMetrics.Readability),
			BrandConsistency: clampScore(raw.DesignMetrics.BrandConsistency),
		},
		RiskFactors: riskFactors,
		Suggestions: suggestions,
	}, nil
}

// parseHeatmap validates and converts the heatmap exchange payload.
func parseHeatmap(jsonStr string) (*dokimi.HeatmapData, error) {
	var raw struct {
		Zones []struct {
			X           int    `json:"x"`
			Y           int    `json:"y"`
			Intensity   int    `json:"intensity"`
			Description string `json:"description"`
		} `json:"zones"`
		FocusAreas []string `json:"focusAreas"`
	}

	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, err
	}
	if len(raw.Zones) == 0 {
		return nil, fmt.Errorf("response contains no heatmap zones")
	}

	zones := make([]dokimi.HeatmapZone, 0, len(raw.Zones))
	for _, z := range raw.Zones {
		zones = append(zones, dokimi.HeatmapZone{
			X:           clampScore(z.X),
			Y:           clampScore(z.Y),
			Intensity:   clampScore(z.Intensity),
			Description: z.Description,
		})
	}

	focusAreas := raw.FocusAreas
	if focusAreas == nil {
		focusAreas = []string{}
	}

	return &dokimi.HeatmapData{
		Zones:      zones,
		FocusAreas: focusAreas,
	}, nil
}

// parsePlacements validates and converts the placement exchange payload.
// Exactly three scenarios are required; extras are dropped.
func parsePlacements(jsonStr string) ([]dokimi.PlacementSimulation, error) {
	var raw struct {
		Placements []struct {
			Context        string `json:"context"`
			Description    string `json:"description"`
			Recommendation string `json:"recommendation"`
		} `json:"placements"`
	}

	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, err
	}
	if len(raw.Placements) < 3 {
		return nil, fmt.Errorf("expected 3 placement scenarios, got %d", len(raw.Placements))
	}

	placements := make([]dokimi.PlacementSimulation, 0, 3)
	for _, p := range raw.Placements[:3] {
		placements = append(placements, dokimi.PlacementSimulation{
			Context:        p.Context,
			Description:    p.Description,
			Recommendation: p.Recommendation,
		})
	}

	return placements, nil
}

func parseCheckStatus(status string) dokimi.CheckStatus {
	switch strings.ToLower(status) {
	case "pass":
		return dokimi.CheckPass
	case "fail":
		return dokimi.CheckFail
	default:
		return dokimi.CheckWarning
	}
}

func parseSeverity(severity string) dokimi.Severity {
	switch strings.ToLower(severity) {
	case "critical":
		return dokimi.SeverityCritical
	case "warning":
		return dokimi.SeverityWarning
	default:
		return dokimi.SeverityInfo
	}
}

// clampScore bounds a remote-supplied value to the [0,100] scale.
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
