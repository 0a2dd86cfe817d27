package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/dokimi"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSON(tt.input))
		})
	}
}

func TestParseCreativeAnalysis(t *testing.T) {
	payload := `{
		"complianceChecks": [
			{"item": "Logo placement", "status": "pass", "details": "ok"},
			{"item": "Legal disclaimer", "status": "FAIL", "details": "missing"},
			{"item": "CTA clarity", "status": "unknown", "details": "unclear"}
		],
		"designMetrics": {"compliance": 120, "attention": -5, "readability": 80, "brandConsistency": 85},
		"riskFactors": ["Missing disclaimer"],
		"suggestions": [
			{"category": "legal", "severity": "critical", "title": "Add Disclaimer", "description": "Required."}
		]
	}`

	analysis, err := parseCreativeAnalysis(payload)
	require.NoError(t, err)

	require.Len(t, analysis.ComplianceChecks, 3)
	assert.Equal(t, dokimi.CheckPass, analysis.ComplianceChecks[0].Status)
	assert.Equal(t, dokimi.CheckFail, analysis.ComplianceChecks[1].Status)
	// Unrecognized statuses degrade to a warning rather than failing the parse.
	assert.Equal(t, dokimi.CheckWarning, analysis.ComplianceChecks[2].Status)

	// Out-of-range metrics are clamped.
	assert.Equal(t, 100, analysis.DesignMetrics.Compliance)
	assert.Equal(t, 0, analysis.DesignMetrics.Attention)
	assert.Equal(t, 80, analysis.DesignMetrics.Readability)

	assert.Equal(t, []string{"Missing disclaimer"}, analysis.RiskFactors)

	require.Len(t, analysis.Suggestions, 1)
	assert.Equal(t, "ai-1", analysis.Suggestions[0].ID)
	assert.Equal(t, dokimi.SuggestionAI, analysis.Suggestions[0].Type)
	assert.Equal(t, dokimi.SeverityCritical, analysis.Suggestions[0].Severity)
}

func TestParseCreativeAnalysis_Invalid(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		_, err := parseCreativeAnalysis("here are your results!")
		assert.Error(t, err)
	})

	t.Run("no compliance checks", func(t *testing.T) {
		_, err := parseCreativeAnalysis(`{"complianceChecks": [], "designMetrics": {}}`)
		assert.Error(t, err)
	})
}

func TestParseCreativeAnalysis_NilRiskFactors(t *testing.T) {
	payload := `{
		"complianceChecks": [{"item": "Logo placement", "status": "pass", "details": "ok"}],
		"designMetrics": {"compliance": 90, "attention": 90, "readability": 90, "brandConsistency": 90}
	}`

	analysis, err := parseCreativeAnalysis(payload)
	require.NoError(t, err)
	assert.NotNil(t, analysis.RiskFactors)
	assert.Empty(t, analysis.RiskFactors)
}

func TestParseHeatmap(t *testing.T) {
	payload := `{
		"zones": [
			{"x": 50, "y": 35, "intensity": 150, "description": "product"},
			{"x": -10, "y": 15, "intensity": 70, "description": "headline"}
		],
		"focusAreas": ["product shot"]
	}`

	heatmap, err := parseHeatmap(payload)
	require.NoError(t, err)

	require.Len(t, heatmap.Zones, 2)
	assert.Equal(t, 100, heatmap.Zones[0].Intensity)
	assert.Equal(t, 0, heatmap.Zones[1].X)
	assert.Equal(t, []string{"product shot"}, heatmap.FocusAreas)
}

func TestParseHeatmap_NoZones(t *testing.T) {
	_, err := parseHeatmap(`{"zones": [], "focusAreas": []}`)
	assert.Error(t, err)
}

func TestParsePlacements(t *testing.T) {
	payload := `{"placements": [
		{"context": "a", "description": "d1", "recommendation": "r1"},
		{"context": "b", "description": "d2", "recommendation": "r2"},
		{"context": "c", "description": "d3", "recommendation": "r3"},
		{"context": "extra", "description": "dropped", "recommendation": "dropped"}
	]}`

	placements, err := parsePlacements(payload)
	require.NoError(t, err)

	// Exactly three scenarios survive; extras are dropped.
	require.Len(t, placements, 3)
	assert.Equal(t, "a", placements[0].Context)
	assert.Equal(t, "c", placements[2].Context)
}

func TestParsePlacements_TooFew(t *testing.T) {
	_, err := parsePlacements(`{"placements": [{"context": "a"}]}`)
	assert.Error(t, err)
}

func TestCreativeSystemPrompt_IncludesGuidelines(t *testing.T) {
	prompt := creativeSystemPrompt(CreativeRequest{
		Guidelines: "Logo in top-left safe zone",
	})
	assert.Contains(t, prompt, "Logo in top-left safe zone")

	bare := creativeSystemPrompt(CreativeRequest{})
	assert.NotContains(t, bare, "Retailer guidelines")
}
