package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/dokimi"
)

func TestSynthesize_DefaultProfile(t *testing.T) {
	syn := Synthesize(DefaultFeatureProfile())

	// Contrast 45: compliance round(45*1.5+30)=98, brand round(45*1.2+40)=94.
	// ColorCount 120: attention round(120/256*70+40)=73.
	assert.Equal(t, dokimi.DesignMetrics{
		Compliance:       98,
		Attention:        73,
		Readability:      75,
		BrandConsistency: 94,
	}, syn.Metrics)

	assert.Empty(t, syn.RiskFactors)
}

func TestSynthesize_Pure(t *testing.T) {
	profile := dokimi.ImageFeatureProfile{
		HasText:              true,
		TextDensity:          30,
		ColorCount:           90,
		Brightness:           140,
		Contrast:             55,
		EstimatedReadability: 80,
	}

	first := Synthesize(profile)
	second := Synthesize(profile)

	assert.Equal(t, first, second)
}

func TestSynthesizeMetrics_ClampsAtHundred(t *testing.T) {
	profile := dokimi.ImageFeatureProfile{
		ColorCount:           256,
		Contrast:             1000,
		EstimatedReadability: 100,
	}

	metrics := synthesizeMetrics(profile)

	assert.Equal(t, 100, metrics.Compliance)
	assert.Equal(t, 100, metrics.BrandConsistency)
	assert.Equal(t, 100, metrics.Readability)
	// 256/256*70+40 = 110, clamped.
	assert.Equal(t, 100, metrics.Attention)
}

func TestSynthesizeChecks_OrderAndStatuses(t *testing.T) {
	// High-contrast readable profile: only the disclaimer check warns.
	profile := dokimi.ImageFeatureProfile{
		Contrast:             60,
		EstimatedReadability: 90,
	}

	checks := synthesizeChecks(profile)
	require.Len(t, checks, 6)

	items := make([]string, len(checks))
	for i, c := range checks {
		items[i] = c.Item
	}
	assert.Equal(t, []string{
		"Logo placement",
		"Text readability",
		"Color contrast",
		"Dimension requirements",
		"Legal disclaimer",
		"CTA clarity",
	}, items)

	for _, c := range checks {
		if c.Item == "Legal disclaimer" {
			assert.Equal(t, dokimi.CheckWarning, c.Status)
		} else {
			assert.Equal(t, dokimi.CheckPass, c.Status, "check %q", c.Item)
		}
	}
}

func TestSynthesizeChecks_LowContrastWarnings(t *testing.T) {
	profile := dokimi.ImageFeatureProfile{
		Contrast:             20,
		EstimatedReadability: 30,
	}

	checks := synthesizeChecks(profile)
	require.Len(t, checks, 6)

	byItem := map[string]dokimi.ComplianceCheck{}
	for _, c := range checks {
		byItem[c.Item] = c
	}

	assert.Equal(t, dokimi.CheckWarning, byItem["Text readability"].Status)
	assert.Equal(t, dokimi.CheckWarning, byItem["Color contrast"].Status)
	assert.Equal(t, dokimi.CheckWarning, byItem["CTA clarity"].Status)
	// Contrast 20 -> ratio 20/20+2 = 3.0
	assert.Contains(t, byItem["Text readability"].Details, "3.0:1")
}

func TestSynthesizeSuggestions_SeverityOrderAndCap(t *testing.T) {
	profile := dokimi.ImageFeatureProfile{
		ColorCount: 200, // busy palette -> warning
		Contrast:   10,  // low contrast -> critical
	}

	suggestions := synthesizeSuggestions(profile)
	require.Len(t, suggestions, maxSuggestions)

	assert.Equal(t, dokimi.SeverityCritical, suggestions[0].Severity)
	assert.Equal(t, "Improve Color Contrast", suggestions[0].Title)
	assert.Equal(t, dokimi.SeverityWarning, suggestions[1].Severity)
	assert.Equal(t, "Simplify Color Palette", suggestions[1].Title)

	for i, s := range suggestions {
		assert.Equal(t, dokimi.SuggestionAI, s.Type)
		assert.NotEmpty(t, s.ID)
		if i > 0 {
			assert.LessOrEqual(t,
				severityRank(suggestions[i-1].Severity), severityRank(s.Severity))
		}
	}
}

func TestSynthesizeSuggestions_ContrastTiers(t *testing.T) {
	tests := []struct {
		contrast int
		title    string
		severity dokimi.Severity
	}{
		{39, "Improve Color Contrast", dokimi.SeverityCritical},
		{40, "Enhance Color Contrast", dokimi.SeverityWarning},
		{49, "Enhance Color Contrast", dokimi.SeverityWarning},
		{50, "Maintain Color Contrast", dokimi.SeverityInfo},
	}

	for _, tt := range tests {
		profile := dokimi.ImageFeatureProfile{Contrast: tt.contrast, ColorCount: 120}
		suggestions := synthesizeSuggestions(profile)

		var found *dokimi.Suggestion
		for i := range suggestions {
			if suggestions[i].Category == "contrast" {
				found = &suggestions[i]
				break
			}
		}
		require.NotNil(t, found, "contrast %d", tt.contrast)
		assert.Equal(t, tt.title, found.Title, "contrast %d", tt.contrast)
		assert.Equal(t, tt.severity, found.Severity, "contrast %d", tt.contrast)
	}
}

func TestSynthesizeRiskFactors(t *testing.T) {
	assert.Equal(t, []string{"Low contrast"},
		synthesizeRiskFactors(dokimi.ImageFeatureProfile{Contrast: 39}))
	assert.Empty(t,
		synthesizeRiskFactors(dokimi.ImageFeatureProfile{Contrast: 40}))
}
