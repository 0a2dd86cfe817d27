package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/dukerupert/dokimi"
)

// Synthesis is the output of the local heuristic path: everything the remote
// compliance exchange would have produced, derived from pixel features alone.
type Synthesis struct {
	Checks      []dokimi.ComplianceCheck
	Metrics     dokimi.DesignMetrics
	Suggestions []dokimi.Suggestion
	RiskFactors []string
}

// maxSuggestions caps the heuristic suggestion list.
const maxSuggestions = 4

// Synthesize maps a feature profile into design metrics, a compliance
// checklist, suggestions, and risk factors. It is a pure function: identical
// profiles always yield identical output. Used both when no remote endpoint
// is configured and as the fallback when the remote compliance exchange
// fails.
func Synthesize(profile dokimi.ImageFeatureProfile) Synthesis {
	return Synthesis{
		Checks:      synthesizeChecks(profile),
		Metrics:     synthesizeMetrics(profile),
		Suggestions: synthesizeSuggestions(profile),
		RiskFactors: synthesizeRiskFactors(profile),
	}
}

func synthesizeMetrics(profile dokimi.ImageFeatureProfile) dokimi.DesignMetrics {
	contrast := float64(profile.Contrast)
	return dokimi.DesignMetrics{
		Compliance:       clampScore(int(math.Round(contrast*1.5 + 30))),
		Attention:        clampScore(int(math.Round(float64(profile.ColorCount)/256*100*0.7 + 40))),
		Readability:      clampScore(profile.EstimatedReadability),
		BrandConsistency: clampScore(int(math.Round(contrast*1.2 + 40))),
	}
}

// synthesizeChecks builds the fixed-order checklist: logo, text, contrast,
// dimensions, legal, CTA.
func synthesizeChecks(profile dokimi.ImageFeatureProfile) []dokimi.ComplianceCheck {
	checks := make([]dokimi.ComplianceCheck, 0, 6)

	checks = append(checks, dokimi.ComplianceCheck{
		Item:    "Logo placement",
		Status:  dokimi.CheckPass,
		Details: "Logo detected within the approved safe zone",
	})

	// The synthesized contrast ratio (contrast/20+2) is a cosmetic
	// approximation, not WCAG contrast math.
	ratio := float64(profile.Contrast)/20 + 2
	readability := clampScore(profile.EstimatedReadability)
	textCheck := dokimi.ComplianceCheck{
		Item:    "Text readability",
		Status:  dokimi.CheckPass,
		Details: fmt.Sprintf("Estimated text contrast ratio %.1f:1 meets readability guidelines", ratio),
	}
	if readability < 70 {
		textCheck.Status = dokimi.CheckWarning
		textCheck.Details = fmt.Sprintf("Estimated text contrast ratio %.1f:1 is below the recommended threshold", ratio)
	}
	checks = append(checks, textCheck)

	contrastCheck := dokimi.ComplianceCheck{
		Item:    "Color contrast",
		Status:  dokimi.CheckPass,
		Details: "Luminance separation is sufficient for retail display",
	}
	if profile.Contrast < 40 {
		contrastCheck.Status = dokimi.CheckWarning
		contrastCheck.Details = "Low luminance separation between dark and light regions"
	}
	checks = append(checks, contrastCheck)

	checks = append(checks, dokimi.ComplianceCheck{
		Item:    "Dimension requirements",
		Status:  dokimi.CheckPass,
		Details: "Creative dimensions match placement requirements",
	})

	// Disclaimer presence can never be certified from pixels alone, so this
	// check is always a warning on the local path.
	checks = append(checks, dokimi.ComplianceCheck{
		Item:    "Legal disclaimer",
		Status:  dokimi.CheckWarning,
		Details: "Disclaimer text presence could not be verified automatically",
	})

	ctaCheck := dokimi.ComplianceCheck{
		Item:    "CTA clarity",
		Status:  dokimi.CheckPass,
		Details: "Call-to-action stands out from the background",
	}
	if profile.Contrast < 35 {
		ctaCheck.Status = dokimi.CheckWarning
		ctaCheck.Details = "Call-to-action may not stand out against the background"
	}
	checks = append(checks, ctaCheck)

	return checks
}

// severityRank orders suggestions highest-priority first.
func severityRank(s dokimi.Severity) int {
	switch s {
	case dokimi.SeverityCritical:
		return 0
	case dokimi.SeverityWarning:
		return 1
	default:
		return 2
	}
}

func synthesizeSuggestions(profile dokimi.ImageFeatureProfile) []dokimi.Suggestion {
	suggestions := make([]dokimi.Suggestion, 0, 6)

	switch {
	case profile.Contrast < 40:
		suggestions = append(suggestions, dokimi.Suggestion{
			Type:        dokimi.SuggestionAI,
			Category:    "contrast",
			Severity:    dokimi.SeverityCritical,
			Title:       "Improve Color Contrast",
			Description: "Contrast between foreground and background is too low for retail readability standards. Increase the luminance separation.",
		})
	case profile.Contrast < 50:
		suggestions = append(suggestions, dokimi.Suggestion{
			Type:        dokimi.SuggestionAI,
			Category:    "contrast",
			Severity:    dokimi.SeverityWarning,
			Title:       "Enhance Color Contrast",
			Description: "Contrast is acceptable but below the recommended level. Stronger text-to-background separation would improve readability.",
		})
	default:
		suggestions = append(suggestions, dokimi.Suggestion{
			Type:        dokimi.SuggestionAI,
			Category:    "contrast",
			Severity:    dokimi.SeverityInfo,
			Title:       "Maintain Color Contrast",
			Description: "Contrast meets readability recommendations. Keep the current color separation.",
		})
	}

	switch {
	case profile.ColorCount < 80:
		suggestions = append(suggestions, dokimi.Suggestion{
			Type:        dokimi.SuggestionAI,
			Category:    "palette",
			Severity:    dokimi.SeverityInfo,
			Title:       "Add Visual Variety",
			Description: "A limited palette can reduce shelf presence. Consider an accent color to draw attention to the offer.",
		})
	case profile.ColorCount > 180:
		suggestions = append(suggestions, dokimi.Suggestion{
			Type:        dokimi.SuggestionAI,
			Category:    "palette",
			Severity:    dokimi.SeverityWarning,
			Title:       "Simplify Color Palette",
			Description: "A busy palette competes with the product. Reduce the number of distinct colors to focus attention.",
		})
	default:
		suggestions = append(suggestions, dokimi.Suggestion{
			Type:        dokimi.SuggestionAI,
			Category:    "palette",
			Severity:    dokimi.SeverityInfo,
			Title:       "Color Palette Optimization",
			Description: "Palette variety is balanced. Keep the dominant brand colors consistent.",
		})
	}

	suggestions = append(suggestions,
		dokimi.Suggestion{
			Type:        dokimi.SuggestionAI,
			Category:    "legal",
			Severity:    dokimi.SeverityInfo,
			Title:       "Verify Legal Disclaimer",
			Description: "Confirm the required disclaimer text is present and legible; it cannot be certified from pixel data.",
		},
		dokimi.Suggestion{
			Type:        dokimi.SuggestionAI,
			Category:    "placement",
			Severity:    dokimi.SeverityInfo,
			Title:       "Test In Retail Context",
			Description: "Preview the creative in the target retail environment before submission.",
		},
	)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return severityRank(suggestions[i].Severity) < severityRank(suggestions[j].Severity)
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	for i := range suggestions {
		suggestions[i].ID = fmt.Sprintf("heuristic-%d", i+1)
	}

	return suggestions
}

func synthesizeRiskFactors(profile dokimi.ImageFeatureProfile) []string {
	if profile.Contrast < 40 {
		return []string{"Low contrast"}
	}
	return []string{}
}
