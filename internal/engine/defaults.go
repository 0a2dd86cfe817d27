package engine

import "github.com/dukerupert/dokimi"

// DefaultHeatmap returns the fixed attention map substituted when the remote
// heatmap exchange is unavailable or fails. Zones cover the conventional
// retail creative layout: product center, headline, logo, price, CTA.
func DefaultHeatmap() dokimi.HeatmapData {
	return dokimi.HeatmapData{
		Zones: []dokimi.HeatmapZone{
			{X: 50, Y: 35, Intensity: 85, Description: "Primary product area"},
			{X: 50, Y: 15, Intensity: 70, Description: "Headline region"},
			{X: 25, Y: 60, Intensity: 55, Description: "Brand logo zone"},
			{X: 75, Y: 60, Intensity: 60, Description: "Price callout"},
			{X: 50, Y: 85, Intensity: 75, Description: "Call-to-action band"},
		},
		FocusAreas: []string{
			"Center product display",
			"Upper headline",
			"Lower call-to-action band",
		},
	}
}

// DefaultPlacements returns the fixed set of three placement scenarios
// substituted when the remote placement exchange is unavailable or fails.
func DefaultPlacements() []dokimi.PlacementSimulation {
	return []dokimi.PlacementSimulation{
		{
			Context:        "Homepage banner",
			Description:    "Full-width hero position with high traffic and short dwell time.",
			Recommendation: "Lead with a single bold message; keep supporting text minimal.",
		},
		{
			Context:        "Search results sidebar",
			Description:    "Narrow column beside organic results, competing for peripheral attention.",
			Recommendation: "Ensure the product image and price remain legible at small sizes.",
		},
		{
			Context:        "Product detail page",
			Description:    "Mid-page slot viewed by shoppers already in consideration mode.",
			Recommendation: "Emphasize the offer and call-to-action over brand storytelling.",
		},
	}
}
