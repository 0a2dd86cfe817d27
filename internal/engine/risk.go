package engine

import (
	"math"

	"github.com/dukerupert/dokimi"
)

// riskFactorPenalty is subtracted from the metric average per risk factor.
const riskFactorPenalty = 5

// Fixed per-band recommendation sentences.
const (
	recommendExcellent = "Excellent creative. Submit with confidence; rejection risk is minimal."
	recommendGood      = "Good creative. Address the minor flagged items to strengthen approval odds."
	recommendFair      = "Fair creative. Resolve the warnings above before submitting to the retailer."
	recommendNeedsWork = "This creative needs work. Fix the critical issues and re-run the analysis before submission."
)

// ScoreRisk combines the four design metrics and the risk factor list into
// one aggregate score. Rounding is applied once to the average; the penalty
// is subtracted after. The label always matches the band the final score
// falls in: >=90 Excellent, >=75 Good, >=60 Fair, else Needs Work.
func ScoreRisk(metrics dokimi.DesignMetrics, riskFactors []string) dokimi.RiskAnalysis {
	sum := metrics.Compliance + metrics.Attention + metrics.Readability + metrics.BrandConsistency
	average := int(math.Round(float64(sum) / 4))
	final := clampScore(average - riskFactorPenalty*len(riskFactors))

	label, recommendation := riskBand(final)

	if riskFactors == nil {
		riskFactors = []string{}
	}

	return dokimi.RiskAnalysis{
		Score:          final,
		Label:          label,
		Recommendation: recommendation,
		RiskFactors:    riskFactors,
	}
}

func riskBand(score int) (dokimi.RiskLabel, string) {
	switch {
	case score >= 90:
		return dokimi.RiskExcellent, recommendExcellent
	case score >= 75:
		return dokimi.RiskGood, recommendGood
	case score >= 60:
		return dokimi.RiskFair, recommendFair
	default:
		return dokimi.RiskNeedsWork, recommendNeedsWork
	}
}
