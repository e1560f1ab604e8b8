// Package risk implements the deterministic health-risk aggregation engine:
// lifestyle scoring, vulnerability amplification, environmental aggregation,
// interaction detection, and composite report synthesis. Every function here
// is pure; callers own all I/O, fallbacks, and retries.
package risk

import "github.com/envirohealth-ai/platform/pkg/common/models"

// Level thresholds shared by every place a categorical level is derived from
// a 0-100 score. There is exactly one threshold policy in the engine.
const (
	mediumThreshold = 35
	highThreshold   = 65
)

// LevelFor classifies a 0-100 score.
func LevelFor(score float64) models.RiskLevel {
	switch {
	case score < mediumThreshold:
		return models.RiskLow
	case score < highThreshold:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
