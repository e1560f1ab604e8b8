package risk

import (
	"math"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

// Sub-risk weights for the environmental score. Air carries half the weight;
// soil and water split the remainder.
const (
	airWeight   = 0.5
	soilWeight  = 0.25
	waterWeight = 0.25
)

var soilRiskScores = map[models.ContaminationRisk]float64{
	models.ContaminationLow:    10,
	models.ContaminationMedium: 40,
	models.ContaminationHigh:   80,
}

var waterRiskScores = map[models.ContaminationRisk]float64{
	models.ContaminationLow:    10,
	models.ContaminationMedium: 45,
	models.ContaminationHigh:   85,
}

// unknownContaminationScore is the documented neutral default when a
// contamination signal is unavailable or unrecognised.
const unknownContaminationScore = 20

// AirRisk projects an EPA AQI (0-500) onto the common 0-100 scale.
func AirRisk(aqi int) float64 {
	return clampScore(float64(aqi) / 500 * 100)
}

// SoilRisk maps a soil contamination level to its sub-risk score.
func SoilRisk(contamination models.ContaminationRisk) float64 {
	if score, ok := soilRiskScores[contamination]; ok {
		return score
	}
	return unknownContaminationScore
}

// WaterRisk maps a water contamination level to its sub-risk score.
func WaterRisk(contamination models.ContaminationRisk) float64 {
	if score, ok := waterRiskScores[contamination]; ok {
		return score
	}
	return unknownContaminationScore
}

// ComputeEnvironmentalRisk aggregates the air, soil, and water sub-risks and
// then amplifies the result by the personal vulnerability multiplier. The
// multiplier applies to the aggregated base, not to individual sub-risks,
// and the result never exceeds 100.
func ComputeEnvironmentalRisk(reading models.EnvironmentalReading, multiplier float64) float64 {
	if multiplier < 1.0 {
		multiplier = 1.0
	}

	base := AirRisk(reading.AQI)*airWeight +
		SoilRisk(reading.SoilContamination)*soilWeight +
		WaterRisk(reading.WaterContamination)*waterWeight

	return math.Min(base*multiplier, 100)
}
