package risk

import (
	"math"
	"testing"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

func TestEnvironmentalRiskWeights(t *testing.T) {
	reading := models.EnvironmentalReading{
		AQI:                250,
		SoilContamination:  models.ContaminationMedium,
		WaterContamination: models.ContaminationHigh,
	}

	// air 50*0.5 + soil 40*0.25 + water 85*0.25 = 56.25
	score := ComputeEnvironmentalRisk(reading, 1.0)
	if math.Abs(score-56.25) > 1e-9 {
		t.Fatalf("expected 56.25, got %f", score)
	}
}

func TestEnvironmentalRiskUnknownDefaults(t *testing.T) {
	reading := models.EnvironmentalReading{
		AQI:                0,
		SoilContamination:  models.ContaminationUnknown,
		WaterContamination: models.ContaminationUnknown,
	}

	// unknown soil and water both score 20: 20*0.25 + 20*0.25 = 10
	score := ComputeEnvironmentalRisk(reading, 1.0)
	if math.Abs(score-10) > 1e-9 {
		t.Fatalf("expected 10, got %f", score)
	}
}

func TestEnvironmentalRiskMultiplierAfterAggregation(t *testing.T) {
	reading := models.EnvironmentalReading{
		AQI:                250,
		SoilContamination:  models.ContaminationMedium,
		WaterContamination: models.ContaminationHigh,
	}

	score := ComputeEnvironmentalRisk(reading, 1.5)
	if math.Abs(score-84.375) > 1e-9 {
		t.Fatalf("expected 84.375, got %f", score)
	}
}

func TestEnvironmentalRiskCappedAt100(t *testing.T) {
	reading := models.EnvironmentalReading{
		AQI:                500,
		SoilContamination:  models.ContaminationHigh,
		WaterContamination: models.ContaminationHigh,
	}

	if score := ComputeEnvironmentalRisk(reading, 2.0); score != 100 {
		t.Fatalf("expected cap at 100, got %f", score)
	}
}

func TestEnvironmentalRiskNegativeAQIClamped(t *testing.T) {
	reading := models.EnvironmentalReading{
		AQI:                -50,
		SoilContamination:  models.ContaminationLow,
		WaterContamination: models.ContaminationLow,
	}

	// air clamps to 0, leaving only soil and water contributions
	score := ComputeEnvironmentalRisk(reading, 1.0)
	if math.Abs(score-5) > 1e-9 {
		t.Fatalf("expected 5, got %f", score)
	}
}

func TestEnvironmentalRiskSubMultiplierTreatedAsNeutral(t *testing.T) {
	reading := models.EnvironmentalReading{
		AQI:                100,
		SoilContamination:  models.ContaminationLow,
		WaterContamination: models.ContaminationLow,
	}

	low := ComputeEnvironmentalRisk(reading, 0.5)
	neutral := ComputeEnvironmentalRisk(reading, 1.0)
	if low != neutral {
		t.Fatalf("multiplier below 1.0 must not reduce risk: %f vs %f", low, neutral)
	}
}

func TestEnvironmentalRiskMonotonicInAQI(t *testing.T) {
	reading := models.EnvironmentalReading{
		SoilContamination:  models.ContaminationMedium,
		WaterContamination: models.ContaminationMedium,
	}

	previous := -1.0
	for aqi := 0; aqi <= 500; aqi += 10 {
		reading.AQI = aqi
		score := ComputeEnvironmentalRisk(reading, 1.2)
		if score < previous {
			t.Fatalf("risk decreased from %f to %f at AQI %d", previous, score, aqi)
		}
		previous = score
	}
}
