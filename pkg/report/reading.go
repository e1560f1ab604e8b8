package report

import (
	"github.com/envirohealth-ai/platform/pkg/common/models"
)

// Neutral fallbacks used when a provider fails. An assessment always
// completes; missing data degrades to "unknown", not to an error.
const neutralPH = 7.0

func neutralAir() models.AirQualityResult {
	return models.AirQualityResult{
		RiskLevel:            models.RiskMedium,
		HealthInterpretation: "Air quality data unavailable; assuming moderate conditions.",
		DataSource:           "fallback",
	}
}

func neutralSoil(location string) models.SoilResult {
	return models.SoilResult{
		Location: location,
		Properties: models.SoilProperties{
			SoilType:          "unknown",
			PH:                neutralPH,
			ContaminationRisk: models.ContaminationUnknown,
		},
		Confidence: "none",
		DataSource: "fallback",
	}
}

func neutralWater(location string) models.WaterResult {
	return models.WaterResult{
		Location: location,
		Properties: models.WaterProperties{
			SourceType:        "unknown",
			PH:                neutralPH,
			Hardness:          models.HardnessUnknown,
			ContaminationRisk: models.ContaminationUnknown,
		},
		Confidence: "none",
		DataSource: "fallback",
	}
}

// buildReading merges the three provider results into the engine's input.
func buildReading(air models.AirQualityResult, soil models.SoilResult, water models.WaterResult) models.EnvironmentalReading {
	return models.EnvironmentalReading{
		AQI:  air.Data.AQI,
		PM25: air.Data.PM25,
		PM10: air.Data.PM10,
		CO:   air.Data.CO,
		NO2:  air.Data.NO2,
		SO2:  air.Data.SO2,
		O3:   air.Data.O3,

		SoilPH:            soil.Properties.PH,
		SoilContamination: soil.Properties.ContaminationRisk,

		WaterPH:            water.Properties.PH,
		WaterContamination: water.Properties.ContaminationRisk,
		WaterHardness:      water.Properties.Hardness,
	}
}
