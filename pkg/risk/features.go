package risk

import "github.com/envirohealth-ai/platform/pkg/common/models"

// Ordinal encodings for the feature vector. Keys for absent or unknown
// fields are omitted entirely, never zero-filled.

var contaminationEncoding = map[models.ContaminationRisk]float64{
	models.ContaminationLow:    1,
	models.ContaminationMedium: 2,
	models.ContaminationHigh:   3,
}

var hardnessEncoding = map[models.WaterHardness]float64{
	models.HardnessSoft:     1,
	models.HardnessModerate: 2,
	models.HardnessHard:     3,
}

var smokingEncoding = map[models.SmokingStatus]float64{
	models.SmokingNever:   0,
	models.SmokingFormer:  1,
	models.SmokingCurrent: 2,
}

var activityEncoding = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 0,
	models.ActivityModerate:  1,
	models.ActivityActive:    2,
}

var workExposureEncoding = map[models.WorkEnvironment]float64{
	models.WorkIndoor:  0,
	models.WorkMixed:   1,
	models.WorkOutdoor: 2,
}

var ageBandEncoding = map[models.AgeRange]float64{
	models.Age13to17: 0,
	models.Age18to25: 1,
	models.Age26to35: 2,
	models.Age36to50: 3,
	models.Age51to65: 4,
	models.Age65Plus: 5,
}

var stressEncoding = map[models.StressLevel]float64{
	models.StressLow:    0,
	models.StressMedium: 1,
	models.StressHigh:   2,
}

var dietEncoding = map[models.DietQuality]float64{
	models.DietPoor:    0,
	models.DietAverage: 1,
	models.DietGood:    2,
}

var sleepEncoding = map[models.SleepHours]float64{
	models.SleepShort:    0,
	models.SleepAdequate: 1,
	models.SleepLong:     2,
}

// BuildFeatureVector flattens the reading and profile into a numeric map for
// storage and future model consumption. It carries no decision logic.
func BuildFeatureVector(reading models.EnvironmentalReading, profile *models.LifestyleProfile) map[string]float64 {
	features := map[string]float64{
		"aqi":      float64(reading.AQI),
		"pm25":     reading.PM25,
		"pm10":     reading.PM10,
		"co":       reading.CO,
		"no2":      reading.NO2,
		"so2":      reading.SO2,
		"o3":       reading.O3,
		"soil_ph":  reading.SoilPH,
		"water_ph": reading.WaterPH,
	}

	if encoded, ok := contaminationEncoding[reading.SoilContamination]; ok {
		features["soil_contamination"] = encoded
	}
	if encoded, ok := contaminationEncoding[reading.WaterContamination]; ok {
		features["water_contamination"] = encoded
	}
	if encoded, ok := hardnessEncoding[reading.WaterHardness]; ok {
		features["water_hardness"] = encoded
	}

	if profile == nil {
		return features
	}

	if encoded, ok := smokingEncoding[profile.SmokingStatus]; ok {
		features["smoking"] = encoded
	}
	if encoded, ok := activityEncoding[profile.ActivityLevel]; ok {
		features["activity"] = encoded
	}
	if encoded, ok := workExposureEncoding[profile.WorkEnvironment]; ok {
		features["work_outdoor_exposure"] = encoded
	}
	if encoded, ok := ageBandEncoding[profile.AgeRange]; ok {
		features["age_band"] = encoded
	}
	if encoded, ok := stressEncoding[profile.StressLevel]; ok {
		features["stress"] = encoded
	}
	if encoded, ok := dietEncoding[profile.DietQuality]; ok {
		features["diet"] = encoded
	}
	if encoded, ok := sleepEncoding[profile.SleepHours]; ok {
		features["sleep"] = encoded
	}

	return features
}
