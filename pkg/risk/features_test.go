package risk

import (
	"testing"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

func TestFeatureVectorEnvironmentOnly(t *testing.T) {
	reading := models.EnvironmentalReading{
		AQI:    75,
		PM25:   12.5,
		SoilPH: 6.8,
	}

	features := BuildFeatureVector(reading, nil)
	if features["aqi"] != 75 {
		t.Fatalf("expected aqi 75, got %f", features["aqi"])
	}
	if features["pm25"] != 12.5 {
		t.Fatalf("expected pm25 12.5, got %f", features["pm25"])
	}
	if _, ok := features["soil_contamination"]; ok {
		t.Fatal("unknown contamination must not be encoded")
	}
	if _, ok := features["smoking"]; ok {
		t.Fatal("profile keys must be absent without a profile")
	}
	// The numeric gauges are always present, encoded categories are not.
	if len(features) != 9 {
		t.Fatalf("expected nine base features, got %d: %v", len(features), features)
	}
}

func TestFeatureVectorOrdinalEncodings(t *testing.T) {
	reading := models.EnvironmentalReading{
		SoilContamination:  models.ContaminationHigh,
		WaterContamination: models.ContaminationLow,
		WaterHardness:      models.HardnessModerate,
	}
	profile := models.LifestyleProfile{
		AgeRange:        models.Age51to65,
		SmokingStatus:   models.SmokingFormer,
		ActivityLevel:   models.ActivityActive,
		WorkEnvironment: models.WorkMixed,
		StressLevel:     models.StressHigh,
		DietQuality:     models.DietAverage,
		SleepHours:      models.SleepLong,
	}

	features := BuildFeatureVector(reading, &profile)
	expect := map[string]float64{
		"soil_contamination":    3,
		"water_contamination":   1,
		"water_hardness":        2,
		"age_band":              4,
		"smoking":               1,
		"activity":              2,
		"work_outdoor_exposure": 1,
		"stress":                2,
		"diet":                  1,
		"sleep":                 2,
	}
	for key, want := range expect {
		got, ok := features[key]
		if !ok {
			t.Fatalf("missing feature %q", key)
		}
		if got != want {
			t.Fatalf("feature %q = %f, want %f", key, got, want)
		}
	}
}

func TestFeatureVectorOmitsAbsentProfileFields(t *testing.T) {
	profile := models.LifestyleProfile{
		AgeRange:        models.Age26to35,
		SmokingStatus:   models.SmokingNever,
		ActivityLevel:   models.ActivityModerate,
		WorkEnvironment: models.WorkIndoor,
	}

	features := BuildFeatureVector(models.EnvironmentalReading{}, &profile)
	for _, key := range []string{"stress", "diet", "sleep"} {
		if _, ok := features[key]; ok {
			t.Fatalf("absent optional field %q must not be encoded", key)
		}
	}
	if features["smoking"] != 0 {
		t.Fatalf("never-smoker must encode to 0, got %f", features["smoking"])
	}
}
