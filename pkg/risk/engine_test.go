package risk

import (
	"reflect"
	"testing"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

func TestEngineDeterministic(t *testing.T) {
	engine := NewEngine(nil)
	profile := models.LifestyleProfile{
		AgeRange:        models.Age36to50,
		SmokingStatus:   models.SmokingFormer,
		ActivityLevel:   models.ActivityModerate,
		WorkEnvironment: models.WorkMixed,
		StressLevel:     models.StressMedium,
		MedicalHistory:  []string{"asthma"},
	}
	reading := models.EnvironmentalReading{
		AQI:                140,
		PM25:               42,
		SoilContamination:  models.ContaminationMedium,
		WaterContamination: models.ContaminationLow,
		WaterHardness:      models.HardnessHard,
		SoilPH:             6.5,
		WaterPH:            7.2,
	}

	first, err := engine.Assess(reading, &profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Assess(reading, &profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must produce identical reports")
	}
}

func TestEngineNoProfile(t *testing.T) {
	engine := NewEngine(nil)
	reading := models.EnvironmentalReading{
		AQI:                200,
		SoilContamination:  models.ContaminationLow,
		WaterContamination: models.ContaminationLow,
	}

	report, err := engine.Assess(reading, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.LifestyleRisk != 0 {
		t.Fatalf("expected zero lifestyle risk without a profile, got %f", report.LifestyleRisk)
	}
	if report.VulnerabilityMultiplier != 1.0 {
		t.Fatalf("expected neutral multiplier, got %f", report.VulnerabilityMultiplier)
	}
	// air 40*0.5 + soil 10*0.25 + water 10*0.25 = 25; composite 25*0.6 = 15
	if report.CompositeRisk != 15 {
		t.Fatalf("expected composite 15, got %f", report.CompositeRisk)
	}
	if report.RiskLevel != models.RiskLow {
		t.Fatalf("expected low level, got %s", report.RiskLevel)
	}
	for _, f := range report.Factors {
		if f.Category == models.CategoryLifestyle || f.Category == models.CategoryInteraction {
			t.Fatalf("no lifestyle or interaction factors expected, got %+v", f)
		}
	}
}

func TestEngineInvalidProfile(t *testing.T) {
	engine := NewEngine(nil)
	profile := models.LifestyleProfile{AgeRange: models.Age26to35}

	if _, err := engine.Assess(models.EnvironmentalReading{AQI: 50}, &profile); err == nil {
		t.Fatal("expected an error for a profile missing required fields")
	}
}
