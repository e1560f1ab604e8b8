package waterresearch

import (
	"testing"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

func TestParsePropertiesFullAnswer(t *testing.T) {
	answer := "Drinking water comes from a groundwater aquifer, with a pH of 7.8 and hard water throughout the county. Residents are under a boil water notice."

	properties := ParseProperties(answer)
	if properties.SourceType != "groundwater" {
		t.Fatalf("expected groundwater, got %s", properties.SourceType)
	}
	if properties.PH != 7.8 {
		t.Fatalf("expected pH 7.8, got %f", properties.PH)
	}
	if properties.Hardness != models.HardnessHard {
		t.Fatalf("expected hard water, got %s", properties.Hardness)
	}
	if properties.ContaminationRisk != models.ContaminationHigh {
		t.Fatalf("expected high contamination, got %s", properties.ContaminationRisk)
	}
}

func TestParsePropertiesNeutralDefaults(t *testing.T) {
	properties := ParseProperties("The town treats its supply conventionally.")
	if properties.PH != 7.0 {
		t.Fatalf("expected neutral pH, got %f", properties.PH)
	}
	if properties.Hardness != models.HardnessUnknown {
		t.Fatalf("expected unknown hardness, got %s", properties.Hardness)
	}
	if properties.ContaminationRisk != models.ContaminationUnknown {
		t.Fatalf("expected unknown contamination, got %s", properties.ContaminationRisk)
	}
	if properties.SourceType != "municipal" {
		t.Fatalf("expected municipal default, got %s", properties.SourceType)
	}
}

func TestParsePropertiesContaminationTiers(t *testing.T) {
	cases := map[string]models.ContaminationRisk{
		"the water is safe to drink and meets all standards": models.ContaminationLow,
		"a carbon filter recommended for taste and lead":     models.ContaminationMedium,
		"officials say the supply is unsafe for infants":     models.ContaminationHigh,
	}
	for text, want := range cases {
		if got := ParseProperties(text).ContaminationRisk; got != want {
			t.Fatalf("%q parsed as %s, want %s", text, got, want)
		}
	}
}

func TestParsePropertiesHardnessTiers(t *testing.T) {
	cases := map[string]models.WaterHardness{
		"very hard water in this region":     models.HardnessHard,
		"moderately hard supply":             models.HardnessModerate,
		"notably soft water from snowmelt":   models.HardnessSoft,
		"the supply is treated municipally":  models.HardnessUnknown,
	}
	for text, want := range cases {
		if got := ParseProperties(text).Hardness; got != want {
			t.Fatalf("%q parsed as %s, want %s", text, got, want)
		}
	}
}

func TestRecommendationsFollowProperties(t *testing.T) {
	recs := recommendationsFor(models.WaterProperties{
		ContaminationRisk: models.ContaminationHigh,
		Hardness:          models.HardnessHard,
	})
	if len(recs) != 2 {
		t.Fatalf("expected two recommendations, got %v", recs)
	}
}
