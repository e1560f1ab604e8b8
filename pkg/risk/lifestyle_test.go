package risk

import (
	"errors"
	"math"
	"testing"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

func bestCaseProfile() models.LifestyleProfile {
	return models.LifestyleProfile{
		AgeRange:        models.Age26to35,
		SmokingStatus:   models.SmokingNever,
		ActivityLevel:   models.ActivityActive,
		WorkEnvironment: models.WorkIndoor,
		StressLevel:     models.StressLow,
		DietQuality:     models.DietGood,
		SleepHours:      models.SleepAdequate,
	}
}

func TestLifestyleRiskBestCase(t *testing.T) {
	score, riskFactors, positiveFactors, err := ComputeLifestyleRisk(bestCaseProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0 {
		t.Fatalf("expected zero risk for best-case profile, got %f", score)
	}
	if len(riskFactors) != 0 {
		t.Fatalf("expected no risk factors, got %v", riskFactors)
	}
	if len(positiveFactors) < 4 {
		t.Fatalf("expected at least four positive factors, got %v", positiveFactors)
	}
}

func TestLifestyleRiskWorstCaseClamped(t *testing.T) {
	profile := models.LifestyleProfile{
		AgeRange:        models.Age65Plus,
		SmokingStatus:   models.SmokingCurrent,
		ActivityLevel:   models.ActivitySedentary,
		WorkEnvironment: models.WorkOutdoor,
		StressLevel:     models.StressHigh,
		DietQuality:     models.DietPoor,
		SleepHours:      models.SleepShort,
	}

	score, riskFactors, _, err := ComputeLifestyleRisk(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 100 {
		t.Fatalf("expected score clamped to 100, got %f", score)
	}
	if len(riskFactors) != 6 {
		t.Fatalf("expected six risk factors, got %v", riskFactors)
	}
}

func TestLifestyleRiskAgeMultiplier(t *testing.T) {
	profile := models.LifestyleProfile{
		AgeRange:        models.Age36to50,
		SmokingStatus:   models.SmokingFormer,
		ActivityLevel:   models.ActivityModerate,
		WorkEnvironment: models.WorkMixed,
	}

	score, _, _, err := ComputeLifestyleRisk(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (15 + 10 + 3) * 1.1
	if math.Abs(score-30.8) > 1e-9 {
		t.Fatalf("expected score 30.8, got %f", score)
	}
}

func TestLifestyleRiskOptionalFieldsAbsent(t *testing.T) {
	profile := models.LifestyleProfile{
		AgeRange:        models.Age26to35,
		SmokingStatus:   models.SmokingNever,
		ActivityLevel:   models.ActivityActive,
		WorkEnvironment: models.WorkIndoor,
	}

	score, _, positiveFactors, err := ComputeLifestyleRisk(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0 {
		t.Fatalf("expected zero score, got %f", score)
	}
	// Absent diet and sleep must not produce the explicit "good diet" or
	// "adequate sleep" notes.
	if len(positiveFactors) != 2 {
		t.Fatalf("expected two positive factors for required fields only, got %v", positiveFactors)
	}
}

func TestLifestyleRiskMissingRequiredField(t *testing.T) {
	profile := bestCaseProfile()
	profile.SmokingStatus = ""

	_, _, _, err := ComputeLifestyleRisk(profile)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestLifestyleRiskRangeProperty(t *testing.T) {
	ages := []models.AgeRange{models.Age13to17, models.Age18to25, models.Age26to35, models.Age36to50, models.Age51to65, models.Age65Plus}
	smoking := []models.SmokingStatus{models.SmokingNever, models.SmokingFormer, models.SmokingCurrent}
	activity := []models.ActivityLevel{models.ActivityActive, models.ActivityModerate, models.ActivitySedentary}

	for _, age := range ages {
		for _, smoke := range smoking {
			for _, act := range activity {
				profile := models.LifestyleProfile{
					AgeRange:        age,
					SmokingStatus:   smoke,
					ActivityLevel:   act,
					WorkEnvironment: models.WorkOutdoor,
					StressLevel:     models.StressHigh,
					DietQuality:     models.DietPoor,
					SleepHours:      models.SleepShort,
				}
				score, _, _, err := ComputeLifestyleRisk(profile)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if score < 0 || score > 100 {
					t.Fatalf("score %f out of range for %v/%v/%v", score, age, smoke, act)
				}
			}
		}
	}
}

func TestLifestyleRecommendationsOrder(t *testing.T) {
	profile := models.LifestyleProfile{
		AgeRange:        models.Age26to35,
		SmokingStatus:   models.SmokingCurrent,
		ActivityLevel:   models.ActivitySedentary,
		WorkEnvironment: models.WorkIndoor,
		StressLevel:     models.StressHigh,
		DietQuality:     models.DietPoor,
		SleepHours:      models.SleepShort,
	}

	recs := LifestyleRecommendations(profile)
	if len(recs) != 5 {
		t.Fatalf("expected five recommendations, got %d", len(recs))
	}
	if recs[0] != "Consider smoking cessation programs - single most impactful health improvement" {
		t.Fatalf("expected smoking cessation first, got %q", recs[0])
	}
}
