package risk

import (
	"errors"
	"fmt"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

// ErrMissingField is returned when a required lifestyle field is structurally
// absent. Unrecognised values in present fields do not fail; they score as
// neutral.
var ErrMissingField = errors.New("required lifestyle field missing")

var smokingScores = map[models.SmokingStatus]float64{
	models.SmokingNever:   0,
	models.SmokingFormer:  15,
	models.SmokingCurrent: 40,
}

var activityScores = map[models.ActivityLevel]float64{
	models.ActivityActive:    0,
	models.ActivityModerate:  10,
	models.ActivitySedentary: 25,
}

var workEnvScores = map[models.WorkEnvironment]float64{
	models.WorkIndoor:  0,
	models.WorkMixed:   3,
	models.WorkOutdoor: 5, // higher exposure to environmental factors
}

var stressScores = map[models.StressLevel]float64{
	models.StressLow:    0,
	models.StressMedium: 10,
	models.StressHigh:   20,
}

var ageMultipliers = map[models.AgeRange]float64{
	models.Age13to17: 0.8,
	models.Age18to25: 0.9,
	models.Age26to35: 1.0,
	models.Age36to50: 1.1,
	models.Age51to65: 1.2,
	models.Age65Plus: 1.3,
}

// ComputeLifestyleRisk scores a lifestyle profile on the common 0-100 scale
// and returns the qualitative risk and positive factor lists alongside it.
// Factor lists keep generation order: smoking, activity, work environment,
// stress, diet, sleep.
func ComputeLifestyleRisk(profile models.LifestyleProfile) (float64, []string, []string, error) {
	if err := validateRequired(profile); err != nil {
		return 0, nil, nil, err
	}

	var score float64
	var riskFactors []string
	var positiveFactors []string

	smokingRisk := smokingScores[profile.SmokingStatus]
	score += smokingRisk
	switch {
	case smokingRisk == 0:
		positiveFactors = append(positiveFactors, "Non-smoker - excellent respiratory health foundation")
	case smokingRisk > 30:
		riskFactors = append(riskFactors, "Current smoker - significant health risk factor")
	default:
		riskFactors = append(riskFactors, "Former smoker - reduced but present health impact")
	}

	activityRisk := activityScores[profile.ActivityLevel]
	score += activityRisk
	switch {
	case activityRisk == 0:
		positiveFactors = append(positiveFactors, "Active lifestyle - strong cardiovascular protection")
	case activityRisk > 20:
		riskFactors = append(riskFactors, "Sedentary lifestyle - increases multiple health risks")
	default:
		positiveFactors = append(positiveFactors, "Moderate activity level - good health maintenance")
	}

	workRisk := workEnvScores[profile.WorkEnvironment]
	score += workRisk
	if workRisk > 0 {
		riskFactors = append(riskFactors, fmt.Sprintf("%s work environment - increased environmental exposure", capitalize(string(profile.WorkEnvironment))))
	}

	if profile.StressLevel != "" {
		stressRisk := stressScores[profile.StressLevel]
		score += stressRisk
		if stressRisk > 15 {
			riskFactors = append(riskFactors, "High stress level - impacts immune system and overall health")
		} else if stressRisk > 0 {
			riskFactors = append(riskFactors, "Moderate stress level - manageable with interventions")
		}
	}

	if profile.DietQuality != "" {
		switch profile.DietQuality {
		case models.DietGood:
			positiveFactors = append(positiveFactors, "Good diet quality - supports immune function")
		case models.DietPoor:
			score += 15
			riskFactors = append(riskFactors, "Poor diet quality - affects overall health resilience")
		}
	}

	if profile.SleepHours != "" {
		switch profile.SleepHours {
		case models.SleepAdequate:
			positiveFactors = append(positiveFactors, "Adequate sleep - supports recovery and immune function")
		case models.SleepShort:
			score += 15
			riskFactors = append(riskFactors, "Insufficient sleep - weakens immune response")
		}
	}

	score *= ageMultiplierFor(profile.AgeRange)

	return clampScore(score), riskFactors, positiveFactors, nil
}

// LifestyleRecommendations returns improvement suggestions for the profile's
// modifiable habits, in a fixed evaluation order.
func LifestyleRecommendations(profile models.LifestyleProfile) []string {
	var recs []string

	if profile.SmokingStatus == models.SmokingCurrent {
		recs = append(recs, "Consider smoking cessation programs - single most impactful health improvement")
	}
	if profile.ActivityLevel == models.ActivitySedentary || profile.ActivityLevel == models.ActivityModerate {
		recs = append(recs, "Increase physical activity to 150+ minutes weekly - reduces environmental health risks")
	}
	if profile.StressLevel == models.StressHigh {
		recs = append(recs, "Practice stress management techniques - meditation, yoga, or counseling")
	}
	if profile.DietQuality == models.DietPoor {
		recs = append(recs, "Improve diet with more fruits, vegetables, and whole grains")
	}
	if profile.SleepHours == models.SleepShort {
		recs = append(recs, "Aim for 7-9 hours of sleep nightly for optimal health")
	}

	return recs
}

func ageMultiplierFor(age models.AgeRange) float64 {
	if m, ok := ageMultipliers[age]; ok {
		return m
	}
	return 1.0
}

func validateRequired(profile models.LifestyleProfile) error {
	if profile.AgeRange == "" {
		return fmt.Errorf("age_range: %w", ErrMissingField)
	}
	if profile.SmokingStatus == "" {
		return fmt.Errorf("smoking_status: %w", ErrMissingField)
	}
	if profile.ActivityLevel == "" {
		return fmt.Errorf("activity_level: %w", ErrMissingField)
	}
	if profile.WorkEnvironment == "" {
		return fmt.Errorf("work_environment: %w", ErrMissingField)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
