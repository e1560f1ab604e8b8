package lifestyle

import (
	"errors"
	"fmt"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

var (
	errMissingField = errors.New("missing required field")
	errInvalidValue = errors.New("invalid field value")
)

type ValidationError struct {
	reason error
}

func (e ValidationError) Error() string {
	return e.reason.Error()
}

func (e ValidationError) Unwrap() error {
	return e.reason
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

var (
	validAgeRanges = map[models.AgeRange]struct{}{
		models.Age13to17: {}, models.Age18to25: {}, models.Age26to35: {},
		models.Age36to50: {}, models.Age51to65: {}, models.Age65Plus: {},
	}
	validSmoking = map[models.SmokingStatus]struct{}{
		models.SmokingNever: {}, models.SmokingFormer: {}, models.SmokingCurrent: {},
	}
	validActivity = map[models.ActivityLevel]struct{}{
		models.ActivityActive: {}, models.ActivityModerate: {}, models.ActivitySedentary: {},
	}
	validWork = map[models.WorkEnvironment]struct{}{
		models.WorkIndoor: {}, models.WorkOutdoor: {}, models.WorkMixed: {},
	}
	validDiet = map[models.DietQuality]struct{}{
		models.DietPoor: {}, models.DietAverage: {}, models.DietGood: {},
	}
	validSleep = map[models.SleepHours]struct{}{
		models.SleepShort: {}, models.SleepAdequate: {}, models.SleepLong: {},
	}
	validStress = map[models.StressLevel]struct{}{
		models.StressLow: {}, models.StressMedium: {}, models.StressHigh: {},
	}
)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks required fields for presence and every provided field for
// a legal categorical value. Empty optional fields are accepted; they mean
// "not provided".
func (v *Validator) Validate(profile models.LifestyleProfile) error {
	if profile.AgeRange == "" {
		return ValidationError{reason: fmt.Errorf("age_range required: %w", errMissingField)}
	}
	if _, ok := validAgeRanges[profile.AgeRange]; !ok {
		return ValidationError{reason: fmt.Errorf("age_range '%s': %w", profile.AgeRange, errInvalidValue)}
	}

	if profile.SmokingStatus == "" {
		return ValidationError{reason: fmt.Errorf("smoking_status required: %w", errMissingField)}
	}
	if _, ok := validSmoking[profile.SmokingStatus]; !ok {
		return ValidationError{reason: fmt.Errorf("smoking_status '%s': %w", profile.SmokingStatus, errInvalidValue)}
	}

	if profile.ActivityLevel == "" {
		return ValidationError{reason: fmt.Errorf("activity_level required: %w", errMissingField)}
	}
	if _, ok := validActivity[profile.ActivityLevel]; !ok {
		return ValidationError{reason: fmt.Errorf("activity_level '%s': %w", profile.ActivityLevel, errInvalidValue)}
	}

	if profile.WorkEnvironment == "" {
		return ValidationError{reason: fmt.Errorf("work_environment required: %w", errMissingField)}
	}
	if _, ok := validWork[profile.WorkEnvironment]; !ok {
		return ValidationError{reason: fmt.Errorf("work_environment '%s': %w", profile.WorkEnvironment, errInvalidValue)}
	}

	if profile.DietQuality != "" {
		if _, ok := validDiet[profile.DietQuality]; !ok {
			return ValidationError{reason: fmt.Errorf("diet_quality '%s': %w", profile.DietQuality, errInvalidValue)}
		}
	}
	if profile.SleepHours != "" {
		if _, ok := validSleep[profile.SleepHours]; !ok {
			return ValidationError{reason: fmt.Errorf("sleep_hours '%s': %w", profile.SleepHours, errInvalidValue)}
		}
	}
	if profile.StressLevel != "" {
		if _, ok := validStress[profile.StressLevel]; !ok {
			return ValidationError{reason: fmt.Errorf("stress_level '%s': %w", profile.StressLevel, errInvalidValue)}
		}
	}

	return nil
}
