package lifestyle

import (
	"testing"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

func validProfile() models.LifestyleProfile {
	return models.LifestyleProfile{
		AgeRange:        models.Age26to35,
		SmokingStatus:   models.SmokingNever,
		ActivityLevel:   models.ActivityModerate,
		WorkEnvironment: models.WorkIndoor,
	}
}

func TestValidateAcceptsRequiredOnly(t *testing.T) {
	if err := NewValidator().Validate(validProfile()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAcceptsFullProfile(t *testing.T) {
	profile := validProfile()
	profile.DietQuality = models.DietGood
	profile.SleepHours = models.SleepAdequate
	profile.StressLevel = models.StressLow
	profile.Gender = "female"
	profile.MedicalHistory = []string{"asthma"}

	if err := NewValidator().Validate(profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	cases := []func(*models.LifestyleProfile){
		func(p *models.LifestyleProfile) { p.AgeRange = "" },
		func(p *models.LifestyleProfile) { p.SmokingStatus = "" },
		func(p *models.LifestyleProfile) { p.ActivityLevel = "" },
		func(p *models.LifestyleProfile) { p.WorkEnvironment = "" },
	}
	for i, mutate := range cases {
		profile := validProfile()
		mutate(&profile)
		err := NewValidator().Validate(profile)
		if err == nil {
			t.Fatalf("case %d: expected an error", i)
		}
		if !IsValidationError(err) {
			t.Fatalf("case %d: expected a validation error, got %v", i, err)
		}
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	profile := validProfile()
	profile.SmokingStatus = "socially"
	if err := NewValidator().Validate(profile); !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	profile = validProfile()
	profile.SleepHours = "9-10"
	if err := NewValidator().Validate(profile); !IsValidationError(err) {
		t.Fatalf("expected validation error for bad optional value, got %v", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	profile := validProfile()
	profile.MedicalHistory = []string{"asthma", "hay fever"}
	profile.StressLevel = models.StressHigh

	record, err := newRecord("abc", profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored, err := record.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored.AgeRange != profile.AgeRange || restored.StressLevel != profile.StressLevel {
		t.Fatalf("round trip lost fields: %+v", restored)
	}
	if len(restored.MedicalHistory) != 2 || restored.MedicalHistory[0] != "asthma" {
		t.Fatalf("round trip lost medical history: %v", restored.MedicalHistory)
	}
}
