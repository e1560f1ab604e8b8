package lifestyle

import (
	"encoding/json"
	"time"

	"github.com/envirohealth-ai/platform/pkg/common/models"
	"gorm.io/datatypes"
)

// Record is the persisted form of a lifestyle profile. Slice and map fields
// are stored as JSON columns.
type Record struct {
	ID              string            `gorm:"primaryKey;type:uuid" json:"id"`
	AgeRange        string            `gorm:"size:8;not null" json:"age_range"`
	Gender          string            `gorm:"size:32" json:"gender,omitempty"`
	SmokingStatus   string            `gorm:"size:16;not null" json:"smoking_status"`
	ActivityLevel   string            `gorm:"size:16;not null" json:"activity_level"`
	WorkEnvironment string            `gorm:"size:16;not null" json:"work_environment"`
	DietQuality     string            `gorm:"size:16" json:"diet_quality,omitempty"`
	SleepHours      string            `gorm:"size:8" json:"sleep_hours,omitempty"`
	StressLevel     string            `gorm:"size:16" json:"stress_level,omitempty"`
	MedicalHistory  datatypes.JSON    `gorm:"type:jsonb" json:"medical_history,omitempty"`
	QuizResponses   datatypes.JSONMap `gorm:"type:jsonb" json:"quiz_responses,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (Record) TableName() string { return "lifestyle_profiles" }

func newRecord(id string, profile models.LifestyleProfile) (*Record, error) {
	record := &Record{
		ID:              id,
		AgeRange:        string(profile.AgeRange),
		Gender:          profile.Gender,
		SmokingStatus:   string(profile.SmokingStatus),
		ActivityLevel:   string(profile.ActivityLevel),
		WorkEnvironment: string(profile.WorkEnvironment),
		DietQuality:     string(profile.DietQuality),
		SleepHours:      string(profile.SleepHours),
		StressLevel:     string(profile.StressLevel),
		QuizResponses:   datatypes.JSONMap(profile.QuizResponses),
	}

	if len(profile.MedicalHistory) > 0 {
		history, err := json.Marshal(profile.MedicalHistory)
		if err != nil {
			return nil, err
		}
		record.MedicalHistory = datatypes.JSON(history)
	}

	return record, nil
}

// Profile reconstructs the domain shape consumed by the risk engine.
func (r *Record) Profile() (models.LifestyleProfile, error) {
	profile := models.LifestyleProfile{
		AgeRange:        models.AgeRange(r.AgeRange),
		Gender:          r.Gender,
		SmokingStatus:   models.SmokingStatus(r.SmokingStatus),
		ActivityLevel:   models.ActivityLevel(r.ActivityLevel),
		WorkEnvironment: models.WorkEnvironment(r.WorkEnvironment),
		DietQuality:     models.DietQuality(r.DietQuality),
		SleepHours:      models.SleepHours(r.SleepHours),
		StressLevel:     models.StressLevel(r.StressLevel),
		QuizResponses:   map[string]interface{}(r.QuizResponses),
	}

	if len(r.MedicalHistory) > 0 {
		if err := json.Unmarshal(r.MedicalHistory, &profile.MedicalHistory); err != nil {
			return models.LifestyleProfile{}, err
		}
	}

	return profile, nil
}
