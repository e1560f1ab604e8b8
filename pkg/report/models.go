package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/envirohealth-ai/platform/pkg/common/models"
	"gorm.io/datatypes"
)

const reportVersion = "1.0"

// Record is the persisted form of a generated report. Factor and
// recommendation lists plus the feature vector live in JSON columns.
type Record struct {
	ID                      string         `gorm:"primaryKey;type:uuid" json:"id"`
	Latitude                float64        `gorm:"not null" json:"latitude"`
	Longitude               float64        `gorm:"not null" json:"longitude"`
	LifestyleID             string         `gorm:"type:uuid;index" json:"lifestyle_id,omitempty"`
	EnvironmentalRisk       float64        `json:"environmental_risk"`
	LifestyleRisk           float64        `json:"lifestyle_risk"`
	VulnerabilityMultiplier float64        `json:"vulnerability_multiplier"`
	CompositeRisk           float64        `json:"composite_risk"`
	RiskLevel               string         `gorm:"size:16;index" json:"risk_level"`
	Factors                 datatypes.JSON `gorm:"type:jsonb" json:"contributing_factors"`
	Recommendations         datatypes.JSON `gorm:"type:jsonb" json:"health_recommendations"`
	Summary                 string         `gorm:"type:text" json:"report_summary"`
	FeatureVector           datatypes.JSON `gorm:"type:jsonb" json:"feature_vector"`
	Version                 string         `gorm:"size:8" json:"version"`
	CreatedAt               time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

func (Record) TableName() string { return "risk_reports" }

func newRecord(id string, req models.ReportRequest, report models.RiskReport) (*Record, error) {
	factors, err := json.Marshal(report.Factors)
	if err != nil {
		return nil, fmt.Errorf("encoding factors: %w", err)
	}
	recommendations, err := json.Marshal(report.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("encoding recommendations: %w", err)
	}
	featureVector, err := json.Marshal(report.FeatureVector)
	if err != nil {
		return nil, fmt.Errorf("encoding feature vector: %w", err)
	}

	return &Record{
		ID:                      id,
		Latitude:                req.Latitude,
		Longitude:               req.Longitude,
		LifestyleID:             req.LifestyleID,
		EnvironmentalRisk:       report.EnvironmentalRisk,
		LifestyleRisk:           report.LifestyleRisk,
		VulnerabilityMultiplier: report.VulnerabilityMultiplier,
		CompositeRisk:           report.CompositeRisk,
		RiskLevel:               string(report.RiskLevel),
		Factors:                 datatypes.JSON(factors),
		Recommendations:         datatypes.JSON(recommendations),
		Summary:                 report.Summary,
		FeatureVector:           datatypes.JSON(featureVector),
		Version:                 reportVersion,
	}, nil
}

// Response rebuilds the API shape from a stored record.
func (r *Record) Response() (*models.ReportResponse, error) {
	report := models.RiskReport{
		EnvironmentalRisk:       r.EnvironmentalRisk,
		LifestyleRisk:           r.LifestyleRisk,
		VulnerabilityMultiplier: r.VulnerabilityMultiplier,
		CompositeRisk:           r.CompositeRisk,
		RiskLevel:               models.RiskLevel(r.RiskLevel),
		Summary:                 r.Summary,
	}

	if len(r.Factors) > 0 {
		if err := json.Unmarshal(r.Factors, &report.Factors); err != nil {
			return nil, fmt.Errorf("decoding factors: %w", err)
		}
	}
	if len(r.Recommendations) > 0 {
		if err := json.Unmarshal(r.Recommendations, &report.Recommendations); err != nil {
			return nil, fmt.Errorf("decoding recommendations: %w", err)
		}
	}
	if len(r.FeatureVector) > 0 {
		if err := json.Unmarshal(r.FeatureVector, &report.FeatureVector); err != nil {
			return nil, fmt.Errorf("decoding feature vector: %w", err)
		}
	}

	return &models.ReportResponse{
		ReportID:    r.ID,
		RiskReport:  report,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		GeneratedAt: r.CreatedAt,
		Version:     r.Version,
	}, nil
}
