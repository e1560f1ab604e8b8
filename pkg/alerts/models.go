package alerts

import (
	"time"

	"gorm.io/datatypes"
)

// Alert is a persisted high-risk notification derived from report events.
type Alert struct {
	ID            string            `gorm:"primaryKey;type:uuid" json:"id"`
	ReportID      string            `gorm:"type:uuid;index" json:"report_id"`
	LifestyleID   string            `gorm:"type:uuid;index" json:"lifestyle_id,omitempty"`
	RiskLevel     string            `gorm:"size:16" json:"risk_level"`
	CompositeRisk float64           `json:"composite_risk"`
	Message       string            `gorm:"type:text" json:"message"`
	Details       datatypes.JSONMap `gorm:"type:jsonb" json:"details,omitempty"`
	Acknowledged  bool              `gorm:"index" json:"acknowledged"`
	CreatedAt     time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (Alert) TableName() string { return "risk_alerts" }
