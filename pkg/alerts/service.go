package alerts

import (
	"context"
	"fmt"

	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/envirohealth-ai/platform/pkg/common/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const highRiskEventType = "report.high_risk"

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// HandleEvent consumes bus events and records an alert for every high-risk
// report. Other event types are acknowledged without action.
func (s *Service) HandleEvent(ctx context.Context, event models.Event) error {
	if event.Type != highRiskEventType {
		return nil
	}

	alert := &Alert{
		ID:        uuid.New().String(),
		RiskLevel: string(models.RiskHigh),
		Details:   datatypes.JSONMap(event.Data),
	}

	if reportID, ok := event.Data["report_id"].(string); ok {
		alert.ReportID = reportID
	}
	if lifestyleID, ok := event.Data["lifestyle_id"].(string); ok {
		alert.LifestyleID = lifestyleID
	}
	if composite, ok := event.Data["composite_risk"].(float64); ok {
		alert.CompositeRisk = composite
	}
	alert.Message = fmt.Sprintf("High composite health risk (%.1f) assessed for report %s", alert.CompositeRisk, alert.ReportID)

	if err := s.repo.Create(ctx, alert); err != nil {
		return fmt.Errorf("persisting alert: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"alert_id":  alert.ID,
		"report_id": alert.ReportID,
	}).Info("High-risk alert recorded")

	return nil
}

func (s *Service) List(ctx context.Context, limit int) ([]Alert, error) {
	return s.repo.ListUnacknowledged(ctx, limit)
}

func (s *Service) Acknowledge(ctx context.Context, id string) error {
	return s.repo.Acknowledge(ctx, id)
}
