package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/envirohealth-ai/platform/pkg/common/kafka"
	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/envirohealth-ai/platform/pkg/common/models"
	"github.com/envirohealth-ai/platform/pkg/lifestyle"
	"github.com/envirohealth-ai/platform/pkg/observability/metrics"
	"github.com/envirohealth-ai/platform/pkg/risk"
	"github.com/google/uuid"
)

// Provider fan-out contracts. The concrete clients live in pkg/providers;
// narrow interfaces keep them swappable in tests.

type AirProvider interface {
	Fetch(ctx context.Context, lat, lon float64) (models.AirQualityResult, error)
}

type SoilProvider interface {
	Research(ctx context.Context, location string) (models.SoilResult, error)
}

type WaterProvider interface {
	Research(ctx context.Context, location string) (models.WaterResult, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, eventType, source string, data map[string]interface{}) error
}

type Service struct {
	engine    *risk.Engine
	air       AirProvider
	soil      SoilProvider
	water     WaterProvider
	repo      *Repository
	cache     *Cache
	producer  EventPublisher
	profiles  *lifestyle.Service
	retention time.Duration
}

func NewService(engine *risk.Engine, air AirProvider, soil SoilProvider, water WaterProvider,
	repo *Repository, cache *Cache, producer *kafka.Producer, profiles *lifestyle.Service,
	retention time.Duration) *Service {
	svc := &Service{
		engine:    engine,
		air:       air,
		soil:      soil,
		water:     water,
		repo:      repo,
		cache:     cache,
		profiles:  profiles,
		retention: retention,
	}
	if producer != nil {
		svc.producer = producer
	}
	return svc
}

// Generate runs the full report pipeline: resolve the lifestyle profile,
// fan out to the three environmental providers, assess, persist, cache,
// and publish.
func (s *Service) Generate(ctx context.Context, req models.ReportRequest) (*models.ReportResponse, error) {
	profile, err := s.resolveProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	cacheKey := ""
	if s.cache != nil {
		cacheKey = s.cache.Key(req.Latitude, req.Longitude, req.LifestyleID)
		if req.Lifestyle == nil {
			if cached, ok := s.cache.Get(ctx, cacheKey); ok {
				return cached, nil
			}
		}
	}

	reading := s.collectReading(ctx, req.Latitude, req.Longitude)

	report, err := s.engine.Assess(reading, profile)
	if err != nil {
		return nil, fmt.Errorf("assessing risk: %w", err)
	}

	record, err := newRecord(uuid.New().String(), req, report)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("persisting report: %w", err)
	}

	resp, err := record.Response()
	if err != nil {
		return nil, err
	}

	metrics.IncReportsGenerated()
	if report.RiskLevel == models.RiskHigh {
		metrics.IncHighRiskReports()
	}

	if s.cache != nil && req.Lifestyle == nil {
		s.cache.Set(ctx, cacheKey, resp)
	}

	s.publish(ctx, record)

	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.ReportResponse, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return record.Response()
}

func (s *Service) History(ctx context.Context, lifestyleID string, limit int) ([]*models.ReportResponse, error) {
	records, err := s.repo.ListByLifestyle(ctx, lifestyleID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ReportResponse, 0, len(records))
	for i := range records {
		resp, err := records[i].Response()
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *Service) Cleanup(ctx context.Context) error {
	return s.repo.CleanupExpired(ctx, s.retention)
}

// resolveProfile prefers an inline profile; otherwise it loads the stored
// one. Requests with neither produce an environment-only report.
func (s *Service) resolveProfile(ctx context.Context, req models.ReportRequest) (*models.LifestyleProfile, error) {
	if req.Lifestyle != nil {
		return req.Lifestyle, nil
	}
	if req.LifestyleID == "" {
		return nil, nil
	}
	if s.profiles == nil {
		return nil, fmt.Errorf("lifestyle_id given but no profile store configured")
	}

	profile, err := s.profiles.Profile(ctx, req.LifestyleID)
	if err != nil {
		return nil, fmt.Errorf("loading lifestyle profile %s: %w", req.LifestyleID, err)
	}
	return &profile, nil
}

// collectReading queries the three providers concurrently. A failed provider
// logs, bumps the failure counter, and contributes its neutral fallback.
func (s *Service) collectReading(ctx context.Context, lat, lon float64) models.EnvironmentalReading {
	location := fmt.Sprintf("%.4f, %.4f", lat, lon)

	air := neutralAir()
	soil := neutralSoil(location)
	water := neutralWater(location)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		result, err := s.air.Fetch(ctx, lat, lon)
		if err != nil {
			logger.WithError(err).Warn("Air provider failed, using fallback")
			metrics.IncProviderFailures()
			return
		}
		air = result
	}()

	go func() {
		defer wg.Done()
		result, err := s.soil.Research(ctx, location)
		if err != nil {
			logger.WithError(err).Warn("Soil provider failed, using fallback")
			metrics.IncProviderFailures()
			return
		}
		soil = result
	}()

	go func() {
		defer wg.Done()
		result, err := s.water.Research(ctx, location)
		if err != nil {
			logger.WithError(err).Warn("Water provider failed, using fallback")
			metrics.IncProviderFailures()
			return
		}
		water = result
	}()

	wg.Wait()

	return buildReading(air, soil, water)
}

func (s *Service) publish(ctx context.Context, record *Record) {
	if s.producer == nil {
		return
	}

	data := map[string]interface{}{
		"report_id":      record.ID,
		"latitude":       record.Latitude,
		"longitude":      record.Longitude,
		"lifestyle_id":   record.LifestyleID,
		"composite_risk": record.CompositeRisk,
		"risk_level":     record.RiskLevel,
	}

	if err := s.producer.PublishEvent(ctx, "report.generated", "report-service", data); err != nil {
		logger.WithError(err).Error("Failed to publish report event")
		return
	}
	metrics.IncEventsPublished()

	if record.RiskLevel == string(models.RiskHigh) {
		if err := s.producer.PublishEvent(ctx, "report.high_risk", "report-service", data); err != nil {
			logger.WithError(err).Error("Failed to publish high-risk event")
			return
		}
		metrics.IncEventsPublished()
	}
}
