package routes

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type MetricsHandler struct {
	db *gorm.DB
}

type OverviewMetrics struct {
	ReportsLastHour  int     `json:"reportsLastHour"`
	HighRiskLastDay  int     `json:"highRiskLastDay"`
	AvgCompositeRisk float64 `json:"avgCompositeRisk"`
	OpenAlerts       int     `json:"openAlerts"`
	ProfilesStored   int     `json:"profilesStored"`
}

type RiskTrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	AvgRisk   float64   `json:"avgRisk"`
	Count     int       `json:"count"`
}

func NewMetricsHandler(db *gorm.DB) *MetricsHandler {
	return &MetricsHandler{db: db}
}

func (h *MetricsHandler) Register(r *mux.Router) {
	r.HandleFunc("/metrics/overview", h.handleOverview).Methods(http.MethodGet)
	r.HandleFunc("/metrics/risk-trend", h.handleRiskTrend).Methods(http.MethodGet)
}

func (h *MetricsHandler) handleOverview(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.collectMetrics()
	if err != nil {
		logger.WithError(err).Error("failed to collect metrics")
		http.Error(w, "failed to collect metrics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, metrics)
}

func (h *MetricsHandler) collectMetrics() (OverviewMetrics, error) {
	metrics := OverviewMetrics{}

	var reports sql.NullInt64
	if err := h.db.Raw(`
		SELECT COUNT(*)
		FROM risk_reports
		WHERE created_at > NOW() - INTERVAL '1 hour'
	`).Scan(&reports).Error; err != nil {
		return metrics, err
	}
	if reports.Valid {
		metrics.ReportsLastHour = int(reports.Int64)
	}

	var highRisk sql.NullInt64
	if err := h.db.Raw(`
		SELECT COUNT(*)
		FROM risk_reports
		WHERE risk_level = 'high' AND created_at > NOW() - INTERVAL '1 day'
	`).Scan(&highRisk).Error; err != nil {
		return metrics, err
	}
	if highRisk.Valid {
		metrics.HighRiskLastDay = int(highRisk.Int64)
	}

	var avgRisk sql.NullFloat64
	if err := h.db.Raw(`
		SELECT AVG(composite_risk)
		FROM risk_reports
		WHERE created_at > NOW() - INTERVAL '1 day'
	`).Scan(&avgRisk).Error; err != nil {
		return metrics, err
	}
	if avgRisk.Valid {
		metrics.AvgCompositeRisk = avgRisk.Float64
	}

	var alerts sql.NullInt64
	if err := h.db.Raw(`
		SELECT COUNT(*)
		FROM risk_alerts
		WHERE acknowledged = FALSE
	`).Scan(&alerts).Error; err != nil {
		return metrics, err
	}
	if alerts.Valid {
		metrics.OpenAlerts = int(alerts.Int64)
	}

	var profiles sql.NullInt64
	if err := h.db.Raw(`
		SELECT COUNT(*)
		FROM lifestyle_profiles
	`).Scan(&profiles).Error; err != nil {
		return metrics, err
	}
	if profiles.Valid {
		metrics.ProfilesStored = int(profiles.Int64)
	}

	return metrics, nil
}

func (h *MetricsHandler) handleRiskTrend(w http.ResponseWriter, r *http.Request) {
	var rows []struct {
		Bucket  time.Time       `gorm:"column:bucket"`
		AvgRisk sql.NullFloat64 `gorm:"column:avg_risk"`
		Count   int             `gorm:"column:count"`
	}

	if err := h.db.WithContext(r.Context()).Raw(`
		SELECT
			date_trunc('hour', created_at) AS bucket,
			AVG(composite_risk) AS avg_risk,
			COUNT(*) AS count
		FROM risk_reports
		WHERE created_at > NOW() - INTERVAL '24 hour'
		GROUP BY bucket
		ORDER BY bucket ASC
	`).Scan(&rows).Error; err != nil {
		logger.WithError(err).Error("failed to load risk trend")
		http.Error(w, "failed to load risk trend", http.StatusInternalServerError)
		return
	}

	points := make([]RiskTrendPoint, 0, len(rows))
	for _, row := range rows {
		avg := 0.0
		if row.AvgRisk.Valid {
			avg = row.AvgRisk.Float64
		}
		points = append(points, RiskTrendPoint{
			Timestamp: row.Bucket,
			AvgRisk:   avg,
			Count:     row.Count,
		})
	}

	writeJSON(w, points)
}
