package routes

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/envirohealth-ai/platform/pkg/common/config"
	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/envirohealth-ai/platform/pkg/common/models"
	"github.com/gorilla/mux"
)

// ReportProxy relays report and lifestyle requests to the report service.
type ReportProxy struct {
	Client *http.Client
	Cfg    *config.Config
}

func RegisterReportRoutes(router *mux.Router, proxy *ReportProxy) {
	if proxy == nil || proxy.Client == nil || proxy.Cfg == nil {
		panic("report proxy requires client and config")
	}

	router.HandleFunc("/reports", proxy.handleGenerate).Methods(http.MethodPost)
	router.HandleFunc("/reports/{id}", proxy.handleGet).Methods(http.MethodGet)
	router.HandleFunc("/reports/history/{lifestyle_id}", proxy.handleHistory).Methods(http.MethodGet)

	router.HandleFunc("/lifestyle", proxy.handleLifestyleCreate).Methods(http.MethodPost)
	router.HandleFunc("/lifestyle/{id}", proxy.handleLifestylePassthrough).Methods(http.MethodGet, http.MethodPut, http.MethodDelete)
}

func (p *ReportProxy) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req models.ReportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, p.Cfg.MaxRequestBody)).Decode(&req); err != nil {
		logger.WithError(err).Warn("Failed to decode report request")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	url := fmt.Sprintf("%s/api/v1/reports", p.Cfg.ReportBaseURL)
	resp, status, err := forwardRequest(p.Client, p.Cfg, r, http.MethodPost, url, req)
	if err != nil {
		logger.WithError(err).Error("Failed to forward to report service")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeProxied(w, resp, status)
}

func (p *ReportProxy) handleGet(w http.ResponseWriter, r *http.Request) {
	url := fmt.Sprintf("%s/api/v1/reports/%s", p.Cfg.ReportBaseURL, mux.Vars(r)["id"])
	resp, status, err := forwardRequest(p.Client, p.Cfg, r, http.MethodGet, url, nil)
	if err != nil {
		logger.WithError(err).Error("Failed to forward to report service")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeProxied(w, resp, status)
}

func (p *ReportProxy) handleHistory(w http.ResponseWriter, r *http.Request) {
	url := fmt.Sprintf("%s/api/v1/reports/history/%s?%s",
		p.Cfg.ReportBaseURL, mux.Vars(r)["lifestyle_id"], r.URL.RawQuery)
	resp, status, err := forwardRequest(p.Client, p.Cfg, r, http.MethodGet, url, nil)
	if err != nil {
		logger.WithError(err).Error("Failed to forward to report service")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeProxied(w, resp, status)
}

func (p *ReportProxy) handleLifestyleCreate(w http.ResponseWriter, r *http.Request) {
	var profile models.LifestyleProfile
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, p.Cfg.MaxRequestBody)).Decode(&profile); err != nil {
		logger.WithError(err).Warn("Failed to decode lifestyle payload")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	url := fmt.Sprintf("%s/api/v1/lifestyle", p.Cfg.ReportBaseURL)
	resp, status, err := forwardRequest(p.Client, p.Cfg, r, http.MethodPost, url, profile)
	if err != nil {
		logger.WithError(err).Error("Failed to forward to report service")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeProxied(w, resp, status)
}

func (p *ReportProxy) handleLifestylePassthrough(w http.ResponseWriter, r *http.Request) {
	var body interface{}
	if r.Method == http.MethodPut {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, p.Cfg.MaxRequestBody)).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	url := fmt.Sprintf("%s/api/v1/lifestyle/%s", p.Cfg.ReportBaseURL, mux.Vars(r)["id"])
	resp, status, err := forwardRequest(p.Client, p.Cfg, r, r.Method, url, body)
	if err != nil {
		logger.WithError(err).Error("Failed to forward to report service")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeProxied(w, resp, status)
}
