package routes

import (
	"fmt"
	"net/http"

	"github.com/envirohealth-ai/platform/pkg/common/config"
	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/gorilla/mux"
)

// AlertsProxy relays alert queries to the alerts service.
type AlertsProxy struct {
	Client *http.Client
	Cfg    *config.Config
}

func RegisterAlertRoutes(router *mux.Router, proxy *AlertsProxy) {
	if proxy == nil || proxy.Client == nil || proxy.Cfg == nil {
		panic("alerts proxy requires client and config")
	}

	router.HandleFunc("/alerts", proxy.handleList).Methods(http.MethodGet)
	router.HandleFunc("/alerts/{id}/ack", proxy.handleAcknowledge).Methods(http.MethodPost)
}

func (p *AlertsProxy) handleList(w http.ResponseWriter, r *http.Request) {
	url := fmt.Sprintf("%s/api/v1/alerts?%s", p.Cfg.AlertsBaseURL, r.URL.RawQuery)
	resp, status, err := forwardRequest(p.Client, p.Cfg, r, http.MethodGet, url, nil)
	if err != nil {
		logger.WithError(err).Error("Failed to forward to alerts service")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeProxied(w, resp, status)
}

func (p *AlertsProxy) handleAcknowledge(w http.ResponseWriter, r *http.Request) {
	url := fmt.Sprintf("%s/api/v1/alerts/%s/ack", p.Cfg.AlertsBaseURL, mux.Vars(r)["id"])
	resp, status, err := forwardRequest(p.Client, p.Cfg, r, http.MethodPost, url, nil)
	if err != nil {
		logger.WithError(err).Error("Failed to forward to alerts service")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeProxied(w, resp, status)
}
