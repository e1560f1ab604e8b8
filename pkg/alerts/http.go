package alerts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/gorilla/mux"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func (h *HTTPHandler) Register(router *mux.Router) {
	router.HandleFunc("/alerts", h.handleList).Methods(http.MethodGet)
	router.HandleFunc("/alerts/{id}/ack", h.handleAcknowledge).Methods(http.MethodPost)
}

func (h *HTTPHandler) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	alerts, err := h.service.List(r.Context(), limit)
	if err != nil {
		logger.WithError(err).Error("failed to list alerts")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alerts)
}

func (h *HTTPHandler) handleAcknowledge(w http.ResponseWriter, r *http.Request) {
	err := h.service.Acknowledge(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "alert not found", http.StatusNotFound)
			return
		}
		logger.WithError(err).Error("failed to acknowledge alert")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
