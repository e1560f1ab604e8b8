package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/envirohealth-ai/platform/pkg/common/models"
	"github.com/envirohealth-ai/platform/pkg/lifestyle"
	"github.com/envirohealth-ai/platform/pkg/risk"
	"github.com/gorilla/mux"
)

type HTTPHandler struct {
	service *Service
	maxBody int64
}

func NewHTTPHandler(service *Service, maxBody int64) *HTTPHandler {
	return &HTTPHandler{service: service, maxBody: maxBody}
}

func (h *HTTPHandler) Register(router *mux.Router) {
	router.HandleFunc("/reports", h.handleGenerate).Methods(http.MethodPost)
	router.HandleFunc("/reports/{id}", h.handleGet).Methods(http.MethodGet)
	router.HandleFunc("/reports/history/{lifestyle_id}", h.handleHistory).Methods(http.MethodGet)
}

func (h *HTTPHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var req models.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithError(err).Warn("invalid report payload")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Latitude < -90 || req.Latitude > 90 {
		http.Error(w, "latitude out of range", http.StatusBadRequest)
		return
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		http.Error(w, "longitude out of range", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

func (h *HTTPHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *HTTPHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	responses, err := h.service.History(r.Context(), mux.Vars(r)["lifestyle_id"], limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case lifestyle.IsValidationError(err), errors.Is(err, risk.ErrMissingField):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "report not found", http.StatusNotFound)
	case errors.Is(err, lifestyle.ErrNotFound):
		http.Error(w, "lifestyle profile not found", http.StatusNotFound)
	default:
		logger.WithError(err).Error("report request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
