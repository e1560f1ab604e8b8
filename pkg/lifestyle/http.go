package lifestyle

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/envirohealth-ai/platform/pkg/common/models"
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
	router.HandleFunc("/lifestyle", h.handleCreate).Methods(http.MethodPost)
	router.HandleFunc("/lifestyle/{id}", h.handleGet).Methods(http.MethodGet)
	router.HandleFunc("/lifestyle/{id}", h.handleUpdate).Methods(http.MethodPut)
	router.HandleFunc("/lifestyle/{id}", h.handleDelete).Methods(http.MethodDelete)
}

func (h *HTTPHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decode(w, r)
	if !ok {
		return
	}

	record, err := h.service.Create(r.Context(), profile)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func (h *HTTPHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func (h *HTTPHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decode(w, r)
	if !ok {
		return
	}

	record, err := h.service.Update(r.Context(), mux.Vars(r)["id"], profile)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func (h *HTTPHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request) (models.LifestyleProfile, bool) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var profile models.LifestyleProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		logger.WithError(err).Warn("invalid lifestyle payload")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return models.LifestyleProfile{}, false
	}
	return profile, true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "lifestyle profile not found", http.StatusNotFound)
	default:
		logger.WithError(err).Error("lifestyle request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
