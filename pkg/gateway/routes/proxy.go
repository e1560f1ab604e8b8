package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/envirohealth-ai/platform/pkg/common/config"
	"github.com/envirohealth-ai/platform/pkg/common/httpclient"
	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/google/uuid"
)

// forwardRequest relays one request to a backend service, propagating headers
// and the correlation ID, with retry on transport errors.
func forwardRequest(client *http.Client, cfg *config.Config, r *http.Request, method, url string, body interface{}) (interface{}, int, error) {
	corrID := r.Header.Get("X-Request-ID")
	if corrID == "" {
		corrID = uuid.New().String()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reqBody = bytes.NewBuffer(b)
	}

	ctx, cancel := context.WithTimeout(r.Context(), cfg.GatewayRequestTimeout)
	defer cancel()
	outReq, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, 0, err
	}

	outReq.Header = make(http.Header)
	for k, v := range r.Header {
		outReq.Header[k] = v
	}
	outReq.Header.Set("Content-Type", "application/json")
	outReq.Header.Set("X-Request-ID", corrID)

	var resp *http.Response
	reqErr := httpclient.Retry(ctx, 3, 200*time.Millisecond, func() error {
		var doErr error
		resp, doErr = client.Do(outReq)
		return doErr
	})
	if reqErr != nil {
		return nil, 0, reqErr
	}
	defer resp.Body.Close()

	var out interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		out = map[string]interface{}{"status": resp.Status}
	}

	logger.WithFields(map[string]interface{}{
		"url":        url,
		"status":     resp.StatusCode,
		"request_id": corrID,
	}).Info("Forwarded request")

	return out, resp.StatusCode, nil
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.WithError(err).Error("failed to write json response")
	}
}

func writeProxied(w http.ResponseWriter, resp interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
