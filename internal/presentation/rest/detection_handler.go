package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/dto"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/usecase"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
)

const maxBodyBytes = 1 << 20

// DetectionHandler serves the detection and benchmark endpoints.
type DetectionHandler struct {
	detect     *usecase.DetectFraud
	benchmarks *usecase.GetBenchmarks
	logger     *slog.Logger
}

// NewDetectionHandler creates a new DetectionHandler.
func NewDetectionHandler(detect *usecase.DetectFraud, benchmarks *usecase.GetBenchmarks, logger *slog.Logger) *DetectionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetectionHandler{
		detect:     detect,
		benchmarks: benchmarks,
		logger:     logger,
	}
}

// Detect scores the transaction in the request body. The scoring mode comes
// from the optional "mode" query parameter.
func (h *DetectionHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var mode valueobject.ScoringMode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		m, err := valueobject.ScoringModeFromString(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		mode = m
	}

	req, err := decodeDetectRequest(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.detect.Execute(r.Context(), req, mode)
	if err != nil {
		h.writeDetectError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Benchmarks returns the static comparison fixture.
func (h *DetectionHandler) Benchmarks(w http.ResponseWriter, r *http.Request) {
	resp, err := h.benchmarks.Execute(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to load benchmarks", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *DetectionHandler) writeDetectError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *model.InvalidInputError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, invalid.Error())
		return
	}

	h.logger.ErrorContext(r.Context(), "detection failed", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func decodeDetectRequest(w http.ResponseWriter, r *http.Request) (dto.DetectRequest, error) {
	var req dto.DetectRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return req, errors.New("request body is required")
		case errors.As(err, &tooLarge):
			return req, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		default:
			return req, fmt.Errorf("malformed request body: %w", err)
		}
	}
	if dec.More() {
		return req, errors.New("malformed request body: unexpected data after JSON object")
	}
	return req, nil
}
