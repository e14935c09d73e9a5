package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/internal/constants"
	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/pkg/config"
	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/pkg/hydraulics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type handlersImpl struct {
	logger *zap.SugaredLogger
}

func newHandlers(logger *zap.SugaredLogger) *handlersImpl {
	return &handlersImpl{logger: logger}
}

// analyzeResponse wraps an engine report with a per-request identifier so
// callers can correlate logs.
type analyzeResponse struct {
	RequestID string             `json:"request_id"`
	Report    *hydraulics.Report `json:"report"`
}

type errorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

// analyze runs one complete analysis from a JSON scenario in the request
// body. Structural input errors map to 400; a missing operating point is a
// 200 with operating_found=false, since that is a valid engineering outcome
// the caller must branch on.
func (h *handlersImpl) analyze(w http.ResponseWriter, req *http.Request) {
	requestID := uuid.NewString()

	var scenario config.ScenarioData
	if err := json.NewDecoder(req.Body).Decode(&scenario); err != nil {
		h.writeError(w, http.StatusBadRequest, requestID, "invalid JSON: "+err.Error())
		return
	}

	analysis, err := config.BuildRequest(&scenario)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, requestID, err.Error())
		return
	}

	report, err := hydraulics.RunAnalysis(analysis)
	if err != nil {
		status := http.StatusInternalServerError
		if isInputError(err) {
			status = http.StatusBadRequest
		}
		h.writeError(w, status, requestID, err.Error())
		return
	}

	h.logger.Infow("analysis complete",
		"request_id", requestID,
		"scenario", scenario.Name,
		"model", report.Model,
		"operating_found", report.OperatingFound,
	)
	h.writeJSON(w, http.StatusOK, analyzeResponse{RequestID: requestID, Report: report})
}

// materials lists the material reference table.
func (h *handlersImpl) materials(w http.ResponseWriter, _ *http.Request) {
	type entry struct {
		Material            string  `json:"material"`
		HazenWilliamsC      float64 `json:"hazen_williams_c"`
		AbsoluteRoughnessFt float64 `json:"absolute_roughness_ft"`
	}
	var out []entry
	for _, m := range hydraulics.Materials() {
		props, err := hydraulics.LookupMaterial(m)
		if err != nil {
			continue
		}
		out = append(out, entry{
			Material:            string(m),
			HazenWilliamsC:      props.HazenWilliamsC,
			AbsoluteRoughnessFt: props.AbsoluteRoughnessFt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

// fittings lists the fitting loss coefficient table.
func (h *handlersImpl) fittings(w http.ResponseWriter, _ *http.Request) {
	type entry struct {
		Type      string  `json:"type"`
		LossCoeff float64 `json:"loss_coeff"`
	}
	var out []entry
	for _, t := range hydraulics.FittingTypes() {
		k, err := hydraulics.Fitting{Type: t}.K()
		if err != nil {
			continue
		}
		out = append(out, entry{Type: string(t), LossCoeff: k})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *handlersImpl) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": constants.Version,
	})
}

func (h *handlersImpl) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Errorf("error encoding response: %v", err)
	}
}

func (h *handlersImpl) writeError(w http.ResponseWriter, status int, requestID, msg string) {
	h.logger.Warnw("analysis request rejected", "request_id", requestID, "status", status, "error", msg)
	h.writeJSON(w, status, errorResponse{RequestID: requestID, Error: msg})
}

func isInputError(err error) bool {
	return errors.Is(err, hydraulics.ErrInvalidGeometry) ||
		errors.Is(err, hydraulics.ErrUnknownMaterial) ||
		errors.Is(err, hydraulics.ErrUnknownFitting) ||
		errors.Is(err, hydraulics.ErrUnsortedPumpCurve)
}
