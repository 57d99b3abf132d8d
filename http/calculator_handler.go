package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"finance-guide/domain"
	"finance-guide/service"
)

type CalculatorHandler struct {
	service     *service.CalculatorService
	calculators map[string]http.HandlerFunc
}

func NewCalculatorHandler(svc *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		service: svc,
		calculators: map[string]http.HandlerFunc{
			domain.CalcSIP:              calculate(svc.SIP),
			domain.CalcEMI:              calculate(svc.EMI),
			domain.CalcCAGR:             calculate(svc.CAGR),
			domain.CalcCompoundInterest: calculate(svc.CompoundInterest),
			domain.CalcFD:               calculate(svc.FD),
			domain.CalcPPF:              calculate(svc.PPF),
			domain.CalcRetirement:       calculate(svc.Retirement),
			domain.CalcLumpsum:          calculate(svc.Lumpsum),
		},
	}
}

// Calculate serves POST /api/calculators/{kind}.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	kind := r.PathValue("kind")
	calc, ok := h.calculators[kind]
	if !ok {
		writeServiceError(w, fmt.Errorf("%w: %q", service.ErrUnknownCalc, kind))
		return
	}
	calc(w, r)
}

// Recent serves GET /api/calculations/recent?limit=N.
func (h *CalculatorHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid_input", "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, h.service.Recent(limit))
}

func calculate[I, R any](fn func(context.Context, I) (R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in I
		if !decodeJSON(w, r, &in) {
			return
		}

		result, err := fn(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
