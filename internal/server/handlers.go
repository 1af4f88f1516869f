package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rgehrsitz/salairenet/internal/breakeven"
	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/config"
	"github.com/rgehrsitz/salairenet/internal/domain"
	"github.com/rgehrsitz/salairenet/internal/output"
	"github.com/shopspring/decimal"
)

const (
	defaultCurvePoints = 200
	maxCurvePoints     = 2000
)

// Amount accepts either a JSON number or a string such as "10 000,50 MAD"
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

// Decimal parses the amount with the same rules as the calculator form
func (a Amount) Decimal() (decimal.Decimal, error) {
	return calculation.ParseGross(string(a))
}

type SalaryRequest struct {
	Name        string                 `json:"name"`
	GrossSalary Amount                 `json:"grossSalary"`
	Options     domain.AdvancedOptions `json:"options"`
	Reference   domain.SalaryBasis     `json:"reference"`
}

type ReverseRequest struct {
	TargetNet     Amount                 `json:"targetNet"`
	Options       domain.AdvancedOptions `json:"options"`
	Tolerance     decimal.Decimal        `json:"tolerance"`
	MaxIterations int                    `json:"maxIterations"`
}

type PercentileResponse struct {
	Net        decimal.Decimal            `json:"net"`
	Percentile float64                    `json:"percentile"`
	Summary    string                     `json:"summary"`
	Comparison domain.ReferenceComparison `json:"comparison"`
	Gross      *GrossPosition             `json:"gross,omitempty"`
}

type GrossPosition struct {
	Gross         decimal.Decimal            `json:"gross"`
	PositionLabel string                     `json:"positionLabel"`
	Comparison    domain.ReferenceComparison `json:"comparison"`
	Chart         []domain.ChartPoint        `json:"chart"`
}

type BracketsResponse struct {
	FiscalYear       domain.FiscalYear `json:"fiscalYear"`
	ExemptionCeiling decimal.Decimal   `json:"exemptionCeiling"`
	SupportedYears   []int             `json:"supportedYears"`
}

type CurveResponse struct {
	Points []domain.CurvePoint `json:"points"`
	User   *domain.CurvePoint  `json:"user,omitempty"`
}

var reportContentTypes = map[string]string{
	"pdf":          "application/pdf",
	"html":         "text/html; charset=utf-8",
	"csv":          "text/csv; charset=utf-8",
	"json":         "application/json",
	"console":      "text/plain; charset=utf-8",
	"console-lite": "text/plain; charset=utf-8",
}

// Handler serves the salary API on top of one engine
type Handler struct {
	Engine *calculation.SalaryEngine
	Solver *breakeven.Solver
}

func NewHandler(engine *calculation.SalaryEngine) *Handler {
	return &Handler{Engine: engine, Solver: breakeven.NewDefaultSolver(engine)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/salary", h.salary)
	r.Post("/salary/report", h.salaryReport)
	r.Get("/percentile", h.percentile)
	r.Get("/brackets", h.brackets)
	r.Post("/reverse", h.reverse)
	r.Get("/curve", h.curve)
}

func (h *Handler) salary(w http.ResponseWriter, r *http.Request) {
	report, ok := h.computeReport(w, r)
	if !ok {
		return
	}
	Success(w, report, GetRequestID(r.Context()))
}

func (h *Handler) salaryReport(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "pdf"
	}
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		Fail(w, http.StatusBadRequest, CodeUnsupportedFormat,
			fmt.Sprintf("unknown format %q (available: %v)", format, output.AvailableFormatterNames()), reqID)
		return
	}

	report, ok := h.computeReport(w, r)
	if !ok {
		return
	}
	body, err := formatter.Format(report)
	if err != nil {
		Fail(w, http.StatusInternalServerError, CodeInternal, "failed to render report", reqID)
		return
	}

	contentType, ok := reportContentTypes[formatter.Name()]
	if !ok {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// computeReport decodes a SalaryRequest and computes it; on failure the error
// response has already been written
func (h *Handler) computeReport(w http.ResponseWriter, r *http.Request) (*output.Report, bool) {
	reqID := GetRequestID(r.Context())

	var req SalaryRequest
	if !decodeBody(w, r, &req) {
		return nil, false
	}
	gross, err := req.GrossSalary.Decimal()
	if err != nil {
		Fail(w, http.StatusBadRequest, CodeInvalidInput, err.Error(), reqID)
		return nil, false
	}
	if err := config.ValidateOptions(req.Options); err != nil {
		Fail(w, http.StatusBadRequest, CodeInvalidInput, err.Error(), reqID)
		return nil, false
	}

	result, err := h.Engine.ComputeSalary(gross, req.Options)
	if err != nil {
		failCalculation(w, err, reqID)
		return nil, false
	}
	stats := h.Engine.Market.ReferenceFor(req.Reference)
	return output.NewSingleReport(h.Engine, req.Name, result, req.Options.YearsOfService, stats), true
}

func (h *Handler) percentile(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	query := r.URL.Query()

	net, err := calculation.ParseGross(query.Get("net"))
	if err != nil {
		Fail(w, http.StatusBadRequest, CodeInvalidInput, "net: "+err.Error(), reqID)
		return
	}
	market := h.Engine.Market
	percentile := market.PercentileOf(net)
	resp := PercentileResponse{
		Net:        net,
		Percentile: percentile,
		Summary:    calculation.PercentileSummary(percentile),
		Comparison: market.CompareToReference(net, market.Net),
	}

	if raw := query.Get("gross"); raw != "" {
		gross, err := calculation.ParseGross(raw)
		if err != nil {
			Fail(w, http.StatusBadRequest, CodeInvalidInput, "gross: "+err.Error(), reqID)
			return
		}
		resp.Gross = &GrossPosition{
			Gross:         gross,
			PositionLabel: market.GrossPercentileLabel(gross),
			Comparison:    market.CompareToReference(gross, market.Gross),
			Chart:         market.GrossPercentileChart(gross),
		}
	}
	Success(w, resp, reqID)
}

func (h *Handler) brackets(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())

	fy := h.Engine.FiscalYear
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			Fail(w, http.StatusBadRequest, CodeInvalidInput, "year must be an integer", reqID)
			return
		}
		fy, err = calculation.LookupFiscalYear(year)
		if err != nil {
			Fail(w, http.StatusBadRequest, CodeInvalidInput, err.Error(), reqID)
			return
		}
	}
	Success(w, BracketsResponse{
		FiscalYear:       fy,
		ExemptionCeiling: fy.ExemptionCeiling(),
		SupportedYears:   calculation.SupportedFiscalYears(),
	}, reqID)
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())

	var req ReverseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	target, err := calculation.ParseGross(string(req.TargetNet))
	if err != nil {
		Fail(w, http.StatusBadRequest, CodeInvalidInput, "targetNet: "+err.Error(), reqID)
		return
	}
	if err := config.ValidateOptions(req.Options); err != nil {
		Fail(w, http.StatusBadRequest, CodeInvalidInput, err.Error(), reqID)
		return
	}

	result, err := h.Solver.GrossForNet(r.Context(), breakeven.ReverseRequest{
		TargetNet:     target,
		Options:       req.Options,
		Tolerance:     req.Tolerance,
		MaxIterations: req.MaxIterations,
	})
	if err != nil {
		if errors.Is(err, calculation.ErrInvalidInput) {
			Fail(w, http.StatusBadRequest, CodeInvalidInput, err.Error(), reqID)
			return
		}
		Fail(w, http.StatusUnprocessableEntity, CodeReverseFailed, err.Error(), reqID)
		return
	}
	Success(w, result, reqID)
}

func (h *Handler) curve(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	query := r.URL.Query()

	points := defaultCurvePoints
	if raw := query.Get("points"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 2 || n > maxCurvePoints {
			Fail(w, http.StatusBadRequest, CodeInvalidInput,
				fmt.Sprintf("points must be an integer between 2 and %d", maxCurvePoints), reqID)
			return
		}
		points = n
	}

	resp := CurveResponse{Points: h.Engine.Market.DistributionCurve(points)}
	if raw := query.Get("net"); raw != "" {
		net, err := calculation.ParseGross(raw)
		if err != nil {
			Fail(w, http.StatusBadRequest, CodeInvalidInput, "net: "+err.Error(), reqID)
			return
		}
		user := h.Engine.Market.UserPointOnCurve(net)
		resp.User = &user
	}
	Success(w, resp, reqID)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	reqID := GetRequestID(r.Context())
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			Fail(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "request body too large", reqID)
			return false
		}
		Fail(w, http.StatusBadRequest, CodeInvalidPayload, "failed to read request body", reqID)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		Fail(w, http.StatusBadRequest, CodeInvalidPayload, "invalid JSON body", reqID)
		return false
	}
	return true
}

func failCalculation(w http.ResponseWriter, err error, reqID string) {
	if errors.Is(err, calculation.ErrInvalidInput) {
		Fail(w, http.StatusBadRequest, CodeInvalidInput, err.Error(), reqID)
		return
	}
	Fail(w, http.StatusInternalServerError, CodeInternal, "calculation failed", reqID)
}
