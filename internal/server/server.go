package server

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/beastwood12/nuskin-insurance-calc/internal/calculation"
	"github.com/beastwood12/nuskin-insurance-calc/internal/catalog"
	"github.com/beastwood12/nuskin-insurance-calc/internal/domain"
)

// Server hosts the comparison API for a front end. All state is the
// immutable catalog and the stateless engine; nothing is persisted.
type Server struct {
	Catalog *catalog.Catalog
	Engine  *calculation.CostEngine
	Log     *logrus.Logger
}

// New creates a server over a catalog. The engine logs through the same
// logrus logger.
func New(cat *catalog.Catalog, log *logrus.Logger) *Server {
	engine := calculation.NewCostEngine()
	engine.Logger = log
	return &Server{Catalog: cat, Engine: engine, Log: log}
}

// CompareRequest carries the raw calculator inputs. Amounts are normalized
// and the contribution clamped before the engine runs.
type CompareRequest struct {
	CoverageTier        string  `json:"coverage_tier"`
	ExpectedAnnualSpend float64 `json:"expected_annual_spend"`
	HSAContribution     float64 `json:"hsa_contribution"`
	DisplayMode         string  `json:"display_mode,omitempty"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Handler routes the two API endpoints.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		method := string(ctx.Method())
		s.Log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("request")

		switch {
		case path == "/api/plans" && method == fasthttp.MethodGet:
			s.handleListPlans(ctx)
		case path == "/api/compare" && method == fasthttp.MethodPost:
			s.handleCompare(ctx)
		default:
			s.writeError(ctx, fasthttp.StatusNotFound, "not found")
		}
	}
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.Log.WithField("addr", addr).Info("plan comparison API listening")
	if err := fasthttp.ListenAndServe(addr, s.Handler()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (s *Server) handleListPlans(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, struct {
		Plans []domain.Plan `json:"plans"`
	}{Plans: s.Catalog.List()})
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	var req CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	tier, err := domain.ParseCoverageTier(req.CoverageTier)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	mode, err := domain.ParseDisplayMode(req.DisplayMode)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	spend := calculation.NormalizeAmount(req.ExpectedAnnualSpend)
	contribution := calculation.ClampContribution(tier, calculation.NormalizeAmount(req.HSAContribution))

	comparison := s.Engine.ComparePlans(s.Catalog, tier, mode, spend, contribution)
	s.writeJSON(ctx, fasthttp.StatusOK, comparison)
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.Log.WithError(err).Error("encoding response failed")
		s.writeError(ctx, fasthttp.StatusInternalServerError, "encoding response failed")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	data, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}
