// Package server exposes the promotion planner over HTTP for dashboard use.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jackmart/promo-planner/internal/calendar"
	"github.com/jackmart/promo-planner/internal/config"
	"github.com/jackmart/promo-planner/internal/planner"
	"github.com/jackmart/promo-planner/pkg/constants"
	"github.com/jackmart/promo-planner/pkg/datetime"
)

type handler struct {
	logger  *zap.Logger
	conf    *config.Configuration
	planner *planner.Planner
	version string
}

// NewHandler constructs the HTTP handler that serves the plan API.
func NewHandler(logger *zap.Logger, conf *config.Configuration, p *planner.Planner, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		conf = config.Default()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, conf: conf, planner: p, version: trimmedVersion}

	mux := http.NewServeMux()

	// Plan computation endpoint
	mux.HandleFunc("/api/plan", h.handlePlan)

	// Effective configuration as YAML
	mux.HandleFunc("/api/config", h.handleConfigExport)

	// Version endpoint for dashboard metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type planResponse struct {
	Date       string                  `json:"date"`
	Target     float64                 `json:"target"`
	Summaries  []planner.Summary       `json:"summaries"`
	Promotions []planner.Detail        `json:"promotions"`
	Categories []planner.CategoryStats `json:"categoryPerformance"`
	Chain      planner.ChainSummary    `json:"chain"`
	Duration   string                  `json:"duration"`
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	day, err := planDate(r.URL.Query().Get("date"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid date: %v", err))
		return
	}

	target := h.conf.Planner.TargetPerStore
	if raw := r.URL.Query().Get("target"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid target: %q", raw))
			return
		}
		target = parsed
	}

	plan := h.planner.BuildPlan(day, target)

	h.logger.Info("served plan",
		zap.String("op", "server.handlePlan"),
		zap.String("date", day.Format(datetime.DateTimeLayout)),
		zap.Float64("target", target),
		zap.Int("promotions", len(plan.Details)),
	)

	h.respondJSON(w, http.StatusOK, planResponse{
		Date:       day.Format(datetime.DateTimeLayout),
		Target:     target,
		Summaries:  plan.Summaries,
		Promotions: plan.Details,
		Categories: plan.CategoryPerformance(),
		Chain:      plan.Chain(),
		Duration:   time.Since(start).String(),
	})
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	data, err := yaml.Marshal(h.conf)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to serialize config: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.respondJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, map[string]string{"error": msg})
}

// planDate resolves the requested date; empty means the best boosted day
// within the default horizon.
func planDate(raw string) (time.Time, error) {
	if raw == "" {
		return calendar.BestUpcomingDay(time.Now(), constants.DefaultDateHorizonDays), nil
	}
	return datetime.ParseDay(raw)
}
