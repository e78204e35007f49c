package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"schoolstat/adapters/report"
	"schoolstat/domain/battery"
	"schoolstat/domain/core"
)

const defaultListLimit = 20

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error("writing response: %v", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, errorResponse{Error: msg})
}

func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// runRequest optionally overrides parts of the configured plan per request
type runRequest struct {
	HypothesizedMean *float64 `json:"hypothesized_mean,omitempty"`
	Alpha            *float64 `json:"alpha,omitempty"`
	EqualVariance    *bool    `json:"equal_variance,omitempty"`
}

func (a *App) planFor(r *http.Request) (battery.Plan, error) {
	plan := a.plan
	if r.Body == nil || r.ContentLength == 0 {
		return plan, nil
	}
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return plan, err
	}
	if req.HypothesizedMean != nil {
		plan.HypothesizedMean = *req.HypothesizedMean
	}
	if req.Alpha != nil {
		plan.Alpha = *req.Alpha
	}
	if req.EqualVariance != nil {
		plan.EqualVariance = *req.EqualVariance
	}
	return plan, nil
}

func (a *App) handleRunBattery(w http.ResponseWriter, r *http.Request) {
	plan, err := a.planFor(r)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	tbl, err := a.reader.Read(r.Context())
	if err != nil {
		a.log.Error("reading dataset: %v", err)
		a.writeError(w, http.StatusUnprocessableEntity, "failed to read dataset: "+err.Error())
		return
	}

	rep, err := a.battery.RunBattery(r.Context(), tbl, a.reader.Source(), plan)
	if err != nil {
		a.log.Error("running battery: %v", err)
		a.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	a.writeJSON(w, http.StatusOK, rep)
}

func (a *App) handleListReports(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		a.writeError(w, http.StatusNotFound, "report storage not configured")
		return
	}

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			a.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	reports, err := a.store.ListReports(r.Context(), limit)
	if err != nil {
		a.log.Error("listing reports: %v", err)
		a.writeError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}
	if reports == nil {
		reports = []*battery.Report{}
	}
	a.writeJSON(w, http.StatusOK, reports)
}

func (a *App) getReport(w http.ResponseWriter, r *http.Request) *battery.Report {
	if a.store == nil {
		a.writeError(w, http.StatusNotFound, "report storage not configured")
		return nil
	}
	id := core.ReportID(chi.URLParam(r, "id"))
	rep, err := a.store.GetReport(r.Context(), id)
	if err != nil {
		a.writeError(w, http.StatusNotFound, "report not found")
		return nil
	}
	return rep
}

func (a *App) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if rep := a.getReport(w, r); rep != nil {
		a.writeJSON(w, http.StatusOK, rep)
	}
}

func (a *App) handleGetReportHTML(w http.ResponseWriter, r *http.Request) {
	rep := a.getReport(w, r)
	if rep == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report.RenderHTML(rep)); err != nil {
		a.log.Error("writing HTML response: %v", err)
	}
}
