// Package ui exposes the battery over HTTP.
package ui

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"schoolstat/app"
	"schoolstat/domain/battery"
	"schoolstat/internal"
	"schoolstat/ports"
)

// App wires the HTTP handlers to their collaborators
type App struct {
	battery *app.BatteryService
	reader  ports.TableReaderPort
	store   ports.ResultStorePort
	plan    battery.Plan
	log     *internal.Logger
}

// NewApp creates the HTTP application. The store may be nil; report lookup
// endpoints then return 404.
func NewApp(batterySvc *app.BatteryService, reader ports.TableReaderPort, store ports.ResultStorePort, plan battery.Plan, log *internal.Logger) *App {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &App{
		battery: batterySvc,
		reader:  reader,
		store:   store,
		plan:    plan,
		log:     log,
	}
}

// Router builds the route table
func (a *App) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", a.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/battery/run", a.handleRunBattery)
		r.Get("/reports", a.handleListReports)
		r.Get("/reports/{id}", a.handleGetReport)
		r.Get("/reports/{id}/html", a.handleGetReportHTML)
	})
	return r
}

// Serve runs the HTTP server until it fails
func (a *App) Serve(port string) error {
	a.log.Info("listening on :%s", port)
	return http.ListenAndServe(":"+port, a.Router())
}
