package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/services/dataset"
	"github.com/UnknownOlympus/hestia/internal/services/staff"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type DatasetService interface {
	Generate(ctx context.Context, counts dataset.Counts) (dataset.Result, error)
	Clear(ctx context.Context) error
}

type StaffService interface {
	ListEmployees(ctx context.Context, query staff.EmployeeQuery) ([]models.Employee, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// API is the public HTTP surface. Every failure is answered with 500 and a fixed message.
type API struct {
	log     *slog.Logger
	dataset DatasetService
	staff   StaffService
	metrics *metrics.Metrics
}

func NewAPI(log *slog.Logger, dataset DatasetService, staff StaffService, metrics *metrics.Metrics) *API {
	return &API{
		log:     log,
		dataset: dataset,
		staff:   staff,
		metrics: metrics,
	}
}

// Routes builds the router with request ids, request logging, metrics and panic recovery.
func (a *API) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(exposeRequestID)
	router.Use(a.instrument)
	router.Use(a.recoverer)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "Route not found"})
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		a.writeJSON(w, r, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
	})

	router.Get("/", a.handleRoot)
	router.Post("/generateData", a.handleGenerateData)
	router.Get("/employees", a.handleEmployees)
	router.Get("/departments", a.handleDepartments)
	router.Delete("/clearData", a.handleClearData)
	router.Get("/stats", a.handleStats)

	return router
}

func (a *API) handleRoot(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusOK, rootResponse{
		Message: "Employee Management API is running!",
		Endpoints: endpointDirectory{
			GenerateData: "POST /generateData",
			Employees:    "GET /employees",
			Departments:  "GET /departments",
			ClearData:    "DELETE /clearData",
			Stats:        "GET /stats",
		},
	})
}

func (a *API) handleGenerateData(w http.ResponseWriter, r *http.Request) {
	const failure = "Failed to generate data"

	counts, err := decodeGenerateData(r.Body)
	if err != nil {
		a.fail(w, r, failure, err)
		return
	}

	result, err := a.dataset.Generate(r.Context(), counts)
	if err != nil {
		a.fail(w, r, failure, err)
		return
	}

	a.writeJSON(w, r, http.StatusOK, generateDataResponse{
		Message: "Data generated successfully!",
		Data:    result,
	})
}

func (a *API) handleEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := a.staff.ListEmployees(r.Context(), parseEmployeeQuery(r.URL.Query()))
	if err != nil {
		a.fail(w, r, "Failed to fetch employees", err)
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	a.writeJSON(w, r, http.StatusOK, employeesResponse{Count: len(employees), Employees: employees})
}

func (a *API) handleDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := a.staff.ListDepartments(r.Context())
	if err != nil {
		a.fail(w, r, "Failed to fetch departments", err)
		return
	}
	if departments == nil {
		departments = []models.Department{}
	}

	a.writeJSON(w, r, http.StatusOK, departmentsResponse{Count: len(departments), Departments: departments})
}

func (a *API) handleClearData(w http.ResponseWriter, r *http.Request) {
	if err := a.dataset.Clear(r.Context()); err != nil {
		a.fail(w, r, "Failed to clear data", err)
		return
	}

	a.writeJSON(w, r, http.StatusOK, messageResponse{Message: "All data cleared successfully!"})
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.staff.Stats(r.Context())
	if err != nil {
		a.fail(w, r, "Failed to fetch statistics", err)
		return
	}

	a.writeJSON(w, r, http.StatusOK, stats)
}

// fail logs the cause and answers 500 with message only.
func (a *API) fail(w http.ResponseWriter, r *http.Request, message string, err error) {
	a.log.ErrorContext(r.Context(), message,
		sl.Err(err),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	a.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: message})
}

func (a *API) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.log.WarnContext(r.Context(), "Failed to write response", sl.Err(err))
	}
}
