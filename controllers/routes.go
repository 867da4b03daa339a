package controllers

import (
	"github.com/gorilla/mux"

	"school-stats/middleware"
	"school-stats/store"
)

type RouterOptions struct {
	StrictParams bool
	PageLimit    int
	TopLimit     int

	// Metrics, when set, instruments every route and serves /metrics.
	Metrics *middleware.Metrics
}

// NewRouter registers the read-only API over table.
func NewRouter(table *store.Table, opts RouterOptions) *mux.Router {
	statsController := StatsController{}
	districtController := DistrictController{}
	schoolController := SchoolController{StrictParams: opts.StrictParams, PageLimit: opts.PageLimit}
	analysisController := AnalysisController{StrictParams: opts.StrictParams, TopLimit: opts.TopLimit}
	healthController := HealthController{}

	router := mux.NewRouter()
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware)
		router.Handle("/metrics", opts.Metrics.Handler()).Methods("GET")
	}

	router.HandleFunc("/api/stats/overview", statsController.GetOverview(table)).Methods("GET")

	router.HandleFunc("/api/districts", districtController.GetDistricts(table)).Methods("GET")
	router.HandleFunc("/api/analysis/district-comparison", districtController.GetDistrictComparison(table)).Methods("GET")

	router.HandleFunc("/api/schools", schoolController.GetSchools(table)).Methods("GET")
	router.HandleFunc("/api/schools/{school_id:[0-9]+}", schoolController.GetSchoolDetail(table)).Methods("GET")

	router.HandleFunc("/api/analysis/top-schools", analysisController.GetTopSchools(table)).Methods("GET")

	router.HandleFunc("/healthz", healthController.GetHealth(table)).Methods("GET")

	return router
}
