package controllers

import (
	"net/http"

	"school-stats/stats"
	"school-stats/store"
	"school-stats/utils"
)

type StatsController struct{}

func (sc StatsController) GetOverview(table *store.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, stats.Overview(table))
	}
}
