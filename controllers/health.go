package controllers

import (
	"net/http"

	"school-stats/models"
	"school-stats/store"
	"school-stats/utils"
)

type HealthController struct{}

func (hc HealthController) GetHealth(table *store.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, models.Health{Status: "ok", Schools: table.Len()})
	}
}
