package controllers

import (
	"net/http"

	"school-stats/models"
	"school-stats/stats"
	"school-stats/store"
	"school-stats/utils"
)

type AnalysisController struct {
	StrictParams bool
	TopLimit     int
}

// GetTopSchools lists the best schools by total points. A limit below one
// yields an empty list.
func (ac AnalysisController) GetTopSchools(table *store.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := utils.NewParamReader(r, ac.StrictParams)
		limit := params.Int("limit", ac.topLimit())
		if err := params.Err(); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}

		top := stats.TopN(table, limit)
		schools := make([]models.TopSchool, 0, len(top))
		for _, s := range top {
			schools = append(schools, topSchool(s))
		}
		utils.ResponseJSON(w, schools)
	}
}

func (ac AnalysisController) topLimit() int {
	if ac.TopLimit > 0 {
		return ac.TopLimit
	}
	return stats.DefaultTopN
}
