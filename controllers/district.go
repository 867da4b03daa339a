package controllers

import (
	"net/http"

	"school-stats/models"
	"school-stats/stats"
	"school-stats/store"
	"school-stats/utils"
)

type DistrictController struct{}

// GetDistricts lists districts by average points, best first.
func (dc DistrictController) GetDistricts(table *store.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rollup := stats.DistrictRollup(table)

		districts := make([]models.District, 0, len(rollup))
		for _, d := range rollup {
			districts = append(districts, models.District{
				Name:          d.Name,
				AvgPoints:     d.AvgPoints,
				SchoolCount:   d.SchoolCount,
				TotalStudents: d.TotalStudents,
			})
		}
		utils.ResponseJSON(w, districts)
	}
}

func (dc DistrictController) GetDistrictComparison(table *store.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rollup := stats.DistrictRollup(table)

		comparison := make([]models.DistrictComparison, 0, len(rollup))
		for _, d := range rollup {
			comparison = append(comparison, models.DistrictComparison{
				District:      d.Name,
				AvgPoints:     d.AvgPoints,
				TotalStudents: d.TotalStudents,
				TotalVukova:   d.TotalVukova,
			})
		}
		utils.ResponseJSON(w, comparison)
	}
}
