package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"school-stats/models"
	"school-stats/query"
	"school-stats/stats"
	"school-stats/store"
	"school-stats/utils"
)

type SchoolController struct {
	StrictParams bool
	PageLimit    int
}

func (sc SchoolController) GetSchools(table *store.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := utils.NewParamReader(r, sc.StrictParams)

		filters := query.Filters{
			SchoolName:   params.String("school_name"),
			District:     params.String("district"),
			Municipality: params.String("municipality"),
			MinPoints:    params.Float("min_points"),
			MaxPoints:    params.Float("max_points"),
		}
		page := query.Page{
			Offset: params.Int("offset", 0),
			Limit:  params.Int("limit", sc.pageLimit()),
		}
		sort := query.ParseSort(params.StringOr("sort_by", "total_points"), params.StringOr("sort_order", "desc"))

		if err := params.Err(); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}

		result := query.Run(table, filters, sort, page)

		list := models.SchoolList{
			Schools:    make([]models.SchoolListItem, 0, len(result.Rows)),
			TotalCount: result.TotalCount,
			HasMore:    result.HasMore,
		}
		for _, s := range result.Rows {
			list.Schools = append(list.Schools, listItem(s))
		}
		utils.ResponseJSON(w, list)
	}
}

func (sc SchoolController) GetSchoolDetail(table *store.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["school_id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid school id"})
			return
		}

		school, err := table.Get(id)
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "School not found"})
			return
		}
		if err != nil {
			log.WithError(err).WithField("school_id", id).Error("failed to get school")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get school"})
			return
		}

		utils.ResponseJSON(w, models.SchoolDetail{
			ID:               school.ID,
			Name:             school.SchoolName,
			District:         school.DistrictName,
			Municipality:     school.MunicipalityName,
			TotalPoints:      round2(school.TotalPoints),
			Percentile:       stats.PercentileRank(table, school.TotalPoints),
			StudentsCount:    school.StudentsCount,
			FinishedStudents: school.FinishedStudents,
			VukovaDiploma:    school.VukovaDiplomaCount,
			VukovaPercentage: stats.VukovaPercentage(school),
			Grades: models.Grades{
				Grade6:   round2Ptr(school.Grade6Avg),
				Grade7:   round2Ptr(school.Grade7Avg),
				Grade8:   round2Ptr(school.Grade8Avg),
				TotalAvg: round2Ptr(school.TotalGradeAvg),
			},
			TestPointsAvg: round2Ptr(school.TestPointsAvg),
			Contact: models.Contact{
				Address: school.Address,
				Website: school.Website,
				Email:   school.Email,
			},
		})
	}
}

func (sc SchoolController) pageLimit() int {
	if sc.PageLimit > 0 {
		return sc.PageLimit
	}
	return query.DefaultLimit
}
