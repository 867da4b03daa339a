package controllers

import (
	"school-stats/models"
	"school-stats/stats"
)

func round2(x float64) float64 { return stats.Round(x, 2) }

func round2Ptr(x *float64) *float64 {
	if x == nil {
		return nil
	}
	r := round2(*x)
	return &r
}

func listItem(s models.School) models.SchoolListItem {
	return models.SchoolListItem{
		ID:            s.ID,
		Name:          s.SchoolName,
		District:      s.DistrictName,
		Municipality:  s.MunicipalityName,
		TotalPoints:   round2(s.TotalPoints),
		StudentsCount: s.StudentsCount,
		VukovaDiploma: s.VukovaDiplomaCount,
		Grade6Avg:     round2Ptr(s.Grade6Avg),
		Grade7Avg:     round2Ptr(s.Grade7Avg),
		Grade8Avg:     round2Ptr(s.Grade8Avg),
		Address:       s.Address,
		Website:       s.Website,
		Email:         s.Email,
	}
}

func topSchool(s models.School) models.TopSchool {
	return models.TopSchool{
		ID:            s.ID,
		Name:          s.SchoolName,
		Municipality:  s.MunicipalityName,
		TotalPoints:   round2(s.TotalPoints),
		StudentsCount: s.StudentsCount,
	}
}
