package models

// RawEntry is one entry of the source dataset. Pointer fields tell a
// missing value apart from zero.
type RawEntry struct {
	DistrictName     *string        `json:"district_name" validate:"required"`
	MunicipalityName *string        `json:"municipality_name" validate:"required"`
	SchoolName       *string        `json:"school_name" validate:"required"`
	Statistics       *RawStatistics `json:"statistics" validate:"required"`
}

// RawStatistics is the nested statistics block of a RawEntry.
type RawStatistics struct {
	ID                            *int     `json:"id" validate:"required"`
	EighthGradeStudentsCount      *int     `json:"eighthGradeStudentsCount" validate:"required,gte=0"`
	FinishedSchoolStudentsCount   *int     `json:"finishedSchoolStudentsCount" validate:"required,gte=0"`
	HasVukovaDiplomaStudentsCount *int     `json:"hasVukovaDiplomaStudentsCount" validate:"required,gte=0"`
	TotalPoints                   *float64 `json:"totalPoints" validate:"required"`
	SixthGradeAverage             *float64 `json:"sixthGradeAverage"`
	SeventhGradeAverage           *float64 `json:"seventhGradeAverage"`
	EighthGradeAverage            *float64 `json:"eighthGradeAverage"`
	TotalAverageGrade             *float64 `json:"totalAverageGrade"`
	TotalTestPointsAverage        *float64 `json:"totalTestPointsAverage"`
	Address                       *string  `json:"address"`
	Website                       *string  `json:"website"`
	Email                         *string  `json:"email"`
}
