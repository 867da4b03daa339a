package models

// School is one active school of the dataset. Values are shared by the
// loaded table and must be treated as read-only.
type School struct {
	ID               int    `json:"id"`
	DistrictName     string `json:"district_name"`
	MunicipalityName string `json:"municipality_name"`
	SchoolName       string `json:"school_name"`

	StudentsCount      int     `json:"students_count"`    // eighth graders
	FinishedStudents   int     `json:"finished_students"` // finished school
	VukovaDiplomaCount int     `json:"vukova_diploma"`
	TotalPoints        float64 `json:"total_points"`

	// Averages are nil when the source has no value.
	Grade6Avg     *float64 `json:"grade_6_avg"`
	Grade7Avg     *float64 `json:"grade_7_avg"`
	Grade8Avg     *float64 `json:"grade_8_avg"`
	TotalGradeAvg *float64 `json:"total_grade_avg"`
	TestPointsAvg *float64 `json:"test_points_avg"`

	// Contact fields are nil when the source has no value.
	Address *string `json:"address"`
	Website *string `json:"website"`
	Email   *string `json:"email"`
}
