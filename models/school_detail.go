package models

// SchoolDetail is the full view of one school.
type SchoolDetail struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	District         string   `json:"district"`
	Municipality     string   `json:"municipality"`
	TotalPoints      float64  `json:"total_points"`
	Percentile       float64  `json:"percentile"`
	StudentsCount    int      `json:"students_count"`
	FinishedStudents int      `json:"finished_students"`
	VukovaDiploma    int      `json:"vukova_diploma"`
	VukovaPercentage float64  `json:"vukova_percentage"`
	Grades           Grades   `json:"grades"`
	TestPointsAvg    *float64 `json:"test_points_avg"`
	Contact          Contact  `json:"contact"`
}

type Grades struct {
	Grade6   *float64 `json:"grade_6"`
	Grade7   *float64 `json:"grade_7"`
	Grade8   *float64 `json:"grade_8"`
	TotalAvg *float64 `json:"total_avg"`
}

type Contact struct {
	Address *string `json:"address"`
	Website *string `json:"website"`
	Email   *string `json:"email"`
}
