package models

// SchoolListItem is a row of the paginated school list.
type SchoolListItem struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	District      string   `json:"district"`
	Municipality  string   `json:"municipality"`
	TotalPoints   float64  `json:"total_points"`
	StudentsCount int      `json:"students_count"`
	VukovaDiploma int      `json:"vukova_diploma"`
	Grade6Avg     *float64 `json:"grade_6_avg"`
	Grade7Avg     *float64 `json:"grade_7_avg"`
	Grade8Avg     *float64 `json:"grade_8_avg"`
	Address       *string  `json:"address"`
	Website       *string  `json:"website"`
	Email         *string  `json:"email"`
}

type SchoolList struct {
	Schools    []SchoolListItem `json:"schools"`
	TotalCount int              `json:"total_count"`
	HasMore    bool             `json:"has_more"`
}

// TopSchool is an entry of the top schools analysis.
type TopSchool struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Municipality  string  `json:"municipality"`
	TotalPoints   float64 `json:"total_points"`
	StudentsCount int     `json:"students_count"`
}
