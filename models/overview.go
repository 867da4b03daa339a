package models

type OverviewStats struct {
	TotalSchools  int     `json:"total_schools"`
	TotalStudents int     `json:"total_students"`
	AvgPoints     float64 `json:"avg_points"`
	MedianPoints  float64 `json:"median_points"`
	StdPoints     float64 `json:"std_points"`
}
