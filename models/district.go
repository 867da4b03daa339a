package models

// DistrictSummary aggregates the schools of one district.
type DistrictSummary struct {
	Name          string
	AvgPoints     float64
	SchoolCount   int
	TotalStudents int
	TotalVukova   int
}

// District is an entry of the district list.
type District struct {
	Name          string  `json:"name"`
	AvgPoints     float64 `json:"avg_points"`
	SchoolCount   int     `json:"school_count"`
	TotalStudents int     `json:"total_students"`
}

// DistrictComparison is an entry of the district comparison chart data.
type DistrictComparison struct {
	District      string  `json:"district"`
	AvgPoints     float64 `json:"avg_points"`
	TotalStudents int     `json:"total_students"`
	TotalVukova   int     `json:"total_vukova"`
}
