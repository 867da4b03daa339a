package query

import (
	"cmp"
	"slices"
	"strings"

	"school-stats/models"
	"school-stats/store"
)

// SortKey orders by one field. Field names are the column names of the
// listing: id, district_name, municipality_name, school_name,
// students_count, finished_students, vukova_diploma, total_points,
// grade_6_avg, grade_7_avg, grade_8_avg, total_grade_avg, test_points_avg,
// address, website, email.
type SortKey struct {
	Field string
	Desc  bool
}

// DefaultSort is used when no recognized sort key is given.
var DefaultSort = []SortKey{{Field: "total_points", Desc: true}}

var numericFields = map[string]func(models.School) (float64, bool){
	"id":                func(s models.School) (float64, bool) { return float64(s.ID), true },
	"students_count":    func(s models.School) (float64, bool) { return float64(s.StudentsCount), true },
	"finished_students": func(s models.School) (float64, bool) { return float64(s.FinishedStudents), true },
	"vukova_diploma":    func(s models.School) (float64, bool) { return float64(s.VukovaDiplomaCount), true },
	"total_points":      func(s models.School) (float64, bool) { return s.TotalPoints, true },
	"grade_6_avg":       func(s models.School) (float64, bool) { return optional(s.Grade6Avg) },
	"grade_7_avg":       func(s models.School) (float64, bool) { return optional(s.Grade7Avg) },
	"grade_8_avg":       func(s models.School) (float64, bool) { return optional(s.Grade8Avg) },
	"total_grade_avg":   func(s models.School) (float64, bool) { return optional(s.TotalGradeAvg) },
	"test_points_avg":   func(s models.School) (float64, bool) { return optional(s.TestPointsAvg) },
}

var textFields = map[string]func(models.School) (string, bool){
	"district_name":     func(s models.School) (string, bool) { return s.DistrictName, true },
	"municipality_name": func(s models.School) (string, bool) { return s.MunicipalityName, true },
	"school_name":       func(s models.School) (string, bool) { return s.SchoolName, true },
	"address":           func(s models.School) (string, bool) { return optional(s.Address) },
	"website":           func(s models.School) (string, bool) { return optional(s.Website) },
	"email":             func(s models.School) (string, bool) { return optional(s.Email) },
}

func optional[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}

// IsSortField reports whether field can be sorted on.
func IsSortField(field string) bool {
	_, numeric := numericFields[field]
	_, text := textFields[field]
	return numeric || text
}

// ParseSort turns the comma separated sort_by and sort_order parameters
// into sort keys. An order of "asc" (any case) sorts ascending, anything
// else descending; keys without an order of their own take the last one
// given. An empty sortBy sorts by total_points.
func ParseSort(sortBy, sortOrder string) []SortKey {
	if strings.TrimSpace(sortBy) == "" {
		sortBy = "total_points"
	}

	var orders []string
	for _, o := range strings.Split(sortOrder, ",") {
		orders = append(orders, strings.TrimSpace(o))
	}

	var keys []SortKey
	for i, field := range strings.Split(sortBy, ",") {
		order := orders[len(orders)-1]
		if i < len(orders) {
			order = orders[i]
		}
		keys = append(keys, SortKey{
			Field: strings.TrimSpace(field),
			Desc:  !strings.EqualFold(order, "asc"),
		})
	}
	return keys
}

// resolve drops unrecognized keys and falls back to DefaultSort.
func resolve(keys []SortKey) []SortKey {
	valid := make([]SortKey, 0, len(keys))
	for _, k := range keys {
		if IsSortField(k.Field) {
			valid = append(valid, k)
		}
	}
	if len(valid) == 0 {
		return DefaultSort
	}
	return valid
}

// Sort orders row positions by keys. The sort is stable, so ties keep the
// incoming order. Missing values sort last in either direction.
func Sort(t *store.Table, positions []int, keys []SortKey) {
	keys = resolve(keys)

	slices.SortStableFunc(positions, func(a, b int) int {
		sa, sb := t.At(a), t.At(b)
		for _, k := range keys {
			if c := compareField(sa, sb, k); c != 0 {
				return c
			}
		}
		return 0
	})
}

func compareField(a, b models.School, k SortKey) int {
	if get, ok := numericFields[k.Field]; ok {
		return compareValues(get, a, b, k.Desc, cmp.Compare[float64])
	}
	return compareValues(textFields[k.Field], a, b, k.Desc, strings.Compare)
}

// compareValues puts missing values last regardless of direction.
func compareValues[T any](get func(models.School) (T, bool), a, b models.School, desc bool, compare func(T, T) int) int {
	av, aok := get(a)
	bv, bok := get(b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}

	if desc {
		return compare(bv, av)
	}
	return compare(av, bv)
}
