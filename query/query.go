// Package query filters, sorts and paginates the school table.
package query

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"school-stats/models"
	"school-stats/store"
	"school-stats/translit"
)

// DefaultLimit is the page size used when the caller does not choose one.
const DefaultLimit = 50

// Filters restrict the schools of a query. Zero values do not restrict;
// all set filters must match.
type Filters struct {
	// SchoolName matches a substring of the school name in any script and
	// case. Latin input is also tried in every Cyrillic reading.
	SchoolName string

	// District and Municipality match the exact, case-sensitive name.
	District     string
	Municipality string

	// MinPoints and MaxPoints are inclusive bounds on total points.
	MinPoints *float64
	MaxPoints *float64
}

// Page selects a window of the sorted result. A negative Offset or a Limit
// below one selects nothing.
type Page struct {
	Offset int
	Limit  int
}

type Result struct {
	Rows       []models.School
	TotalCount int // matching schools before pagination
	HasMore    bool
}

// Run answers a listing query against t. Unrecognized sort fields are
// ignored; with none left, schools are ordered by total points descending.
func Run(t *store.Table, f Filters, sort []SortKey, p Page) Result {
	positions := Filter(t, f)
	Sort(t, positions, sort)

	return paginate(t, positions, p)
}

// Filter returns the row positions of the schools matching f, in load
// order.
func Filter(t *store.Table, f Filters) []int {
	candidates := t.Candidates(norm.NFC.String(f.District), norm.NFC.String(f.Municipality))
	variants := translit.SearchVariants(f.SchoolName)

	positions := make([]int, 0, candidates.GetCardinality())
	it := candidates.Iterator()
	for it.HasNext() {
		pos := int(it.Next())
		if matchPoints(t.At(pos).TotalPoints, f) && matchName(t.SearchName(pos), variants) {
			positions = append(positions, pos)
		}
	}
	return positions
}

func matchPoints(points float64, f Filters) bool {
	if f.MinPoints != nil && points < *f.MinPoints {
		return false
	}
	if f.MaxPoints != nil && points > *f.MaxPoints {
		return false
	}
	return true
}

func matchName(name string, variants []string) bool {
	if len(variants) == 0 {
		return true
	}
	for _, v := range variants {
		if strings.Contains(name, v) {
			return true
		}
	}
	return false
}

func paginate(t *store.Table, positions []int, p Page) Result {
	total := len(positions)
	res := Result{
		Rows:       []models.School{},
		TotalCount: total,
		HasMore:    addSaturating(p.Offset, p.Limit) < total,
	}
	if p.Offset < 0 || p.Limit <= 0 || p.Offset >= total {
		return res
	}

	end := total
	if p.Limit < total-p.Offset {
		end = p.Offset + p.Limit
	}
	res.Rows = make([]models.School, 0, end-p.Offset)
	for _, pos := range positions[p.Offset:end] {
		res.Rows = append(res.Rows, t.At(pos))
	}
	return res
}

func addSaturating(a, b int) int {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return math.MaxInt
	case b < 0 && sum > a:
		return math.MinInt
	}
	return sum
}
