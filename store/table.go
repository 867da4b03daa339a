// Package store holds the school table: it loads the raw dataset, keeps the
// active schools and serves them read-only for the lifetime of the process.
package store

import (
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"school-stats/models"
	"school-stats/translit"
)

// Table is the immutable set of active schools in load order. It is built
// once by Build and is safe for concurrent use; no method modifies it.
//
// Rows are addressed by their position in load order. The district and
// municipality indexes map a name to the bitmap of its row positions.
type Table struct {
	rows  []models.School
	names []string // folded school names, parallel to rows
	byID  map[int]int

	all            *roaring.Bitmap
	districts      map[string]*roaring.Bitmap
	districtOrder  []string
	municipalities map[string]*roaring.Bitmap

	dropped int
}

// Build validates entries and builds a table of the active ones. Entries
// with no eighth grade students are dropped for good.
func Build(entries []models.RawEntry) (*Table, error) {
	var result *multierror.Error
	for i := range entries {
		result = validateEntry(result, i, &entries[i])
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	t := &Table{
		byID:           make(map[int]int, len(entries)),
		all:            roaring.New(),
		districts:      make(map[string]*roaring.Bitmap),
		municipalities: make(map[string]*roaring.Bitmap),
	}

	for i := range entries {
		st := entries[i].Statistics
		if *st.EighthGradeStudentsCount == 0 {
			t.dropped++
			continue
		}

		result = checkActive(result, i, st)
		if pos, dup := t.byID[*st.ID]; dup {
			result = multierror.Append(result, errors.Errorf(
				"entry %d: duplicate id %d (already at row %d)", i, *st.ID, pos))
			continue
		}

		t.add(newSchool(&entries[i]))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Table) add(s models.School) {
	pos := len(t.rows)

	t.rows = append(t.rows, s)
	t.names = append(t.names, translit.Fold(s.SchoolName))
	t.byID[s.ID] = pos
	t.all.Add(uint32(pos))

	if _, ok := t.districts[s.DistrictName]; !ok {
		t.districtOrder = append(t.districtOrder, s.DistrictName)
	}
	indexRow(t.districts, s.DistrictName, pos)
	indexRow(t.municipalities, s.MunicipalityName, pos)
}

func indexRow(index map[string]*roaring.Bitmap, key string, pos int) {
	bm, ok := index[key]
	if !ok {
		bm = roaring.New()
		index[key] = bm
	}
	bm.Add(uint32(pos))
}

func newSchool(e *models.RawEntry) models.School {
	st := e.Statistics
	return models.School{
		ID:                 *st.ID,
		DistrictName:       norm.NFC.String(*e.DistrictName),
		MunicipalityName:   norm.NFC.String(*e.MunicipalityName),
		SchoolName:         norm.NFC.String(*e.SchoolName),
		StudentsCount:      *st.EighthGradeStudentsCount,
		FinishedStudents:   *st.FinishedSchoolStudentsCount,
		VukovaDiplomaCount: *st.HasVukovaDiplomaStudentsCount,
		TotalPoints:        *st.TotalPoints,
		Grade6Avg:          st.SixthGradeAverage,
		Grade7Avg:          st.SeventhGradeAverage,
		Grade8Avg:          st.EighthGradeAverage,
		TotalGradeAvg:      st.TotalAverageGrade,
		TestPointsAvg:      st.TotalTestPointsAverage,
		Address:            cloneString(st.Address),
		Website:            cloneString(st.Website),
		Email:              cloneString(st.Email),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Len returns the number of active schools.
func (t *Table) Len() int { return len(t.rows) }

// Dropped returns the number of inactive entries left out at load time.
func (t *Table) Dropped() int { return t.dropped }

// At returns the school at row position i.
func (t *Table) At(i int) models.School { return t.rows[i] }

// SearchName returns the folded school name at row position i.
func (t *Table) SearchName(i int) string { return t.names[i] }

// Get returns the school with the given id.
func (t *Table) Get(id int) (models.School, error) {
	pos, ok := t.byID[id]
	if !ok {
		return models.School{}, errors.Wrapf(ErrNotFound, "id %d", id)
	}
	return t.rows[pos], nil
}

// All iterates over the schools in load order.
func (t *Table) All() iter.Seq[models.School] {
	return func(yield func(models.School) bool) {
		for _, s := range t.rows {
			if !yield(s) {
				return
			}
		}
	}
}

// Districts returns the district names in order of first appearance.
func (t *Table) Districts() []string {
	return slices.Clone(t.districtOrder)
}

// DistrictRows returns the row positions of a district. The bitmap belongs
// to the caller.
func (t *Table) DistrictRows(name string) *roaring.Bitmap {
	return cloneOrEmpty(t.districts[name])
}

// Candidates returns the row positions matching an exact district and
// municipality name. An empty name does not restrict. The bitmap belongs to
// the caller.
func (t *Table) Candidates(district, municipality string) *roaring.Bitmap {
	switch {
	case district != "" && municipality != "":
		return roaring.And(bitmapOrEmpty(t.districts[district]), bitmapOrEmpty(t.municipalities[municipality]))
	case district != "":
		return cloneOrEmpty(t.districts[district])
	case municipality != "":
		return cloneOrEmpty(t.municipalities[municipality])
	default:
		return t.all.Clone()
	}
}

func bitmapOrEmpty(bm *roaring.Bitmap) *roaring.Bitmap {
	if bm == nil {
		return roaring.New()
	}
	return bm
}

func cloneOrEmpty(bm *roaring.Bitmap) *roaring.Bitmap {
	if bm == nil {
		return roaring.New()
	}
	return bm.Clone()
}
