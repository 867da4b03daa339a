// Package testutil builds school fixtures for tests.
//
// This package is intended for use in tests only.
//
//	table := testutil.Table(t,
//	    testutil.Entry(1, "Београд", "Врачар", "ОШ Врачар", 80, 610.5),
//	    testutil.Entry(2, "Нишавски", "Ниш", "ОШ Његош", 0, 480), // inactive
//	)
package testutil

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"school-stats/models"
	"school-stats/store"
)

// EntryOption adjusts an entry built by Entry.
type EntryOption func(*models.RawEntry)

// Entry builds a valid raw entry. Every student finished school and nobody
// has a Vuk diploma unless options say otherwise.
func Entry(id int, district, municipality, name string, students int, points float64, opts ...EntryOption) models.RawEntry {
	e := models.RawEntry{
		DistrictName:     &district,
		MunicipalityName: &municipality,
		SchoolName:       &name,
		Statistics: &models.RawStatistics{
			ID:                            &id,
			EighthGradeStudentsCount:      &students,
			FinishedSchoolStudentsCount:   Ptr(students),
			HasVukovaDiplomaStudentsCount: Ptr(0),
			TotalPoints:                   &points,
		},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func WithFinished(n int) EntryOption {
	return func(e *models.RawEntry) { e.Statistics.FinishedSchoolStudentsCount = &n }
}

func WithVukova(n int) EntryOption {
	return func(e *models.RawEntry) { e.Statistics.HasVukovaDiplomaStudentsCount = &n }
}

// WithGrades sets the sixth, seventh, eighth grade and total averages.
func WithGrades(g6, g7, g8, total float64) EntryOption {
	return func(e *models.RawEntry) {
		e.Statistics.SixthGradeAverage = &g6
		e.Statistics.SeventhGradeAverage = &g7
		e.Statistics.EighthGradeAverage = &g8
		e.Statistics.TotalAverageGrade = &total
	}
}

func WithTestPoints(avg float64) EntryOption {
	return func(e *models.RawEntry) { e.Statistics.TotalTestPointsAverage = &avg }
}

func WithContact(address, website, email string) EntryOption {
	return func(e *models.RawEntry) {
		e.Statistics.Address = &address
		e.Statistics.Website = &website
		e.Statistics.Email = &email
	}
}

// Table builds a table from entries and fails the test on error.
func Table(tb testing.TB, entries ...models.RawEntry) *store.Table {
	tb.Helper()

	table, err := store.Build(entries)
	require.NoError(tb, err)
	return table
}

// JSON encodes entries the way the dataset file stores them.
func JSON(tb testing.TB, entries ...models.RawEntry) []byte {
	tb.Helper()

	data, err := json.Marshal(entries)
	require.NoError(tb, err)
	return data
}

func Ptr[T any](v T) *T { return &v }
