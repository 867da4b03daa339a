package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"school-stats/driver"
	"school-stats/models"
)

// selectEntries reads one entry per row. Rows come in id order.
const selectEntries = `
	SELECT id, district_name, municipality_name, school_name,
		eighth_grade_students_count, finished_school_students_count,
		has_vukova_diploma_students_count, total_points,
		sixth_grade_average, seventh_grade_average, eighth_grade_average,
		total_average_grade, total_test_points_average,
		address, website, email
	FROM school_statistics
	ORDER BY id`

// SQLSource reads the dataset from the school_statistics table.
type SQLSource struct {
	DriverName string
	DSN        string
}

// String leaves the DSN out since it may hold credentials.
func (s SQLSource) String() string { return s.DriverName + " school_statistics" }

func (s SQLSource) Entries(ctx context.Context) ([]models.RawEntry, error) {
	db, err := driver.ConnectDB(ctx, s.DriverName, s.DSN)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return QueryEntries(ctx, db)
}

// QueryEntries reads all rows of school_statistics from db. NULL columns
// become missing values.
func QueryEntries(ctx context.Context, db *sql.DB) ([]models.RawEntry, error) {
	rows, err := db.QueryContext(ctx, selectEntries)
	if err != nil {
		return nil, errors.Wrap(err, "select school_statistics")
	}
	defer rows.Close()

	var entries []models.RawEntry
	for rows.Next() {
		var (
			id, students, finished, vukova                    sql.Null[int]
			district, municipality, name                      sql.Null[string]
			points, grade6, grade7, grade8, totalGrade, tests sql.Null[float64]
			address, website, email                           sql.Null[string]
		)
		if err := rows.Scan(
			&id, &district, &municipality, &name,
			&students, &finished, &vukova, &points,
			&grade6, &grade7, &grade8, &totalGrade, &tests,
			&address, &website, &email,
		); err != nil {
			return nil, errors.Wrap(err, "scan school_statistics")
		}

		entries = append(entries, models.RawEntry{
			DistrictName:     ptr(district),
			MunicipalityName: ptr(municipality),
			SchoolName:       ptr(name),
			Statistics: &models.RawStatistics{
				ID:                            ptr(id),
				EighthGradeStudentsCount:      ptr(students),
				FinishedSchoolStudentsCount:   ptr(finished),
				HasVukovaDiplomaStudentsCount: ptr(vukova),
				TotalPoints:                   ptr(points),
				SixthGradeAverage:             ptr(grade6),
				SeventhGradeAverage:           ptr(grade7),
				EighthGradeAverage:            ptr(grade8),
				TotalAverageGrade:             ptr(totalGrade),
				TotalTestPointsAverage:        ptr(tests),
				Address:                       ptr(address),
				Website:                       ptr(website),
				Email:                         ptr(email),
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read school_statistics")
	}
	return entries, nil
}

func ptr[T any](v sql.Null[T]) *T {
	if !v.Valid {
		return nil
	}
	return &v.V
}
