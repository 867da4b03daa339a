// Package stats computes the aggregates served over the school table:
// district rollups, overview statistics, percentile ranks and top lists.
// Results are computed per call and never cached.
package stats

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"school-stats/models"
	"school-stats/store"
)

// DefaultTopN is the length of the top list when the caller does not
// choose one.
const DefaultTopN = 10

// Round rounds x to places decimals, halves to even.
func Round(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.RoundToEven(x*p) / p
}

// DistrictRollup groups the schools by district. Districts are ordered by
// their rounded mean points, highest first; equal means are ordered by
// district name.
func DistrictRollup(t *store.Table) []models.DistrictSummary {
	names := t.Districts()
	slices.Sort(names)
	out := make([]models.DistrictSummary, 0, len(names))

	for _, name := range names {
		summary := models.DistrictSummary{Name: name}
		var points float64

		it := t.DistrictRows(name).Iterator()
		for it.HasNext() {
			s := t.At(int(it.Next()))
			points += s.TotalPoints
			summary.SchoolCount++
			summary.TotalStudents += s.StudentsCount
			summary.TotalVukova += s.VukovaDiplomaCount
		}

		summary.AvgPoints = Round(points/float64(summary.SchoolCount), 2)
		out = append(out, summary)
	}

	slices.SortStableFunc(out, func(a, b models.DistrictSummary) int {
		return cmp.Compare(b.AvgPoints, a.AvgPoints)
	})
	return out
}

// Overview summarizes the whole table. The standard deviation is the
// sample deviation (n-1 denominator); it is 0 for fewer than two schools.
func Overview(t *store.Table) models.OverviewStats {
	out := models.OverviewStats{TotalSchools: t.Len()}
	if t.Len() == 0 {
		return out
	}

	points := make([]float64, 0, t.Len())
	for s := range t.All() {
		points = append(points, s.TotalPoints)
		out.TotalStudents += s.StudentsCount
	}

	mean := Mean(points)
	out.AvgPoints = Round(mean, 2)
	out.MedianPoints = Round(Median(points), 2)
	out.StdPoints = Round(SampleStdDev(points), 2)

	return out
}

// Mean returns 0 for no values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Median does not modify values.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// SampleStdDev is the n-1 standard deviation, 0 for fewer than two values.
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// PercentileRank returns the share of schools with strictly fewer points,
// as a percentage rounded to one decimal.
func PercentileRank(t *store.Table, points float64) float64 {
	if t.Len() == 0 {
		return 0
	}

	below := 0
	for s := range t.All() {
		if s.TotalPoints < points {
			below++
		}
	}
	return Round(float64(below)/float64(t.Len())*100, 1)
}

// TopN returns the n schools with the most points. Ties keep table order.
func TopN(t *store.Table, n int) []models.School {
	if n <= 0 {
		return []models.School{}
	}

	schools := slices.Collect(t.All())
	slices.SortStableFunc(schools, func(a, b models.School) int {
		return cmp.Compare(b.TotalPoints, a.TotalPoints)
	})

	return schools[:min(n, len(schools))]
}

// VukovaPercentage is the share of finished students with a Vuk diploma,
// rounded to one decimal; 0 when nobody finished.
func VukovaPercentage(s models.School) float64 {
	if s.FinishedStudents <= 0 {
		return 0
	}
	return Round(float64(s.VukovaDiplomaCount)/float64(s.FinishedStudents)*100, 1)
}
