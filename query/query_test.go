package query_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"school-stats/models"
	"school-stats/query"
	"school-stats/stats"
	"school-stats/store"
	"school-stats/testutil"
)

func fixture(t *testing.T) *store.Table {
	t.Helper()

	return testutil.Table(t,
		testutil.Entry(10, "Београд", "Врачар", "ОШ \"Врачар\"", 80, 610.5, testutil.WithGrades(4.5, 4.4, 4.3, 4.4)),
		testutil.Entry(11, "Београд", "Звездара", "ОШ \"Вук Караџић\"", 60, 550.25),
		testutil.Entry(12, "Нишавски", "Ниш", "ОШ \"Ћеле Кула\"", 40, 520, testutil.WithGrades(4.1, 4.0, 3.9, 4.0)),
		testutil.Entry(13, "Нишавски", "Ниш", "Основна школа \"Његош\"", 50, 550.25, testutil.WithGrades(4.8, 4.7, 4.9, 4.8)),
		testutil.Entry(14, "Шумадијски", "Крагујевац", "OŠ \"Čačak\"", 30, 480),
		testutil.Entry(15, "Београд", "Врачар", "ОШ \"Свети Сава\"", 70, 600),
		testutil.Entry(16, "Београд", "Врачар", "ОШ \"Врачарски\"", 0, 700),
	)
}

func idsOf(rows []models.School) []int {
	out := make([]int, 0, len(rows))
	for _, s := range rows {
		out = append(out, s.ID)
	}
	return out
}

func all() query.Page { return query.Page{Limit: query.DefaultLimit} }

func TestRun_Defaults(t *testing.T) {
	res := query.Run(fixture(t), query.Filters{}, nil, all())

	assert.Equal(t, []int{10, 15, 11, 13, 12, 14}, idsOf(res.Rows))
	assert.Equal(t, 6, res.TotalCount)
	assert.False(t, res.HasMore)
}

func TestRun_SchoolNameSearch(t *testing.T) {
	table := fixture(t)

	tests := []struct {
		query string
		want  []int
	}{
		{"vracar", []int{10}},    // ц read as ч
		{"VRAČAR", []int{10}},    // exact Latin spelling
		{"врач", []int{10}},      // Cyrillic input
		{"cele", []int{12}},      // ц read as ћ
		{"ćele kula", []int{12}}, // diacritics
		{"njegoš", []int{13}},    // digraph
		{"vuk k", []int{11}},
		{"čačak", []int{14}}, // Latin stored name through the literal fallback
		{"ош", []int{10, 15, 11, 13, 12}}, // "његош" ends in ош
		{"škola", []int{13}},
		{"gimnazija", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res := query.Run(table, query.Filters{SchoolName: tt.query}, nil, all())
			assert.Equal(t, tt.want, idsOf(res.Rows))
			assert.Equal(t, len(tt.want), res.TotalCount)
		})
	}
}

func TestRun_InactiveSchoolNeverMatches(t *testing.T) {
	table := fixture(t)

	res := query.Run(table, query.Filters{SchoolName: "vracarski"}, nil, all())
	assert.Empty(t, res.Rows)
	assert.Zero(t, res.TotalCount)

	res = query.Run(table, query.Filters{MinPoints: testutil.Ptr(650.0)}, nil, all())
	assert.Empty(t, res.Rows)
}

func TestRun_DistrictAndMunicipality(t *testing.T) {
	table := fixture(t)

	res := query.Run(table, query.Filters{District: "Београд"}, nil, all())
	assert.Equal(t, []int{10, 15, 11}, idsOf(res.Rows))

	res = query.Run(table, query.Filters{Municipality: "Ниш"}, nil, all())
	assert.Equal(t, []int{13, 12}, idsOf(res.Rows))

	res = query.Run(table, query.Filters{District: "Београд", Municipality: "Врачар"}, nil, all())
	assert.Equal(t, []int{10, 15}, idsOf(res.Rows))

	res = query.Run(table, query.Filters{District: "Београд", SchoolName: "sava"}, nil, all())
	assert.Equal(t, []int{15}, idsOf(res.Rows))

	res = query.Run(table, query.Filters{District: "београд"}, nil, all())
	assert.Empty(t, res.Rows, "district match is case-sensitive")
}

func TestRun_PointBounds(t *testing.T) {
	table := fixture(t)

	res := query.Run(table, query.Filters{MinPoints: testutil.Ptr(550.25)}, nil, all())
	assert.Equal(t, []int{10, 15, 11, 13}, idsOf(res.Rows))

	res = query.Run(table, query.Filters{MaxPoints: testutil.Ptr(550.25)}, nil, all())
	assert.Equal(t, []int{11, 13, 12, 14}, idsOf(res.Rows))

	res = query.Run(table, query.Filters{MinPoints: testutil.Ptr(550.25), MaxPoints: testutil.Ptr(550.25)}, nil, all())
	assert.Equal(t, []int{11, 13}, idsOf(res.Rows))

	res = query.Run(table, query.Filters{MaxPoints: testutil.Ptr(0.0)}, nil, all())
	assert.Empty(t, res.Rows, "zero is a real bound")
}

func TestRun_Sort(t *testing.T) {
	table := fixture(t)

	tests := []struct {
		name string
		keys []query.SortKey
		want []int
	}{
		{"school name asc", query.ParseSort("school_name", "asc"), []int{14, 12, 10, 11, 15, 13}},
		{"students desc", query.ParseSort("students_count", "desc"), []int{10, 15, 11, 13, 12, 14}},
		{"id asc", query.ParseSort("id", "ASC"), []int{10, 11, 12, 13, 14, 15}},
		{"grade asc nulls last", query.ParseSort("grade_6_avg", "asc"), []int{12, 10, 13, 11, 14, 15}},
		{"grade desc nulls last", query.ParseSort("grade_6_avg", "desc"), []int{13, 10, 12, 11, 14, 15}},
		{"points asc keeps ties in load order", query.ParseSort("", "asc"), []int{14, 12, 11, 13, 15, 10}},
		{"unknown field", query.ParseSort("rating", "asc"), []int{10, 15, 11, 13, 12, 14}},
		{"multi key", query.ParseSort("district_name,total_points", "asc,asc"), []int{11, 15, 10, 12, 13, 14}},
		{"unknown key skipped", query.ParseSort("rating,district_name", "asc"), []int{10, 11, 15, 12, 13, 14}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := query.Run(table, query.Filters{}, tt.keys, all())
			assert.Equal(t, tt.want, idsOf(res.Rows))
		})
	}
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, []query.SortKey{{Field: "total_points", Desc: true}}, query.ParseSort("", ""))
	assert.Equal(t, []query.SortKey{{Field: "total_points", Desc: false}}, query.ParseSort(" ", "asc"))
	assert.Equal(t, []query.SortKey{{Field: "email", Desc: true}}, query.ParseSort("email", "DESC"))
	assert.Equal(t, []query.SortKey{{Field: "email", Desc: true}}, query.ParseSort("email", "sideways"))
	assert.Equal(t,
		[]query.SortKey{{Field: "school_name", Desc: false}, {Field: "id", Desc: false}},
		query.ParseSort("school_name, id", "asc"))
	assert.Equal(t,
		[]query.SortKey{{Field: "a", Desc: false}, {Field: "b", Desc: true}},
		query.ParseSort("a,b", "asc,desc,asc"))
}

func TestIsSortField(t *testing.T) {
	assert.True(t, query.IsSortField("total_points"))
	assert.True(t, query.IsSortField("website"))
	assert.False(t, query.IsSortField("percentile"))
}

func TestRun_Pagination(t *testing.T) {
	table := fixture(t)

	tests := []struct {
		name    string
		page    query.Page
		want    []int
		hasMore bool
	}{
		{"first page", query.Page{Offset: 0, Limit: 2}, []int{10, 15}, true},
		{"middle page", query.Page{Offset: 2, Limit: 2}, []int{11, 13}, true},
		{"last page", query.Page{Offset: 4, Limit: 2}, []int{12, 14}, false},
		{"partial page", query.Page{Offset: 5, Limit: 10}, []int{14}, false},
		{"past the end", query.Page{Offset: 6, Limit: 2}, []int{}, false},
		{"negative offset", query.Page{Offset: -1, Limit: 50}, []int{}, false},
		{"zero limit", query.Page{Offset: 0, Limit: 0}, []int{}, true},
		{"negative limit", query.Page{Offset: 0, Limit: -3}, []int{}, true},
		{"huge values", query.Page{Offset: math.MaxInt, Limit: math.MaxInt}, []int{}, false},
		{"huge limit", query.Page{Offset: 1, Limit: math.MaxInt}, []int{15, 11, 13, 12, 14}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := query.Run(table, query.Filters{}, nil, tt.page)
			assert.Equal(t, tt.want, idsOf(res.Rows))
			assert.Equal(t, 6, res.TotalCount)
			assert.Equal(t, tt.hasMore, res.HasMore)
		})
	}
}

func TestRun_PagesReconstructResult(t *testing.T) {
	table := fixture(t)
	filters := []query.Filters{
		{},
		{District: "Београд"},
		{SchoolName: "ош"},
		{MinPoints: testutil.Ptr(500.0)},
	}
	sorts := [][]query.SortKey{
		nil,
		query.ParseSort("school_name", "asc"),
		query.ParseSort("grade_6_avg", "desc"),
	}

	for _, f := range filters {
		for _, keys := range sorts {
			full := query.Run(table, f, keys, query.Page{Limit: math.MaxInt})

			for limit := 1; limit <= 7; limit++ {
				var got []int
				for offset := 0; ; offset += limit {
					page := query.Run(table, f, keys, query.Page{Offset: offset, Limit: limit})
					require.Equal(t, full.TotalCount, page.TotalCount)
					got = append(got, idsOf(page.Rows)...)
					if !page.HasMore {
						break
					}
				}
				assert.Equal(t, idsOf(full.Rows), got, "limit %d", limit)
			}
		}
	}
}

func TestFilter_LoadOrder(t *testing.T) {
	positions := query.Filter(fixture(t), query.Filters{District: "Београд"})
	assert.Equal(t, []int{0, 1, 5}, positions)
}

func TestSort_MissingTextLast(t *testing.T) {
	table := testutil.Table(t,
		testutil.Entry(1, "A", "A1", "S1", 10, 500),
		testutil.Entry(2, "A", "A1", "S2", 10, 510, testutil.WithContact("Бранкова 2", "b.rs", "b@b.rs")),
		testutil.Entry(3, "A", "A1", "S3", 10, 520, testutil.WithContact("Авалска 1", "a.rs", "a@a.rs")),
	)

	asc := query.Run(table, query.Filters{}, query.ParseSort("address", "asc"), all())
	assert.Equal(t, []int{3, 2, 1}, idsOf(asc.Rows))

	desc := query.Run(table, query.Filters{}, query.ParseSort("email", "desc"), all())
	assert.Equal(t, []int{2, 3, 1}, idsOf(desc.Rows))
}

func TestRun_ConcurrentReaders(t *testing.T) {
	table := fixture(t)

	filters := query.Filters{SchoolName: "vracar", District: "Београд"}
	sort := query.ParseSort("grade_6_avg,total_points", "asc,desc")
	wantRows := idsOf(query.Run(table, filters, sort, all()).Rows)
	wantAll := idsOf(query.Run(table, query.Filters{}, nil, query.Page{Limit: 3}).Rows)
	wantDistricts := stats.DistrictRollup(table)

	var g errgroup.Group
	for range 32 {
		g.Go(func() error {
			assert.Equal(t, wantRows, idsOf(query.Run(table, filters, sort, all()).Rows))
			assert.Equal(t, wantAll, idsOf(query.Run(table, query.Filters{}, nil, query.Page{Limit: 3}).Rows))
			assert.Equal(t, wantDistricts, stats.DistrictRollup(table))
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
