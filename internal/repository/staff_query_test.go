package repository

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/staff-directory/internal/domain"
)

func TestResolveSort(t *testing.T) {
	tests := []struct {
		name   string
		sortBy string
		order  string
		want   SortSpec
	}{
		{"allowed asc", "last_name", "asc", SortSpec{Field: "last_name"}},
		{"upper case asc", "email", "ASC", SortSpec{Field: "email"}},
		{"mixed case asc", "dob", "aSc", SortSpec{Field: "dob"}},
		{"desc", "department", "desc", SortSpec{Field: "department", Descending: true}},
		{"typo sorts descending", "gender", "acs", SortSpec{Field: "gender", Descending: true}},
		{"empty order sorts descending", "id", "", SortSpec{Field: "id", Descending: true}},
		{"unknown field falls back to id", "salary", "asc", SortSpec{Field: "id"}},
		{"injection attempt falls back to id", "id; DROP TABLE staff", "asc", SortSpec{Field: "id"}},
		{"column names are case sensitive", "First_Name", "asc", SortSpec{Field: "id"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSort(tt.sortBy, tt.order))
		})
	}
}

func TestSortAllowList(t *testing.T) {
	for _, name := range []string{"id", "first_name", "last_name", "gender", "dob", "email", "job_title", "department", "duty_station"} {
		assert.True(t, isSortable(name), name)
	}
	assert.False(t, isSortable("password"))
}

func TestBuildListQueryWithoutSearch(t *testing.T) {
	query, args := BuildListQuery(ListQuery{Page: 1, PageSize: 10, SortBy: "id", SortOrder: "asc"})

	assert.Equal(t,
		"SELECT id, first_name, last_name, gender, dob, email, job_title, department, duty_station FROM staff ORDER BY id ASC LIMIT $1 OFFSET $2",
		query)
	assert.Equal(t, []any{10, 0}, args)
}

func TestBuildListQueryWithSearch(t *testing.T) {
	query, args := BuildListQuery(ListQuery{Page: 3, PageSize: 25, Search: "Ada", SortBy: "last_name", SortOrder: "desc"})

	assert.Equal(t,
		"SELECT id, first_name, last_name, gender, dob, email, job_title, department, duty_station FROM staff"+
			" WHERE (first_name ILIKE $1 OR last_name ILIKE $1 OR gender ILIKE $1 OR dob ILIKE $1"+
			" OR email ILIKE $1 OR job_title ILIKE $1 OR department ILIKE $1 OR duty_station ILIKE $1)"+
			" ORDER BY last_name DESC, id ASC LIMIT $2 OFFSET $3",
		query)
	assert.Equal(t, []any{"%Ada%", 25, 50}, args)
}

func TestBuildListQueryUnknownSortUsesID(t *testing.T) {
	query, _ := BuildListQuery(ListQuery{Page: 1, PageSize: 5, SortBy: "salary", SortOrder: "whatever"})
	assert.Contains(t, query, "ORDER BY id DESC LIMIT")
	assert.NotContains(t, query, "salary")
}

func TestBuildListQueryEscapesWildcards(t *testing.T) {
	_, args := BuildListQuery(ListQuery{Page: 1, PageSize: 5, Search: `50%_off\`})
	assert.Equal(t, `%50\%\_off\\%`, args[0])
}

func TestBuildUpdateQuery(t *testing.T) {
	dept := "Research"
	email := ""

	query, args, ok := BuildUpdateQuery(42, domain.StaffPatch{Email: &email, Department: &dept})

	assert.True(t, ok)
	assert.Equal(t,
		"UPDATE staff SET email=$1, department=$2 WHERE id=$3 RETURNING id, first_name, last_name, gender, dob, email, job_title, department, duty_station",
		query)
	assert.Equal(t, []any{"", "Research", int64(42)}, args)
}

func TestBuildUpdateQueryEmptyPatch(t *testing.T) {
	_, _, ok := BuildUpdateQuery(1, domain.StaffPatch{})
	assert.False(t, ok)
}

func TestListQueryOffset(t *testing.T) {
	assert.Equal(t, 0, ListQuery{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, ListQuery{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 0, ListQuery{Page: 0, PageSize: 10}.Offset())
}

func TestListQueryOffsetSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, ListQuery{Page: math.MaxInt, PageSize: 2}.Offset())
	assert.Equal(t, math.MaxInt, ListQuery{Page: 3, PageSize: math.MaxInt/2 + 1}.Offset())
	assert.Equal(t, math.MaxInt-1, ListQuery{Page: 2, PageSize: math.MaxInt - 1}.Offset())

	_, args := BuildListQuery(ListQuery{Page: math.MaxInt, PageSize: 2})
	assert.Equal(t, []any{2, math.MaxInt}, args)
}

func TestMatchesSearch(t *testing.T) {
	staff := &domain.Staff{FirstName: "Ada", LastName: "Lovelace", DutyStation: "London"}

	assert.True(t, matchesSearch(staff, ""))
	assert.True(t, matchesSearch(staff, "ada"))
	assert.True(t, matchesSearch(staff, "LOVE"))
	assert.True(t, matchesSearch(staff, "ndo"))
	assert.False(t, matchesSearch(staff, "babbage"))
}
