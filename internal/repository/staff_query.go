package repository

import (
	"fmt"
	"math"
	"strings"

	"github.com/spec-kit/staff-directory/internal/domain"
)

const (
	staffTable   = "staff"
	staffColumns = "id, first_name, last_name, gender, dob, email, job_title, department, duty_station"

	// DefaultSortField is used whenever the requested sort field is not allowed.
	DefaultSortField = "id"
)

// ListQuery holds the untrusted listing parameters received from callers.
type ListQuery struct {
	Page      int
	PageSize  int
	Search    string
	SortBy    string
	SortOrder string
}

// textField binds a searchable, sortable text column to its accessor on Staff.
type textField struct {
	column string
	get    func(*domain.Staff) string
	patch  func(*domain.StaffPatch) *string
}

// textFields lists every text column in table order.
var textFields = []textField{
	{"first_name", func(s *domain.Staff) string { return s.FirstName }, func(p *domain.StaffPatch) *string { return p.FirstName }},
	{"last_name", func(s *domain.Staff) string { return s.LastName }, func(p *domain.StaffPatch) *string { return p.LastName }},
	{"gender", func(s *domain.Staff) string { return s.Gender }, func(p *domain.StaffPatch) *string { return p.Gender }},
	{"dob", func(s *domain.Staff) string { return s.DOB }, func(p *domain.StaffPatch) *string { return p.DOB }},
	{"email", func(s *domain.Staff) string { return s.Email }, func(p *domain.StaffPatch) *string { return p.Email }},
	{"job_title", func(s *domain.Staff) string { return s.JobTitle }, func(p *domain.StaffPatch) *string { return p.JobTitle }},
	{"department", func(s *domain.Staff) string { return s.Department }, func(p *domain.StaffPatch) *string { return p.Department }},
	{"duty_station", func(s *domain.Staff) string { return s.DutyStation }, func(p *domain.StaffPatch) *string { return p.DutyStation }},
}

// sortableFields is the allow-list of sort_by values. The id entry is nil
// because it is compared numerically.
var sortableFields = func() map[string]*textField {
	fields := map[string]*textField{DefaultSortField: nil}
	for i := range textFields {
		fields[textFields[i].column] = &textFields[i]
	}
	return fields
}()

// SortSpec is a validated ordering.
type SortSpec struct {
	Field      string
	Descending bool
}

// ResolveSort validates sortBy against the allow-list and interprets order.
// Unknown fields fall back to id; only a case-insensitive "asc" ascends.
func ResolveSort(sortBy, order string) SortSpec {
	field := sortBy
	if _, ok := sortableFields[field]; !ok {
		field = DefaultSortField
	}
	return SortSpec{Field: field, Descending: !strings.EqualFold(order, "asc")}
}

// isSortable reports whether name is in the sort allow-list.
func isSortable(name string) bool {
	_, ok := sortableFields[name]
	return ok
}

// Offset returns the zero-based row offset for the requested page. An offset
// that does not fit in an int saturates at math.MaxInt, which selects an
// empty page.
func (q ListQuery) Offset() int {
	if q.Page < 1 || q.PageSize < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return (q.Page - 1) * q.PageSize
}

// BuildListQuery renders the filtered, sorted, paginated SELECT for q.
func BuildListQuery(q ListQuery) (string, []any) {
	var sb strings.Builder
	args := []any{}

	sb.WriteString("SELECT ")
	sb.WriteString(staffColumns)
	sb.WriteString(" FROM ")
	sb.WriteString(staffTable)

	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses := make([]string, 0, len(textFields))
		for _, f := range textFields {
			clauses = append(clauses, fmt.Sprintf("%s ILIKE %s", f.column, placeholder))
		}
		sb.WriteString(" WHERE (")
		sb.WriteString(strings.Join(clauses, " OR "))
		sb.WriteString(")")
	}

	sort := ResolveSort(q.SortBy, q.SortOrder)
	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY %s %s", sort.Field, direction))
	if sort.Field != DefaultSortField {
		sb.WriteString(", id ASC")
	}

	args = append(args, q.PageSize, q.Offset())
	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	return sb.String(), args
}

// BuildUpdateQuery renders an UPDATE touching only the fields supplied in
// patch. ok is false when the patch is empty.
func BuildUpdateQuery(id int64, patch domain.StaffPatch) (query string, args []any, ok bool) {
	sets := []string{}
	for _, f := range textFields {
		if val := f.patch(&patch); val != nil {
			args = append(args, *val)
			sets = append(sets, fmt.Sprintf("%s=$%d", f.column, len(args)))
		}
	}
	if len(sets) == 0 {
		return "", nil, false
	}
	args = append(args, id)
	query = fmt.Sprintf("UPDATE %s SET %s WHERE id=$%d RETURNING %s",
		staffTable, strings.Join(sets, ", "), len(args), staffColumns)
	return query, args, true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE metacharacters in term match literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// matchesSearch is the in-memory counterpart of the ILIKE filter.
func matchesSearch(staff *domain.Staff, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range textFields {
		if strings.Contains(strings.ToLower(f.get(staff)), needle) {
			return true
		}
	}
	return false
}

// less orders a before b according to sort, breaking ties on id ascending.
// Text is compared case-insensitively first, then bytewise, which follows the
// usual Postgres linguistic collations more closely than raw byte order.
func (s SortSpec) less(a, b *domain.Staff) bool {
	field := sortableFields[s.Field]
	if field != nil {
		av, bv := field.get(a), field.get(b)
		if la, lb := strings.ToLower(av), strings.ToLower(bv); la != lb {
			av, bv = la, lb
		}
		if av != bv {
			if s.Descending {
				return av > bv
			}
			return av < bv
		}
		return a.ID < b.ID
	}
	if s.Descending {
		return a.ID > b.ID
	}
	return a.ID < b.ID
}
