package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staff-directory/internal/domain"
)

// memoryStaffRepository keeps staff records in process memory. It applies the
// same search, sort and paging rules as the SQL query and is used when no
// Postgres DSN is configured.
type memoryStaffRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]domain.Staff
}

// NewMemoryStaffRepository returns an empty in-memory repository.
func NewMemoryStaffRepository() StaffRepository {
	return &memoryStaffRepository{rows: make(map[int64]domain.Staff)}
}

func (r *memoryStaffRepository) List(_ context.Context, query ListQuery) ([]domain.Staff, error) {
	r.mu.RLock()
	matched := make([]domain.Staff, 0, len(r.rows))
	for _, staff := range r.rows {
		if matchesSearch(&staff, query.Search) {
			matched = append(matched, staff)
		}
	}
	r.mu.RUnlock()

	spec := ResolveSort(query.SortBy, query.SortOrder)
	sort.Slice(matched, func(i, j int) bool {
		return spec.less(&matched[i], &matched[j])
	})

	offset := query.Offset()
	if offset >= len(matched) || query.PageSize <= 0 {
		return []domain.Staff{}, nil
	}
	end := len(matched)
	if query.PageSize < end-offset {
		end = offset + query.PageSize
	}
	return matched[offset:end], nil
}

func (r *memoryStaffRepository) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	staff, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &staff, nil
}

func (r *memoryStaffRepository) Create(_ context.Context, staff *domain.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	staff.ID = r.nextID
	r.rows[staff.ID] = *staff
	return nil
}

func (r *memoryStaffRepository) Update(_ context.Context, id int64, patch domain.StaffPatch) (*domain.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	staff, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	patch.Apply(&staff)
	r.rows[id] = staff
	return &staff, nil
}

func (r *memoryStaffRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}
