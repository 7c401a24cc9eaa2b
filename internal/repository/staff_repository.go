package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-directory/internal/domain"
)

// StaffRepository handles persistence for staff records. Lookups and writes
// against a missing id return pgx.ErrNoRows.
type StaffRepository interface {
	List(ctx context.Context, query ListQuery) ([]domain.Staff, error)
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	Create(ctx context.Context, staff *domain.Staff) error
	Update(ctx context.Context, id int64, patch domain.StaffPatch) (*domain.Staff, error)
	Delete(ctx context.Context, id int64) error
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) List(ctx context.Context, query ListQuery) ([]domain.Staff, error) {
	sql, args := BuildListQuery(query)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Staff{}
	for rows.Next() {
		var staff domain.Staff
		if err := scanStaff(rows, &staff); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id=$1", staffColumns, staffTable)

	var staff domain.Staff
	if err := scanStaff(r.pool.QueryRow(ctx, query, id), &staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (first_name, last_name, gender, dob, email, job_title, department, duty_station)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id`, staffTable)

	return r.pool.QueryRow(ctx, query,
		staff.FirstName,
		staff.LastName,
		staff.Gender,
		staff.DOB,
		staff.Email,
		staff.JobTitle,
		staff.Department,
		staff.DutyStation,
	).Scan(&staff.ID)
}

func (r *staffRepository) Update(ctx context.Context, id int64, patch domain.StaffPatch) (*domain.Staff, error) {
	query, args, ok := BuildUpdateQuery(id, patch)
	if !ok {
		return r.GetByID(ctx, id)
	}

	var staff domain.Staff
	if err := scanStaff(r.pool.QueryRow(ctx, query, args...), &staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id=$1", staffTable)

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanStaff(row pgx.Row, staff *domain.Staff) error {
	return row.Scan(
		&staff.ID,
		&staff.FirstName,
		&staff.LastName,
		&staff.Gender,
		&staff.DOB,
		&staff.Email,
		&staff.JobTitle,
		&staff.Department,
		&staff.DutyStation,
	)
}
