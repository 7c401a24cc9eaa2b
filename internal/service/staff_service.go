package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/domain"
	"github.com/spec-kit/staff-directory/internal/events"
	"github.com/spec-kit/staff-directory/internal/repository"
	apperrors "github.com/spec-kit/staff-directory/pkg/util"
)

// StaffService mediates between the request interface and the staff store.
type StaffService struct {
	staff      repository.StaffRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// StaffDependencies bundles collaborators for the staff service.
type StaffDependencies struct {
	StaffRepo  repository.StaffRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewStaffService constructs the service.
func NewStaffService(deps StaffDependencies) *StaffService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffService{
		staff:      deps.StaffRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// List returns one page of staff records matching the query.
func (s *StaffService) List(ctx context.Context, query repository.ListQuery) ([]domain.Staff, error) {
	list, err := s.staff.List(ctx, query)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// Get fetches a single record.
func (s *StaffService) Get(ctx context.Context, id int64) (*domain.Staff, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, mapStaffError(err, id)
	}
	return staff, nil
}

// Create stores a new record built from the supplied fields. Absent fields
// are stored empty and the id is assigned by the store.
func (s *StaffService) Create(ctx context.Context, fields domain.StaffPatch) (*domain.Staff, error) {
	staff := &domain.Staff{}
	fields.Apply(staff)

	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.NewStaffEvent(events.EventStaffCreated, staff.ID, staff))
	return staff, nil
}

// Update applies the supplied fields of patch to record id.
func (s *StaffService) Update(ctx context.Context, id int64, patch domain.StaffPatch) (*domain.Staff, error) {
	staff, err := s.staff.Update(ctx, id, patch)
	if err != nil {
		return nil, mapStaffError(err, id)
	}
	if !patch.IsEmpty() {
		s.publish(ctx, events.NewStaffEvent(events.EventStaffUpdated, staff.ID, staff))
	}
	return staff, nil
}

// Delete permanently removes record id.
func (s *StaffService) Delete(ctx context.Context, id int64) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		return mapStaffError(err, id)
	}
	s.publish(ctx, events.NewStaffEvent(events.EventStaffDeleted, id, nil))
	return nil
}

// publish never fails the originating write; the change is already committed.
func (s *StaffService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("staff event delivery failed",
			zap.String("event_type", string(event.Type)),
			zap.Int64("staff_id", event.StaffID),
			zap.Error(err))
	}
}

func mapStaffError(err error, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("Staff", map[string]any{"id": id})
	}
	return apperrors.MapError(err)
}
