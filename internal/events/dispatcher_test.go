package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-directory/internal/domain"
)

func TestDispatcherDeliversByType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var created, deleted []int64
	d.Subscribe(EventStaffCreated, func(_ context.Context, e Event) error {
		created = append(created, e.StaffID)
		return nil
	})
	d.Subscribe(EventStaffDeleted, func(_ context.Context, e Event) error {
		deleted = append(deleted, e.StaffID)
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), NewStaffEvent(EventStaffCreated, 1, &domain.Staff{ID: 1})))
	require.NoError(t, d.Publish(context.Background(), NewStaffEvent(EventStaffDeleted, 2, nil)))
	require.NoError(t, d.Publish(context.Background(), NewStaffEvent(EventStaffUpdated, 3, &domain.Staff{ID: 3})))

	assert.Equal(t, []int64{1}, created)
	assert.Equal(t, []int64{2}, deleted)
}

func TestDispatcherRunsAllHandlersOnError(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")

	calls := 0
	d.Subscribe(EventStaffUpdated, func(context.Context, Event) error {
		calls++
		return boom
	})
	d.Subscribe(EventStaffUpdated, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), NewStaffEvent(EventStaffUpdated, 1, nil))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestNewStaffEvent(t *testing.T) {
	event := NewStaffEvent(EventStaffCreated, 5, &domain.Staff{ID: 5, FirstName: "Ada", Department: "Math"})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, int64(5), event.StaffID)
	require.NotNil(t, event.Payload)
	assert.Equal(t, "Ada", event.Payload.FirstName)
	assert.Equal(t, "Math", event.Payload.Department)

	assert.Nil(t, NewStaffEvent(EventStaffDeleted, 5, nil).Payload)
}
