package venue

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	nextID int
	rows   map[string]*Venue
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]*Venue)}
}

func (r *fakeRepo) Create(ctx context.Context, v *Venue) error {
	r.nextID++
	v.ID = fmt.Sprintf("venue-%d", r.nextID)
	stored := *v
	r.rows[v.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Venue, error) {
	v, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	var out []*Venue
	for _, v := range r.rows {
		copied := *v
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(ctx context.Context, v *Venue) error {
	if _, ok := r.rows[v.ID]; !ok {
		return ErrNotFound
	}
	stored := *v
	r.rows[v.ID] = &stored
	return nil
}

func validCreateReq() CreateRequest {
	return CreateRequest{
		OwnerID:     "owner-1",
		Name:        "Downtown Sports Center",
		Address:     "1 Main St",
		City:        "Springfield",
		OpeningTime: "08:00",
		ClosingTime: "22:00",
	}
}

func TestCreateVenue(t *testing.T) {
	svc := NewService(newFakeRepo())

	v, err := svc.Create(context.Background(), validCreateReq())
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, StatusPending, v.Status)
	assert.Equal(t, "08:00", v.OpeningTime)
}

func TestCreateVenueValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	t.Run("blank name", func(t *testing.T) {
		req := validCreateReq()
		req.Name = "   "
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	tests := []struct {
		name           string
		opening, close string
	}{
		{"unpadded hour", "8:00", "22:00"},
		{"out of range hour", "25:00", "26:00"},
		{"out of range minute", "08:61", "22:00"},
		{"closing before opening", "22:00", "08:00"},
		{"zero length day", "08:00", "08:00"},
		{"garbage", "morning", "night"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateReq()
			req.OpeningTime = tt.opening
			req.ClosingTime = tt.close
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidHours)
		})
	}
}

func TestUpdateVenuePermissions(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	v, err := svc.Create(ctx, validCreateReq())
	require.NoError(t, err)

	newName := "Riverside Courts"

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, v.ID, UpdateRequest{Name: &newName}, "owner-2", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("owner may update", func(t *testing.T) {
		updated, err := svc.Update(ctx, v.ID, UpdateRequest{Name: &newName}, "owner-1", false)
		require.NoError(t, err)
		assert.Equal(t, newName, updated.Name)
	})

	t.Run("admin may update", func(t *testing.T) {
		updated, err := svc.Update(ctx, v.ID, UpdateRequest{Name: &newName}, "admin-1", true)
		require.NoError(t, err)
		assert.Equal(t, newName, updated.Name)
	})

	t.Run("partial hours update is validated together", func(t *testing.T) {
		late := "07:00"
		_, err := svc.Update(ctx, v.ID, UpdateRequest{ClosingTime: &late}, "owner-1", false)
		assert.ErrorIs(t, err, ErrInvalidHours)
	})
}

func TestSetVenueStatus(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	v, err := svc.Create(ctx, validCreateReq())
	require.NoError(t, err)

	approved, err := svc.SetStatus(ctx, v.ID, StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)

	_, err = svc.SetStatus(ctx, v.ID, Status("LIVE"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
