package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtsidehq/venue-booking-backend/internal/court"
	"github.com/courtsidehq/venue-booking-backend/internal/venue"
)

// fakeRepo mimics the database's atomic check-then-insert under a mutex, so
// concurrency tests exercise the same at-most-one-winner guarantee.
type fakeRepo struct {
	mu     sync.Mutex
	nextID int
	rows   map[string]*Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]*Booking)}
}

func (r *fakeRepo) CreateIfFree(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rows {
		if existing.CourtID != b.CourtID || existing.Date != b.Date {
			continue
		}
		if existing.Status == StatusCancelled {
			continue
		}
		if overlaps(b.StartTime, b.EndTime, existing.StartTime, existing.EndTime) {
			return ErrSlotUnavailable
		}
	}

	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now()

	stored := *b
	r.rows[b.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Booking
	for _, b := range r.rows {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepo) ListActiveForDay(ctx context.Context, courtID, date string) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Booking
	for _, b := range r.rows {
		if b.CourtID != courtID || b.Date != date || b.Status == StatusCancelled {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeRepo) MarkCancelled(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.rows[id]
	if !ok || b.Status != StatusConfirmed {
		return ErrCannotCancel
	}
	b.Status = StatusCancelled
	b.CancelledAt = &at
	return nil
}

type fakeCourtService struct {
	courts map[string]*court.Court
	err    error
}

func (s *fakeCourtService) GetByID(ctx context.Context, id string) (*court.Court, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.courts[id]
	if !ok {
		return nil, court.ErrNotFound
	}
	return c, nil
}

func (s *fakeCourtService) Create(ctx context.Context, req court.CreateRequest, creatorUserID string, isAdmin bool) (*court.Court, error) {
	panic("not used")
}

func (s *fakeCourtService) ListByVenue(ctx context.Context, venueID string, onlyActive bool) ([]*court.Court, error) {
	panic("not used")
}

func (s *fakeCourtService) Update(ctx context.Context, id string, req court.UpdateRequest, updaterUserID string, isAdmin bool) (*court.Court, error) {
	panic("not used")
}

type fakeVenueService struct {
	venues map[string]*venue.Venue
	err    error
}

func (s *fakeVenueService) GetByID(ctx context.Context, id string) (*venue.Venue, error) {
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.venues[id]
	if !ok {
		return nil, venue.ErrNotFound
	}
	return v, nil
}

func (s *fakeVenueService) Create(ctx context.Context, req venue.CreateRequest) (*venue.Venue, error) {
	panic("not used")
}

func (s *fakeVenueService) List(ctx context.Context, filter venue.Filter) ([]*venue.Venue, int, error) {
	panic("not used")
}

func (s *fakeVenueService) Update(ctx context.Context, id string, req venue.UpdateRequest, updaterUserID string, isAdmin bool) (*venue.Venue, error) {
	panic("not used")
}

func (s *fakeVenueService) SetStatus(ctx context.Context, id string, status venue.Status) (*venue.Venue, error) {
	panic("not used")
}

type capturedEvent struct {
	Key     string
	Booking Booking
}

type fakePublisher struct {
	mu     sync.Mutex
	events []capturedEvent
}

func (p *fakePublisher) PublishJSON(ctx context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok := v.(*Booking); ok {
		p.events = append(p.events, capturedEvent{Key: key, Booking: *b})
	}
	return nil
}

const (
	testVenueID = "6f2b1fe2-0000-4000-8000-000000000001"
	testCourtID = "6f2b1fe2-0000-4000-8000-000000000002"
)

type fixture struct {
	repo      *fakeRepo
	publisher *fakePublisher
	svc       *service
}

func newFixture(t *testing.T, cutoff time.Duration) *fixture {
	t.Helper()

	repo := newFakeRepo()
	publisher := &fakePublisher{}

	courts := &fakeCourtService{courts: map[string]*court.Court{
		testCourtID: {
			ID:           testCourtID,
			VenueID:      testVenueID,
			SportID:      "sport-1",
			Name:         "Court 1",
			PricePerHour: 30,
			Status:       court.StatusActive,
			VenueName:    "Downtown Sports Center",
		},
	}}
	venues := &fakeVenueService{venues: map[string]*venue.Venue{
		testVenueID: {
			ID:          testVenueID,
			OwnerID:     "owner-1",
			Name:        "Downtown Sports Center",
			Status:      venue.StatusApproved,
			OpeningTime: "08:00",
			ClosingTime: "22:00",
		},
	}}

	svc := NewService(repo, courts, venues, publisher, cutoff).(*service)
	// Bookings in these tests live on 2025-03-10; pin the clock well before
	// that day so cutoff checks behave deterministically.
	svc.now = func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)
	}

	return &fixture{repo: repo, publisher: publisher, svc: svc}
}

func createReq(start, end string) CreateRequest {
	hours := int(mustParse(end)-mustParse(start)) / 60
	return CreateRequest{
		UserID:        "user-1",
		VenueID:       testVenueID,
		CourtID:       testCourtID,
		Date:          "2025-03-10",
		StartTime:     start,
		EndTime:       end,
		DurationHours: hours,
		TotalPrice:    30 * float64(hours),
	}
}

func mustParse(s string) TimeOfDay {
	v, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCreateBooking(t *testing.T) {
	f := newFixture(t, 0)

	b, err := f.svc.Create(context.Background(), createReq("14:00", "15:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, "14:00", b.StartTime.String())
	assert.Equal(t, "15:00", b.EndTime.String())
	assert.Equal(t, 30.0, b.TotalPrice)
	assert.Equal(t, "Court 1", b.CourtName)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, "booking.created", f.publisher.events[0].Key)
}

func TestCreateBookingConflicts(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, createReq("14:00", "15:00"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{"identical slot", "14:00", "15:00", ErrSlotUnavailable},
		{"overlap from before", "13:30", "14:30", ErrSlotUnavailable},
		{"overlap from after", "14:30", "15:30", ErrSlotUnavailable},
		{"containing slot", "13:00", "16:00", ErrSlotUnavailable},
		{"touching before is free", "13:00", "14:00", nil},
		{"touching after is free", "15:00", "16:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, createReq(tt.start, tt.end))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBookingValidation(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	t.Run("bad date", func(t *testing.T) {
		req := createReq("14:00", "15:00")
		req.Date = "10-03-2025"
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("bad start time", func(t *testing.T) {
		req := createReq("14:00", "15:00")
		req.StartTime = "2pm"
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("end before start", func(t *testing.T) {
		req := createReq("14:00", "15:00")
		req.StartTime, req.EndTime = "15:00", "14:00"
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("zero duration", func(t *testing.T) {
		req := createReq("14:00", "15:00")
		req.DurationHours = 0
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("duration over limit", func(t *testing.T) {
		req := createReq("08:00", "17:00")
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("price disagrees with rate", func(t *testing.T) {
		req := createReq("14:00", "15:00")
		req.TotalPrice = 10
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("unknown court", func(t *testing.T) {
		req := createReq("14:00", "15:00")
		req.CourtID = "6f2b1fe2-0000-4000-8000-00000000dead"
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrCourtUnavailable)
	})

	t.Run("court from another venue", func(t *testing.T) {
		req := createReq("14:00", "15:00")
		req.VenueID = "6f2b1fe2-0000-4000-8000-00000000beef"
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrCourtUnavailable)
	})
}

// A court or venue lookup that fails for infrastructure reasons must keep
// its cause; only a missing court reads as "court not available".
func TestLookupFailureIsNotABusinessRejection(t *testing.T) {
	ctx := context.Background()
	infra := errors.New("get court failed: connection refused")

	t.Run("create propagates court lookup failure", func(t *testing.T) {
		f := newFixture(t, 0)
		f.svc.courtService.(*fakeCourtService).err = infra

		_, err := f.svc.Create(ctx, createReq("14:00", "15:00"))
		require.Error(t, err)
		assert.ErrorIs(t, err, infra)
		assert.NotErrorIs(t, err, ErrCourtUnavailable)
	})

	t.Run("availability propagates court lookup failure", func(t *testing.T) {
		f := newFixture(t, 0)
		f.svc.courtService.(*fakeCourtService).err = infra

		_, err := f.svc.DayAvailability(ctx, testCourtID, "2025-03-10")
		require.Error(t, err)
		assert.ErrorIs(t, err, infra)
		assert.NotErrorIs(t, err, ErrCourtUnavailable)
	})

	t.Run("availability propagates venue lookup failure", func(t *testing.T) {
		f := newFixture(t, 0)
		f.svc.venueService.(*fakeVenueService).err = infra

		_, err := f.svc.DayAvailability(ctx, testCourtID, "2025-03-10")
		require.Error(t, err)
		assert.ErrorIs(t, err, infra)
		assert.NotErrorIs(t, err, ErrCourtUnavailable)
	})

	t.Run("missing court still reads as unavailable", func(t *testing.T) {
		f := newFixture(t, 0)

		req := createReq("14:00", "15:00")
		req.CourtID = "6f2b1fe2-0000-4000-8000-00000000dead"
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrCourtUnavailable)
	})
}

func TestCreateBookingCourtUnderMaintenance(t *testing.T) {
	f := newFixture(t, 0)

	courts := f.svc.courtService.(*fakeCourtService)
	courts.courts[testCourtID].Status = court.StatusMaintenance

	_, err := f.svc.Create(context.Background(), createReq("14:00", "15:00"))
	assert.ErrorIs(t, err, ErrCourtUnavailable)
}

func TestCancelBooking(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createReq("14:00", "15:00"))
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(ctx, b.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	require.Len(t, f.publisher.events, 2)
	assert.Equal(t, "booking.cancelled", f.publisher.events[1].Key)

	// The freed slot can be rebooked.
	_, err = f.svc.Create(ctx, createReq("14:00", "15:00"))
	assert.NoError(t, err)
}

func TestCancelBookingRules(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, createReq("14:00", "15:00"))
	require.NoError(t, err)

	t.Run("unknown booking", func(t *testing.T) {
		_, err := f.svc.Cancel(ctx, "booking-404", "user-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("not the owner", func(t *testing.T) {
		_, err := f.svc.Cancel(ctx, b.ID, "user-2")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("second cancel is rejected", func(t *testing.T) {
		_, err := f.svc.Cancel(ctx, b.ID, "user-1")
		require.NoError(t, err)

		_, err = f.svc.Cancel(ctx, b.ID, "user-1")
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestCancelCutoff(t *testing.T) {
	ctx := context.Background()

	t.Run("inside the window is rejected", func(t *testing.T) {
		f := newFixture(t, 2*time.Hour)

		b, err := f.svc.Create(ctx, createReq("14:00", "15:00"))
		require.NoError(t, err)

		// One hour before start, with a two hour cutoff.
		f.svc.now = func() time.Time {
			return time.Date(2025, 3, 10, 13, 0, 0, 0, time.Local)
		}

		_, err = f.svc.Cancel(ctx, b.ID, "user-1")
		assert.ErrorIs(t, err, ErrCancelWindowClosed)
	})

	t.Run("outside the window is allowed", func(t *testing.T) {
		f := newFixture(t, 2*time.Hour)

		b, err := f.svc.Create(ctx, createReq("14:00", "15:00"))
		require.NoError(t, err)

		f.svc.now = func() time.Time {
			return time.Date(2025, 3, 10, 11, 0, 0, 0, time.Local)
		}

		_, err = f.svc.Cancel(ctx, b.ID, "user-1")
		assert.NoError(t, err)
	})

	t.Run("zero cutoff disables the check", func(t *testing.T) {
		f := newFixture(t, 0)

		b, err := f.svc.Create(ctx, createReq("14:00", "15:00"))
		require.NoError(t, err)

		f.svc.now = func() time.Time {
			return time.Date(2025, 3, 10, 13, 59, 0, 0, time.Local)
		}

		_, err = f.svc.Cancel(ctx, b.ID, "user-1")
		assert.NoError(t, err)
	})
}

func TestConcurrentCreateSingleWinner(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	const attempts = 16

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := createReq("14:00", "15:00")
			req.UserID = fmt.Sprintf("user-%d", i)
			_, errs[i] = f.svc.Create(ctx, req)
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		}
	}
	assert.Equal(t, 1, won, "exactly one concurrent booking should win the slot")
}

func TestDayAvailability(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, createReq("14:00", "15:00"))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, createReq("18:00", "20:00"))
	require.NoError(t, err)

	slots, err := f.svc.DayAvailability(ctx, testCourtID, "2025-03-10")
	require.NoError(t, err)

	want := []TimeSlot{
		{Start: mustParse("08:00"), End: mustParse("14:00")},
		{Start: mustParse("15:00"), End: mustParse("18:00")},
		{Start: mustParse("20:00"), End: mustParse("22:00")},
	}
	assert.Equal(t, want, slots)

	t.Run("bad date", func(t *testing.T) {
		_, err := f.svc.DayAvailability(ctx, testCourtID, "today")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("unknown court", func(t *testing.T) {
		_, err := f.svc.DayAvailability(ctx, "nope", "2025-03-10")
		assert.ErrorIs(t, err, ErrCourtUnavailable)
	})
}

// Full lifecycle: book, collide, cancel, rebook.
func TestBookingLifecycle(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, createReq("14:00", "15:00"))
	require.NoError(t, err)

	competing := createReq("14:30", "15:30")
	competing.UserID = "user-2"
	_, err = f.svc.Create(ctx, competing)
	require.ErrorIs(t, err, ErrSlotUnavailable)

	_, err = f.svc.Cancel(ctx, first.ID, "user-1")
	require.NoError(t, err)

	second, err := f.svc.Create(ctx, competing)
	require.NoError(t, err)
	assert.Equal(t, "user-2", second.UserID)

	got, err := f.svc.GetByID(ctx, second.ID, "user-2", false)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)

	// Another customer cannot read it, an admin can.
	_, err = f.svc.GetByID(ctx, second.ID, "user-3", false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.GetByID(ctx, second.ID, "admin-1", true)
	assert.NoError(t, err)
}
