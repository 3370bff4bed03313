package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	"github.com/caribeazul/CAB-BookingService/pkg/ptr"
	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeMaintenanceRepo struct {
	exists bool
	err    error
}

func (f *fakeMaintenanceRepo) Exists(_ context.Context, _ time.Time) (bool, error) {
	return f.exists, f.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// 2026-03-02 понедельник, закрытие в 17:00
var (
	testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
)

func newTestUseCase(bookings *fakeBookingRepo, maintenance *fakeMaintenanceRepo) *UseCase {
	uc := NewUseCase(bookings, maintenance, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func activeBooking(start types.TimeString, hours float64, jetSkis, boats int) *domain.Booking {
	return &domain.Booking{
		StartTime:     start,
		DurationHours: hours,
		JetSkis:       jetSkis,
		Boats:         boats,
		Status:        domain.StatusConfirmed,
	}
}

func TestExecute_DurationsOnly(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeMaintenanceRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		RentalType:  "boat",
		Pickup:      "San Juan",
		Destination: ptr.Ptr("Icacos"),
		Date:        testDate,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 4, 5, 6, 7, 8, 9}, resp.Durations)
	assert.Empty(t, resp.Slots)
	assert.False(t, resp.Maintenance)
}

func TestExecute_MaintenanceDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeMaintenanceRepo{exists: true})

	resp, err := uc.Execute(context.Background(), &Request{
		RentalType: "jet_ski",
		Pickup:     "Fajardo",
		Date:       testDate,
		JetSkis:    1,
	})
	require.NoError(t, err)

	assert.True(t, resp.Maintenance)
	assert.Empty(t, resp.Durations)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SlotsForFreeFleet(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeMaintenanceRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		RentalType:    "jet_ski",
		Pickup:        "Fajardo",
		Date:          testDate,
		DurationHours: 8,
		JetSkis:       1,
	})
	require.NoError(t, err)

	// Восьмичасовая аренда в будний день помещается только со старта 09:00
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("17:00"), resp.Slots[0].EndTime)
}

func TestExecute_FleetBlocksSlots(t *testing.T) {
	// Все три гидроцикла заняты с 10:00 до 12:00
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		activeBooking("10:00", 2, 3, 0),
	}}
	uc := newTestUseCase(repo, &fakeMaintenanceRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		RentalType:    "jet_ski",
		Pickup:        "Fajardo",
		Date:          testDate,
		DurationHours: 1,
		JetSkis:       1,
	})
	require.NoError(t, err)

	starts := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		starts[slot.StartTime] = true
	}

	// Пересекающиеся старты выпадают, стыкующиеся - нет
	assert.False(t, starts["10:00"])
	assert.False(t, starts["11:45"])
	assert.True(t, starts["09:00"])
	assert.True(t, starts["12:00"])
}

func TestExecute_InactiveBookingsReleaseFleet(t *testing.T) {
	cancelled := activeBooking("10:00", 8, 3, 1)
	cancelled.Status = domain.StatusCancelledByCustomer
	repo := &fakeBookingRepo{bookings: []*domain.Booking{cancelled}}
	uc := newTestUseCase(repo, &fakeMaintenanceRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		RentalType:    "boat",
		Pickup:        "Fajardo",
		Destination:   ptr.Ptr("Icacos"),
		Date:          testDate,
		DurationHours: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_PastStartTimesSkippedToday(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeMaintenanceRepo{}, noopLogger{})
	// Запрос на сегодня в 14:00
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		RentalType:    "jet_ski",
		Pickup:        "Fajardo",
		Date:          testDate,
		DurationHours: 1,
		JetSkis:       1,
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("14:00"), resp.Slots[0].StartTime)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeMaintenanceRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		RentalType: "jet_ski",
		Pickup:     "Fajardo",
		Date:       testNow.AddDate(0, 0, -1),
		JetSkis:    1,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeMaintenanceRepo{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing destination", &Request{RentalType: "boat", Pickup: "Fajardo", Date: testDate}},
		{"zero jet skis", &Request{RentalType: "jet_ski", Pickup: "Fajardo", Date: testDate}},
		{"too many jet skis", &Request{RentalType: "jet_ski", Pickup: "Fajardo", Date: testDate, JetSkis: 4}},
		{"unknown pickup", &Request{RentalType: "jet_ski", Pickup: "Ponce", Date: testDate, JetSkis: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_DurationNotOffered(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeMaintenanceRepo{})

	// 15-минутная аренда не предлагается в Лукильо
	_, err := uc.Execute(context.Background(), &Request{
		RentalType:    "jet_ski",
		Pickup:        "Luquillo",
		Date:          testDate,
		DurationHours: 0.25,
		JetSkis:       1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
