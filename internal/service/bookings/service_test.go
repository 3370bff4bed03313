package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	bookingRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/booking"
	"github.com/caribeazul/CAB-BookingService/internal/service/bookings/models"
	"github.com/caribeazul/CAB-BookingService/pkg/ptr"
	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	booking  *domain.Booking
	filtered []*domain.Booking
	getErr   error
	listErr  error

	cancelled       bool
	cancelledStatus domain.BookingStatus
	cancelledReason string
	cancelErr       error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.filtered, f.listErr
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ string, status domain.BookingStatus, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = true
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func storedBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            "booking-1",
		RentalType:    domain.RentalJetSki,
		Pickup:        domain.PickupFajardo,
		BookingDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
		DurationHours: 1,
		JetSkis:       1,
		People:        2,
		Status:        status,
		CustomerName:  "Ana Rivera",
		CustomerEmail: "ana@example.com",
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking(domain.StatusConfirmed)}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)

	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "jet_ski", resp.RentalType)
	assert.Equal(t, "2026-03-02", resp.BookingDate)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_Errors(t *testing.T) {
	svc := NewService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, noopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByID(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	svc = NewService(&fakeBookingRepo{getErr: errors.New("connection refused")}, noopLogger{})
	_, err = svc.GetByID(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestList(t *testing.T) {
	repo := &fakeBookingRepo{filtered: []*domain.Booking{storedBooking(domain.StatusConfirmed)}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "booking-1", resp.Bookings[0].ID)
}

func TestList_InvalidFilter(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, noopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("teleported"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{
		Pickup: ptr.Ptr("Ponce"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_ByCustomer(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking(domain.StatusConfirmed)}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
		CancellationReason: "change of plans",
	})
	require.NoError(t, err)

	assert.True(t, repo.cancelled)
	assert.Equal(t, domain.StatusCancelledByCustomer, repo.cancelledStatus)
	assert.Equal(t, "change of plans", repo.cancelledReason)
}

func TestCancel_ByOperator(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking(domain.StatusPendingPayment)}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
		CancellationReason: "weather conditions",
		ByOperator:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByOperator, repo.cancelledStatus)
}

func TestCancel_NotCancellable(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusPaymentFailed,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledByOperator,
	} {
		repo := &fakeBookingRepo{booking: storedBooking(status)}
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{})
		assert.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
		assert.False(t, repo.cancelled)
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &fakeBookingRepo{booking: storedBooking(domain.StatusConfirmed)}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
		CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, noopLogger{})

	err := svc.Cancel(context.Background(), "missing", &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
