package get_quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	discountRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/discount"
	"github.com/caribeazul/CAB-BookingService/pkg/ptr"
)

type fakeDiscountRepo struct {
	code *domain.DiscountCode
	err  error
}

func (f *fakeDiscountRepo) GetByCode(_ context.Context, _ string) (*domain.DiscountCode, error) {
	return f.code, f.err
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

func newTestUseCase(repo DiscountRepository) *UseCase {
	uc := NewUseCase(repo, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_BoatQuote(t *testing.T) {
	req := &Request{
		RentalType:    "boat",
		Pickup:        "Fajardo",
		Destination:   ptr.Ptr("Icacos"),
		DurationHours: 3,
		People:        4,
		WaterSports:   map[string]int{"Snorkelling": 1},
	}

	resp, err := newTestUseCase(&fakeDiscountRepo{}).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 380.0, resp.Subtotal, 0.001)
	assert.InDelta(t, 43.70, resp.Tax, 0.001)
	assert.InDelta(t, 423.70, resp.Total, 0.001)
	assert.False(t, resp.DiscountApplied)
	assert.False(t, resp.PackageApplied)
	assert.Empty(t, resp.Amenities)
}

func TestExecute_PackageAndAmenities(t *testing.T) {
	req := &Request{
		RentalType:    "boat_jet_ski",
		Pickup:        "Fajardo",
		Destination:   ptr.Ptr("Icacos"),
		DurationHours: 6,
		JetSkis:       1,
		People:        4,
	}

	resp, err := newTestUseCase(&fakeDiscountRepo{}).Execute(context.Background(), req)
	require.NoError(t, err)

	// Полный день: пакетный тариф и бесплатные удобства
	assert.True(t, resp.PackageApplied)
	assert.NotEmpty(t, resp.Amenities)
	assert.InDelta(t, 1275.0, resp.Subtotal, 0.001)
}

func TestExecute_DiscountCodeApplied(t *testing.T) {
	repo := &fakeDiscountRepo{code: &domain.DiscountCode{
		Code:    "VERANO10",
		Percent: 10,
		Active:  true,
	}}

	req := &Request{
		RentalType:    "jet_ski",
		Pickup:        "Fajardo",
		DurationHours: 1,
		JetSkis:       1,
		People:        2,
		DiscountCode:  ptr.Ptr("VERANO10"),
	}

	resp, err := newTestUseCase(repo).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.DiscountApplied)
	// 120 -> 133.80 с налогом -> 120.42 с промокодом 10%
	assert.InDelta(t, 120.42, resp.Total, 0.001)
	assert.InDelta(t, 13.38, resp.DiscountAmount, 0.001)
}

func TestExecute_UnknownCodeDoesNotFailQuote(t *testing.T) {
	repo := &fakeDiscountRepo{err: discountRepo.ErrCodeNotFound}

	req := &Request{
		RentalType:    "jet_ski",
		Pickup:        "Fajardo",
		DurationHours: 1,
		JetSkis:       1,
		People:        2,
		DiscountCode:  ptr.Ptr("NADA"),
	}

	resp, err := newTestUseCase(repo).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.DiscountApplied)
	assert.InDelta(t, 133.80, resp.Total, 0.001)
}

func TestExecute_UnusableCodeNotApplied(t *testing.T) {
	repo := &fakeDiscountRepo{code: &domain.DiscountCode{
		Code:    "VIEJO",
		Percent: 10,
		Active:  false,
	}}

	req := &Request{
		RentalType:    "jet_ski",
		Pickup:        "Fajardo",
		DurationHours: 1,
		JetSkis:       1,
		People:        2,
		DiscountCode:  ptr.Ptr("VIEJO"),
	}

	resp, err := newTestUseCase(repo).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.DiscountApplied)
}

func TestExecute_RepositoryErrorFailsQuote(t *testing.T) {
	repo := &fakeDiscountRepo{err: errors.New("connection refused")}

	req := &Request{
		RentalType:    "jet_ski",
		Pickup:        "Fajardo",
		DurationHours: 1,
		JetSkis:       1,
		People:        2,
		DiscountCode:  ptr.Ptr("X"),
	}

	_, err := newTestUseCase(repo).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"unknown rental type", &Request{RentalType: "submarine", Pickup: "Fajardo", DurationHours: 1}},
		{"unknown pickup", &Request{RentalType: "jet_ski", Pickup: "Ponce", DurationHours: 1}},
		{"unknown sport", &Request{RentalType: "boat", Pickup: "Fajardo", Destination: ptr.Ptr("Icacos"), DurationHours: 1, WaterSports: map[string]int{"Jetpack": 1}}},
		{"zero duration", &Request{RentalType: "jet_ski", Pickup: "Fajardo", JetSkis: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestUseCase(&fakeDiscountRepo{}).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
