package create_checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	discountRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/discount"
	"github.com/caribeazul/CAB-BookingService/internal/integrations/geoip"
	"github.com/caribeazul/CAB-BookingService/internal/integrations/payments"
	"github.com/caribeazul/CAB-BookingService/pkg/ptr"
	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	active  []*domain.Booking
	created *domain.Booking

	createErr error
	activeErr error

	statusUpdates map[string]domain.BookingStatus
	intents       map[string]string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		statusUpdates: make(map[string]domain.BookingStatus),
		intents:       make(map[string]string),
	}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.CreatedAt = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.active, f.activeErr
}

func (f *fakeBookingRepo) SetPaymentIntent(_ context.Context, id, intentID string) error {
	f.intents[id] = intentID
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	f.statusUpdates[id] = status
	return nil
}

type fakeDiscountRepo struct {
	code *domain.DiscountCode
	err  error
}

func (f *fakeDiscountRepo) GetByCode(_ context.Context, _ string) (*domain.DiscountCode, error) {
	return f.code, f.err
}

type fakeMaintenanceRepo struct {
	exists bool
	err    error

	tx    *fakeTxManager
	sawTx bool
}

func (f *fakeMaintenanceRepo) Exists(_ context.Context, _ time.Time) (bool, error) {
	if f.tx != nil {
		f.sawTx = f.tx.inTx
	}
	return f.exists, f.err
}

type fakePaymentsClient struct {
	intent *payments.Intent
	err    error
}

func (f *fakePaymentsClient) CreateIntent(bookingID string, amountCents int64) (*payments.Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.intent != nil {
		return f.intent, nil
	}
	return &payments.Intent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		AmountCents:  amountCents,
		Status:       "requires_payment_method",
	}, nil
}

type fakeGeoIPClient struct {
	location *geoip.Location
	err      error
}

func (f *fakeGeoIPClient) LookupWithGracefulDegradation(_ context.Context, _ string) (*geoip.Location, error) {
	return f.location, f.err
}

type fakeTxManager struct {
	inTx bool
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.inTx = true
	defer func() { m.inTx = false }()
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type fakeIDGenerator struct{}

func (fakeIDGenerator) NewID() string {
	return "booking-test-id"
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// 2026-03-02 понедельник
var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	bookings    *fakeBookingRepo
	discounts   *fakeDiscountRepo
	maintenance *fakeMaintenanceRepo
	payments    *fakePaymentsClient
	geoip       *fakeGeoIPClient
	useCase     *UseCase
}

func newTestEnv() *testEnv {
	tx := &fakeTxManager{}
	env := &testEnv{
		bookings:    newFakeBookingRepo(),
		discounts:   &fakeDiscountRepo{},
		maintenance: &fakeMaintenanceRepo{tx: tx},
		payments:    &fakePaymentsClient{},
		geoip:       &fakeGeoIPClient{err: geoip.ErrServiceDegraded},
	}

	env.useCase = NewUseCase(
		env.bookings,
		env.discounts,
		env.maintenance,
		env.payments,
		env.geoip,
		tx,
		noopLogger{},
	)
	env.useCase.idGenerator = fakeIDGenerator{}
	env.useCase.timeProvider = &fakeTimeProvider{now: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)}

	return env
}

func validRequest() *Request {
	return &Request{
		RentalType:    "jet_ski",
		Pickup:        "Fajardo",
		Date:          testDate,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 1,
		JetSkis:       1,
		People:        2,
		CustomerName:  "Ana Rivera",
		CustomerEmail: "ana@example.com",
	}
}

func TestExecute_HappyPath(t *testing.T) {
	env := newTestEnv()

	resp, err := env.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "booking-test-id", resp.BookingID)
	assert.Equal(t, string(domain.StatusPendingPayment), resp.Status)
	assert.Equal(t, "pi_test_secret", resp.ClientSecret)
	assert.InDelta(t, 120.0, resp.Subtotal, 0.001)
	assert.InDelta(t, 133.80, resp.Total, 0.001)

	// Бронирование сохранено и intent привязан
	require.NotNil(t, env.bookings.created)
	assert.Equal(t, domain.StatusPendingPayment, env.bookings.created.Status)
	assert.Equal(t, "pi_test", env.bookings.intents["booking-test-id"])
}

func TestExecute_ViolationsAggregated(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.JetSkis = 5                                // сверх лимита
	req.People = 20                                // сверх вместимости
	req.WaterSports = map[string]int{"Fishing": 9} // сверх лимита участников
	req.StartTime = types.TimeString("10:07")      // не кратно 15 минутам

	_, err := env.useCase.Execute(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ErrorIs(t, err, ErrValidation)
	assert.GreaterOrEqual(t, len(validationErr.Violations), 4)
}

func TestExecute_DateInPast(t *testing.T) {
	env := newTestEnv()

	req := validRequest()
	req.Date = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := env.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExecute_MaintenanceDate(t *testing.T) {
	env := newTestEnv()
	env.maintenance.exists = true

	_, err := env.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrMaintenanceDate)
	assert.Nil(t, env.bookings.created)
}

func TestExecute_MaintenanceCheckedInTransaction(t *testing.T) {
	// Дата, добавленная оператором параллельно, не должна проскочить:
	// проверка идёт в той же сериализуемой транзакции, что и проверка флота
	env := newTestEnv()

	_, err := env.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, env.maintenance.sawTx)
}

func TestExecute_FleetUnavailable(t *testing.T) {
	env := newTestEnv()
	env.bookings.active = []*domain.Booking{
		{
			StartTime:     types.TimeString("10:00"),
			DurationHours: 2,
			JetSkis:       3,
			Status:        domain.StatusConfirmed,
		},
	}

	_, err := env.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFleetUnavailable)
	assert.Nil(t, env.bookings.created)
}

func TestExecute_UnknownDiscountCodeDoesNotBlock(t *testing.T) {
	// Невалидный промокод не блокирует оформление:
	// бронирование создаётся без скидки, причина отказа уходит в ответ
	env := newTestEnv()
	env.discounts.err = discountRepo.ErrCodeNotFound

	req := validRequest()
	req.DiscountCode = ptr.Ptr("NADA")

	resp, err := env.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 133.80, resp.Total, 0.001)
	assert.False(t, resp.DiscountApplied)
	require.NotNil(t, resp.DiscountWarning)
	assert.Contains(t, *resp.DiscountWarning, "not found")
	assert.Nil(t, env.bookings.created.DiscountCode)
}

func TestExecute_UnusableDiscountCodeDoesNotBlock(t *testing.T) {
	env := newTestEnv()
	env.discounts.code = &domain.DiscountCode{Code: "VIEJO", Percent: 10, Active: false}

	req := validRequest()
	req.DiscountCode = ptr.Ptr("VIEJO")

	resp, err := env.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 133.80, resp.Total, 0.001)
	assert.False(t, resp.DiscountApplied)
	require.NotNil(t, resp.DiscountWarning)
	assert.Contains(t, *resp.DiscountWarning, "inactive")
	assert.Nil(t, env.bookings.created.DiscountCode)
}

func TestExecute_DiscountRepositoryError(t *testing.T) {
	// Недоступная база - не то же самое, что невалидный код
	env := newTestEnv()
	env.discounts.err = errors.New("connection refused")

	req := validRequest()
	req.DiscountCode = ptr.Ptr("VERANO10")

	_, err := env.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_DiscountCodeApplied(t *testing.T) {
	env := newTestEnv()
	env.discounts.code = &domain.DiscountCode{Code: "VERANO10", Percent: 10, Active: true}

	req := validRequest()
	req.DiscountCode = ptr.Ptr("verano10")

	resp, err := env.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	// 120 -> 133.80 с налогом -> 120.42 с промокодом
	assert.InDelta(t, 120.42, resp.Total, 0.001)
	assert.True(t, resp.DiscountApplied)
	assert.Nil(t, resp.DiscountWarning)
	require.NotNil(t, env.bookings.created.DiscountCode)
	assert.Equal(t, "VERANO10", *env.bookings.created.DiscountCode)
}

func TestExecute_PaymentIntentFailureReleasesFleet(t *testing.T) {
	env := newTestEnv()
	env.payments.err = errors.New("stripe is down")

	_, err := env.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPaymentIntent)

	// Бронирование без intent переводится в payment_failed и освобождает флот
	assert.Equal(t, domain.StatusPaymentFailed, env.bookings.statusUpdates["booking-test-id"])
}

func TestExecute_ResidentDiscountDroppedOutsidePR(t *testing.T) {
	env := newTestEnv()
	env.geoip = &fakeGeoIPClient{location: &geoip.Location{IP: "1.2.3.4", CountryCode: "US"}}
	env.useCase.geoipClient = env.geoip

	req := validRequest()
	req.ResidentDiscount = true
	req.ClientIP = "1.2.3.4"

	resp, err := env.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, env.bookings.created.ResidentDiscount)
	assert.InDelta(t, 133.80, resp.Total, 0.001)
}

func TestExecute_ResidentDiscountKeptWhenGeoIPDegraded(t *testing.T) {
	// Geoip недоступен - верим заявлению клиента
	env := newTestEnv()

	req := validRequest()
	req.ResidentDiscount = true
	req.ClientIP = "1.2.3.4"

	resp, err := env.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, env.bookings.created.ResidentDiscount)
	assert.InDelta(t, 133.80*0.95, resp.Total, 0.001)
}

func TestExecute_InvalidInput(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing name", func(r *Request) { r.CustomerName = "  " }},
		{"bad email", func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{"missing start time", func(r *Request) { r.StartTime = "" }},
		{"unknown rental type", func(r *Request) { r.RentalType = "submarine" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.useCase.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
