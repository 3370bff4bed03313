package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	maintenanceRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/maintenance"
)

type fakeMaintenanceRepo struct {
	dates   []time.Time
	listErr error

	added     []time.Time
	addErr    error
	removed   []time.Time
	removeErr error
}

func (f *fakeMaintenanceRepo) ListFrom(_ context.Context, _ time.Time) ([]time.Time, error) {
	return f.dates, f.listErr
}

func (f *fakeMaintenanceRepo) Add(_ context.Context, date time.Time) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, date)
	return nil
}

func (f *fakeMaintenanceRepo) Remove(_ context.Context, date time.Time) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, date)
	return nil
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

var testNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func newTestService(repo *fakeMaintenanceRepo) *Service {
	return NewService(repo, noopLogger{}, &fakeTimeProvider{now: testNow})
}

func TestListUpcoming(t *testing.T) {
	repo := &fakeMaintenanceRepo{dates: []time.Time{
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}}

	dates, err := newTestService(repo).ListUpcoming(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-15", "2026-04-01"}, dates)
}

func TestAdd(t *testing.T) {
	repo := &fakeMaintenanceRepo{}
	svc := newTestService(repo)

	require.NoError(t, svc.Add(context.Background(), "2026-03-15"))
	require.Len(t, repo.added, 1)

	// Сегодняшняя дата допустима
	require.NoError(t, svc.Add(context.Background(), "2026-03-10"))
}

func TestAdd_Invalid(t *testing.T) {
	svc := newTestService(&fakeMaintenanceRepo{})

	err := svc.Add(context.Background(), "15-03-2026")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Add(context.Background(), "2026-03-09")
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestRemove(t *testing.T) {
	repo := &fakeMaintenanceRepo{}
	svc := newTestService(repo)

	require.NoError(t, svc.Remove(context.Background(), "2026-03-15"))
	assert.Len(t, repo.removed, 1)
}

func TestRemove_NotFound(t *testing.T) {
	repo := &fakeMaintenanceRepo{removeErr: maintenanceRepo.ErrDateNotFound}

	err := newTestService(repo).Remove(context.Background(), "2026-03-15")
	assert.ErrorIs(t, err, ErrDateNotFound)
}

func TestRemove_RepositoryError(t *testing.T) {
	repo := &fakeMaintenanceRepo{removeErr: errors.New("connection refused")}

	err := newTestService(repo).Remove(context.Background(), "2026-03-15")
	assert.ErrorIs(t, err, ErrInternal)
}
