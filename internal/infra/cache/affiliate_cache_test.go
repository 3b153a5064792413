package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

type fakeRepo struct {
	affiliates map[int64]*domain.Affiliate
	getCalls   int
}

func (f *fakeRepo) Create(_ context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error) {
	f.affiliates[affiliate.ID] = affiliate
	return affiliate, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Affiliate, error) {
	f.getCalls++
	return f.affiliates[id], nil
}

func (f *fakeRepo) UpdateSchedule(_ context.Context, id int64, schedule domain.AvailabilitySchedule) error {
	f.affiliates[id].Schedule = schedule
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{affiliates: map[int64]*domain.Affiliate{
		1: {ID: 1, UserID: 100, Schedule: domain.DefaultSchedule("UTC")},
	}}
}

func TestGetByID_ReadThrough(t *testing.T) {
	repo := newFakeRepo()
	cache, err := NewAffiliateCache(repo, 8, noopLogger{})
	require.NoError(t, err)

	first, err := cache.GetByID(context.Background(), 1)
	require.NoError(t, err)
	second, err := cache.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Same(t, first, second)
	// Второе чтение обслужено из кэша
	assert.Equal(t, 1, repo.getCalls)
}

func TestUpdateSchedule_InvalidatesCache(t *testing.T) {
	repo := newFakeRepo()
	cache, err := NewAffiliateCache(repo, 8, noopLogger{})
	require.NoError(t, err)

	_, err = cache.GetByID(context.Background(), 1)
	require.NoError(t, err)

	updated := domain.DefaultSchedule("UTC")
	updated.ScheduleSettings.MaxBookingDays = 60
	require.NoError(t, cache.UpdateSchedule(context.Background(), 1, updated))

	affiliate, err := cache.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 60, affiliate.Schedule.ScheduleSettings.MaxBookingDays)
	// После инвалидации чтение снова пошло в репозиторий
	assert.Equal(t, 2, repo.getCalls)
}

func TestCreate_SeedsCache(t *testing.T) {
	repo := newFakeRepo()
	cache, err := NewAffiliateCache(repo, 8, noopLogger{})
	require.NoError(t, err)

	created, err := cache.Create(context.Background(), &domain.Affiliate{ID: 2, UserID: 200})
	require.NoError(t, err)

	got, err := cache.GetByID(context.Background(), 2)
	require.NoError(t, err)

	assert.Same(t, created, got)
	assert.Equal(t, 0, repo.getCalls)
}
