package check_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	affiliateRepo "github.com/m04kA/SMC-AffiliateScheduler/internal/infra/storage/affiliate"
)

type fakeAffiliateRepo struct {
	affiliate *domain.Affiliate
	err       error
}

func (f *fakeAffiliateRepo) GetByID(_ context.Context, id int64) (*domain.Affiliate, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.affiliate == nil || f.affiliate.ID != id {
		return nil, affiliateRepo.ErrAffiliateNotFound
	}
	return f.affiliate, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// 2026-01-05 - понедельник, 2026-01-04 - воскресенье
var (
	monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
)

func testAffiliate() *domain.Affiliate {
	return &domain.Affiliate{
		ID:       1,
		UserID:   100,
		Timezone: "UTC",
		Schedule: domain.DefaultSchedule("UTC"),
	}
}

func TestExecute_AvailableSlot(t *testing.T) {
	uc := NewUseCase(&fakeAffiliateRepo{affiliate: testAffiliate()}, noopLogger{})

	result, err := uc.Execute(context.Background(), &Request{
		AffiliateID: 1,
		Date:        monday,
		TimeSlot:    "morning",
	})

	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Nil(t, result.Code)
	assert.Nil(t, result.Message)
}

func TestExecute_UnavailableSlotCarriesCode(t *testing.T) {
	uc := NewUseCase(&fakeAffiliateRepo{affiliate: testAffiliate()}, noopLogger{})

	// Воскресенье выключено в дефолтном шаблоне
	result, err := uc.Execute(context.Background(), &Request{
		AffiliateID: 1,
		Date:        sunday,
		TimeSlot:    "evening",
	})

	require.NoError(t, err)
	assert.False(t, result.Available)
	require.NotNil(t, result.Code)
	assert.Equal(t, CodeTimeslotUnavailable, *result.Code)
	require.NotNil(t, result.Message)
	assert.Equal(t, "Time slot evening is not available on 2026-01-04", *result.Message)
}

func TestExecute_BlockedDate(t *testing.T) {
	affiliate := testAffiliate()
	affiliate.Schedule.DateExceptions = []domain.DateException{{
		ID:   "exc-1",
		Date: monday,
		Type: domain.ExceptionBlock,
	}}
	uc := NewUseCase(&fakeAffiliateRepo{affiliate: affiliate}, noopLogger{})

	result, err := uc.Execute(context.Background(), &Request{
		AffiliateID: 1,
		Date:        monday,
		TimeSlot:    "morning",
	})

	require.NoError(t, err)
	assert.False(t, result.Available)
}

func TestExecute_InvalidSlot(t *testing.T) {
	uc := NewUseCase(&fakeAffiliateRepo{affiliate: testAffiliate()}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AffiliateID: 1,
		Date:        monday,
		TimeSlot:    "midnight",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AffiliateNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAffiliateRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AffiliateID: 42,
		Date:        monday,
		TimeSlot:    "morning",
	})

	assert.ErrorIs(t, err, ErrAffiliateNotFound)
}

func TestExecute_RepositoryErrorPropagates(t *testing.T) {
	uc := NewUseCase(&fakeAffiliateRepo{err: errors.New("connection refused")}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AffiliateID: 1,
		Date:        monday,
		TimeSlot:    "morning",
	})

	assert.ErrorIs(t, err, ErrInternal)
}
