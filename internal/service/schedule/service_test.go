package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	affiliateRepo "github.com/m04kA/SMC-AffiliateScheduler/internal/infra/storage/affiliate"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/service/schedule/models"
	"github.com/m04kA/SMC-AffiliateScheduler/pkg/ptr"
)

const (
	ownerID    int64 = 100
	strangerID int64 = 200
)

type fakeAffiliateRepo struct {
	affiliate *domain.Affiliate
	getErr    error
	updateErr error
	saved     *domain.AvailabilitySchedule
}

func (f *fakeAffiliateRepo) GetByID(_ context.Context, id int64) (*domain.Affiliate, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.affiliate == nil || f.affiliate.ID != id {
		return nil, affiliateRepo.ErrAffiliateNotFound
	}
	return f.affiliate, nil
}

func (f *fakeAffiliateRepo) UpdateSchedule(_ context.Context, _ int64, schedule domain.AvailabilitySchedule) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.saved = &schedule
	return nil
}

type fakeConflictValidator struct {
	conflicts []*domain.Order
	err       error
}

func (f *fakeConflictValidator) ConflictsForException(_ context.Context, _ int64, _ domain.DateException) ([]*domain.Order, error) {
	return f.conflicts, f.err
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

var testNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeAffiliateRepo, validator *fakeConflictValidator) *Service {
	svc := NewService(repo, validator, noopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: testNow}
	return svc
}

func testAffiliate() *domain.Affiliate {
	return &domain.Affiliate{
		ID:       1,
		UserID:   ownerID,
		Name:     "Чистый дом",
		Timezone: "UTC",
		Schedule: domain.DefaultSchedule("UTC"),
	}
}

func TestGetSchedule_Owner(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	result, err := svc.GetSchedule(context.Background(), 1, ownerID, false)

	require.NoError(t, err)
	assert.Len(t, result.WeeklyTemplate, 7)
	assert.Empty(t, result.DateExceptions)
	assert.Equal(t, domain.DefaultMaxBookingDays, result.ScheduleSettings.MaxBookingDays)
}

func TestGetSchedule_AccessDenied(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	_, err := svc.GetSchedule(context.Background(), 1, strangerID, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Администратор проходит проверку владельца
	_, err = svc.GetSchedule(context.Background(), 1, strangerID, true)
	assert.NoError(t, err)
}

func TestGetSchedule_NotFound(t *testing.T) {
	repo := &fakeAffiliateRepo{}
	svc := newTestService(repo, &fakeConflictValidator{})

	_, err := svc.GetSchedule(context.Background(), 42, ownerID, false)

	assert.ErrorIs(t, err, ErrAffiliateNotFound)
}

func TestUpdateTemplate_MergesOnlyGivenDays(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.UpdateTemplateRequest{
		UserID: ownerID,
		Days: map[string]models.DayRulePatch{
			"sunday": {
				Enabled:   ptr.Ptr(true),
				TimeSlots: &models.SlotMapPatch{Morning: ptr.Ptr(true)},
			},
			"monday": {
				TimeSlots: &models.SlotMapPatch{Evening: ptr.Ptr(false)},
			},
		},
	}

	require.NoError(t, svc.UpdateTemplate(context.Background(), 1, req))
	require.NotNil(t, repo.saved)

	sunday := repo.saved.WeeklyTemplate[domain.WeekdaySunday]
	assert.True(t, sunday.Enabled)
	assert.True(t, sunday.TimeSlots.Morning)
	// Не тронутые патчем слоты воскресенья сохранили прежние значения
	assert.False(t, sunday.TimeSlots.Evening)

	monday := repo.saved.WeeklyTemplate[domain.WeekdayMonday]
	assert.True(t, monday.Enabled)
	assert.True(t, monday.TimeSlots.Morning)
	assert.False(t, monday.TimeSlots.Evening)

	// Дни, которых нет в запросе, не изменились
	tuesday := repo.saved.WeeklyTemplate[domain.WeekdayTuesday]
	assert.True(t, tuesday.Enabled)
	assert.True(t, tuesday.TimeSlots.AllEnabled())
}

func TestUpdateTemplate_InvalidDayName(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.UpdateTemplateRequest{
		UserID: ownerID,
		Days: map[string]models.DayRulePatch{
			"funday": {Enabled: ptr.Ptr(true)},
		},
	}

	err := svc.UpdateTemplate(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ErrInvalidDayName)
	assert.Nil(t, repo.saved)
}

func TestUpdateTemplate_EmptyRequest(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	err := svc.UpdateTemplate(context.Background(), 1, &models.UpdateTemplateRequest{UserID: ownerID})

	assert.ErrorIs(t, err, ErrEmptyTemplate)
}

func TestUpdateTemplate_DoesNotMutateCachedSchedule(t *testing.T) {
	affiliate := testAffiliate()
	repo := &fakeAffiliateRepo{affiliate: affiliate}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.UpdateTemplateRequest{
		UserID: ownerID,
		Days: map[string]models.DayRulePatch{
			"monday": {Enabled: ptr.Ptr(false)},
		},
	}

	require.NoError(t, svc.UpdateTemplate(context.Background(), 1, req))

	// Экземпляр из репозитория (потенциально из кэша) не изменился
	assert.True(t, affiliate.Schedule.WeeklyTemplate[domain.WeekdayMonday].Enabled)
	assert.False(t, repo.saved.WeeklyTemplate[domain.WeekdayMonday].Enabled)
}

func TestAddException_Block(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.AddExceptionRequest{
		UserID: ownerID,
		Date:   testNow.AddDate(0, 0, 7),
		Type:   "block",
		Reason: ptr.Ptr("инвентаризация"),
	}

	result, err := svc.AddException(context.Background(), 1, req)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Exception.ID)
	assert.Equal(t, "block", result.Exception.Type)
	assert.Nil(t, result.Exception.TimeSlots)
	assert.Nil(t, result.Warning)

	require.NotNil(t, repo.saved)
	require.Len(t, repo.saved.DateExceptions, 1)
	assert.Equal(t, domain.ExceptionBlock, repo.saved.DateExceptions[0].Type)
}

func TestAddException_OverrideRequiresCompleteSlotMap(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.AddExceptionRequest{
		UserID:    ownerID,
		Date:      testNow.AddDate(0, 0, 7),
		Type:      "override",
		TimeSlots: &models.SlotMapPatch{Morning: ptr.Ptr(true)},
	}

	_, err := svc.AddException(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrIncompleteOverride)
	assert.Nil(t, repo.saved)
}

func TestAddException_InvalidType(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.AddExceptionRequest{
		UserID: ownerID,
		Date:   testNow.AddDate(0, 0, 7),
		Type:   "holiday",
	}

	_, err := svc.AddException(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrInvalidExceptionType)
}

func TestAddException_PastDate(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.AddExceptionRequest{
		UserID: ownerID,
		Date:   testNow.AddDate(0, 0, -1),
		Type:   "block",
	}

	_, err := svc.AddException(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrPastDate)
}

func TestAddException_TodayIsAllowed(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.AddExceptionRequest{
		UserID: ownerID,
		Date:   testNow,
		Type:   "block",
	}

	_, err := svc.AddException(context.Background(), 1, req)

	assert.NoError(t, err)
}

func TestAddException_ReplacesSameDate(t *testing.T) {
	affiliate := testAffiliate()
	date := testNow.AddDate(0, 0, 7)
	affiliate.Schedule.DateExceptions = []domain.DateException{{
		ID:   "old-exc",
		Date: date,
		Type: domain.ExceptionBlock,
	}}
	repo := &fakeAffiliateRepo{affiliate: affiliate}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.AddExceptionRequest{
		UserID:    ownerID,
		Date:      date,
		Type:      "override",
		TimeSlots: &models.SlotMapPatch{Morning: ptr.Ptr(true), Afternoon: ptr.Ptr(false), Evening: ptr.Ptr(false)},
	}

	result, err := svc.AddException(context.Background(), 1, req)

	require.NoError(t, err)
	require.Len(t, repo.saved.DateExceptions, 1)
	assert.NotEqual(t, "old-exc", result.Exception.ID)
	assert.Equal(t, domain.ExceptionOverride, repo.saved.DateExceptions[0].Type)
}

func TestAddException_WarnsAboutAffectedOrders(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	validator := &fakeConflictValidator{conflicts: []*domain.Order{
		{ID: 1, Status: domain.StatusPending, PickupTime: domain.SlotMorning},
	}}
	svc := newTestService(repo, validator)

	req := &models.AddExceptionRequest{
		UserID: ownerID,
		Date:   testNow.AddDate(0, 0, 7),
		Type:   "block",
	}

	result, err := svc.AddException(context.Background(), 1, req)

	require.NoError(t, err)
	require.NotNil(t, result.Warning)
	assert.Equal(t, "1 existing order would be affected by this exception", *result.Warning)

	// Предупреждение не блокирует сохранение исключения
	require.NotNil(t, repo.saved)
	assert.Len(t, repo.saved.DateExceptions, 1)
}

func TestAddException_ConflictCheckFailurePropagates(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	validator := &fakeConflictValidator{err: errors.New("order store down")}
	svc := newTestService(repo, validator)

	req := &models.AddExceptionRequest{
		UserID: ownerID,
		Date:   testNow.AddDate(0, 0, 7),
		Type:   "block",
	}

	_, err := svc.AddException(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, repo.saved)
}

func TestRemoveException(t *testing.T) {
	affiliate := testAffiliate()
	affiliate.Schedule.DateExceptions = []domain.DateException{
		{ID: "exc-1", Date: testNow.AddDate(0, 0, 5), Type: domain.ExceptionBlock},
		{ID: "exc-2", Date: testNow.AddDate(0, 0, 6), Type: domain.ExceptionBlock},
	}
	repo := &fakeAffiliateRepo{affiliate: affiliate}
	svc := newTestService(repo, &fakeConflictValidator{})

	require.NoError(t, svc.RemoveException(context.Background(), 1, "exc-1", ownerID, false))

	require.NotNil(t, repo.saved)
	require.Len(t, repo.saved.DateExceptions, 1)
	assert.Equal(t, "exc-2", repo.saved.DateExceptions[0].ID)
}

func TestRemoveException_UnknownID(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	err := svc.RemoveException(context.Background(), 1, "no-such-exception", ownerID, false)

	assert.ErrorIs(t, err, ErrExceptionNotFound)
}

func TestUpdateSettings_Partial(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.UpdateSettingsRequest{
		UserID:         ownerID,
		MaxBookingDays: ptr.Ptr(60),
	}

	require.NoError(t, svc.UpdateSettings(context.Background(), 1, req))

	require.NotNil(t, repo.saved)
	assert.Equal(t, 60, repo.saved.ScheduleSettings.MaxBookingDays)
	// Не переданные поля не изменились
	assert.Equal(t, domain.DefaultAdvanceBookingDays, repo.saved.ScheduleSettings.AdvanceBookingDays)
	assert.Equal(t, "UTC", repo.saved.ScheduleSettings.Timezone)
}

func TestUpdateSettings_OutOfRange(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	tests := []struct {
		name    string
		req     *models.UpdateSettingsRequest
		wantErr error
	}{
		{"advance too large", &models.UpdateSettingsRequest{UserID: ownerID, AdvanceBookingDays: ptr.Ptr(31)}, ErrAdvanceDaysOutOfRange},
		{"advance negative", &models.UpdateSettingsRequest{UserID: ownerID, AdvanceBookingDays: ptr.Ptr(-1)}, ErrAdvanceDaysOutOfRange},
		{"max too large", &models.UpdateSettingsRequest{UserID: ownerID, MaxBookingDays: ptr.Ptr(91)}, ErrMaxDaysOutOfRange},
		{"max zero", &models.UpdateSettingsRequest{UserID: ownerID, MaxBookingDays: ptr.Ptr(0)}, ErrMaxDaysOutOfRange},
		{"nothing to update", &models.UpdateSettingsRequest{UserID: ownerID}, ErrNoSettingsProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateSettings(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateSettings_Boundaries(t *testing.T) {
	repo := &fakeAffiliateRepo{affiliate: testAffiliate()}
	svc := newTestService(repo, &fakeConflictValidator{})

	req := &models.UpdateSettingsRequest{
		UserID:             ownerID,
		AdvanceBookingDays: ptr.Ptr(0),
		MaxBookingDays:     ptr.Ptr(90),
	}

	require.NoError(t, svc.UpdateSettings(context.Background(), 1, req))
	assert.Equal(t, 0, repo.saved.ScheduleSettings.AdvanceBookingDays)
	assert.Equal(t, 90, repo.saved.ScheduleSettings.MaxBookingDays)
}
