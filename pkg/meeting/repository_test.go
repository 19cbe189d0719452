package meeting

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hynux/meetlink/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) *RepositoryImpl {
	db := test_utils.SetupTestDB(t)
	return NewRepository(db)
}

func createTestRecord(summary string, createdAt time.Time) Record {
	return Record{
		Uid:           uuid.NewString(),
		Summary:       summary,
		Description:   "description of " + summary,
		AttendeeEmail: "attendee@example.com",
		StartTime:     time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2024, time.June, 1, 11, 0, 0, 0, time.UTC),
		MeetingLink:   "https://meet.google.com/abc-defg-hij",
		Status:        StatusSent,
		CreatedAt:     createdAt,
	}
}

func TestRepositoryImpl_StoreAndGetRecent(t *testing.T) {
	repository := setupTestRepository(t)
	ctx := context.Background()

	record := createTestRecord("Quarterly Review", time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repository.Store(ctx, record))

	records, err := repository.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	stored := records[0]
	assert.Equal(t, record.Uid, stored.Uid)
	assert.Equal(t, "Quarterly Review", stored.Summary)
	assert.Equal(t, "attendee@example.com", stored.AttendeeEmail)
	assert.Equal(t, StatusSent, stored.Status)
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", stored.MeetingLink)
	assert.True(t, stored.StartTime.Equal(record.StartTime))
	assert.True(t, stored.EndTime.Equal(record.EndTime))
	assert.True(t, stored.CreatedAt.Equal(record.CreatedAt))
}

func TestRepositoryImpl_GetRecentOrdersNewestFirst(t *testing.T) {
	repository := setupTestRepository(t)
	ctx := context.Background()

	base := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repository.Store(ctx, createTestRecord("Oldest", base)))
	require.NoError(t, repository.Store(ctx, createTestRecord("Newest", base.Add(2*time.Hour))))
	require.NoError(t, repository.Store(ctx, createTestRecord("Middle", base.Add(time.Hour))))

	records, err := repository.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Newest", records[0].Summary)
	assert.Equal(t, "Middle", records[1].Summary)
	assert.Equal(t, "Oldest", records[2].Summary)
}

func TestRepositoryImpl_GetRecentAppliesLimit(t *testing.T) {
	repository := setupTestRepository(t)
	ctx := context.Background()

	base := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repository.Store(ctx, createTestRecord("Meeting", base.Add(time.Duration(i)*time.Minute))))
	}

	records, err := repository.GetRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRepositoryImpl_GetRecentEmptyResult(t *testing.T) {
	repository := setupTestRepository(t)

	records, err := repository.GetRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
