package database

import (
	"testing"
	"time"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestSettings(channelID int64) *entity.Settings {
	return &entity.Settings{
		ChannelID:            channelID,
		NotificationTime:     domain.DefaultNotificationTime,
		NotificationDay:      domain.DefaultNotificationDay,
		IsEnabled:            true,
		CycleWeeks:           domain.DefaultCycleWeeks,
		MinPerWeek:           domain.DefaultMinPerWeek,
		MaxPerWeek:           domain.DefaultMaxPerWeek,
		AvoidImmediateRepeat: true,
		NoDuplicatePerWeek:   true,
		QuarterlyPerCycle:    true,
		CycleStartDate:       time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
	}
}

func TestSettingsRepository_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newSettingsRepo(db.conn)

	settings := defaultTestSettings(channel.ID)
	err := repo.Create(settings)
	require.NoError(t, err, "Failed to create settings")
	assert.NotZero(t, settings.ID)

	found, err := repo.GetByChannelID(channel.ID)
	require.NoError(t, err, "Failed to get settings")
	require.NotNil(t, found, "Expected to find settings")

	assert.Equal(t, domain.DefaultNotificationTime, found.NotificationTime)
	assert.Equal(t, domain.DefaultNotificationDay, found.NotificationDay)
	assert.Equal(t, domain.DefaultCycleWeeks, found.CycleWeeks)
	assert.Equal(t, domain.DefaultMinPerWeek, found.MinPerWeek)
	assert.Equal(t, domain.DefaultMaxPerWeek, found.MaxPerWeek)
	assert.True(t, found.AvoidImmediateRepeat)
	assert.True(t, found.NoDuplicatePerWeek)
	assert.True(t, found.QuarterlyPerCycle)
	assert.True(t, found.IsEnabled)

	// Not found for unknown channel
	notFound, err := repo.GetByChannelID(99999)
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestSettingsRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newSettingsRepo(db.conn)

	settings := defaultTestSettings(channel.ID)
	err := repo.Create(settings)
	require.NoError(t, err)

	settings.NotificationTime = "17:30"
	settings.NotificationDay = domain.Friday
	settings.CycleWeeks = 8
	settings.MinPerWeek = 2
	settings.MaxPerWeek = 4
	settings.AvoidImmediateRepeat = false
	err = repo.Update(settings)
	require.NoError(t, err, "Failed to update settings")

	found, err := repo.GetByChannelID(channel.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "17:30", found.NotificationTime)
	assert.Equal(t, domain.Friday, found.NotificationDay)
	assert.Equal(t, 8, found.CycleWeeks)
	assert.Equal(t, 2, found.MinPerWeek)
	assert.Equal(t, 4, found.MaxPerWeek)
	assert.False(t, found.AvoidImmediateRepeat)
}

func TestSettingsRepository_GetEnabled(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channelRepo := newChannelRepo(db.conn)
	repo := newSettingsRepo(db.conn)

	for i, slackID := range []string{"C1", "C2", "C3"} {
		channel := &entity.Channel{
			SlackChannelID:   slackID,
			SlackChannelName: "channel-" + slackID,
			SlackTeamID:      "T123456789",
			IsActive:         true,
		}
		err := channelRepo.Create(channel)
		require.NoError(t, err)

		settings := defaultTestSettings(channel.ID)
		settings.IsEnabled = i != 1 // disable the second one
		err = repo.Create(settings)
		require.NoError(t, err)
	}

	enabled, err := repo.GetEnabled()
	require.NoError(t, err, "Failed to get enabled settings")
	assert.Len(t, enabled, 2)
}

func TestSettingsRepository_SetEnabled(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newSettingsRepo(db.conn)

	settings := defaultTestSettings(channel.ID)
	err := repo.Create(settings)
	require.NoError(t, err)

	err = repo.SetEnabled(channel.ID, false)
	require.NoError(t, err, "Failed to disable settings")

	found, err := repo.GetByChannelID(channel.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.IsEnabled)

	err = repo.SetEnabled(channel.ID, true)
	require.NoError(t, err, "Failed to re-enable settings")

	found, err = repo.GetByChannelID(channel.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.IsEnabled)
}
