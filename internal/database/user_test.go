package database

import (
	"testing"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newUserRepo(db.conn)

	user := &entity.User{
		ChannelID:     channel.ID,
		SlackUserID:   "U123456789",
		SlackUserName: "alice",
		DisplayName:   "Alice",
		IsActive:      true,
	}

	err := repo.Create(user)
	require.NoError(t, err, "Failed to create user")
	assert.NotZero(t, user.ID, "Expected user ID to be set after creation")

	// Same user twice in one channel violates the unique constraint
	err = repo.Create(&entity.User{
		ChannelID:     channel.ID,
		SlackUserID:   "U123456789",
		SlackUserName: "alice",
		DisplayName:   "Alice",
		IsActive:      true,
	})
	assert.Error(t, err, "Expected duplicate user creation to fail")
}

func TestUserRepository_GetByChannelAndSlackID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newUserRepo(db.conn)

	original := &entity.User{
		ChannelID:     channel.ID,
		SlackUserID:   "U123456789",
		SlackUserName: "alice",
		DisplayName:   "Alice",
		IsActive:      true,
	}
	err := repo.Create(original)
	require.NoError(t, err)

	found, err := repo.GetByChannelAndSlackID(channel.ID, "U123456789")
	require.NoError(t, err, "Failed to get user")
	require.NotNil(t, found, "Expected to find user")

	assert.Equal(t, original.SlackUserID, found.SlackUserID)
	assert.Equal(t, original.DisplayName, found.DisplayName)

	notFound, err := repo.GetByChannelAndSlackID(channel.ID, "UNKNOWN")
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestUserRepository_GetActiveUsersByChannel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newUserRepo(db.conn)

	ids := []string{"U1", "U2", "U3"}
	for _, id := range ids {
		err := repo.Create(&entity.User{
			ChannelID:     channel.ID,
			SlackUserID:   id,
			SlackUserName: "user-" + id,
			DisplayName:   "User " + id,
			IsActive:      true,
		})
		require.NoError(t, err, "Failed to create user %s", id)
	}

	users, err := repo.GetActiveUsersByChannel(channel.ID)
	require.NoError(t, err, "Failed to get active users")
	require.Len(t, users, 3)

	// Join order is stable: same-second joins fall back to id order.
	for i, user := range users {
		assert.Equal(t, ids[i], user.SlackUserID)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newUserRepo(db.conn)

	user := &entity.User{
		ChannelID:     channel.ID,
		SlackUserID:   "U123456789",
		SlackUserName: "alice",
		DisplayName:   "Alice",
		IsActive:      true,
	}
	err := repo.Create(user)
	require.NoError(t, err)

	err = repo.Delete(user.ID)
	require.NoError(t, err, "Failed to delete user")

	found, err := repo.GetByChannelAndSlackID(channel.ID, "U123456789")
	require.NoError(t, err)
	assert.Nil(t, found, "Expected user to be gone after delete")
}
