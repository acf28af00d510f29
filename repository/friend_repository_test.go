package repository

import (
	"context"
	"testing"

	"pongseed/models"
	"pongseed/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTwoUsers(t *testing.T, repo *UserRepository) (*models.User, *models.User) {
	ctx := context.Background()

	user1, err := repo.Create(ctx, testutil.CreateTestUser("left"))
	require.NoError(t, err)
	require.NotNil(t, user1)

	user2, err := repo.Create(ctx, testutil.CreateTestUser("right"))
	require.NoError(t, err)
	require.NotNil(t, user2)

	return user1, user2
}

func TestFriendRepository_Create(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewFriendRepository(testDB.DB)
	ctx := context.Background()

	user1, user2 := setupTwoUsers(t, userRepo)

	t.Run("successful creation", func(t *testing.T) {
		friendship := &models.Friendship{UserID: user1.ID, FriendID: user2.ID}
		err := repo.Create(ctx, friendship)
		require.NoError(t, err)
		assert.NotZero(t, friendship.ID)
		assert.False(t, friendship.CreatedAt.IsZero())

		exists, err := repo.Exists(ctx, user1.ID, user2.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("symmetric pair is not auto-created", func(t *testing.T) {
		exists, err := repo.Exists(ctx, user2.ID, user1.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate ordered pair is a no-op", func(t *testing.T) {
		err := repo.Create(ctx, &models.Friendship{UserID: user1.ID, FriendID: user2.ID})
		require.NoError(t, err)

		count, err := repo.CountForUser(ctx, user1.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("self pair is rejected", func(t *testing.T) {
		err := repo.Create(ctx, &models.Friendship{UserID: user1.ID, FriendID: user1.ID})
		assert.Error(t, err)
	})
}

func TestFriendRepository_Exists(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewFriendRepository(testDB.DB)
	ctx := context.Background()

	user1, user2 := setupTwoUsers(t, userRepo)

	exists, err := repo.Exists(ctx, user1.ID, user2.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
