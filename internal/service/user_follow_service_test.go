package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFollowService_FollowAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")
	bob := env.register(t, "bob@example.com", "bob")

	err := env.userFollowSvc.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	followed, err := env.userFollowSvc.GetFollowedUsers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, followed, 1)
	assert.Equal(t, bob.ID, followed[0].UserID)
	assert.Equal(t, "bob", followed[0].Nickname)

	followers, err := env.userFollowSvc.GetFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].UserID)

	count, err := env.userFollowSvc.GetUserFollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserFollowService_FollowSelf(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")

	err := env.userFollowSvc.Follow(ctx, alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrUserFollowSelf)
}

func TestUserFollowService_FollowUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")

	err := env.userFollowSvc.Follow(ctx, alice.ID, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserFollowService_DuplicateFollow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")
	bob := env.register(t, "bob@example.com", "bob")

	require.NoError(t, env.userFollowSvc.Follow(ctx, alice.ID, bob.ID))

	err := env.userFollowSvc.Follow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrUserFollowExist)

	count, err := env.userFollowSvc.GetUserFollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserFollowService_UnfollowWithoutFollow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")
	bob := env.register(t, "bob@example.com", "bob")

	err := env.userFollowSvc.Unfollow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrUserFollowNotFound)
}

func TestUserFollowService_FollowThenUnfollow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")
	bob := env.register(t, "bob@example.com", "bob")

	require.NoError(t, env.userFollowSvc.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, env.userFollowSvc.Unfollow(ctx, alice.ID, bob.ID))

	count, err := env.userFollowSvc.GetUserFollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	followed, err := env.userFollowSvc.GetFollowedUsers(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, followed)
}

func TestUserFollowService_FollowIsDirectional(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")
	bob := env.register(t, "bob@example.com", "bob")

	require.NoError(t, env.userFollowSvc.Follow(ctx, alice.ID, bob.ID))

	// 反方向不自动成立
	followed, err := env.userFollowSvc.GetFollowedUsers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, followed)

	count, err := env.userFollowSvc.GetUserFollowerCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
