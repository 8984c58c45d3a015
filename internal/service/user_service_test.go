package service

import (
	"Quicker/internal/api/dto"
	"Quicker/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice@example.com", "alice")

	err := env.userSvc.Register(ctx, &dto.RegisterDTO{
		Email:     "alice@example.com",
		Password:  "password123",
		Nickname:  "alice2",
		FirstName: "first",
		LastName:  "last",
	})
	assert.ErrorIs(t, err, ErrUserEmailExist)
}

func TestUserService_RegisterDuplicateNickname(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice@example.com", "alice")

	err := env.userSvc.Register(ctx, &dto.RegisterDTO{
		Email:     "alice2@example.com",
		Password:  "password123",
		Nickname:  "alice",
		FirstName: "first",
		LastName:  "last",
	})
	assert.ErrorIs(t, err, ErrUserNicknameExist)
}

func TestUserService_RegisterStoresHashedPassword(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", "alice")

	assert.NotEqual(t, "password123", alice.Password)
	assert.NoError(t, security.CheckPasswordHash("password123", alice.Password))
}

func TestUserService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice@example.com", "alice")

	token, err := env.userSvc.Login(ctx, &dto.CredentialDTO{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := security.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice@example.com", "alice")

	_, err := env.userSvc.Login(ctx, &dto.CredentialDTO{
		Email:    "alice@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.userSvc.Login(context.Background(), &dto.CredentialDTO{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_GetUserByNickname(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")
	bob := env.register(t, "bob@example.com", "bob")
	require.NoError(t, env.userFollowSvc.Follow(ctx, bob.ID, alice.ID))

	profile, err := env.userSvc.GetUserByNickname(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.UserID)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, int64(1), profile.Followers)

	_, err = env.userSvc.GetUserByNickname(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")

	birthDate := "1990-05-20"
	err := env.userSvc.UpdateUser(ctx, alice.ID, &dto.UpdateUserDTO{
		Email:     "alice@example.com",
		Password:  "newpassword1",
		Nickname:  "alice_v2",
		FirstName: "Alice",
		LastName:  "Doe",
		BirthDate: &birthDate,
	})
	require.NoError(t, err)

	updated, err := env.userRepo.GetUserById(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice_v2", updated.Nickname)
	assert.Equal(t, "Alice", updated.FirstName)
	require.NotNil(t, updated.BirthDate)
	assert.Equal(t, "1990-05-20", updated.BirthDate.Format("2006-01-02"))
	assert.NoError(t, security.CheckPasswordHash("newpassword1", updated.Password))
}

func TestUserService_UpdateUserClearsBirthDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")

	birthDate := "1990-05-20"
	base := dto.UpdateUserDTO{
		Email:     "alice@example.com",
		Password:  "password123",
		Nickname:  "alice",
		FirstName: "first",
		LastName:  "last",
	}

	withDate := base
	withDate.BirthDate = &birthDate
	require.NoError(t, env.userSvc.UpdateUser(ctx, alice.ID, &withDate))

	updated, err := env.userRepo.GetUserById(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.BirthDate)

	// 整体更新语义：再次提交时不带生日，字段应被清空
	require.NoError(t, env.userSvc.UpdateUser(ctx, alice.ID, &base))

	updated, err = env.userRepo.GetUserById(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.BirthDate)
}

func TestUserService_UpdateUserNicknameConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")
	env.register(t, "bob@example.com", "bob")

	err := env.userSvc.UpdateUser(ctx, alice.ID, &dto.UpdateUserDTO{
		Email:     "alice@example.com",
		Password:  "password123",
		Nickname:  "bob",
		FirstName: "first",
		LastName:  "last",
	})
	assert.ErrorIs(t, err, ErrUserNicknameExist)
}

func TestUserService_UpdateUserEmailConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")
	env.register(t, "bob@example.com", "bob")

	err := env.userSvc.UpdateUser(ctx, alice.ID, &dto.UpdateUserDTO{
		Email:     "bob@example.com",
		Password:  "password123",
		Nickname:  "alice",
		FirstName: "first",
		LastName:  "last",
	})
	assert.ErrorIs(t, err, ErrUserEmailExist)
}

func TestUserService_DeleteUserCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", "alice")
	bob := env.register(t, "bob@example.com", "bob")

	_, err := env.quickSvc.CreateQuick(ctx, alice.ID, &dto.CreateQuickDTO{Content: "will vanish"})
	require.NoError(t, err)
	require.NoError(t, env.userFollowSvc.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, env.userFollowSvc.Follow(ctx, alice.ID, bob.ID))

	require.NoError(t, env.userSvc.DeleteUser(ctx, alice.ID))

	user, err := env.userRepo.GetUserById(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, user)

	// 注销后旧 Token 绑定的邮箱已不存在，登录也随之失效
	_, err = env.userSvc.Login(ctx, &dto.CredentialDTO{Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	// 关注边与内容一并清理
	feed, err := env.quickSvc.GetFeed(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)

	followed, err := env.userFollowSvc.GetFollowedUsers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, followed)

	count, err := env.userFollowSvc.GetUserFollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUserService_DeleteUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	err := env.userSvc.DeleteUser(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
