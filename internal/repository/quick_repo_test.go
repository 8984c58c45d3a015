package repository

import (
	"Quicker/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuickRepo_FeedOrdering(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuickRepo(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "a@example.com", "alice")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateQuick(ctx, &model.Quick{
			AuthorID:  a.ID,
			Content:   "quick",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	quicks, err := repo.GetAllQuicks(ctx)
	require.NoError(t, err)
	require.Len(t, quicks, 3)
	for i := 1; i < len(quicks); i++ {
		require.False(t, quicks[i].CreatedAt.After(quicks[i-1].CreatedAt))
	}
}

func TestQuickRepo_FeedTieBreakById(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuickRepo(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "a@example.com", "alice")

	same := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	first := &model.Quick{AuthorID: a.ID, Content: "first", CreatedAt: same}
	second := &model.Quick{AuthorID: a.ID, Content: "second", CreatedAt: same}
	require.NoError(t, repo.CreateQuick(ctx, first))
	require.NoError(t, repo.CreateQuick(ctx, second))

	quicks, err := repo.GetAllQuicks(ctx)
	require.NoError(t, err)
	require.Len(t, quicks, 2)
	// 时间相同，id 大者在前
	require.Equal(t, second.ID, quicks[0].ID)
	require.Equal(t, first.ID, quicks[1].ID)
}

func TestQuickRepo_FeedFiltersByAuthorAndDeleted(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuickRepo(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "a@example.com", "alice")
	b := mustCreateUser(t, db, "b@example.com", "bob")

	now := time.Now()
	require.NoError(t, repo.CreateQuick(ctx, &model.Quick{AuthorID: a.ID, Content: "from alice", CreatedAt: now}))
	require.NoError(t, repo.CreateQuick(ctx, &model.Quick{AuthorID: b.ID, Content: "from bob", CreatedAt: now}))

	deleted := &model.Quick{AuthorID: a.ID, Content: "gone", CreatedAt: now}
	require.NoError(t, repo.CreateQuick(ctx, deleted))
	deleted.IsDeleted = true
	require.NoError(t, repo.UpdateQuick(ctx, deleted))

	quicks, err := repo.GetQuicksByAuthorIds(ctx, []uint64{a.ID})
	require.NoError(t, err)
	require.Len(t, quicks, 1)
	require.Equal(t, "from alice", quicks[0].Content)
	require.Equal(t, "alice", quicks[0].Author.Nickname)

	quicks, err = repo.GetQuicksByAuthorIds(ctx, []uint64{})
	require.NoError(t, err)
	require.Len(t, quicks, 0)

	quicks, err = repo.GetAllQuicks(ctx)
	require.NoError(t, err)
	require.Len(t, quicks, 2)
}

func TestQuickRepo_GetQuickNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuickRepo(db)

	quick, err := repo.GetQuick(context.Background(), 12345)
	require.NoError(t, err)
	require.Nil(t, quick)
}
