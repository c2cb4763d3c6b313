package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepo(t *testing.T) (*Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewWithBackend(NewRedisBackend(client), "ewt_")
	t.Cleanup(func() { _ = repo.Close() })
	return repo, mr
}

func TestRedisUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisRepo(t)

	want := sampleUser()
	require.NoError(t, repo.SaveUser(ctx, want))
	assert.True(t, mr.Exists("ewt_users"))

	got, err := repo.GetUserByID(ctx, want.ID)
	require.NoError(t, err)
	requireSameUser(t, want, got)

	_, err = repo.GetUserByPhone(ctx, "03009999999")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRedisCatalogSeededOnce(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisRepo(t)

	seeded, err := repo.EnsureTaskCatalog(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.True(t, mr.Exists("ewt_system_tasks"))

	seeded, err = repo.EnsureTaskCatalog(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	tasks, err := repo.ListGlobalTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 4)
}

func TestRedisSessionAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisRepo(t)

	_, ok, err := repo.GetSessionUserID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetSessionUserID(ctx, "uid_a"))
	id, ok, err := repo.GetSessionUserID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "uid_a", id)

	require.NoError(t, repo.ClearSession(ctx))
	assert.False(t, mr.Exists("ewt_session_uid"))
	_, ok, err = repo.GetSessionUserID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisBackendMissingKey(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	b := NewRedisBackend(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = b.Close() })

	require.NoError(t, b.Ping(ctx))
	_, err := b.Get(ctx, "ewt_absent")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, b.Set(ctx, "ewt_k", []byte(`{"a":1}`)))
	got, err := b.Get(ctx, "ewt_k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))

	require.NoError(t, b.Delete(ctx, "ewt_k"))
	_, err = b.Get(ctx, "ewt_k")
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Zero(t, mr.TTL("ewt_k"))
}
