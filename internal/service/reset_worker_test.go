package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarningsResetWorkerRunOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.seedUser(t, "03001234567", "0", "0", "0", "vip1")
	_, err := env.tasks.CompleteTask(ctx, user.ID, "1")
	require.NoError(t, err)

	worker := NewEarningsResetWorker(env.users, "@daily", logrusDiscard())
	worker.RunOnce(ctx)

	stored, err := env.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.TodayEarning.IsZero())
	requireWallet(t, stored, "0.05", "0", "0.05")
}

func TestEarningsResetWorkerLifecycle(t *testing.T) {
	env := newTestEnv(t)

	bad := NewEarningsResetWorker(env.users, "not a schedule", logrusDiscard())
	require.Error(t, bad.Start(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewEarningsResetWorker(env.users, "@daily", logrusDiscard()).Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
