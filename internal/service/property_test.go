package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/repository"
)

func TestWalletConservationOverRandomOperations(t *testing.T) {
	ctx := context.Background()
	plans := model.VIPPlans()

	for seed := int64(1); seed <= 25; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			env := newTestEnv(t)
			rng := rand.New(rand.NewSource(seed))

			for i := 0; i < 12; i++ {
				reward := d(fmt.Sprintf("0.%02d", rng.Intn(90)+5))
				_, err := env.admin.CreateTask(ctx, CreateTaskParams{Title: fmt.Sprintf("task %d", i), Reward: &reward})
				require.NoError(t, err)
			}
			tasks, err := env.repo.ListGlobalTasks(ctx)
			require.NoError(t, err)

			user := env.seedUser(t, "03001234567", "45.30", "0.30", "45", "")

			for step := 0; step < 60; step++ {
				before, err := env.users.GetUser(ctx, user.ID)
				require.NoError(t, err)

				switch rng.Intn(3) {
				case 0:
					_, err = env.tasks.CompleteTask(ctx, user.ID, tasks[rng.Intn(len(tasks))].ID)
				case 1:
					_, err = env.plans.PurchaseVIP(ctx, user.ID, plans[rng.Intn(len(plans))].ID)
				case 2:
					_, _, err = env.wallet.SubmitWithdrawal(ctx, user.ID)
				}

				after, getErr := env.users.GetUser(ctx, user.ID)
				require.NoError(t, getErr)
				require.Truef(t, after.Balance.Equal(after.Locked.Add(after.Withdrawable)),
					"step %d: balance %s != locked %s + withdrawable %s", step, after.Balance, after.Locked, after.Withdrawable)
				require.True(t, after.WalletConsistent(), "step %d", step)

				if err != nil {
					require.ErrorIs(t, err, ErrPrecondition)
					requireWallet(t, after, before.Balance.String(), before.Locked.String(), before.Withdrawable.String())
				}
			}
		})
	}
}

func TestWithdrawalStatusNeverLeavesDecision(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	decisions := []model.WithdrawalStatus{model.WithdrawalStatusApproved, model.WithdrawalStatusRejected}

	for i, first := range decisions {
		user := env.seedUser(t, fmt.Sprintf("0300000000%d", i), "2", "0", "2", "vip1")
		req, _, err := env.wallet.SubmitWithdrawal(ctx, user.ID)
		require.NoError(t, err)
		_, err = env.admin.ResolveWithdrawal(ctx, req.ID, first)
		require.NoError(t, err)

		for _, next := range decisions {
			_, err := env.admin.ResolveWithdrawal(ctx, req.ID, next)
			require.ErrorIs(t, err, ErrWithdrawalNotPending)
		}
		stored, err := env.repo.GetWithdrawal(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, first, stored.Status)
	}
}

func TestConcurrentCompletionsCreditOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.seedUser(t, "03001234567", "0", "0", "0", "vip1")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := env.tasks.CompleteTask(ctx, user.ID, "3"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	stored, err := env.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	requireWallet(t, stored, "0.25", "0", "0.25")
}

// flakyBackend fails writes once armed.
type flakyBackend struct {
	*repository.MemoryBackend
	failWrites bool
}

var errDiskFull = errors.New("disk full")

func (b *flakyBackend) Set(ctx context.Context, key string, value []byte) error {
	if b.failWrites {
		return errDiskFull
	}
	return b.MemoryBackend.Set(ctx, key, value)
}

func TestStorageFailurePropagates(t *testing.T) {
	kv := &flakyBackend{MemoryBackend: repository.NewMemoryBackend()}
	env := newTestEnvWithBackend(t, kv)
	ctx := context.Background()
	user := env.seedUser(t, "03001234567", "5", "0", "5", "")

	kv.failWrites = true
	_, err := env.plans.PurchaseVIP(ctx, user.ID, "vip1")
	require.ErrorIs(t, err, errDiskFull)

	var storageErr *repository.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "set", storageErr.Op)
	assert.Equal(t, "ewt_users", storageErr.Key)
	for _, category := range []error{ErrValidation, ErrAuthorization, ErrPrecondition, ErrNotFound} {
		assert.NotErrorIs(t, err, category)
	}

	kv.failWrites = false
	stored, err := env.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.VIPPlanID)
}
