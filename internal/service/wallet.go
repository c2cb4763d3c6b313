package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/metrics"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
)

type WalletService struct {
	store Store
	log   *logrus.Entry
	now   func() time.Time
}

func NewWalletService(store Store, logger logrus.FieldLogger) *WalletService {
	return &WalletService{
		store: store,
		log:   logger.WithField("service", "wallet"),
		now:   time.Now,
	}
}

// SubmitWithdrawal files a pending EasyPaisa payout for the whole withdrawable
// bucket. The request is appended before the wallet is saved.
func (s *WalletService) SubmitWithdrawal(ctx context.Context, userID string) (*model.WithdrawalRequest, *model.User, error) {
	var (
		user *model.User
		req  model.WithdrawalRequest
	)
	err := s.store.Exclusive(func() error {
		var err error
		user, err = loadUser(ctx, s.store, userID)
		if err != nil {
			return err
		}

		amount, err := user.DebitWithdrawal()
		if err != nil {
			return walletError(err)
		}

		req = model.WithdrawalRequest{
			ID:       "req_" + uuid.NewString(),
			UserID:   user.ID,
			UserName: user.Phone,
			Amount:   amount,
			Method:   model.PayoutMethodEasyPaisa,
			Account:  user.Phone,
			Status:   model.WithdrawalStatusPending,
			Date:     s.now().Format(model.DateLayout),
		}
		if err := s.store.AppendWithdrawal(ctx, req); err != nil {
			return err
		}
		return s.store.SaveUser(ctx, user)
	})
	if err != nil {
		return nil, nil, err
	}

	metrics.RecordWithdrawal(string(model.WithdrawalStatusPending))
	s.log.WithFields(logrus.Fields{
		"user_id":       userID,
		"withdrawal_id": req.ID,
		"amount":        req.Amount.String(),
	}).Info("withdrawal submitted")
	return &req, user, nil
}

// ListUserWithdrawals returns the user's requests, newest first. Requests are
// appended, so stored order is authoritative; the date field is display text.
func (s *WalletService) ListUserWithdrawals(ctx context.Context, userID string) ([]model.WithdrawalRequest, error) {
	all, err := s.store.ListWithdrawals(ctx)
	if err != nil {
		return nil, err
	}
	mine := []model.WithdrawalRequest{}
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].UserID == userID {
			mine = append(mine, all[i])
		}
	}
	return mine, nil
}

// CreditDeposit adds deposited funds to a user's balance.
func (s *WalletService) CreditDeposit(ctx context.Context, userID string, amount decimal.Decimal) (*model.User, error) {
	var user *model.User
	err := s.store.Exclusive(func() error {
		var err error
		user, err = loadUser(ctx, s.store, userID)
		if err != nil {
			return err
		}
		if err := user.CreditDeposit(amount); err != nil {
			return walletError(err)
		}
		return s.store.SaveUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount.String(),
		"balance": user.Balance.String(),
	}).Info("deposit credited")
	return user, nil
}
