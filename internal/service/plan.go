package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/metrics"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
)

type PlanService struct {
	store Store
	log   *logrus.Entry
}

func NewPlanService(store Store, logger logrus.FieldLogger) *PlanService {
	return &PlanService{store: store, log: logger.WithField("service", "plan")}
}

func (s *PlanService) GetPlans() []model.VIPPlan {
	return model.VIPPlans()
}

func (s *PlanService) GetPlan(id string) (model.VIPPlan, error) {
	plan, ok := model.FindVIPPlan(id)
	if !ok {
		return model.VIPPlan{}, ErrPlanNotFound
	}
	return plan, nil
}

// PurchaseVIP pays for a plan from the wallet, activates it and releases the
// locked signup bonus into the withdrawable bucket.
func (s *PlanService) PurchaseVIP(ctx context.Context, userID, planID string) (*model.User, error) {
	plan, err := s.GetPlan(planID)
	if err != nil {
		return nil, err
	}

	var user *model.User
	err = s.store.Exclusive(func() error {
		var err error
		user, err = loadUser(ctx, s.store, userID)
		if err != nil {
			return err
		}
		if err := user.PurchaseVIP(plan); err != nil {
			return walletError(err)
		}
		return s.store.SaveUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordVIPPurchase(plan.ID)
	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"plan_id": plan.ID,
		"price":   plan.Price.String(),
	}).Info("vip plan purchased")
	return user, nil
}

// walletError maps a model wallet failure to the service taxonomy.
func walletError(err error) error {
	switch {
	case errors.Is(err, model.ErrWalletInsufficientBalance):
		return ErrInsufficientBalance
	case errors.Is(err, model.ErrWalletBelowMinimum):
		return ErrBelowMinimumWithdrawal
	case errors.Is(err, model.ErrWalletNonPositiveAmount):
		return ErrInvalidAmount
	}
	return err
}
