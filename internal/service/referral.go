package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/repository"
)

const referralCodeAttempts = 20

var errReferralCodeSpace = errors.New("could not allocate a unique referral code")

type ReferralService struct {
	store Store
	log   *logrus.Entry
}

func NewReferralService(store Store, logger logrus.FieldLogger) *ReferralService {
	return &ReferralService{store: store, log: logger.WithField("service", "referral")}
}

// NewCode returns an EWT-NNNN code that no existing user owns.
func (s *ReferralService) NewCode(ctx context.Context) (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code, err := randomReferralCode()
		if err != nil {
			return "", err
		}
		_, err = s.store.GetUserByReferralCode(ctx, code)
		if errors.Is(err, repository.ErrUserNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errReferralCodeSpace
}

// RecordSignup bumps the referral count of the user owning code. Unknown codes
// and self-referrals are ignored. Must run inside Store.Exclusive.
func (s *ReferralService) RecordSignup(ctx context.Context, code, newUserID string) error {
	code = normalizeReferralCode(code)
	if code == "" {
		return nil
	}

	referrer, err := s.store.GetUserByReferralCode(ctx, code)
	if errors.Is(err, repository.ErrUserNotFound) {
		s.log.WithField("code", code).Debug("referral code has no owner")
		return nil
	}
	if err != nil {
		return err
	}
	if referrer.ID == newUserID {
		return nil
	}

	referrer.Referrals++
	if err := s.store.SaveUser(ctx, referrer); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"referrer_id": referrer.ID,
		"user_id":     newUserID,
		"referrals":   referrer.Referrals,
	}).Info("referral recorded")
	return nil
}

func normalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func randomReferralCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EWT-%d", 1000+n.Int64()), nil
}
