package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/xid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/metrics"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/repository"
)

const minPhoneLength = 10

type UserService struct {
	store      Store
	referrals  *ReferralService
	log        *logrus.Entry
	loginDelay time.Duration
	now        func() time.Time
}

func NewUserService(store Store, referrals *ReferralService, logger logrus.FieldLogger) *UserService {
	return &UserService{
		store:     store,
		referrals: referrals,
		log:       logger.WithField("service", "user"),
		now:       time.Now,
	}
}

// SetLoginDelay sets the artificial latency applied before a login resolves.
func (s *UserService) SetLoginDelay(d time.Duration) {
	s.loginDelay = d
}

// Login registers a new account for an unseen phone or returns the existing
// one, then points the session at it. The bool result reports whether the
// account was created. A non-blank referral code grants the locked signup
// bonus to new accounts.
func (s *UserService) Login(ctx context.Context, phone, referralCode string) (*model.User, bool, error) {
	if err := wait(ctx, s.loginDelay); err != nil {
		return nil, false, err
	}

	phone = strings.TrimSpace(phone)
	if utf8.RuneCountInString(phone) < minPhoneLength {
		metrics.RecordLogin("invalid")
		return nil, false, ErrPhoneTooShort
	}

	var (
		user    *model.User
		created bool
	)
	err := s.store.Exclusive(func() error {
		existing, err := s.store.GetUserByPhone(ctx, phone)
		switch {
		case err == nil:
			user = existing
		case errors.Is(err, repository.ErrUserNotFound):
			user, err = s.register(ctx, phone, referralCode)
			if err != nil {
				return err
			}
			created = true
		default:
			return err
		}

		if user.IsBlocked {
			return ErrAccountBlocked
		}
		return s.store.SetSessionUserID(ctx, user.ID)
	})
	if err != nil {
		if errors.Is(err, ErrAccountBlocked) {
			metrics.RecordLogin("blocked")
			s.log.WithField("user_id", user.ID).Warn("blocked account tried to log in")
		}
		return nil, false, err
	}

	if created {
		metrics.RecordLogin("created")
	} else {
		metrics.RecordLogin("existing")
	}
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "created": created}).Info("user logged in")
	return user, created, nil
}

func (s *UserService) register(ctx context.Context, phone, referralCode string) (*model.User, error) {
	code, err := s.referrals.NewCode(ctx)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           "uid_" + xid.New().String(),
		Phone:        phone,
		Balance:      decimal.Zero,
		Locked:       decimal.Zero,
		Withdrawable: decimal.Zero,
		TodayEarning: decimal.Zero,
		ReferralCode: code,
		JoinDate:     s.now().Format(model.DateLayout),
	}
	referred := normalizeReferralCode(referralCode) != ""
	if referred {
		user.Balance = model.ReferralSignupBonus
		user.Locked = model.ReferralSignupBonus
	}

	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	if referred {
		if err := s.referrals.RecordSignup(ctx, referralCode, user.ID); err != nil {
			return nil, err
		}
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"referred": referred,
	}).Info("user registered")
	return user, nil
}

func (s *UserService) Logout(ctx context.Context) error {
	return s.store.Exclusive(func() error {
		return s.store.ClearSession(ctx)
	})
}

// RestoreSession resolves the persisted session at startup. A pointer to a
// missing or blocked user is cleared and ErrNoSession is returned.
func (s *UserService) RestoreSession(ctx context.Context) (*model.User, error) {
	var user *model.User
	err := s.store.Exclusive(func() error {
		id, ok, err := s.store.GetSessionUserID(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoSession
		}

		user, err = loadUser(ctx, s.store, id)
		if errors.Is(err, ErrUserNotFound) || (err == nil && user.IsBlocked) {
			s.log.WithField("user_id", id).Info("clearing stale session")
			if err := s.store.ClearSession(ctx); err != nil {
				return err
			}
			return ErrNoSession
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CurrentUser returns the session user. A block applied after login does not
// end the session.
func (s *UserService) CurrentUser(ctx context.Context) (*model.User, error) {
	id, ok, err := s.store.GetSessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoSession
	}
	user, err := loadUser(ctx, s.store, id)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrNoSession
	}
	return user, err
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return loadUser(ctx, s.store, id)
}

// ResetTodayEarnings zeroes todayEarning for every user and returns how many
// records changed.
func (s *UserService) ResetTodayEarnings(ctx context.Context) (int, error) {
	reset := 0
	err := s.store.Exclusive(func() error {
		users, err := s.store.ListUsers(ctx)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].TodayEarning.IsZero() {
				continue
			}
			users[i].TodayEarning = decimal.Zero
			if err := s.store.SaveUser(ctx, &users[i]); err != nil {
				return err
			}
			reset++
		}
		return nil
	})
	return reset, err
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
