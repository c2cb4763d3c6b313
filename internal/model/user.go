package model

import (
	"github.com/shopspring/decimal"
)

type User struct {
	ID           string          `json:"id"`
	Phone        string          `json:"phone"`
	Balance      decimal.Decimal `json:"balance"`
	Locked       decimal.Decimal `json:"locked"`
	Withdrawable decimal.Decimal `json:"withdrawable"`
	TodayEarning decimal.Decimal `json:"todayEarning"`
	VIPPlanID    *string         `json:"vipPlanId"`
	ReferralCode string          `json:"referralCode"`
	Referrals    int             `json:"referrals"`
	IsBlocked    bool            `json:"isBlocked"`
	JoinDate     string          `json:"joinDate"`
}

// HasVIP reports whether the user holds an active VIP plan.
func (u *User) HasVIP() bool {
	return u.VIPPlanID != nil && *u.VIPPlanID != ""
}

// Unallocated returns the part of balance that is neither locked nor withdrawable
// (deposited funds not yet spent).
func (u *User) Unallocated() decimal.Decimal {
	return u.Balance.Sub(u.Locked).Sub(u.Withdrawable)
}

// WalletConsistent reports whether balance covers both earmarked buckets and no
// bucket is negative.
func (u *User) WalletConsistent() bool {
	if u.Balance.IsNegative() || u.Locked.IsNegative() || u.Withdrawable.IsNegative() || u.TodayEarning.IsNegative() {
		return false
	}
	return !u.Unallocated().IsNegative()
}

// Clone returns a deep copy.
func (u User) Clone() User {
	if u.VIPPlanID != nil {
		id := *u.VIPPlanID
		u.VIPPlanID = &id
	}
	return u
}
