package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Wallet transition failures. The service layer classifies them.
var (
	ErrWalletInsufficientBalance = errors.New("insufficient balance")
	ErrWalletBelowMinimum        = errors.New("withdrawable amount below minimum payout")
	ErrWalletNonPositiveAmount   = errors.New("amount must be positive")
)

// CreditTaskReward credits a completed task's reward. Locked funds are unaffected.
func (u *User) CreditTaskReward(reward decimal.Decimal) {
	u.Balance = u.Balance.Add(reward)
	u.TodayEarning = u.TodayEarning.Add(reward)
	u.Withdrawable = u.Withdrawable.Add(reward)
}

// PurchaseVIP debits the plan price, activates the plan and unlocks all locked
// funds into the withdrawable bucket. The price is paid from unallocated funds
// first; any shortfall is drawn from withdrawable and then locked funds so that
// withdrawable never exceeds what the balance can cover.
func (u *User) PurchaseVIP(plan VIPPlan) error {
	if u.Balance.LessThan(plan.Price) {
		return ErrWalletInsufficientBalance
	}

	shortfall := plan.Price.Sub(decimal.Max(u.Unallocated(), decimal.Zero))
	earmarked := u.Locked.Add(u.Withdrawable)
	if shortfall.IsPositive() {
		earmarked = earmarked.Sub(shortfall)
	}

	u.Balance = u.Balance.Sub(plan.Price)
	id := plan.ID
	u.VIPPlanID = &id
	u.Locked = decimal.Zero
	u.Withdrawable = earmarked
	return nil
}

// DebitWithdrawal moves the whole withdrawable bucket out of the wallet and
// returns the payout amount.
func (u *User) DebitWithdrawal() (decimal.Decimal, error) {
	if u.Withdrawable.LessThan(MinWithdrawal) {
		return decimal.Zero, ErrWalletBelowMinimum
	}
	amount := u.Withdrawable
	u.Balance = u.Balance.Sub(amount)
	u.Withdrawable = decimal.Zero
	return amount, nil
}

// CreditDeposit adds deposited funds to the balance only.
func (u *User) CreditDeposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrWalletNonPositiveAmount
	}
	u.Balance = u.Balance.Add(amount)
	return nil
}
