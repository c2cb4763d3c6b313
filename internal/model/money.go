package model

import "github.com/shopspring/decimal"

func init() {
	// Wallet amounts are persisted as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	// ReferralSignupBonus is credited as locked funds when a referral code is supplied at registration.
	ReferralSignupBonus = decimal.RequireFromString("0.30")
	// MinWithdrawal is the minimum withdrawable amount for a payout request.
	MinWithdrawal = decimal.RequireFromString("2.00")
	// DefaultTaskReward applies when an admin creates a task without a reward.
	DefaultTaskReward = decimal.RequireFromString("0.10")
)

// DateLayout is the calendar date format used for joinDate and withdrawal dates.
const DateLayout = "2006-01-02"
