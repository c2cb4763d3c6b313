package model

import (
	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "PENDING"
	WithdrawalStatusApproved WithdrawalStatus = "APPROVED"
	WithdrawalStatusRejected WithdrawalStatus = "REJECTED"
)

// IsDecision reports whether s is a terminal admin decision.
func (s WithdrawalStatus) IsDecision() bool {
	return s == WithdrawalStatusApproved || s == WithdrawalStatusRejected
}

type PayoutMethod string

// PayoutMethodEasyPaisa is the only supported payout method.
const PayoutMethodEasyPaisa PayoutMethod = "EasyPaisa"

type WithdrawalRequest struct {
	ID       string           `json:"id"`
	UserID   string           `json:"userId"`
	UserName string           `json:"userName"`
	Amount   decimal.Decimal  `json:"amount"`
	Method   PayoutMethod     `json:"method"`
	Account  string           `json:"account"`
	Status   WithdrawalStatus `json:"status"`
	Date     string           `json:"date"`
}
