package service

import (
	"errors"
)

// Error categories. Every error returned by a service either wraps one of these
// or is a storage failure (*repository.StorageError).
var (
	ErrValidation    = errors.New("validation failed")
	ErrAuthorization = errors.New("not authorized")
	ErrPrecondition  = errors.New("precondition failed")
	ErrNotFound      = errors.New("not found")
)

var (
	ErrPhoneTooShort   = categorized(ErrValidation, "Enter a valid phone number")
	ErrInvalidAmount   = categorized(ErrValidation, "Amount must be greater than zero")
	ErrTaskTitleEmpty  = categorized(ErrValidation, "Task title is required")
	ErrInvalidTaskType = categorized(ErrValidation, "Unknown task type")
	ErrInvalidReward   = categorized(ErrValidation, "Reward cannot be negative")
	ErrInvalidStatus   = categorized(ErrValidation, "Unknown withdrawal status")
	ErrInvalidDecision = categorized(ErrValidation, "Withdrawal can only be approved or rejected")
	ErrInvalidTheme    = categorized(ErrValidation, "Theme must be dark or light")

	ErrAccountBlocked = categorized(ErrAuthorization, "Account blocked by admin")
	ErrNoSession      = categorized(ErrAuthorization, "Not logged in")

	ErrInsufficientBalance    = categorized(ErrPrecondition, "Insufficient balance")
	ErrBelowMinimumWithdrawal = categorized(ErrPrecondition, "Minimum withdrawal is 2.00")
	ErrTaskAlreadyCompleted   = categorized(ErrPrecondition, "Task already completed")
	ErrNoActiveVIP            = categorized(ErrPrecondition, "Activate a VIP plan to earn from tasks")
	ErrWithdrawalNotPending   = categorized(ErrPrecondition, "Withdrawal already resolved")

	ErrUserNotFound       = categorized(ErrNotFound, "User not found")
	ErrTaskNotFound       = categorized(ErrNotFound, "Task not found")
	ErrPlanNotFound       = categorized(ErrNotFound, "Plan not found")
	ErrWithdrawalNotFound = categorized(ErrNotFound, "Withdrawal not found")
)

type categoryError struct {
	category error
	msg      string
}

func categorized(category error, msg string) error {
	return &categoryError{category: category, msg: msg}
}

func (e *categoryError) Error() string {
	return e.msg
}

func (e *categoryError) Unwrap() error {
	return e.category
}
