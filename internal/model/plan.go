package model

import (
	"github.com/shopspring/decimal"
)

// VIPPlan is static reference data. Daily caps and validity are informational only.
type VIPPlan struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DailyTasks   int             `json:"dailyTasks"`
	DailyEarning decimal.Decimal `json:"dailyEarning"`
	ValidityDays int             `json:"validityDays"`
}

var vipPlans = []VIPPlan{
	{ID: "vip1", Name: "VIP 1", Price: decimal.NewFromInt(5), DailyTasks: 5, DailyEarning: decimal.RequireFromString("0.40"), ValidityDays: 30},
	{ID: "vip2", Name: "VIP 2", Price: decimal.NewFromInt(10), DailyTasks: 10, DailyEarning: decimal.RequireFromString("0.80"), ValidityDays: 30},
	{ID: "vip3", Name: "VIP 3", Price: decimal.NewFromInt(20), DailyTasks: 20, DailyEarning: decimal.RequireFromString("1.80"), ValidityDays: 30},
	{ID: "vip4", Name: "VIP 4", Price: decimal.NewFromInt(40), DailyTasks: 40, DailyEarning: decimal.RequireFromString("4.00"), ValidityDays: 30},
}

// VIPPlans returns the plan catalog in tier order. The result is a copy.
func VIPPlans() []VIPPlan {
	plans := make([]VIPPlan, len(vipPlans))
	copy(plans, vipPlans)
	return plans
}

// FindVIPPlan looks a plan up by id.
func FindVIPPlan(id string) (VIPPlan, bool) {
	for _, p := range vipPlans {
		if p.ID == id {
			return p, true
		}
	}
	return VIPPlan{}, false
}
