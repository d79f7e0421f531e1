package models

import "time"

// Billing period constants for recurring tool costs.
const (
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
	Period24Months  = "24months"
)

// ToolCost is a recurring subscription or one-time fee attributable to a
// client. Exactly one of Period (recurring) or EndDate (one-time) is
// meaningful, selected by Recurring.
type ToolCost struct {
	ID       int64   `json:"id,omitempty"`
	ClientID string  `json:"client_id,omitempty"`
	Tool     string  `json:"tool"`
	Cost     float64 `json:"cost"`
	// Recurring selects between subscription (true) and one-time fee (false).
	Recurring bool `json:"recurring"`
	// Period is the billing cycle for recurring costs.
	Period string `json:"period,omitempty"`
	// StartDate anchors the billing cycle. When nil the client's earliest
	// workflow deployment date is used instead.
	StartDate *time.Time `json:"start_date,omitempty"`
	// EndDate marks when a one-time fee is considered incurred.
	EndDate      *time.Time `json:"end_date,omitempty"`
	CurrencyCode string     `json:"currency_code,omitempty"`
	Enabled      bool       `json:"enabled"`
}
