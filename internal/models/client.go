package models

import "time"

// Client represents a tenant whose workflows are tracked by the dashboard.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	CurrencyCode string    `json:"currency_code"`
	CreatedAt    time.Time `json:"created_at"`
}

// ClientSummary aggregates execution activity for a client over the
// trailing 24 hours.
type ClientSummary struct {
	ClientID       string  `json:"client_id"`
	ClientName     string  `json:"client_name"`
	ClientCode     string  `json:"client_code"`
	TotalWorkflows int     `json:"total_workflows"`
	Executions24h  int     `json:"executions_24h"`
	Success24h     int     `json:"success_24h"`
	Errors24h      int     `json:"errors_24h"`
	SuccessRate24h float64 `json:"success_rate_24h"`
}
