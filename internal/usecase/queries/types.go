package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerView is the read-side customer snapshot used by the reward engine
type CustomerView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TransactionView is a purchase as recorded by the store. Amount is never negative.
type TransactionView struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
}

type MonthlyPointsView struct {
	Year   int   `json:"year"`
	Month  int   `json:"month"`
	Points int64 `json:"points"`
}

type RewardsView struct {
	CustomerName  string              `json:"customer_name"`
	MonthlyPoints []MonthlyPointsView `json:"monthly_points"`
	TotalPoints   int64               `json:"total_points"`
}
