//go:build unit || e2e

package builder

import (
	"time"

	sqlc "loyalty-rewards/internal/infra/sqlc/generated"
	"loyalty-rewards/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type TransactionBuilder struct {
	ID         int64
	CustomerID int64
	Amount     decimal.Decimal
	Date       time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		ID:         1,
		CustomerID: 1,
		Amount:     decimal.RequireFromString("120.00"),
		Date:       time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *TransactionBuilder) WithID(id int64) *TransactionBuilder {
	b.ID = id
	return b
}

func (b *TransactionBuilder) WithCustomerID(id int64) *TransactionBuilder {
	b.CustomerID = id
	return b
}

// panics on a malformed amount; builders are only fed literals
func (b *TransactionBuilder) WithAmount(amount string) *TransactionBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

func (b *TransactionBuilder) WithDate(year int, month time.Month, day int) *TransactionBuilder {
	b.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return b
}

func (b *TransactionBuilder) BuildInfra() sqlc.Transactions {
	return sqlc.Transactions{
		TransactionID:   b.ID,
		CustomerID:      b.CustomerID,
		Amount:          b.Amount,
		TransactionDate: pgtype.Date{Time: b.Date, Valid: true},
		CreatedAt:       pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (b *TransactionBuilder) BuildView() *queries.TransactionView {
	return &queries.TransactionView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Amount:     b.Amount,
		Date:       b.Date,
	}
}
