package readstore

import (
	"context"
	"fmt"
	"log/slog"

	"loyalty-rewards/internal/infra"
	sqlc "loyalty-rewards/internal/infra/sqlc/generated"
	"loyalty-rewards/internal/pkg/errs"
	"loyalty-rewards/internal/pkg/pgconv"
	"loyalty-rewards/internal/usecase/queries"
)

// ErrInvalidTransaction marks rows that cannot be turned into a purchase.
var ErrInvalidTransaction = errs.New("invalid transaction")

type TransactionReadQueries interface {
	FindTransactionsByCustomerID(ctx context.Context, db sqlc.DBTX, customerID int64) ([]sqlc.Transactions, error)
}

type TransactionReadStore struct {
	q      TransactionReadQueries
	db     sqlc.DBTX
	logger *slog.Logger
}

func NewTransactionReadStore(q TransactionReadQueries, db sqlc.DBTX, logger *slog.Logger) *TransactionReadStore {
	return &TransactionReadStore{
		q:      q,
		db:     db,
		logger: logger,
	}
}

// FindByCustomerID rejects rows with a negative amount or an unusable date as
// KindInvalidData, so callers only ever see valid purchases.
func (r *TransactionReadStore) FindByCustomerID(ctx context.Context, customerID int64) ([]*queries.TransactionView, error) {
	rows, err := r.q.FindTransactionsByCustomerID(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find transactions by customer ID", err)
	}

	views := make([]*queries.TransactionView, len(rows))
	for i, row := range rows {
		view, err := toTransactionView(row)
		if err != nil {
			msg := fmt.Sprintf("invalid transaction %d", row.TransactionID)
			return nil, infra.WrapRepoErr(r.logger, infra.KindInvalidData, msg, err)
		}
		views[i] = view
	}
	return views, nil
}

func toTransactionView(row sqlc.Transactions) (*queries.TransactionView, error) {
	if row.Amount.IsNegative() {
		return nil, errs.Mark(errs.Newf("negative amount %s", row.Amount), ErrInvalidTransaction)
	}

	date, err := pgconv.DateFromPgtype(row.TransactionDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTransaction)
	}

	return &queries.TransactionView{
		ID:         row.TransactionID,
		CustomerID: row.CustomerID,
		Amount:     row.Amount,
		Date:       date,
	}, nil
}
