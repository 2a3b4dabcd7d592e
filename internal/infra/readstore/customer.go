package readstore

import (
	"context"
	"log/slog"

	"loyalty-rewards/internal/infra"
	sqlc "loyalty-rewards/internal/infra/sqlc/generated"
	"loyalty-rewards/internal/usecase/queries"
)

type CustomerReadQueries interface {
	FindCustomersByCustomerID(ctx context.Context, db sqlc.DBTX, customerID int64) ([]sqlc.Customers, error)
}

type CustomerReadStore struct {
	q      CustomerReadQueries
	db     sqlc.DBTX
	logger *slog.Logger
}

func NewCustomerReadStore(q CustomerReadQueries, db sqlc.DBTX, logger *slog.Logger) *CustomerReadStore {
	return &CustomerReadStore{
		q:      q,
		db:     db,
		logger: logger,
	}
}

// FindByCustomerID returns an empty slice, not an error, when nothing matches.
func (r *CustomerReadStore) FindByCustomerID(ctx context.Context, customerID int64) ([]*queries.CustomerView, error) {
	rows, err := r.q.FindCustomersByCustomerID(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find customers by customer ID", err)
	}

	views := make([]*queries.CustomerView, len(rows))
	for i, row := range rows {
		views[i] = toCustomerView(row)
	}
	return views, nil
}

func toCustomerView(row sqlc.Customers) *queries.CustomerView {
	return &queries.CustomerView{
		ID:   row.CustomerID,
		Name: row.Name,
	}
}
