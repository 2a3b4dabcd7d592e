package queries

import (
	"context"

	"loyalty-rewards/internal/domain/reward"
	"loyalty-rewards/internal/pkg/errs"
)

var (
	ErrCustomerNotFound    = errs.New("customer not found")
	ErrTransactionNotFound = errs.New("transaction not found")
)

// CustomerReadStore returns every customer record stored under the id. An
// empty result means the customer does not exist.
type CustomerReadStore interface {
	FindByCustomerID(ctx context.Context, customerID int64) ([]*CustomerView, error)
}

// TransactionReadStore returns the customer's purchase history. An empty
// result means there is nothing to reward.
type TransactionReadStore interface {
	FindByCustomerID(ctx context.Context, customerID int64) ([]*TransactionView, error)
}

type RewardQueries interface {
	ComputeRewards(ctx context.Context, customerID int64) (*RewardsView, error)
}

type rewardQueriesImpl struct {
	customers    CustomerReadStore
	transactions TransactionReadStore
	calc         reward.PointCalculator
}

func NewRewardQueries(customers CustomerReadStore, transactions TransactionReadStore, calc reward.PointCalculator) RewardQueries {
	return &rewardQueriesImpl{
		customers:    customers,
		transactions: transactions,
		calc:         calc,
	}
}

// ComputeRewards fails with ErrCustomerNotFound or ErrTransactionNotFound when
// either lookup comes back empty. When several customers share the id the
// first one is used.
func (q *rewardQueriesImpl) ComputeRewards(ctx context.Context, customerID int64) (*RewardsView, error) {
	customers, err := q.customers.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to find customer %d", customerID)
	}
	if len(customers) == 0 || customers[0] == nil {
		return nil, ErrCustomerNotFound
	}
	customer := customers[0]

	txs, err := q.transactions.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to find transactions of customer %d", customerID)
	}
	if len(txs) == 0 {
		return nil, ErrTransactionNotFound
	}

	purchases := make([]reward.Purchase, 0, len(txs))
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		purchases = append(purchases, reward.Purchase{Amount: tx.Amount, Date: tx.Date})
	}
	if len(purchases) == 0 {
		return nil, ErrTransactionNotFound
	}

	summary := reward.Summarize(q.calc, purchases)

	view := &RewardsView{
		CustomerName:  customer.Name,
		MonthlyPoints: make([]MonthlyPointsView, len(summary.Monthly)),
		TotalPoints:   summary.Total,
	}
	for i, mp := range summary.Monthly {
		view.MonthlyPoints[i] = MonthlyPointsView{
			Year:   mp.Month.Year,
			Month:  int(mp.Month.Month),
			Points: mp.Points,
		}
	}
	return view, nil
}
