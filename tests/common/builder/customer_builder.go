//go:build unit || e2e

package builder

import (
	"time"

	sqlc "loyalty-rewards/internal/infra/sqlc/generated"
	"loyalty-rewards/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerBuilder struct {
	ID   int64
	Name string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:   1,
		Name: "Albert",
	}
}

func (b *CustomerBuilder) WithID(id int64) *CustomerBuilder {
	b.ID = id
	return b
}

func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.Name = name
	return b
}

func (b *CustomerBuilder) BuildInfra() sqlc.Customers {
	return sqlc.Customers{
		CustomerID: b.ID,
		Name:       b.Name,
		CreatedAt:  pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:   b.ID,
		Name: b.Name,
	}
}
