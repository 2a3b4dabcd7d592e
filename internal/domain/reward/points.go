package reward

import (
	"github.com/shopspring/decimal"
)

type PointCalculator interface {
	Points(amount decimal.Decimal) int64
}

// TieredPointCalculator awards BaseRate points per currency unit spent between
// BaseThreshold and BonusThreshold, and BonusRate points per unit above
// BonusThreshold. Nothing is earned up to BaseThreshold.
type TieredPointCalculator struct {
	BaseThreshold  decimal.Decimal
	BonusThreshold decimal.Decimal
	BaseRate       int64
	BonusRate      int64
}

func NewTieredPointCalculator() *TieredPointCalculator {
	return &TieredPointCalculator{
		BaseThreshold:  decimal.NewFromInt(50),
		BonusThreshold: decimal.NewFromInt(100),
		BaseRate:       1,
		BonusRate:      2,
	}
}

// Points is only defined for non-negative amounts. Fractional points are
// truncated, so 50.01 earns nothing.
func (c *TieredPointCalculator) Points(amount decimal.Decimal) int64 {
	bonus := decimal.Max(amount.Sub(c.BonusThreshold), decimal.Zero)
	base := decimal.Min(amount, c.BonusThreshold).Sub(decimal.Min(amount, c.BaseThreshold))

	earned := bonus.Mul(decimal.NewFromInt(c.BonusRate)).
		Add(base.Mul(decimal.NewFromInt(c.BaseRate)))
	return earned.IntPart()
}
