package reward

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Compare(other Month) int {
	if c := cmp.Compare(m.Year, other.Year); c != 0 {
		return c
	}
	return cmp.Compare(m.Month, other.Month)
}

type Purchase struct {
	Amount decimal.Decimal
	Date   time.Time
}

type MonthlyPoints struct {
	Month  Month
	Points int64
}

type Summary struct {
	Monthly []MonthlyPoints
	Total   int64
}

// Summarize groups purchases by calendar month. Monthly is sorted ascending and
// holds one entry per month that has at least one purchase, even when the
// month earned zero points.
func Summarize(calc PointCalculator, purchases []Purchase) Summary {
	byMonth := make(map[Month]int64, len(purchases))
	var total int64
	for _, p := range purchases {
		pts := calc.Points(p.Amount)
		byMonth[MonthOf(p.Date)] += pts
		total += pts
	}

	monthly := make([]MonthlyPoints, 0, len(byMonth))
	for m, pts := range byMonth {
		monthly = append(monthly, MonthlyPoints{Month: m, Points: pts})
	}
	slices.SortFunc(monthly, func(a, b MonthlyPoints) int {
		return a.Month.Compare(b.Month)
	})

	return Summary{Monthly: monthly, Total: total}
}
