package response

import (
	"loyalty-rewards/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type MonthlyPointsResponse struct {
	Year   int   `json:"year"`
	Month  int   `json:"month"`
	Points int64 `json:"points"`
}

type RewardsResponse struct {
	CustomerName  string                  `json:"customerName"`
	MonthlyPoints []MonthlyPointsResponse `json:"monthlyPoints"`
	TotalPoints   int64                   `json:"totalPoints"`
}

func FromRewardsView(v *queries.RewardsView) (*RewardsResponse, error) {
	res := &RewardsResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if res.MonthlyPoints == nil {
		res.MonthlyPoints = []MonthlyPointsResponse{}
	}
	return res, nil
}
