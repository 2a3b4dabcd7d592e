//go:build e2e

package reward_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"loyalty-rewards/internal/handler/dto/response"
	"loyalty-rewards/tests/common/dbtest"
	"loyalty-rewards/tests/common/httptest"
	"loyalty-rewards/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const rewardsURL = "/api/rewards/%d"

type RewardSuite struct {
	e2e.SharedSuite
}

func (s *RewardSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRewardSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RewardSuite))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// TestGetRewards - reward computation API tests
// =============================================================================

func (s *RewardSuite) TestGetRewards() {
	s.Run("Normal case: single month totals", func() {
		t := s.T()

		customerID := s.SeedCustomer(1, "Albert",
			e2e.Purchase{ID: 1, Amount: "120.00", Date: day(2024, time.November, 1)},
			e2e.Purchase{ID: 2, Amount: "76.00", Date: day(2024, time.November, 3)},
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rewardsURL, customerID), nil, nil)

		var got response.RewardsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := response.RewardsResponse{
			CustomerName: "Albert",
			MonthlyPoints: []response.MonthlyPointsResponse{
				{Year: 2024, Month: 11, Points: 116},
			},
			TotalPoints: 116,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: months are ordered chronologically", func() {
		t := s.T()

		customerID := s.SeedCustomer(1, "Albert",
			e2e.Purchase{ID: 1, Amount: "120.00", Date: day(2024, time.November, 1)},
			e2e.Purchase{ID: 2, Amount: "90.00", Date: day(2024, time.October, 3)},
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rewardsURL, customerID), nil, nil)

		var got response.RewardsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := response.RewardsResponse{
			CustomerName: "Albert",
			MonthlyPoints: []response.MonthlyPointsResponse{
				{Year: 2024, Month: 10, Points: 40},
				{Year: 2024, Month: 11, Points: 90},
			},
			TotalPoints: 130,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: year boundary and fractional amounts", func() {
		t := s.T()

		customerID := s.SeedCustomer(7, "Bea",
			e2e.Purchase{ID: 10, Amount: "100.99", Date: day(2024, time.December, 31)},
			e2e.Purchase{ID: 11, Amount: "50.00", Date: day(2025, time.January, 1)},
			e2e.Purchase{ID: 12, Amount: "150.00", Date: day(2025, time.January, 15)},
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rewardsURL, customerID), nil, nil)

		var got response.RewardsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := response.RewardsResponse{
			CustomerName: "Bea",
			MonthlyPoints: []response.MonthlyPointsResponse{
				{Year: 2024, Month: 12, Points: 51},
				{Year: 2025, Month: 1, Points: 150},
			},
			TotalPoints: 201,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: other customers' transactions are ignored", func() {
		t := s.T()

		albert := dbtest.CreateTestCustomer(t, s.DB, 1, "Albert")
		other := dbtest.CreateTestCustomer(t, s.DB, 2, "Carol")
		dbtest.CreateTestTransaction(t, s.DB, 1, albert, "60.00", day(2024, time.March, 2))
		dbtest.CreateTestTransaction(t, s.DB, 2, other, "500.00", day(2024, time.March, 2))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rewardsURL, albert), nil, nil)

		var got response.RewardsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, int64(10), got.TotalPoints)
		require.Len(t, got.MonthlyPoints, 1)
	})

	s.Run("Error case: unknown customer", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rewardsURL, 999), nil, nil)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Customer not found")
	})

	s.Run("Error case: customer without transactions", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, 3, "Dora")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rewardsURL, customerID), nil, nil)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Transaction not found")
	})

	s.Run("Error case: non-numeric customer id", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rewards/abc", nil, nil)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid customer ID format")
	})
}

func (s *RewardSuite) TestHealth() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, nil)

	var got map[string]string
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal("ok", got["status"])
}
