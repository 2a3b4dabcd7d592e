package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "loyalty-rewards/internal/handler/dto/response"
	"loyalty-rewards/internal/handler/httperr"
	"loyalty-rewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	q queries.RewardQueries
}

func NewRewardHandler(q queries.RewardQueries) *RewardHandler {
	return &RewardHandler{q: q}
}

// @Summary Get reward points
// @Description Calculate a customer's reward points per calendar month and in total
// @Tags rewards
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.RewardsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rewards/{id} [get]
func (h *RewardHandler) GetRewards(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID format", nil)
		return
	}

	view, err := h.q.ComputeRewards(c.Request.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", gin.H{"customerId": customerID})
		case errors.Is(err, queries.ErrTransactionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Transaction not found", gin.H{"customerId": customerID})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	res, err := resdto.FromRewardsView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
