package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"betblitz-backend/internal/services"
)

type UserHandler struct {
	users   services.UserStore
	ledger  services.Ledger
	history services.BetHistory
}

func NewUserHandler(users services.UserStore, ledger services.Ledger, history services.BetHistory) *UserHandler {
	return &UserHandler{users: users, ledger: ledger, history: history}
}

// Me returns the authenticated user's profile, balance, and bet history.
// This is the client's refresh call after settlements.
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		fail(c, err)
		return
	}

	balance, err := h.ledger.Balance(ctx, userID)
	if err != nil {
		fail(c, err)
		return
	}

	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 50
	}

	history, err := h.history.List(ctx, userID, limit)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user.Public(balance),
		"history": history,
	})
}

// Balance is the lightweight poll used between games.
func (h *UserHandler) Balance(c *gin.Context) {
	userID := c.GetString("user_id")

	balance, err := h.ledger.Balance(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "balance": balance})
}
