package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"betblitz-backend/internal/models"
	"betblitz-backend/internal/services"
)

type GameHandler struct {
	engine *services.Engine
}

func NewGameHandler(engine *services.Engine) *GameHandler {
	return &GameHandler{engine: engine}
}

// ---- Crash

func (h *GameHandler) CrashBet(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CrashBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.engine.CrashBet(c.Request.Context(), userID, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "balance": result.Balance, "crashPoint": result.CrashPoint})
}

func (h *GameHandler) CrashWin(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CrashWinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.engine.CrashWin(c.Request.Context(), userID, req.Amount, req.Multiplier)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "balance": result.Balance})
}

func (h *GameHandler) CrashLose(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CrashLoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.engine.CrashLose(c.Request.Context(), userID, req.Amount, req.CrashPoint); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- Dice

func (h *GameHandler) DiceBet(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.DiceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.engine.DiceBet(c.Request.Context(), userID, req.Amount, req.Target)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"result":     result.Roll,
		"won":        result.Won,
		"multiplier": result.Multiplier,
		"payout":     result.Payout,
		"balance":    result.Balance,
	})
}

// ---- Mines

func (h *GameHandler) MinesBet(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.MinesBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.engine.MinesStart(c.Request.Context(), userID, req.Amount, req.MineCount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "balance": result.Balance, "mineCount": result.MineCount})
}

func (h *GameHandler) MinesReveal(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.MinesRevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.engine.MinesReveal(c.Request.Context(), userID, req.TileIndex)
	if err != nil {
		fail(c, err)
		return
	}

	resp := gin.H{
		"success":   true,
		"status":    result.Status,
		"tileIndex": result.TileIndex,
	}
	if result.Status == "boom" {
		resp["mines"] = result.Mines
	} else {
		resp["multiplier"] = result.Multiplier
		resp["revealed"] = result.Revealed
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) MinesCashout(c *gin.Context) {
	userID := c.GetString("user_id")

	result, err := h.engine.MinesCashout(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"multiplier": result.Multiplier,
		"winnings":   result.Winnings,
		"balance":    result.Balance,
	})
}

// ---- HiLo

func (h *GameHandler) HiLoStart(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.HiLoStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.engine.HiLoStart(c.Request.Context(), userID, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "card": result.Card, "balance": result.Balance})
}

func (h *GameHandler) HiLoNext(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.HiLoNextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.engine.HiLoNext(c.Request.Context(), userID, req.Prediction)
	if err != nil {
		fail(c, err)
		return
	}

	resp := gin.H{
		"success": true,
		"status":  result.Status,
		"card":    result.Card,
		"rounds":  result.Rounds,
	}
	if result.Status == "won" {
		resp["multiplier"] = result.Multiplier
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) HiLoCashout(c *gin.Context) {
	userID := c.GetString("user_id")

	result, err := h.engine.HiLoCashout(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"multiplier": result.Multiplier,
		"winnings":   result.Winnings,
		"rounds":     result.Rounds,
		"balance":    result.Balance,
	})
}

// ---- Plinko

func (h *GameHandler) PlinkoBet(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.PlinkoBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.engine.PlinkoBet(c.Request.Context(), userID, req.Amount, req.Rows)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"path":       result.Path,
		"bucket":     result.Bucket,
		"multiplier": result.Multiplier,
		"winnings":   result.Winnings,
		"balance":    result.Balance,
	})
}

// ---- Sports

func (h *GameHandler) SportsBet(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.SportsBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.engine.SportsBet(c.Request.Context(), userID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "balance": result.Balance, "bet": result.Bet})
}
