package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"betblitz-backend/internal/models"
	"betblitz-backend/internal/services"
)

type AuthHandler struct {
	auth   *services.AuthService
	ledger services.Ledger
	dev    bool
}

func NewAuthHandler(auth *services.AuthService, ledger services.Ledger, dev bool) *AuthHandler {
	return &AuthHandler{auth: auth, ledger: ledger, dev: dev}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, code, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	resp := gin.H{
		"success": true,
		"message": "Verification code generated",
		"userId":  user.ID,
	}
	// Outside production the code rides along so signup works without a
	// configured mailer, as the original did.
	if h.dev {
		resp["debugCode"] = code
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Verify(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.auth.Verify(c.Request.Context(), req.UserID, req.Code); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if user != nil {
			// Unverified logins get the user ID back so the client can
			// jump straight to the verification screen.
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   services.ErrorKind(err),
				"message": err.Error(),
				"userId":  user.ID,
			})
			return
		}
		fail(c, err)
		return
	}

	balance, err := h.ledger.Balance(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user.Public(balance),
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "If account exists, code sent."})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
