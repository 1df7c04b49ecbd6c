package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"betblitz-backend/internal/services"
)

var kindStatus = map[string]int{
	"insufficient_funds":  http.StatusBadRequest,
	"invalid_parameter":   http.StatusBadRequest,
	"already_revealed":    http.StatusBadRequest,
	"session_conflict":    http.StatusConflict,
	"no_active_session":   http.StatusNotFound,
	"upstream_failure":    http.StatusBadGateway,
	"user_not_found":      http.StatusNotFound,
	"user_exists":         http.StatusBadRequest,
	"invalid_credentials": http.StatusBadRequest,
	"not_verified":        http.StatusForbidden,
}

// fail renders a business error with its machine-checkable kind.
func fail(c *gin.Context, err error) {
	kind := services.ErrorKind(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   kind,
		"message": err.Error(),
	})
}

// badRequest renders a binding/validation failure.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "invalid_parameter",
		"message": err.Error(),
	})
}
