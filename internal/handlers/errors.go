package handlers

import (
	"errors"
	"net/http"

	"blogapi/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidID   = "invalid id"
	errInvalidBody = "invalid request body"
)

// statusFor maps a service error kind to its HTTP status.
func statusFor(k service.Kind) int {
	switch k {
	case service.KindValidation, service.KindConflict:
		return http.StatusBadRequest
	case service.KindAuthentication:
		return http.StatusUnauthorized
	case service.KindAuthorization:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondError writes client errors with their own message. Anything else
// is logged under logKey and answered with 500 and internalMsg.
func (h *Handler) respondError(c *gin.Context, err error, internalMsg, logKey string, kv ...interface{}) {
	var se *service.Error
	if errors.As(err, &se) {
		if status := statusFor(se.Kind); status != http.StatusInternalServerError {
			c.JSON(status, gin.H{"error": se.Msg})
			return
		}
	}
	h.logAndJSONError(c, http.StatusInternalServerError, internalMsg, logKey, err, kv...)
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "route", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody})
		return false
	}
	return true
}
