package handlers

import (
	"net/http"
	"strings"
	"time"

	"blogapi/internal/metrics"
	"blogapi/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	principalKey    = "principal"
)

// requestID propagates the client's X-Request-ID or assigns a new one.
func requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"request_id", c.GetString(requestIDKey),
	)
}

func observeMetrics(c *gin.Context) {
	start := time.Now()
	c.Next()
	metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
}

// authenticate verifies the bearer token and stores the principal in the context.
func (h *Handler) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		metrics.AuthFailure(metrics.ReasonMissingHeader)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		metrics.AuthFailure(metrics.ReasonMalformedHeader)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	p, err := h.services.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		metrics.AuthFailure(metrics.ReasonInvalidToken)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(principalKey, p)
	c.Next()
}

// authorizeAdmin must run after authenticate.
func (h *Handler) authorizeAdmin(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	if !p.IsAdmin() {
		metrics.AuthFailure(metrics.ReasonForbidden)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}
	c.Next()
}

func principalFrom(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// mustPrincipal returns the authenticated principal or writes 401.
func mustPrincipal(c *gin.Context) (models.Principal, bool) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	}
	return p, ok
}
