package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brewbot/backend/internal/domain"
)

// MessageRouter turns one incoming chat message into a reply envelope.
type MessageRouter interface {
	HandleMessage(ctx context.Context, msg domain.IncomingMessage) domain.Reply
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	router  MessageRouter
	limiter *UserRateLimiter
}

// NewHandler creates a new HTTP handler
func NewHandler(router MessageRouter, limiter *UserRateLimiter) *Handler {
	return &Handler{
		router:  router,
		limiter: limiter,
	}
}

// messageResponse is the webhook reply envelope; ID identifies the exchange
// for transport-side correlation.
type messageResponse struct {
	ID       string           `json:"id"`
	Messages []string         `json:"messages"`
	Keyboard [][]string       `json:"keyboard,omitempty"`
	Forwards []domain.Forward `json:"forwards,omitempty"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "brewbot-backend",
		"version": "1.0.0",
	})
}

// PostMessage handles one incoming chat message
func (h *Handler) PostMessage(c *gin.Context) {
	var msg domain.IncomingMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and text are required"})
		return
	}

	if !h.limiter.Allow(msg.UserID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many messages, slow down"})
		return
	}

	reply := h.router.HandleMessage(c.Request.Context(), msg)

	c.JSON(http.StatusOK, messageResponse{
		ID:       uuid.NewString(),
		Messages: reply.Messages,
		Keyboard: reply.Keyboard,
		Forwards: reply.Forwards,
	})
}
