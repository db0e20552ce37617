package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"membersync/internal/domain/membership"

	"github.com/gin-gonic/gin"
)

// OrderProcessor handles one webhook delivery end to end.
type OrderProcessor interface {
	Process(ctx context.Context, payload []byte) (membership.Result, error)
}

type WebhookHandler struct {
	processor OrderProcessor
}

func NewWebhookHandler(p OrderProcessor) *WebhookHandler {
	return &WebhookHandler{processor: p}
}

// OrderUpdated receives the order webhook. The raw body goes to the
// processor untouched; payload normalization lives in the domain, not here.
// Every handled outcome is a 200 so the sender does not retry; hard upstream
// failures surface as 500 and leave the retry decision to the sender.
func (h *WebhookHandler) OrderUpdated(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read body: " + err.Error()})
		return
	}

	res, err := h.processor.Process(c.Request.Context(), body)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "webhook processing failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": res.Message})
}
