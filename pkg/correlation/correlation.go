// Package correlation provides utilities for correlation ID propagation.
package correlation

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderName is the HTTP header for correlation ID.
const HeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext extracts correlation ID from context.
// Returns empty string if not present.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// WithID returns a new context with correlation ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID generates a new correlation ID (UUID v4).
func NewID() string {
	return uuid.New().String()
}

// Middleware extracts X-Correlation-ID from the request header or generates a
// new one. It stores the ID in the request context and adds it to the
// response header.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		corrID := c.GetHeader(HeaderName)
		if corrID == "" {
			corrID = NewID()
		}

		ctx := WithID(c.Request.Context(), corrID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(HeaderName, corrID)

		c.Next()
	}
}
