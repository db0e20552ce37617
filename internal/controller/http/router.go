package http

import (
	"net/http"

	"membersync/internal/controller/http/handlers"
	"membersync/pkg/health"
	"membersync/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	webhook        *handlers.WebhookHandler
	healthRegistry *health.Registry
}

func NewRouter(webhook *handlers.WebhookHandler, healthRegistry *health.Registry) *Router {
	return &Router{
		webhook:        webhook,
		healthRegistry: healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	// The webhook route accepts POST only; anything else is refused before
	// any outbound call happens.
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	// Health checks (Kubernetes-style)
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST("/webhooks/orders", r.webhook.OrderUpdated)
}
