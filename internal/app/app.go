package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"membersync/config"
	controller "membersync/internal/controller/http"
	"membersync/internal/controller/http/handlers"
	"membersync/internal/domain/membership"
	"membersync/internal/external/bigcommerce"
	"membersync/internal/external/mailchimp"
	"membersync/pkg/correlation"
	"membersync/pkg/health"
	"membersync/pkg/logger"
	"membersync/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Run bootstraps and runs the membersync service.
func Run(cfg config.Config) {
	logger.Setup(logger.Options{
		Level:   cfg.LogLevel,
		Console: cfg.LogFormat == "console",
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(correlation.Middleware(), metrics.GinMiddleware(), logger.GinRequestLogger(), gin.Recovery())

	commerceClient := bigcommerce.New(
		cfg.StoreHash,
		cfg.AccessToken,
		cfg.CommerceBaseURL,
		&http.Client{Timeout: cfg.HTTPCommerceClientTimeout},
	)

	// Audience sync runs only with a complete marketing config: api key with
	// a derivable datacenter plus a list id. Anything less disables the step.
	var audience membership.AudienceGateway
	if cfg.MailchimpEnabled() {
		if cfg.MailchimpBaseURL == "" && mailchimp.DatacenterFromKey(cfg.MailchimpAPIKey) == "" {
			slog.Warn("mailchimp api key has no datacenter suffix, audience sync disabled")
		} else {
			audience = mailchimp.New(
				cfg.MailchimpAPIKey,
				cfg.MailchimpListID,
				cfg.MailchimpBaseURL,
				&http.Client{Timeout: cfg.HTTPMailchimpClientTimeout},
			)
		}
	} else {
		slog.Info("mailchimp config absent, audience sync disabled")
	}

	service := membership.NewService(
		commerceClient,
		audience,
		membership.NewStatusSet(cfg.EligibleOrderStatuses),
		cfg.MemberGroupID,
		cfg.MailchimpMemberTag,
	)

	webhookHandler := handlers.NewWebhookHandler(service)

	healthRegistry := health.NewRegistry(health.NewCommerceChecker(commerceClient))

	router := controller.NewRouter(webhookHandler, healthRegistry)
	router.SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		slog.Info("membersync started", slog.Int("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down membersync...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", slog.String("error", err.Error()))
	}

	slog.Info("membersync stopped")
}
