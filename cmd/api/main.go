package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/khatkhazana-hub/backend/internal/catalog"
	"github.com/khatkhazana-hub/backend/internal/config"
	"github.com/khatkhazana-hub/backend/internal/db"
	"github.com/khatkhazana-hub/backend/internal/httpserver"
	"github.com/khatkhazana-hub/backend/internal/mailer"
	"github.com/khatkhazana-hub/backend/internal/payment"
	"github.com/khatkhazana-hub/backend/internal/pricing"
	categoryrepo "github.com/khatkhazana-hub/backend/internal/repository/category"
	contactrepo "github.com/khatkhazana-hub/backend/internal/repository/contact"
	orderrepo "github.com/khatkhazana-hub/backend/internal/repository/order"
	productrepo "github.com/khatkhazana-hub/backend/internal/repository/product"
	submissionrepo "github.com/khatkhazana-hub/backend/internal/repository/submission"
	subscriptionrepo "github.com/khatkhazana-hub/backend/internal/repository/subscription"
	categorysvc "github.com/khatkhazana-hub/backend/internal/service/category"
	checkoutsvc "github.com/khatkhazana-hub/backend/internal/service/checkout"
	contactsvc "github.com/khatkhazana-hub/backend/internal/service/contact"
	productsvc "github.com/khatkhazana-hub/backend/internal/service/product"
	submissionsvc "github.com/khatkhazana-hub/backend/internal/service/submission"
	subscriptionsvc "github.com/khatkhazana-hub/backend/internal/service/subscription"
	"github.com/khatkhazana-hub/backend/internal/turnstile"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	logger.Printf("catalog loaded with %d products", cat.Len())

	// One gateway client for the whole process; nil means checkout
	// endpoints answer with a configuration error.
	var gateway payment.Gateway
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripe(cfg.StripeSecretKey, cfg.StripeTimeout)
	} else {
		logger.Printf("STRIPE_SECRET_KEY not set, checkout disabled")
	}

	var sender mailer.Sender = mailer.Nop{}
	if cfg.SMTPHost != "" {
		smtp, err := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
		if err != nil {
			logger.Fatalf("init mailer: %v", err)
		}
		sender = smtp
	}

	var captcha subscriptionsvc.CaptchaVerifier
	if cfg.TurnstileSecretKey != "" {
		captcha = turnstile.New(cfg.TurnstileSecretKey)
	}

	policy := pricing.Policy{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		ShippingFlatFee:       cfg.ShippingFlatFee,
		TaxRate:               cfg.TaxRate,
	}

	orderRepo := orderrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	contactRepo := contactrepo.NewPostgres(dbpool)
	submissionRepo := submissionrepo.NewPostgres(dbpool)
	subscriptionRepo := subscriptionrepo.NewPostgres(dbpool)

	checkoutService := checkoutsvc.New(cat, policy, gateway, orderRepo, cfg.Currency, logger)
	productService := productsvc.New(productRepo)
	categoryService := categorysvc.New(categoryRepo)
	contactService := contactsvc.New(contactRepo, sender, cfg.ContactNotifyTo, logger)
	submissionService := submissionsvc.New(submissionRepo)
	subscriptionService := subscriptionsvc.New(subscriptionRepo, captcha)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Checkout:      checkoutService,
		Products:      productService,
		Categories:    categoryService,
		Contacts:      contactService,
		Submissions:   submissionService,
		Subscriptions: subscriptionService,
	}, cfg.CORSOrigins)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
