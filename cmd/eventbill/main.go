package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventbill/internal/config"
	"eventbill/internal/database"
	"eventbill/internal/events"
	"eventbill/internal/handler"
	"eventbill/internal/mw"
	"eventbill/internal/pdf"
	"eventbill/internal/push"
	"eventbill/internal/service"
)

func main() {
	cfg := config.New()

	db, err := database.NewDB(cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(db)

	if err := database.InitSchema(db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPub, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			slog.Error("failed to connect to AMQP broker", "error", err)
			os.Exit(1)
		}
		defer amqpPub.Close()
		publisher = amqpPub
	}

	sender, err := push.NewWebPushSender(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.PushSubscriber)
	if err != nil {
		slog.Error("failed to configure push sender", "error", err)
		os.Exit(1)
	}

	// Services
	authSvc := service.NewAuthService(db)
	invoiceSvc := service.NewInvoiceService(db, publisher)
	quotationSvc := service.NewQuotationService(db)
	vendorSvc := service.NewVendorService(db)
	renderer := pdf.NewRenderer()
	relay := push.NewRelay(sender)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.AuthGate(cfg.JWTSecret, mw.PublicPaths))

	r.Post("/auth/create_user", handler.CreateUserHandler(authSvc, cfg.JWTSecret))
	r.Post("/auth/login", handler.LoginHandler(authSvc, cfg.JWTSecret))

	r.Get("/invoice", handler.ListInvoicesHandler(invoiceSvc, cfg.LegacyEmptyList404))
	r.Post("/invoice", handler.CreateInvoiceHandler(invoiceSvc))
	r.Get("/invoice/{id}", handler.GetInvoiceHandler(invoiceSvc))
	r.Put("/invoice/{id}", handler.UpdateInvoiceHandler(invoiceSvc))
	r.Delete("/invoice/{id}", handler.DeleteInvoiceHandler(invoiceSvc))
	r.Get("/invoice/{id}/pdf", handler.InvoicePDFHandler(invoiceSvc, renderer))

	// Legacy aliases kept for old clients.
	r.Get("/allinvoices", handler.ListInvoicesHandler(invoiceSvc, cfg.LegacyEmptyList404))
	r.Get("/allinvoices/{id}/pdf", handler.InvoicePDFHandler(invoiceSvc, renderer))

	r.Post("/quotation", handler.CreateQuotationHandler(quotationSvc))
	r.Get("/allquotation", handler.ListQuotationsHandler(quotationSvc))
	r.Post("/vendor", handler.CreateVendorHandler(vendorSvc))
	r.Get("/allvendor", handler.ListVendorsHandler(vendorSvc))

	r.Post("/notification/token", handler.SendTokenNotificationHandler(relay))

	// Behind the gate: not in the public allow-list.
	r.Get("/home/profile", handler.ProfileHandler(authSvc))

	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
