package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/boba-tech/site-api/internal/config"
	"github.com/boba-tech/site-api/internal/db"
	"github.com/boba-tech/site-api/internal/logger"
	"github.com/boba-tech/site-api/internal/migrations"
	"github.com/boba-tech/site-api/internal/notify"
	"github.com/boba-tech/site-api/internal/pricing"
	"github.com/boba-tech/site-api/internal/reddit"
	"github.com/boba-tech/site-api/internal/store"
)

type server struct {
	log      *zap.Logger
	db       *sql.DB
	store    *store.Store
	auth     *authService
	catalog  pricing.Catalog
	notifier notify.Notifier
	reddit   *reddit.Client
}

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatal("failed to run database migrations", zap.Error(err))
		}
	}

	auth := newAuthService(database, cfg.SessionSecret)
	if err := auth.ensureAdminUser(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("failed to ensure admin user", zap.Error(err))
	}

	notifier, err := buildNotifier(cfg, log)
	if err != nil {
		log.Fatal("failed to configure email notifier", zap.Error(err))
	}

	srv := &server{
		log:      log,
		db:       database,
		store:    store.New(database),
		auth:     auth,
		catalog:  pricing.DefaultCatalog(),
		notifier: notifier,
		reddit:   reddit.NewClient(),
	}

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/pricing/catalog", s.handlePricingCatalog)
		r.Post("/pricing-estimate", s.handleEstimateSubmit)
		r.Get("/pricing-estimate/{reference}", s.handleEstimateDetail)
		r.Post("/contact", s.handleContactSubmit)
		r.Get("/services", s.handleServicesList)
		r.Get("/services/{slug}", s.handleServiceDetail)
		r.Get("/tools/reddit-post-date", s.handleRedditPostDate)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", s.handleAdminLogin)
		r.Post("/logout", s.handleAdminLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Get("/contact-messages", s.handleAdminContactMessages)
			r.Get("/estimates", s.handleAdminEstimates)
		})
	})

	return r
}

func buildNotifier(cfg config.Config, log *zap.Logger) (notify.Notifier, error) {
	switch cfg.EmailProvider {
	case "worker":
		return notify.NewWorkerNotifier(cfg.EmailWorkerURL, cfg.EmailWorkerAPIKey), nil
	case "ses":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return notify.NewSESNotifier(ctx, cfg.SESRegion, cfg.NotifyFrom, cfg.NotifyRecipients)
	default:
		return notify.NewNopNotifier(log), nil
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "database unavailable")
		return
	}
	respondSuccess(w, http.StatusOK, "ok", nil)
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAuthenticated(r, s.auth) {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
