package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	gcal "dentist-backend/internal/adapters/calendar/google"
	pg "dentist-backend/internal/adapters/storage/postgres"
	"dentist-backend/internal/adapters/storage/supabase"
	"dentist-backend/internal/config"
	"dentist-backend/internal/domain/accounts"
	"dentist-backend/internal/domain/booking"
	"dentist-backend/internal/platform/logger"
	"dentist-backend/internal/router"
)

const migrationFile = "db/migrations/001_init.sql"

func main() {
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		// sin store no hay servicio
		log.Error("config", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	ctx := context.Background()

	var (
		accountsRepo     accounts.Repository
		appointmentsRepo booking.Repository
	)

	if cfg.HasSupabase() {
		client, err := supabase.NewClient(supabase.Config{
			BaseURL: cfg.SupabaseURL,
			APIKey:  cfg.SupabaseKey,
		})
		if err != nil {
			log.Error("supabase", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		accountsRepo = supabase.NewAccountsRepo(client)
		appointmentsRepo = supabase.NewAppointmentsRepo(client)
		log.Info("store: supabase", map[string]any{"url": cfg.SupabaseURL})
	} else {
		db, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			log.Error("postgres", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db, migrationFile); err != nil {
			// el schema puede existir ya; se loguea y se sigue
			log.Warn("migration", map[string]any{"err": err.Error()})
		}

		accountsRepo = pg.NewAccountsRepo(db)
		appointmentsRepo = pg.NewAppointmentsRepo(db)
		log.Info("store: postgres", nil)
	}

	// Calendario: opcional. Sin esto, las reservas quedan pending sin link.
	var cal booking.CalendarClient
	if cfg.HasCalendar() {
		c, err := gcal.NewClient(ctx, gcal.Config{
			CredentialsFile: cfg.GoogleCredentialsFile,
			CalendarID:      cfg.GoogleCalendarID,
		})
		if err != nil {
			log.Warn("google calendar disabled", map[string]any{"err": err.Error()})
		} else {
			cal = c
			log.Info("google calendar enabled", map[string]any{"calendar_id": cfg.GoogleCalendarID})
		}
	} else {
		log.Warn("google calendar not configured, bookings will stay pending", nil)
	}

	h := router.NewRouter(router.Options{
		Accounts:        accountsRepo,
		Appointments:    appointmentsRepo,
		Calendar:        cal,
		CalendarTimeout: cfg.CalendarTimeout,
		Log:             log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
	}()

	// apagado prolijo
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
