package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config junta toda la configuración de entorno del servicio.
// Regla de arranque: sin credenciales de store (Supabase o DSN directo) el
// proceso no levanta; sin configuración de calendario solo se degrada el
// booking a "siempre sin evento".
type Config struct {
	Port string

	// Store: uno de los dos. Si vienen ambos, gana Supabase.
	SupabaseURL string
	SupabaseKey string
	DatabaseDSN string

	// Calendario (opcional)
	GoogleCredentialsFile string
	GoogleCalendarID      string
	CalendarTimeout       time.Duration
}

var ErrNoStore = errors.New("config: no store credentials (set SUPABASE_URL+SUPABASE_KEY or DB_DSN)")

func Load() (Config, error) {
	cfg := Config{
		Port:                  env("PORT", "8080"),
		SupabaseURL:           strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		SupabaseKey:           strings.TrimSpace(os.Getenv("SUPABASE_KEY")),
		DatabaseDSN:           strings.TrimSpace(os.Getenv("DB_DSN")),
		GoogleCredentialsFile: strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE")),
		GoogleCalendarID:      strings.TrimSpace(os.Getenv("GOOGLE_CALENDAR_ID")),
		CalendarTimeout:       10 * time.Second,
	}

	if v := strings.TrimSpace(os.Getenv("CALENDAR_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, errors.New("config: CALENDAR_TIMEOUT must be a positive duration")
		}
		cfg.CalendarTimeout = d
	}

	if !cfg.HasSupabase() && cfg.DatabaseDSN == "" {
		return Config{}, ErrNoStore
	}
	return cfg, nil
}

func (c Config) HasSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

func (c Config) HasCalendar() bool {
	return c.GoogleCredentialsFile != "" && c.GoogleCalendarID != ""
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
