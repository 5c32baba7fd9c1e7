package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "dentist-backend/docs"
	mem "dentist-backend/internal/adapters/storage/memory"
	"dentist-backend/internal/domain/accounts"
	"dentist-backend/internal/domain/booking"
	"dentist-backend/internal/middleware"
	"dentist-backend/internal/platform/logger"
)

type Options struct {
	// Repos: si vienen nil se usan los in-memory (dev/tests).
	Accounts     accounts.Repository
	Appointments booking.Repository

	// Calendar puede ser nil: el booking sigue sin evento (best-effort).
	Calendar booking.CalendarClient

	// CalendarTimeout opcional; 0 = default del service.
	CalendarTimeout time.Duration

	// RateLimit opcional para register/login; nil = límite por defecto.
	RateLimit *middleware.RateLimiter

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Welcome to the Dentist Website API"}` + "\n"))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	accountsRepo := opts.Accounts
	if accountsRepo == nil {
		accountsRepo = mem.NewAccountsRepo()
	}
	appointmentsRepo := opts.Appointments
	if appointmentsRepo == nil {
		appointmentsRepo = mem.NewAppointmentsRepo()
	}

	// Services por módulo
	accountsSvc := accounts.NewService(accountsRepo)
	bookingSvc := booking.NewService(appointmentsRepo, opts.Calendar, log)
	if opts.CalendarTimeout > 0 {
		bookingSvc.CalendarTimeout(opts.CalendarTimeout)
	}

	rl := opts.RateLimit
	if rl == nil {
		rl = middleware.NewRateLimiter(5, 20)
	}

	// register/login con rate limit por IP; booking sin límite
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.Limit(rl))
		accounts.RegisterRoutes(gr, accountsSvc, log)
	})

	booking.RegisterRoutes(r, bookingSvc, log)

	return r
}
