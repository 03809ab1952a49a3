package wire

import (
	"fmt"
	"net/http"
	"time"

	"fitness-booking/internal/adaptor"
	"fitness-booking/internal/data/repository"
	"fitness-booking/internal/usecase"
	"fitness-booking/pkg/database"
	"fitness-booking/pkg/events"
	"fitness-booking/pkg/middleware"
	"fitness-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const visitorTTL = 3 * time.Minute

// App holds the wired router and the services behind it
type App struct {
	Router  *chi.Mux
	Service *usecase.Service

	limiter *middleware.RateLimiter
}

// Close releases background resources owned by the app
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
}

// Wiring builds services, handlers and routes
func Wiring(
	db database.PgxIface,
	repo *repository.Repository,
	publisher events.Publisher,
	config *utils.Config,
	logger *zap.Logger,
) (*App, error) {
	loc, err := utils.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load app timezone %q: %w", config.App.Timezone, err)
	}

	service := usecase.NewService(repo, publisher, loc, logger)
	handler := adaptor.NewHandler(service, db, logger)
	limiter := middleware.NewRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst, visitorTTL)

	router := setupRouter(handler, service, limiter, logger)

	return &App{
		Router:  router,
		Service: service,
		limiter: limiter,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	limiter *middleware.RateLimiter,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseNotFound(w, "Not found.")
	})

	// Apply routes
	wireClass(r, handler.Class, service.Auth, logger)
	wireBooking(r, handler.Booking, limiter, logger)
	wireSystem(r, handler.System)

	return r
}
