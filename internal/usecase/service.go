package usecase

import (
	"context"
	"time"

	"fitness-booking/internal/data/repository"
	"fitness-booking/pkg/events"

	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

type Service struct {
	Auth    AuthService
	Class   ClassService
	Booking BookingService
}

func NewService(repo *repository.Repository, publisher events.Publisher, loc *time.Location, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, log),
		Class:   NewClassService(repo.Class, publisher, loc, log),
		Booking: NewBookingService(repo.Class, repo.Booking, publisher, loc, log),
	}
}

// publishEvent hands payload to the broker after the write has committed. The
// request may already be gone, so the publish gets its own deadline; failures
// are logged and never reach the caller.
func publishEvent(ctx context.Context, publisher events.Publisher, log *zap.Logger, routingKey string, payload any) {
	if publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := publisher.Publish(ctx, routingKey, payload); err != nil {
		log.Warn("Failed to publish event",
			zap.Error(err),
			zap.String("routing_key", routingKey),
		)
	}
}
