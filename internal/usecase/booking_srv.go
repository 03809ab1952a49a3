package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitness-booking/internal/data/entity"
	"fitness-booking/internal/data/repository"
	"fitness-booking/internal/dto/request"
	"fitness-booking/internal/dto/response"
	"fitness-booking/pkg/apperror"
	"fitness-booking/pkg/events"
	"fitness-booking/pkg/metrics"
	"fitness-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	fieldFitnessClass = "fitness_class"

	msgNoSlots            = "No available slots for this class."
	msgUnexpected         = "An unexpected error occurred. Please try again later."
	msgEmailRequired      = "Email parameter is required."
	msgFetchBookingFailed = "An error occurred while fetching bookings."
)

func invalidPK(value string) string {
	return fmt.Sprintf("Invalid pk \"%s\" - object does not exist.", value)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListByEmail(ctx context.Context, req request.ListBookingsRequest) ([]response.BookingResponse, error)
}

type bookingService struct {
	classes   repository.ClassRepository
	bookings  repository.BookingRepository
	publisher events.Publisher
	loc       *time.Location
	now       func() time.Time
	log       *zap.Logger
}

func NewBookingService(
	classes repository.ClassRepository,
	bookings repository.BookingRepository,
	publisher events.Publisher,
	loc *time.Location,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		classes:   classes,
		bookings:  bookings,
		publisher: publisher,
		loc:       loc,
		now:       time.Now,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	req.Normalize()

	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = make(map[string]string)
	}

	// Reference check before taking the lock
	var classID uuid.UUID
	if _, missing := errs[fieldFitnessClass]; !missing {
		id, msg, err := s.checkReference(ctx, req.FitnessClass)
		if err != nil {
			metrics.RecordBooking(metrics.OutcomeError)
			return nil, apperror.Internal(msgUnexpected, err)
		}
		if msg != "" {
			errs[fieldFitnessClass] = msg
		}
		classID = id
	}

	if len(errs) > 0 {
		metrics.RecordBooking(metrics.OutcomeInvalid)
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("Validation failed", errs)
	}

	now := s.now()
	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		FitnessClassID: classID,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
	}

	// Authoritative re-check happens under the row lock
	class, err := s.bookings.Book(ctx, booking, now)
	switch {
	case errors.Is(err, repository.ErrClassNotBookable):
		metrics.RecordBooking(metrics.OutcomeNotBookable)
		return nil, apperror.Field(fieldFitnessClass, invalidPK(req.FitnessClass))
	case errors.Is(err, repository.ErrNoAvailableSlots):
		metrics.RecordBooking(metrics.OutcomeNoSlots)
		s.log.Info("Booking rejected, class is full", zap.String("class_id", classID.String()))
		return nil, apperror.Field(fieldFitnessClass, msgNoSlots)
	case err != nil:
		metrics.RecordBooking(metrics.OutcomeError)
		s.log.Error("Unexpected error during booking creation",
			zap.Error(err),
			zap.String("class_id", classID.String()),
		)
		return nil, apperror.Internal(msgUnexpected, err)
	}

	metrics.RecordBooking(metrics.OutcomeCreated)
	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("class_id", class.ID.String()),
		zap.String("client_email", booking.ClientEmail),
		zap.Int("remaining_slots", class.AvailableSlots),
	)

	publishEvent(ctx, s.publisher, s.log, events.RoutingBookingCreated, events.BookingCreated{
		ID:             booking.ID.String(),
		FitnessClassID: class.ID.String(),
		ClientName:     booking.ClientName,
		ClientEmail:    booking.ClientEmail,
		BookedAt:       booking.CreatedAt,
		RemainingSlots: class.AvailableSlots,
	})

	resp := response.BookingToResponse(booking, class.Display(s.loc))
	return &resp, nil
}

// checkReference resolves raw to a bookable class. A non-empty message is a
// client error for the fitness_class field.
func (s *bookingService) checkReference(ctx context.Context, raw string) (uuid.UUID, string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidPK(raw), nil
	}

	class, err := s.classes.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Unexpected error validating fitness class", zap.Error(err), zap.String("class_id", raw))
		return uuid.Nil, "", err
	}
	now := s.now()
	if class == nil || !class.IsUpcoming(now) {
		return uuid.Nil, invalidPK(raw), nil
	}
	if !class.IsBookable(now) {
		return uuid.Nil, msgNoSlots, nil
	}

	return id, "", nil
}

func (s *bookingService) ListByEmail(ctx context.Context, req request.ListBookingsRequest) ([]response.BookingResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperror.Validation(msgEmailRequired, map[string]string{apperror.NonFieldKey: msgEmailRequired})
	}

	// timezone only shapes the display string; an unknown zone renders in the app zone
	loc := s.loc
	if strings.TrimSpace(req.Timezone) != "" {
		requested, err := utils.LoadLocation(req.Timezone)
		if err != nil {
			s.log.Warn("Unknown timezone, using default", zap.String("timezone", req.Timezone))
		} else {
			loc = requested
		}
	}

	details, err := s.bookings.FindByClientEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to fetch bookings by email", zap.Error(err))
		return nil, apperror.Internal(msgFetchBookingFailed, err)
	}

	result := make([]response.BookingResponse, 0, len(details))
	for _, detail := range details {
		display := response.DisplayUnavailable
		if detail.Class != nil {
			display = detail.Class.Display(loc)
		} else {
			s.log.Warn("Booking has no readable class",
				zap.String("booking_id", detail.Booking.ID.String()),
				zap.String("class_id", detail.Booking.FitnessClassID.String()),
			)
		}
		result = append(result, response.BookingToResponse(detail.Booking, display))
	}

	return result, nil
}
