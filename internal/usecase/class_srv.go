package usecase

import (
	"context"
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
	msgQueryClassesFailed = "An error occurred while querying classes."
	msgSaveClassFailed    = "An error occurred while saving the fitness class."
	msgInvalidDateTime    = "Datetime has wrong format. Use one of these formats instead: DD/MM/YYYY HH:MM, DD/MM/YYYY hh:MM AM/PM."
)

type ClassService interface {
	ListUpcoming(ctx context.Context) ([]response.ClassResponse, error)
	CreateClass(ctx context.Context, req *request.CreateClassRequest) (*response.ClassResponse, error)
}

type classService struct {
	classes   repository.ClassRepository
	publisher events.Publisher
	loc       *time.Location
	now       func() time.Time
	log       *zap.Logger
}

func NewClassService(classes repository.ClassRepository, publisher events.Publisher, loc *time.Location, log *zap.Logger) ClassService {
	return &classService{
		classes:   classes,
		publisher: publisher,
		loc:       loc,
		now:       time.Now,
		log:       log.With(zap.String("service", "class")),
	}
}

func (s *classService) ListUpcoming(ctx context.Context) ([]response.ClassResponse, error) {
	classes, err := s.classes.FindUpcoming(ctx, s.now())
	if err != nil {
		s.log.Error("Failed to list upcoming classes", zap.Error(err))
		return nil, apperror.Internal(msgQueryClassesFailed, err)
	}

	result := make([]response.ClassResponse, 0, len(classes))
	for _, class := range classes {
		result = append(result, response.ClassToResponse(class, s.loc, s.isUpcoming(class)))
	}

	return result, nil
}

func (s *classService) CreateClass(ctx context.Context, req *request.CreateClassRequest) (*response.ClassResponse, error) {
	req.Normalize()

	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = make(map[string]string)
	}

	var startTime time.Time
	if _, missing := errs["start_time"]; !missing {
		parsed, err := utils.ParseClassDateTime(req.StartTime, s.loc)
		if err != nil {
			errs["start_time"] = msgInvalidDateTime
		}
		startTime = parsed
	}

	if len(errs) > 0 {
		s.log.Warn("Create class validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("Validation failed", errs)
	}

	now := s.now()
	class := &entity.FitnessClass{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		StartTime:      startTime,
		Instructor:     req.Instructor,
		AvailableSlots: req.Slots(),
	}

	if err := s.classes.Create(ctx, class); err != nil {
		s.log.Error("Failed to save fitness class", zap.Error(err), zap.String("name", class.Name))
		return nil, apperror.Internal(msgSaveClassFailed, err)
	}

	metrics.RecordClassCreated()
	s.log.Info("Fitness class created",
		zap.String("class_id", class.ID.String()),
		zap.String("name", class.Name),
		zap.Time("start_time", class.StartTime),
		zap.Int("available_slots", class.AvailableSlots),
	)

	publishEvent(ctx, s.publisher, s.log, events.RoutingClassCreated, events.ClassCreated{
		ID:             class.ID.String(),
		Name:           class.Name,
		StartTime:      class.StartTime,
		Instructor:     class.Instructor,
		AvailableSlots: class.AvailableSlots,
	})

	resp := response.ClassToResponse(class, s.loc, s.isUpcoming(class))
	return &resp, nil
}

// isUpcoming never fails: an unset start time or a fault in the clock
// resolves to false.
func (s *classService) isUpcoming(class *entity.FitnessClass) (upcoming bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Failed to compute is_upcoming",
				zap.Any("panic", r),
				zap.String("class_id", class.ID.String()),
			)
			upcoming = false
		}
	}()

	if class.StartTime.IsZero() {
		s.log.Warn("Class has no start time", zap.String("class_id", class.ID.String()))
		return false
	}

	return class.IsUpcoming(s.now())
}
