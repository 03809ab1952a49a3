package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitness-booking/internal/data/entity"
	"fitness-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingDetail is a booking joined with its class. Class is nil when the
// class row could not be joined.
type BookingDetail struct {
	Booking *entity.Booking
	Class   *entity.FitnessClass
}

type BookingRepository interface {
	// Book takes one slot of booking.FitnessClassID and inserts booking in a
	// single transaction, returning the class as it is after the decrement.
	Book(ctx context.Context, booking *entity.Booking, now time.Time) (*entity.FitnessClass, error)
	FindByClientEmail(ctx context.Context, email string) ([]*BookingDetail, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Book(ctx context.Context, booking *entity.Booking, now time.Time) (*entity.FitnessClass, error) {
	lockQuery := `
		SELECT id, name, start_time, instructor, available_slots, created_at, updated_at
		FROM fitness_classes
		WHERE id = $1
		FOR UPDATE
	`
	decrementQuery := `
		UPDATE fitness_classes
		SET available_slots = available_slots - 1, updated_at = $2
		WHERE id = $1 AND available_slots > 0
	`
	insertQuery := `
		INSERT INTO bookings (id, fitness_class_id, client_name, client_email, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	var class entity.FitnessClass
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		// Row lock is held until commit or rollback
		err := tx.QueryRow(ctx, lockQuery, booking.FitnessClassID).Scan(
			&class.ID,
			&class.Name,
			&class.StartTime,
			&class.Instructor,
			&class.AvailableSlots,
			&class.CreatedAt,
			&class.UpdatedAt,
		)
		if err == pgx.ErrNoRows {
			return ErrClassNotBookable
		}
		if err != nil {
			return fmt.Errorf("lock fitness class %s: %w", booking.FitnessClassID, err)
		}

		if !class.IsUpcoming(now) {
			return ErrClassNotBookable
		}
		if !class.IsBookable(now) {
			return ErrNoAvailableSlots
		}

		tag, err := tx.Exec(ctx, decrementQuery, class.ID, now)
		if err != nil {
			return fmt.Errorf("decrement slots of %s: %w", class.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNoAvailableSlots
		}
		class.AvailableSlots--
		class.UpdatedAt = now

		_, err = tx.Exec(ctx, insertQuery,
			booking.ID,
			booking.FitnessClassID,
			booking.ClientName,
			booking.ClientEmail,
			booking.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert booking %s: %w", booking.ID, err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrClassNotBookable) && !errors.Is(err, ErrNoAvailableSlots) {
			r.log.Error("Failed to book fitness class",
				zap.Error(err),
				zap.String("class_id", booking.FitnessClassID.String()),
				zap.String("client_email", booking.ClientEmail),
			)
		}
		return nil, err
	}

	return &class, nil
}

// FindByClientEmail matches client_email exactly, newest first
func (r *bookingRepository) FindByClientEmail(ctx context.Context, email string) ([]*BookingDetail, error) {
	query := `
		SELECT b.id, b.fitness_class_id, b.client_name, b.client_email, b.created_at,
		       c.id, c.name, c.start_time, c.instructor, c.available_slots
		FROM bookings b
		LEFT JOIN fitness_classes c ON c.id = b.fitness_class_id
		WHERE b.client_email = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find bookings by client email",
			zap.Error(err),
			zap.String("client_email", email),
		)
		return nil, fmt.Errorf("find bookings by client email: %w", err)
	}
	defer rows.Close()

	details := make([]*BookingDetail, 0)
	for rows.Next() {
		var (
			booking    entity.Booking
			classID    *uuid.UUID
			name       *string
			startTime  *time.Time
			instructor *string
			slots      *int
		)
		err := rows.Scan(
			&booking.ID,
			&booking.FitnessClassID,
			&booking.ClientName,
			&booking.ClientEmail,
			&booking.CreatedAt,
			&classID,
			&name,
			&startTime,
			&instructor,
			&slots,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}

		detail := &BookingDetail{Booking: &booking}
		if classID != nil && name != nil && startTime != nil {
			detail.Class = &entity.FitnessClass{
				BaseNoDelete: entity.BaseNoDelete{ID: *classID},
				Name:         *name,
				StartTime:    *startTime,
			}
			if instructor != nil {
				detail.Class.Instructor = *instructor
			}
			if slots != nil {
				detail.Class.AvailableSlots = *slots
			}
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate booking rows", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return details, nil
}
