package repository

import (
	"context"
	"fmt"
	"time"

	"fitness-booking/internal/data/entity"
	"fitness-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ClassRepository interface {
	Create(ctx context.Context, class *entity.FitnessClass) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FitnessClass, error)
	FindUpcoming(ctx context.Context, now time.Time) ([]*entity.FitnessClass, error)
}

type classRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassRepository(db database.PgxIface, log *zap.Logger) ClassRepository {
	return &classRepository{
		db:  db,
		log: log.With(zap.String("repository", "class")),
	}
}

func (r *classRepository) Create(ctx context.Context, class *entity.FitnessClass) error {
	query := `
		INSERT INTO fitness_classes (id, name, start_time, instructor, available_slots, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		class.ID,
		class.Name,
		class.StartTime,
		class.Instructor,
		class.AvailableSlots,
		class.CreatedAt,
		class.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create fitness class",
			zap.Error(err),
			zap.String("name", class.Name),
			zap.Time("start_time", class.StartTime),
		)
		return fmt.Errorf("create fitness class %s: %w", class.Name, err)
	}

	return nil
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FitnessClass, error) {
	query := `
		SELECT id, name, start_time, instructor, available_slots, created_at, updated_at
		FROM fitness_classes
		WHERE id = $1
	`

	var class entity.FitnessClass
	err := r.db.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Name,
		&class.StartTime,
		&class.Instructor,
		&class.AvailableSlots,
		&class.CreatedAt,
		&class.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find fitness class by ID",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return nil, fmt.Errorf("find fitness class by ID %s: %w", id.String(), err)
	}

	return &class, nil
}

// FindUpcoming returns classes starting at or after now
func (r *classRepository) FindUpcoming(ctx context.Context, now time.Time) ([]*entity.FitnessClass, error) {
	query := `
		SELECT id, name, start_time, instructor, available_slots, created_at, updated_at
		FROM fitness_classes
		WHERE start_time >= $1
		ORDER BY start_time ASC
	`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		r.log.Error("Failed to find upcoming fitness classes", zap.Error(err))
		return nil, fmt.Errorf("find upcoming fitness classes: %w", err)
	}
	defer rows.Close()

	classes := make([]*entity.FitnessClass, 0)
	for rows.Next() {
		var class entity.FitnessClass
		err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.StartTime,
			&class.Instructor,
			&class.AvailableSlots,
			&class.CreatedAt,
			&class.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan fitness class row", zap.Error(err))
			return nil, fmt.Errorf("scan fitness class row: %w", err)
		}
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate fitness class rows", zap.Error(err))
		return nil, fmt.Errorf("iterate fitness class rows: %w", err)
	}

	return classes, nil
}
