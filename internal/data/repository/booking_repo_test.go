package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitness-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBooking(classID uuid.UUID, now time.Time) *entity.Booking {
	return &entity.Booking{
		BaseSimple:     entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		FitnessClassID: classID,
		ClientName:     "Meera",
		ClientEmail:    "meera@example.com",
	}
}

func TestBookingRepository_Book(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	now := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	classID := uuid.New()
	booking := newBooking(classID, now)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(classID).
		WillReturnRows(pgxmock.NewRows(classColumns).AddRow(classID, "Yoga", now.Add(time.Hour), "Asha", 2, now, now))
	mock.ExpectExec("UPDATE fitness_classes").
		WithArgs(classID, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(booking.ID, classID, "Meera", "meera@example.com", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	class, err := repo.Book(context.Background(), booking, now)
	require.NoError(t, err)
	require.NotNil(t, class)
	assert.Equal(t, 1, class.AvailableSlots)
	assert.Equal(t, "Yoga", class.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Book_ClassMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	now := time.Now()
	classID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(classID).WillReturnRows(pgxmock.NewRows(classColumns))
	mock.ExpectRollback()

	class, err := repo.Book(context.Background(), newBooking(classID, now), now)
	assert.Nil(t, class)
	assert.ErrorIs(t, err, ErrClassNotBookable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Book_ClassStarted(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	now := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	classID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(classID).
		WillReturnRows(pgxmock.NewRows(classColumns).AddRow(classID, "Yoga", now.Add(-time.Minute), "Asha", 4, now, now))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), newBooking(classID, now), now)
	assert.ErrorIs(t, err, ErrClassNotBookable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Book_NoSlots(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	now := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	classID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(classID).
		WillReturnRows(pgxmock.NewRows(classColumns).AddRow(classID, "Yoga", now.Add(time.Hour), "Asha", 0, now, now))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), newBooking(classID, now), now)
	assert.ErrorIs(t, err, ErrNoAvailableSlots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Book_DecrementLost(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	now := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	classID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(classID).
		WillReturnRows(pgxmock.NewRows(classColumns).AddRow(classID, "Yoga", now.Add(time.Hour), "Asha", 1, now, now))
	mock.ExpectExec("UPDATE fitness_classes").
		WithArgs(classID, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), newBooking(classID, now), now)
	assert.ErrorIs(t, err, ErrNoAvailableSlots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Book_InsertFailsRollsBack(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	now := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	classID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(classID).
		WillReturnRows(pgxmock.NewRows(classColumns).AddRow(classID, "Yoga", now.Add(time.Hour), "Asha", 1, now, now))
	mock.ExpectExec("UPDATE fitness_classes").
		WithArgs(classID, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO bookings").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	class, err := repo.Book(context.Background(), newBooking(classID, now), now)
	assert.Nil(t, class)
	assert.ErrorContains(t, err, "disk full")
	assert.NotErrorIs(t, err, ErrNoAvailableSlots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindByClientEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	now := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	classID := uuid.New()
	name := "Yoga"
	start := now.Add(time.Hour)
	instructor := "Asha"
	slots := 4

	columns := []string{
		"id", "fitness_class_id", "client_name", "client_email", "created_at",
		"id", "name", "start_time", "instructor", "available_slots",
	}
	rows := pgxmock.NewRows(columns).
		AddRow(uuid.New(), classID, "Meera", "meera@example.com", now, &classID, &name, &start, &instructor, &slots)

	mock.ExpectQuery(`WHERE b.client_email = \$1`).WithArgs("meera@example.com").WillReturnRows(rows)

	details, err := repo.FindByClientEmail(context.Background(), "meera@example.com")
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Meera", details[0].Booking.ClientName)
	require.NotNil(t, details[0].Class)
	assert.Equal(t, "Yoga", details[0].Class.Name)
	assert.Equal(t, 4, details[0].Class.AvailableSlots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindByClientEmail_Error(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM bookings").WillReturnError(errors.New("timeout"))

	details, err := repo.FindByClientEmail(context.Background(), "a@b.co")
	assert.Nil(t, details)
	assert.ErrorContains(t, err, "timeout")
}
