package usecase

import (
	"context"
	"sync"
	"time"

	"fitness-booking/internal/data/entity"
	"fitness-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockClassRepo struct {
	mock.Mock
}

func (m *mockClassRepo) Create(ctx context.Context, class *entity.FitnessClass) error {
	return m.Called(ctx, class).Error(0)
}

func (m *mockClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.FitnessClass, error) {
	args := m.Called(ctx, id)
	class, _ := args.Get(0).(*entity.FitnessClass)
	return class, args.Error(1)
}

func (m *mockClassRepo) FindUpcoming(ctx context.Context, now time.Time) ([]*entity.FitnessClass, error) {
	args := m.Called(ctx, now)
	classes, _ := args.Get(0).([]*entity.FitnessClass)
	return classes, args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Book(ctx context.Context, booking *entity.Booking, now time.Time) (*entity.FitnessClass, error) {
	args := m.Called(ctx, booking, now)
	class, _ := args.Get(0).(*entity.FitnessClass)
	return class, args.Error(1)
}

func (m *mockBookingRepo) FindByClientEmail(ctx context.Context, email string) ([]*repository.BookingDetail, error) {
	args := m.Called(ctx, email)
	details, _ := args.Get(0).([]*repository.BookingDetail)
	return details, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	return m.Called(ctx, routingKey, payload).Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

// memStore is a serialized in-memory class/booking store that follows the
// same lock, re-check and decrement rules as the PostgreSQL repository.
type memStore struct {
	mu       sync.Mutex
	classes  map[uuid.UUID]entity.FitnessClass
	bookings []entity.Booking
}

func newMemStore(classes ...entity.FitnessClass) *memStore {
	s := &memStore{classes: make(map[uuid.UUID]entity.FitnessClass)}
	for _, c := range classes {
		s.classes[c.ID] = c
	}
	return s
}

func (s *memStore) Create(_ context.Context, class *entity.FitnessClass) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes[class.ID] = *class
	return nil
}

func (s *memStore) FindByID(_ context.Context, id uuid.UUID) (*entity.FitnessClass, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.classes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *memStore) FindUpcoming(_ context.Context, now time.Time) ([]*entity.FitnessClass, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*entity.FitnessClass, 0)
	for _, c := range s.classes {
		if c.IsUpcoming(now) {
			c := c
			result = append(result, &c)
		}
	}
	return result, nil
}

func (s *memStore) Book(_ context.Context, booking *entity.Booking, now time.Time) (*entity.FitnessClass, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.classes[booking.FitnessClassID]
	if !ok || !c.IsUpcoming(now) {
		return nil, repository.ErrClassNotBookable
	}
	if c.AvailableSlots < 1 {
		return nil, repository.ErrNoAvailableSlots
	}

	c.AvailableSlots--
	s.classes[c.ID] = c
	s.bookings = append(s.bookings, *booking)
	return &c, nil
}

func (s *memStore) FindByClientEmail(_ context.Context, email string) ([]*repository.BookingDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*repository.BookingDetail, 0)
	for _, b := range s.bookings {
		if b.ClientEmail != email {
			continue
		}
		b := b
		detail := &repository.BookingDetail{Booking: &b}
		if c, ok := s.classes[b.FitnessClassID]; ok {
			detail.Class = &c
		}
		result = append(result, detail)
	}
	return result, nil
}

func (s *memStore) slots(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.classes[id].AvailableSlots
}

func (s *memStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}
