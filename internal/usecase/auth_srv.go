package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fitness-booking/internal/data/entity"
	"fitness-booking/internal/data/repository"
	"fitness-booking/pkg/apperror"
	"fitness-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgCredentialsMissing = "Authentication credentials were not provided."
	msgCredentialsInvalid = "Invalid username/password."
	msgAuthFailed         = "An error occurred while checking credentials."
)

type AuthService interface {
	// Authenticate verifies a username/password pair
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
	// EnsureAdmin creates or refreshes the bootstrap administrator
	EnsureAdmin(ctx context.Context, username, password string) error
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// unknownUserHash gives missing users a bcrypt comparison of the same cost as
// real ones.
func unknownUserHash() string {
	dummyHashOnce.Do(func() {
		dummyHash, _ = utils.HashPassword("fitness-booking-unknown-user")
	})
	return dummyHash
}

type authService struct {
	users   repository.UserRepository
	compare func(password, hash string) bool
	now     func() time.Time
	log     *zap.Logger
}

func NewAuthService(users repository.UserRepository, log *zap.Logger) AuthService {
	return &authService{
		users:   users,
		compare: utils.CheckPasswordHash,
		now:     time.Now,
		log:     log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, apperror.Unauthenticated(msgCredentialsMissing)
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", username))
		return nil, apperror.Internal(msgAuthFailed, err)
	}

	hash := unknownUserHash()
	if user != nil {
		hash = user.PasswordHash
	}
	matched := s.compare(password, hash)

	if user == nil || !user.IsActive || !matched {
		s.log.Warn("Authentication failed", zap.String("username", username))
		return nil, apperror.Unauthenticated(msgCredentialsInvalid)
	}

	return user, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		s.log.Info("Admin bootstrap skipped, no username configured")
		return nil
	}
	if password == "" {
		return fmt.Errorf("admin %s: password is empty", username)
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("find admin %s: %w", username, err)
	}

	now := s.now()

	// 1. Create when missing
	if user == nil {
		hash, err := utils.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}

		user = &entity.User{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username:     username,
			PasswordHash: hash,
			Role:         entity.RoleAdmin,
			IsActive:     true,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return fmt.Errorf("create admin %s: %w", username, err)
		}

		s.log.Info("Admin user created", zap.String("username", username))
		return nil
	}

	// 2. Refresh when role, state or password drifted
	if user.IsAdmin() && user.IsActive && utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	user.PasswordHash = hash
	user.Role = entity.RoleAdmin
	user.IsActive = true
	user.UpdatedAt = now

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update admin %s: %w", username, err)
	}

	s.log.Info("Admin user updated", zap.String("username", username))
	return nil
}
