package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/repository"
)

// Auth error sentinels.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

const bcryptCost = 10

// AuthService handles registration, credential checks and principal lookup.
type AuthService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (models.User, error)
	Login(ctx context.Context, payload dto.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
}

type authService struct {
	users     repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService builds the authentication service.
func NewAuthService(users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

func (s *authService) Register(ctx context.Context, payload dto.RegisterRequest) (models.User, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.User{}, err
	}

	if _, err := s.users.GetByEmail(ctx, payload.Email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:    payload.Email,
		Password: string(hash),
		Name:     payload.Name,
		Role:     payload.Role,
	}

	if err := s.users.CreateWithProfile(ctx, &user, s.profileFor); err != nil {
		return models.User{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")

	return user, nil
}

// profileFor builds the role-matching sub-profile, decided once at
// registration time. Admins carry none.
func (s *authService) profileFor(user models.User) interface{} {
	today := s.now()

	switch user.Role {
	case models.RoleStudent:
		return &models.Student{
			UserID:         user.ID,
			StudentCode:    fmt.Sprintf("STU-%d", today.UnixMilli()),
			Grade:          "unassigned",
			EnrollmentDate: today,
			Status:         models.StudentStatusActive,
		}
	case models.RoleTeacher:
		return &models.Teacher{
			UserID:      user.ID,
			TeacherCode: fmt.Sprintf("TCH-%d", today.UnixMilli()),
			HireDate:    today,
			Status:      models.TeacherStatusActive,
		}
	default:
		return nil
	}
}

func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (models.User, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.User{}, err
	}

	user, err := s.users.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}
