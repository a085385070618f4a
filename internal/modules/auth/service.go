package auth

import (
	"context"
	"errors"
	"strings"

	"pubdesk/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID string, role string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users    UserRepositoryInterface
	profiles ProfileRepositoryInterface
	jwt      jwtService
}

func NewService(users UserRepositoryInterface, profiles ProfileRepositoryInterface, jwt jwtService) *Service {
	return &Service{
		users:    users,
		profiles: profiles,
		jwt:      jwt,
	}
}

// Register creates an author account and its profile row in one
// transaction and returns a session token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, *domain.Profile, string, error) {
	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleAuthor,
	}
	profile := &domain.Profile{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		FullName:    strings.TrimSpace(req.FullName),
		Institution: strings.TrimSpace(req.Institution),
		Phone:       strings.TrimSpace(req.Phone),
	}

	err = s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(profile).Error
	})
	if err != nil {
		return nil, nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, nil, "", err
	}

	user.PasswordHash = ""
	return user, profile, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*domain.User, *domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	user.PasswordHash = ""

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	return user, profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.FullName) != "" {
		profile.FullName = strings.TrimSpace(req.FullName)
	}
	if req.Institution != "" {
		profile.Institution = strings.TrimSpace(req.Institution)
	}
	if req.Phone != "" {
		profile.Phone = strings.TrimSpace(req.Phone)
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return ErrEmailAlreadyExists
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
