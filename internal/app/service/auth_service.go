package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"study_tracker/internal/common"
	"study_tracker/internal/common/security"
	"study_tracker/internal/domain/model"
	"study_tracker/internal/domain/repository"
	"study_tracker/internal/platform/config"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo    repository.UserRepository
	settingRepo repository.SettingRepository
}

func NewAuthService(userRepo repository.UserRepository, settingRepo repository.SettingRepository) *AuthService {
	return &AuthService{userRepo: userRepo, settingRepo: settingRepo}
}

type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account plus its settings row. Admin gating happens
// at the route level; this only enforces payload rules and uniqueness.
func (s *AuthService) Register(ctx context.Context, req CredentialsRequest) (*model.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if fields := validateStruct(req); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // repo maps unique violation to ErrConflict
	}

	// Eagerly materialize settings so first dashboard load has defaults.
	if _, err := s.settingRepo.GetOrCreate(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req CredentialsRequest) (*model.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if fields := validateStruct(req); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("invalid username or password: %w", common.ErrUnauthorized)
		}
		return nil, err
	}
	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid username or password: %w", common.ErrUnauthorized)
	}
	return user, nil
}

func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// AdminLogin checks the fixed admin credentials from configuration. The
// admin is not a database user; its session only carries the is_admin flag.
func (s *AuthService) AdminLogin(req CredentialsRequest) error {
	if fields := validateStruct(req); fields != nil {
		return common.NewValidationError(fields)
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(config.AppConfig.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(config.AppConfig.AdminPassword)) == 1
	if !userOK || !passOK {
		return fmt.Errorf("invalid admin credentials: %w", common.ErrUnauthorized)
	}
	return nil
}
