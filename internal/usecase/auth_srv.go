package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	// EnsureAdmin creates the admin account, or promotes an existing user with that email.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if err := validateRequest(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 2. Email must be unused
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Save user
	now := time.Now().UTC()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	// 5. Log in right away
	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.issueToken(user)
}

func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find admin %s: %w", email, err)
	}

	if user != nil {
		if user.Role == entity.RoleAdmin {
			return nil
		}
		user.Role = entity.RoleAdmin
		user.UpdatedAt = time.Now().UTC()
		if err := s.userRepo.Update(ctx, user); err != nil {
			return fmt.Errorf("promote admin %s: %w", email, err)
		}
		s.log.Info("Existing user promoted to admin", zap.String("user_id", user.ID.String()))
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Admin",
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin %s: %w", email, err)
	}

	s.log.Info("Admin account created", zap.String("user_id", admin.ID.String()))
	return nil
}

func (s *authService) issueToken(user *entity.User) (*response.AuthResponse, error) {
	ttl := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, expiresAt, err := utils.GenerateAccessToken(s.config.JWT.Secret, user.ID, string(user.Role), ttl)
	if err != nil {
		s.log.Error("Failed to issue access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
