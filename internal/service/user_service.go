package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/qtcyy/practice-system/internal/apperr"
	"github.com/qtcyy/practice-system/internal/dto"
	"github.com/qtcyy/practice-system/internal/model"
	"github.com/qtcyy/practice-system/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*dto.LoginResp, error)
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	tokens   TokenService
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, tokens TokenService) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, username, password string) (*model.User, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if exists {
		return nil, apperr.Validation("User with this username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	role, err := s.roleRepo.FindByName(ctx, model.RoleUser)
	if err != nil {
		// Roles are seeded at startup; a missing USER role is a deployment fault.
		return nil, fmt.Errorf("default role %s not found: %w", model.RoleUser, err)
	}
	if err := s.roleRepo.Grant(ctx, user.Id, role.Id); err != nil {
		return nil, fmt.Errorf("granting role: %w", err)
	}

	log.Info().Str("username", username).Str("userID", user.Id.String()).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues a token. The failure message is
// identical for unknown users and wrong passwords.
func (s *userService) Login(ctx context.Context, username, password string) (*dto.LoginResp, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("Invalid username or password")
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Validation("Invalid username or password")
	}

	roleName, err := s.userRepo.RoleNameForUser(ctx, user.Id)
	if err != nil {
		return nil, fmt.Errorf("resolving role: %w", err)
	}
	if roleName == "" {
		roleName = model.RoleUser
	}

	token, err := s.tokens.CreateToken(user.Id, user.Username, roleName)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &dto.LoginResp{UserID: user.Id.String(), Token: token}, nil
}
