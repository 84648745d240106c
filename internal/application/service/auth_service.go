package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/repository"
	"github.com/dguedes/marmitaria-api/pkg/apperror"
	"github.com/dguedes/marmitaria-api/pkg/utils"
)

// AuthService handles staff authentication. Attendants log in with their
// short code alone; admins must also present their password.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// AuthTokens represents the token pair issued on login.
type AuthTokens struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	User         *entity.User `json:"user"`
}

// Login authenticates a staff member by code. The password is only
// checked for admins; for attendants any supplied password is ignored.
func (s *AuthService) Login(ctx context.Context, code, password string) (*AuthTokens, error) {
	user, err := s.userRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, apperror.ErrInvalidCredentials
	}

	if user.IsAdmin() {
		if user.Password == nil {
			return nil, apperror.ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)); err != nil {
			return nil, apperror.ErrInvalidCredentials
		}
	}

	return s.issueTokens(user)
}

// RefreshToken issues a new token pair from a valid refresh token.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, apperror.ErrUnauthorized
	}

	return s.issueTokens(user)
}

// GetCurrentUser returns the profile of an authenticated staff member.
func (s *AuthService) GetCurrentUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*AuthTokens, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Code, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         user,
	}, nil
}
