package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"goblog/internal/config"
	"goblog/internal/models"
	"goblog/internal/repository"
)

// ErrInvalidCredentials covers both unknown usernames and wrong
// passwords, so login failures are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=30"`
	Email    string `json:"email" validate:"omitempty,email,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (*models.User, string, string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// Register creates a non-admin user. Uniqueness of username and email is
// enforced by the database; a violation surfaces as repository.ErrDuplicate.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	user := &models.User{
		Username: req.Username,
	}
	if req.Email != "" {
		user.Email = sql.NullString{String: req.Email, Valid: true}
	}

	if err := s.userRepo.Create(ctx, user, req.Password); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, string, error) {
	user, ok, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, "", "", fmt.Errorf("verifying credentials: %w", err)
	}
	if !ok {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", err
	}

	refreshToken, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

// Refresh rotates the refresh token: the presented session is consumed
// and a new one issued together with a fresh access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	session, err := s.sessionRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid refresh token: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, "", "", fmt.Errorf("loading session user: %w", err)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", err
	}

	newRefreshToken, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, newRefreshToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"isAdmin":  user.IsAdmin,
		"exp":      time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// issueSession replaces any existing sessions for the user with one new
// refresh-token session.
func (s *authService) issueSession(ctx context.Context, userID int64) (string, error) {
	if err := s.sessionRepo.DeleteByUser(ctx, userID); err != nil {
		return "", err
	}

	session := &models.Session{
		Token:   uuid.New().String(),
		UserID:  userID,
		Expires: time.Now().Add(s.cfg.RefreshTokenDuration),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", err
	}

	return session.Token, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return token, nil
}
