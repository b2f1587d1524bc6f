package service

import (
	"context"
	"database/sql"

	"goblog/internal/repository"
)

type UpdateUserRequest struct {
	UserID  int64  `json:"userId"`
	Email   string `json:"email" validate:"omitempty,email,max=50"`
	IsAdmin *bool  `json:"isAdmin"`
}

type UserService interface {
	UpdateUser(ctx context.Context, req UpdateUserRequest) error
	DeleteUser(ctx context.Context, userID int64) error
	ChangePassword(ctx context.Context, userID int64, current, replacement string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) UpdateUser(ctx context.Context, req UpdateUserRequest) error {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	if req.Email != "" {
		user.Email = sql.NullString{String: req.Email, Valid: true}
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	return s.userRepo.Update(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepo.Delete(ctx, userID)
}

// ChangePassword requires the current password before re-hashing the
// replacement. The stored hash is replaced wholesale; no plaintext is
// retained anywhere in between.
func (s *userService) ChangePassword(ctx context.Context, userID int64, current, replacement string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.VerifyPassword(current) {
		return ErrInvalidCredentials
	}

	if err := user.SetPassword(replacement); err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, user.PasswordHash)
}
