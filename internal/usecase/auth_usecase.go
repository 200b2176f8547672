package usecase

import (
	"context"
	"errors"
	"net/http"

	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/apperror"
	"talentflow-backend/pkg/auth"
	"talentflow-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

const msgInvalidCredentials = "Invalid email or password"

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenIssuer
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenIssuer) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		logger.Log.Error("Login lookup failed", "error", err)
		return nil, apperror.New(http.StatusInternalServerError, "Authentication service unavailable", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}

	token, err := u.tokens.Issue(auth.Identity{ID: user.ID, Email: user.Email, Role: user.Role, Name: user.Name})
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Authentication service unavailable", err)
	}

	return &domain.LoginResult{Success: true, User: user.Profile(), Token: token}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.UserProfile, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Unauthorized("User no longer exists")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	profile := user.Profile()
	return &profile, nil
}
