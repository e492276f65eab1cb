package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	reqdto "giggo-server/internal/handler/dto/request"
	"giggo-server/internal/infra"
	"giggo-server/internal/pkg/errs"
	"giggo-server/internal/pkg/jwt"
	"giggo-server/internal/pkg/password"
	"giggo-server/internal/usecase/queries"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrUserNotFound           = errs.New("user not found")
	ErrRegistrationFailed     = errs.New("registration failed")
	ErrTokenGeneration        = errs.New("token generation failed")
	ErrTokenValidation        = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	userID, err := a.userRepo.Create(ctx, req.Email, hash, req.DisplayName)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	tokenPair, err := a.issueTokenPair(userID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{UserID: userID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenPair, err := a.issueTokenPair(userView.ID)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userView.ID); err != nil {
		// Login already succeeded; a stale last_login is not worth a 500
		slog.Warn("failed to update last login", "user_id", userView.ID, "error", err.Error())
	}

	return &AuthResult{UserID: userView.ID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// The user must still exist before a new pair is minted
	if _, err := a.readStore.FindByID(ctx, claims.UserID); err != nil {
		return nil, ErrUserNotFound
	}

	return a.issueTokenPair(claims.UserID)
}

func (a *authCommandsImpl) issueTokenPair(userID uuid.UUID) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
