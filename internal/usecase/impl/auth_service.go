// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"aula/internal/domain/entity"
	domainerrors "aula/internal/domain/errors"
	"aula/internal/domain/repository"
	"aula/internal/domain/service"
	"aula/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It orchestrates the user
// directory, the credential hasher and the token issuer; it holds no mutable
// state of its own, so concurrent requests share nothing outside the database.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register orchestrates the user registration process. On success exactly one
// directory write happens; every failure path leaves the directory untouched.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "name, email and password are required")
	}

	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	// Pre-check for a friendlier conflict message. The unique constraint on
	// the email column is the authoritative guard; a concurrent registration
	// that slips past this read still fails on insert with the same outcome.
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.logger.Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration rejected")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.logger.Error("Failed to check existing email", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.logger.Error("Failed to create user during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	// Re-read the stored row so the response carries the directory-assigned id.
	createdUser, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.logger.Error("Failed to load created user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load created user")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", createdUser.ID))

	return &usecase.RegisterOutput{
		ID:    createdUser.ID,
		Name:  createdUser.Name,
		Email: createdUser.Email,
	}, nil
}

// Login orchestrates the user login process. It reads the directory, verifies
// the credential and issues a token; it never mutates the directory.
//
// An unknown email and a wrong password are distinguished on purpose, matching
// the platform's established API. The account-existence leak this implies is
// recorded as an open policy question in DESIGN.md.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}

	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed, user not found", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}
		srv.logger.Error("Failed to load user for login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt comparison is CPU-bound and constant-time for equal-cost hashes.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.logger.Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, "failed to issue token")
	}

	srv.logger.Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}
