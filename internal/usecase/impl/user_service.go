// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"unicode/utf8"

	"cinematch/config"
	deliverycontext "cinematch/internal/delivery/context"
	"cinematch/internal/domain/entity"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/domain/repository"
	"cinematch/internal/domain/service"
	"cinematch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	sessions          service.SessionCodec
	minPasswordLength int
	newID             func() string
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Sessions service.SessionCodec
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	minPasswordLength := 0
	if params.Config != nil {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &userService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		sessions:          params.Sessions,
		minPasswordLength: minPasswordLength,
		newID:             func() string { return uuid.New().String() },
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account and opens a session for it.
func (srv *userService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	if utf8.RuneCountInString(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password: must be at least " + strconv.Itoa(srv.minPasswordLength) + " characters")
	}

	_, found, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up email")
	}
	if found {
		srv.log(ctx).Warn("Signup rejected, email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrDuplicateEmail.WrapMessage("signup")
	}

	stored, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user, err := srv.userRepo.Insert(ctx, &entity.User{
		ID:       srv.newID(),
		Email:    input.Email,
		Password: stored,
		Name:     input.Name,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to insert user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to insert user")
	}

	srv.log(ctx).Info("Signup completed", slog.String("user_id", user.ID))

	return srv.openSession(user)
}

// Login checks the credentials and opens a session.
// Unknown email and wrong password fail with the same error.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, found, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up email")
	}
	if !found || !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.String("user_id", user.ID))

	return srv.openSession(user)
}

func (srv *userService) openSession(user *entity.User) (*usecase.SessionOutput, error) {
	value, err := srv.sessions.Encode(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session")
	}

	return &usecase.SessionOutput{
		User:         user,
		SessionValue: value,
		MaxAge:       srv.sessions.MaxAge(),
	}, nil
}

// ResolveSession maps a session cookie value to the stored user.
func (srv *userService) ResolveSession(ctx context.Context, value string) (*entity.User, error) {
	userID, err := srv.sessions.Decode(value)
	if err != nil {
		srv.log(ctx).Debug("Rejected session cookie", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "invalid session")
	}

	user, found, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session")
	}
	if !found {
		srv.log(ctx).Warn("Session refers to unknown user", slog.String("user_id", userID))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "unknown user")
	}

	return user, nil
}

// GetProfile presents the user without credentials, with the quiz payload parsed when possible.
func (srv *userService) GetProfile(ctx context.Context, user *entity.User) *usecase.ProfileOutput {
	out := &usecase.ProfileOutput{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}

	results, err := entity.ParseQuizResults(user.QuizResults)
	if err != nil {
		srv.log(ctx).Warn("Stored quiz results are not valid JSON", slog.String("user_id", user.ID), slog.Any("error", err))
		out.RawQuizResults = user.QuizResults

		return out
	}
	out.QuizResults = results

	return out
}
