package commands

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/domain/user"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/event"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	publisher  EventPublisher
	clock      clock.Clock
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, publisher EventPublisher, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		publisher:  publisher,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	email, role, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userEntity := user.NewUser(email, hash, req.FirstName, req.LastName, role)

	if err := a.userRepo.Create(ctx, userEntity, a.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	ev := event.UserEvent{
		Type:       event.TypeUserRegistered,
		UserEmail:  userEntity.Email().Value(),
		UserName:   userEntity.FullName(),
		Role:       userEntity.Role().String(),
		OccurredAt: a.clock.Now(),
	}
	if err := a.publisher.PublishUserEvent(ctx, ev); err != nil {
		slog.Warn("failed to publish user registered event", "email", ev.UserEmail, "error", err.Error())
	}

	return a.issueToken(userEntity)
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}

	userEntity, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !userEntity.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.Compare(userEntity.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userEntity.ID(), a.clock.Now()); err != nil {
		slog.Warn("failed to update last login", "user_id", userEntity.ID(), "error", err.Error())
		// Not critical, the login itself succeeded.
	}

	return a.issueToken(userEntity)
}

func (a *authCommandsImpl) issueToken(u *user.User) (*LoginResult, error) {
	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID: u.ID(),
		Email:  u.Email().Value(),
		Role:   u.Role(),
		Token:  token,
	}, nil
}
