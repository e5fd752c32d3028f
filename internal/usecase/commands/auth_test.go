//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/event"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/password"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/tests/common/builder"
	commandsmock "hotel-booking-api/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	userRepo  *commandsmock.MockUserRepository
	publisher *commandsmock.MockEventPublisher
	jwt       *jwt.Service
}

func newAuthCommands(t *testing.T) (commands.AuthCommands, *authFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &authFixture{
		userRepo:  commandsmock.NewMockUserRepository(ctrl),
		publisher: commandsmock.NewMockEventPublisher(ctrl),
		jwt:       jwt.NewService("test-secret", 24*time.Hour),
	}
	auth := commands.NewAuthCommands(f.userRepo, f.jwt, f.publisher, clock.NewMockClock(builder.FrozenNow))
	return auth, f
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a token for the new user", func(t *testing.T) {
		auth, f := newAuthCommands(t)
		req := builder.NewUserBuilder().BuildRegisterRequestDTO()

		var created *user.User
		f.userRepo.EXPECT().Create(gomock.Any(), gomock.Any(), builder.FrozenNow).
			DoAndReturn(func(_ context.Context, u *user.User, _ time.Time) error {
				created = u
				return nil
			})
		f.publisher.EXPECT().PublishUserEvent(gomock.Any(), gomock.Cond(func(x any) bool {
			ev, ok := x.(event.UserEvent)
			return ok && ev.Type == event.TypeUserRegistered && ev.UserEmail == req.Email
		})).Return(nil)

		result, err := auth.Register(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, req.Email, result.Email)
		assert.Equal(t, user.RoleCustomer, result.Role)
		assert.NotEmpty(t, result.Token)

		// The stored hash must verify against the submitted password.
		require.NoError(t, password.Compare(created.PasswordHash(), req.Password))

		claims, err := f.jwt.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, created.ID(), claims.UserID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		auth, f := newAuthCommands(t)
		req := builder.NewUserBuilder().BuildRegisterRequestDTO()

		f.userRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

		_, err := auth.Register(ctx, req)
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("hotel owner registration", func(t *testing.T) {
		auth, f := newAuthCommands(t)
		req := builder.NewUserBuilder().WithRole(user.RoleHotelOwner).BuildRegisterRequestDTO()

		f.userRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().PublishUserEvent(gomock.Any(), gomock.Any()).Return(nil)

		result, err := auth.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, user.RoleHotelOwner, result.Role)
	})

	t.Run("a failed welcome event does not fail registration", func(t *testing.T) {
		auth, f := newAuthCommands(t)
		req := builder.NewUserBuilder().BuildRegisterRequestDTO()

		f.userRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().PublishUserEvent(gomock.Any(), gomock.Any()).
			Return(errs.New("broker unavailable"))

		result, err := auth.Register(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	loginUser := func(t *testing.T, b *builder.UserBuilder) *user.User {
		t.Helper()
		hash, err := password.Hash(b.Password)
		require.NoError(t, err)
		b.PasswordHash = hash
		return b.BuildDomain(t)
	}

	t.Run("success", func(t *testing.T) {
		auth, f := newAuthCommands(t)
		b := builder.NewUserBuilder()
		existing := loginUser(t, b)

		f.userRepo.EXPECT().FindByEmail(gomock.Any(), existing.Email()).Return(existing, nil)
		f.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), existing.ID(), builder.FrozenNow).Return(nil)

		result, err := auth.Login(ctx, b.BuildLoginRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, existing.ID(), result.UserID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("unknown email looks like a bad password", func(t *testing.T) {
		auth, f := newAuthCommands(t)
		b := builder.NewUserBuilder()

		f.userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := auth.Login(ctx, b.BuildLoginRequestDTO())
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		auth, f := newAuthCommands(t)
		b := builder.NewUserBuilder()
		existing := loginUser(t, b)

		f.userRepo.EXPECT().FindByEmail(gomock.Any(), existing.Email()).Return(existing, nil)

		req := b.BuildLoginRequestDTO()
		req.Password = "wrong-password"

		_, err := auth.Login(ctx, req)
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		auth, f := newAuthCommands(t)
		b := builder.NewUserBuilder().AsInactive()
		existing := loginUser(t, b)

		f.userRepo.EXPECT().FindByEmail(gomock.Any(), existing.Email()).Return(existing, nil)

		_, err := auth.Login(ctx, b.BuildLoginRequestDTO())
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("a failed last-login update does not fail the login", func(t *testing.T) {
		auth, f := newAuthCommands(t)
		b := builder.NewUserBuilder()
		existing := loginUser(t, b)

		f.userRepo.EXPECT().FindByEmail(gomock.Any(), existing.Email()).Return(existing, nil)
		f.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), existing.ID(), gomock.Any()).
			Return(infra.WrapRepoErr("write failed", nil))

		result, err := auth.Login(ctx, b.BuildLoginRequestDTO())
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})
}
