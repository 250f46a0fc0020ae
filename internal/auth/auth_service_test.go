package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/sudono1/gamesucks-api/internal/auth"
	autherrors "github.com/sudono1/gamesucks-api/internal/auth/errors"
	mock "github.com/sudono1/gamesucks-api/internal/mock/auth"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)
	ctx := context.Background()

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_SECRET", "rahasia-admin")

	req := auth.RegisterRequest{
		Name:     "Budi",
		Username: "budi",
		Email:    "budi@example.com",
		Password: "secret123",
		Address:  "Jakarta",
		Phone:    "0812000111",
	}

	t.Run("success_pelapak_by_default", func(t *testing.T) {
		repo.EXPECT().GetByUsername(ctx, "budi").Return(auth.User{}, sql.ErrNoRows)
		repo.EXPECT().GetByEmail(ctx, "budi@example.com").Return(auth.User{}, sql.ErrNoRows)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg auth.CreateUserParams) (auth.User, error) {
				assert.Equal(t, auth.RolePelapak, arg.Role)
				assert.NotEqual(t, "secret123", arg.Password)
				return auth.User{ID: uuid.New(), Username: arg.Username, Role: arg.Role}, nil
			})

		token, err := svc.Register(ctx, req)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("admin_secret_grants_admin_role", func(t *testing.T) {
		adminReq := req
		adminReq.Username = "admin1"
		adminReq.Email = "admin@example.com"
		adminReq.Secret = "rahasia-admin"

		repo.EXPECT().GetByUsername(ctx, "admin1").Return(auth.User{}, sql.ErrNoRows)
		repo.EXPECT().GetByEmail(ctx, "admin@example.com").Return(auth.User{}, sql.ErrNoRows)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg auth.CreateUserParams) (auth.User, error) {
				assert.Equal(t, auth.RoleAdmin, arg.Role)
				return auth.User{ID: uuid.New(), Role: arg.Role}, nil
			})

		_, err := svc.Register(ctx, adminReq)
		assert.NoError(t, err)
	})

	t.Run("wrong_secret_still_pelapak", func(t *testing.T) {
		wrongReq := req
		wrongReq.Username = "tamu"
		wrongReq.Email = "tamu@example.com"
		wrongReq.Secret = "bukan-rahasia"

		repo.EXPECT().GetByUsername(ctx, "tamu").Return(auth.User{}, sql.ErrNoRows)
		repo.EXPECT().GetByEmail(ctx, "tamu@example.com").Return(auth.User{}, sql.ErrNoRows)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg auth.CreateUserParams) (auth.User, error) {
				assert.Equal(t, auth.RolePelapak, arg.Role)
				return auth.User{ID: uuid.New(), Role: arg.Role}, nil
			})

		_, err := svc.Register(ctx, wrongReq)
		assert.NoError(t, err)
	})

	t.Run("username_taken", func(t *testing.T) {
		repo.EXPECT().GetByUsername(ctx, "budi").Return(auth.User{Username: "budi"}, nil)

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
	})

	t.Run("email_taken", func(t *testing.T) {
		repo.EXPECT().GetByUsername(ctx, "budi").Return(auth.User{}, sql.ErrNoRows)
		repo.EXPECT().GetByEmail(ctx, "budi@example.com").Return(auth.User{Email: req.Email}, nil)

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, autherrors.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)
	ctx := context.Background()

	t.Setenv("JWT_SECRET", "test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByUsername(ctx, "budi").Return(auth.User{
			ID: uuid.New(), Username: "budi", Password: string(hashed), Role: auth.RolePelapak,
		}, nil)

		token, err := svc.Login(ctx, auth.LoginRequest{Username: "budi", Password: "secret123"})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("unknown_user", func(t *testing.T) {
		repo.EXPECT().GetByUsername(ctx, "siapa").Return(auth.User{}, sql.ErrNoRows)

		_, err := svc.Login(ctx, auth.LoginRequest{Username: "siapa", Password: "x"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong_password", func(t *testing.T) {
		repo.EXPECT().GetByUsername(ctx, "budi").Return(auth.User{
			ID: uuid.New(), Password: string(hashed),
		}, nil)

		_, err := svc.Login(ctx, auth.LoginRequest{Username: "budi", Password: "salah"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().GetByID(ctx, id).Return(auth.User{
			ID: id, Name: "Budi", Username: "budi", Email: "budi@example.com", Role: auth.RolePelapak,
		}, nil)

		profile, err := svc.Me(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, "budi", profile.Username)
		assert.Equal(t, auth.RolePelapak, profile.Role)
	})

	t.Run("invalid_user_id", func(t *testing.T) {
		_, err := svc.Me(ctx, "bukan-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("not_found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().GetByID(ctx, id).Return(auth.User{}, sql.ErrNoRows)

		_, err := svc.Me(ctx, id.String())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
