package auth

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	autherrors "github.com/sudono1/gamesucks-api/internal/auth/errors"
)

const (
	RoleAdmin   = "admin"
	RolePelapak = "pelapak"

	tokenLifetime = 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=../mock/auth/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
	Me(ctx context.Context, userID string) (ProfileResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return "", autherrors.ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return "", autherrors.ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	// Secret pendaftaran menentukan role; selain itu semua pendaftar pelapak
	role := RolePelapak
	if req.Secret != "" && req.Secret == os.Getenv("ADMIN_SECRET") {
		role = RoleAdmin
	}

	user, err := s.repo.Create(ctx, CreateUserParams{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     role,
	})
	if err != nil {
		return "", err
	}

	return s.generateToken(user)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", autherrors.ErrInvalidCredentials
	}

	return s.generateToken(user)
}

func (s *service) Me(ctx context.Context, userID string) (ProfileResponse, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return ProfileResponse{}, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, autherrors.ErrUserNotFound
	}

	return ProfileResponse{
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Address:  user.Address,
		Role:     user.Role,
	}, nil
}

func parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, autherrors.ErrInvalidUserID
	}
	return id, nil
}

func (s *service) generateToken(user User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	})

	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}
