package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/Ankitkumar028/rider-fleet/internal/auth/errors"
	"github.com/Ankitkumar028/rider-fleet/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the validity window of an issued bearer token.
const TokenTTL = 7 * 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (*MeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	cred, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("login unknown username",
			zap.String("request_id", rid),
			zap.String("username", username),
		)
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	// bcrypt comparison is constant-time with respect to the stored hash.
	if err := bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(password)); err != nil {
		s.logger.Warn("login password mismatch",
			zap.String("request_id", rid),
			zap.String("user_id", cred.ID.String()),
		)
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	riderID := ""
	if cred.RiderProfileID != nil {
		riderID = cred.RiderProfileID.String()
	}

	token, err := generateToken(cred.ID.String(), cred.Role, riderID, TokenTTL)
	if err != nil {
		s.logger.Error("login token generation failed", zap.String("request_id", rid), zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("request_id", rid),
		zap.String("user_id", cred.ID.String()),
		zap.String("role", cred.Role),
	)

	return LoginResponse{Token: token, Role: cred.Role}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*MeResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	cred, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	return &MeResponse{
		ID:       cred.ID.String(),
		Username: cred.Username,
		Role:     cred.Role,
	}, nil
}

func generateToken(userID, role, riderID string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"role":     role,
		"rider_id": riderID,
		"exp":      time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
