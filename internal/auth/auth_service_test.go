package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ankitkumar028/rider-fleet/internal/auth"
	autherrors "github.com/Ankitkumar028/rider-fleet/internal/auth/errors"
	authMock "github.com/Ankitkumar028/rider-fleet/internal/auth/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	ctx := context.Background()
	profileID := uuid.New()
	cred := &auth.Credential{
		ID:             uuid.New(),
		Username:       "rider1",
		Password:       hashPassword(t, "rider123"),
		Role:           auth.RoleRider,
		RiderProfileID: &profileID,
	}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByUsername(ctx, "rider1").Return(cred, nil)

		resp, err := svc.Login(ctx, "rider1", "rider123")
		assert.NoError(t, err)
		assert.Equal(t, auth.RoleRider, resp.Role)

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, cred.ID.String(), claims["user_id"])
		assert.Equal(t, auth.RoleRider, claims["role"])
		assert.Equal(t, profileID.String(), claims["rider_id"])

		exp := time.Unix(int64(claims["exp"].(float64)), 0)
		assert.WithinDuration(t, time.Now().Add(auth.TokenTTL), exp, time.Minute)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().GetByUsername(ctx, "rider1").Return(cred, nil)

		_, err := svc.Login(ctx, "rider1", "not-the-password")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown username gets the same error", func(t *testing.T) {
		repo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)

	ctx := context.Background()
	cred := &auth.Credential{ID: uuid.New(), Username: "admin", Role: auth.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, cred.ID).Return(cred, nil)

		resp, err := svc.GetMe(ctx, cred.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, "admin", resp.Username)
		assert.Equal(t, auth.RoleAdmin, resp.Role)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetMe(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		missing := uuid.New()
		repo.EXPECT().GetByID(ctx, missing).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetMe(ctx, missing.String())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
