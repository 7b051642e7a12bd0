package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askonline_backend/internals/configs"
	"askonline_backend/internals/constants"
	UserModel "askonline_backend/internals/features/users/user/model"
)

func TestBuildAccessTokenClaims(t *testing.T) {
	configs.JWTSecret = "test-secret-not-for-production"

	user := &UserModel.UserModel{
		UserID:   uuid.NewString(),
		UserName: "bob",
		Email:    "bob@example.com",
		Role:     constants.RoleUser,
	}
	now := time.Now().UTC()

	signed, err := BuildAccessToken(user, now, 2*time.Hour)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (interface{}, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)

	assert.Equal(t, user.UserID, claims["sub"])
	assert.Equal(t, "bob", claims["user_name"])
	assert.Equal(t, "bob@example.com", claims["email"])
	assert.Equal(t, constants.RoleUser, claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Equal(t, now.Add(2*time.Hour).Unix(), int64(exp))
}

func TestBuildAccessTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := BuildAccessToken(&UserModel.UserModel{UserID: uuid.NewString()}, time.Now(), time.Hour)
	assert.Error(t, err)
}
