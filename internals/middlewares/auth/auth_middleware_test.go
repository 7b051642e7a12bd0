package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askonline_backend/internals/configs"
	"askonline_backend/internals/constants"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

const testSecret = "test-secret-not-for-production"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(userID string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       userID,
		"user_name": "alice",
		"email":     "alice@example.com",
		"role":      constants.RoleAdmin,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
}

func newTestApp(required bool, capture *helpersAuth.UserContext) *fiber.App {
	app := fiber.New()
	mw := OptionalAuthMiddleware()
	if required {
		mw = AuthMiddleware()
	}
	app.Get("/probe", mw, func(c *fiber.Ctx) error {
		*capture = helpersAuth.FromFiber(c)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	configs.JWTSecret = testSecret

	userID := uuid.NewString()
	var got helpersAuth.UserContext
	app := newTestApp(true, &got)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(userID), testSecret))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.True(t, got.IsAuthenticated())
	assert.Equal(t, userID, got.UserID.String())
	assert.Equal(t, "alice", got.UserName)
	assert.True(t, got.IsAdmin())
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	configs.JWTSecret = testSecret

	var got helpersAuth.UserContext
	app := newTestApp(true, &got)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	configs.JWTSecret = testSecret

	var got helpersAuth.UserContext
	app := newTestApp(true, &got)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(uuid.NewString()), "wrong-secret"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	configs.JWTSecret = testSecret

	claims := validClaims(uuid.NewString())
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	var got helpersAuth.UserContext
	app := newTestApp(true, &got)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims, testSecret))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsGarbage(t *testing.T) {
	configs.JWTSecret = testSecret

	var got helpersAuth.UserContext
	app := newTestApp(true, &got)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalAuthTreatsFailuresAsAnonymous(t *testing.T) {
	configs.JWTSecret = testSecret

	for name, header := range map[string]string{
		"no token":      "",
		"garbage":       "Bearer nonsense",
		"bad signature": "Bearer " + signToken(t, validClaims(uuid.NewString()), "wrong-secret"),
	} {
		t.Run(name, func(t *testing.T) {
			var got helpersAuth.UserContext
			app := newTestApp(false, &got)

			req := httptest.NewRequest("GET", "/probe", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.False(t, got.IsAuthenticated())
		})
	}
}

func TestOptionalAuthResolvesValidToken(t *testing.T) {
	configs.JWTSecret = testSecret

	userID := uuid.NewString()
	var got helpersAuth.UserContext
	app := newTestApp(false, &got)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(userID), testSecret))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, got.IsAuthenticated())
	assert.Equal(t, userID, got.UserID.String())
}

func TestVerifyTokenRejectsNotYetValid(t *testing.T) {
	configs.JWTSecret = testSecret

	claims := validClaims(uuid.NewString())
	claims["nbf"] = time.Now().Add(time.Hour).Unix()

	_, err := VerifyToken(signToken(t, claims, testSecret))
	assert.Error(t, err)
}

func TestVerifyTokenAcceptsPastNotBefore(t *testing.T) {
	configs.JWTSecret = testSecret

	claims := validClaims(uuid.NewString())
	claims["nbf"] = time.Now().Add(-time.Minute).Unix()

	got, err := VerifyToken(signToken(t, claims, testSecret))
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestVerifyTokenRejectsWrongAlg(t *testing.T) {
	configs.JWTSecret = testSecret

	// alg=none must never be accepted
	token := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims(uuid.NewString()))
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyToken(signed)
	assert.Error(t, err)
}
