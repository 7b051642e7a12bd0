// internals/middlewares/auth/claim_utils.go
package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"askonline_backend/internals/configs"
	"askonline_backend/internals/constants"
)

/* ======== Parse & verify ======== */

// VerifyToken parses and verifies an HS256 access token and returns its
// claims. Any failure (bad signature, wrong alg, expired) is an error;
// callers decide whether that means 401 or "anonymous".
func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}); err != nil {
		return nil, err
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return nil, err
	}
	if err := validateTokenNotBefore(claims, 30*time.Second); err != nil {
		return nil, err
	}
	return claims, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	expUnix, err := claimUnix(expVal)
	if err != nil {
		return fmt.Errorf("invalid exp claim")
	}

	if time.Now().Add(-skew).Unix() >= expUnix {
		return fmt.Errorf("token expired")
	}
	return nil
}

// validateTokenNotBefore rejects a token carrying a future nbf. The claim is
// optional; absence means valid now.
func validateTokenNotBefore(claims jwt.MapClaims, skew time.Duration) error {
	nbfVal, ok := claims["nbf"]
	if !ok {
		return nil
	}

	nbfUnix, err := claimUnix(nbfVal)
	if err != nil {
		return fmt.Errorf("invalid nbf claim")
	}

	if time.Now().Add(skew).Unix() < nbfUnix {
		return fmt.Errorf("token not valid yet")
	}
	return nil
}

func claimUnix(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case int64:
		return t, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format")
		}
		return n, nil
	default:
		return 0, fmt.Errorf("invalid timestamp type")
	}
}

/* ======== Extractors ======== */

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		// legacy key
		sub, _ = claims["user_id"].(string)
	}
	id, err := uuid.Parse(strings.TrimSpace(sub))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid or missing user id claim")
	}
	return id, nil
}

func extractRole(claims jwt.MapClaims) string {
	role, _ := claims["role"].(string)
	return constants.ClampRole(role)
}

func extractString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return strings.TrimSpace(v)
}
