package token

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"doctor-directory/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by an identity-provider access token. The subject is the
// provider's user id and doubles as the application user id.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// UserID parses the token subject as the application user id.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Service verifies access tokens issued by the identity provider, which signs
// them with a shared HMAC secret.
type Service struct {
	config config.AuthConfig
}

func NewService(cfg config.AuthConfig) *Service {
	return &Service{config: cfg}
}

func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ID derives a stable session token id from the raw token string. Provider
// tokens do not reliably carry a jti, so the id is computed from the token
// itself and can be recomputed on every request.
func ID(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(sum[:16])
}
