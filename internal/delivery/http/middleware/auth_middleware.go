package middleware

import (
	"context"
	"net/http"
	"strings"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	UserRoleKey  contextKey = "user_role"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	log          *logrus.Logger
	tokenService *token.Service
	sessionStore repository.SessionStore
	userRepo     repository.UserRepository
}

func NewAuthMiddleware(
	log *logrus.Logger,
	tokenService *token.Service,
	sessionStore repository.SessionStore,
	userRepo repository.UserRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		log:          log,
		tokenService: tokenService,
		sessionStore: sessionStore,
		userRepo:     userRepo,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}
		tokenString := parts[1]

		claims, err := m.tokenService.Verify(tokenString)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// A valid token alone is not enough; the session must still be live
		// in the store (it is destroyed on sign-out and on rejected sign-ins).
		tokenID := token.ID(tokenString)
		exists, err := m.sessionStore.Exists(r.Context(), userID.String(), tokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if !exists {
			response.Unauthorized(w, "Session has ended")
			return
		}

		// Role lookup failure degrades to the default role; it must not kill
		// an otherwise valid session.
		role := entity.RoleUser
		user, err := m.userRepo.FindByID(r.Context(), userID)
		if err != nil {
			m.log.Warnf("Failed to fetch user role, assuming default: %+v", err)
		} else if user != nil {
			role = user.Role
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, UserRoleKey, role)
		ctx = context.WithValue(ctx, TokenIDKey, tokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetUserRoleFromContext extracts the user role from context
func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(UserRoleKey).(string)
	return role, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
