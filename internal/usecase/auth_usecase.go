package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/pkg/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrSignupRequired    = errors.New("signup required")
	ErrUserNotFound      = errors.New("user not found")
)

// Existence-check retry settings. A login right after signup can race the
// user-row write, so a not-found result is re-checked a bounded number of
// times before the absence is treated as authoritative.
var (
	userExistsRetryAttempts = 2
	userExistsRetryDelay    = 800 * time.Millisecond
)

type AuthUsecase interface {
	HandleCallback(ctx context.Context, mode string, tokenString string) (*dto.AuthCallbackResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	SignOut(ctx context.Context, userID uuid.UUID) error
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	sessionStore repository.SessionStore
	tokenService *token.Service
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessionStore repository.SessionStore,
	tokenService *token.Service,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		tokenService: tokenService,
	}
}

// HandleCallback runs the sign-in callback state machine. The identity
// provider has already authenticated the user and issued tokenString; this
// decides whether the resulting session may live on:
//
//	signup + user exists   -> destroy session, ErrAlreadyRegistered
//	signup + no user       -> create the user row, keep session
//	login  + user exists   -> keep session
//	login  + no user       -> destroy session, ErrSignupRequired
func (u *authUsecase) HandleCallback(ctx context.Context, mode string, tokenString string) (*dto.AuthCallbackResponse, error) {
	claims, err := u.tokenService.Verify(tokenString)
	if err != nil {
		u.log.Warnf("Failed to verify provider token: %+v", err)
		return nil, ErrInvalidToken
	}

	userID, err := claims.UserID()
	if err != nil {
		u.log.Warnf("Provider token has invalid subject: %+v", err)
		return nil, ErrInvalidToken
	}

	tokenID := token.ID(tokenString)
	if err := u.sessionStore.Save(ctx, userID.String(), tokenID); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, err
	}

	switch mode {
	case dto.AuthModeSignup:
		return u.handleSignup(ctx, userID, tokenID, claims)
	default:
		return u.handleLogin(ctx, userID, tokenID)
	}
}

func (u *authUsecase) handleSignup(ctx context.Context, userID uuid.UUID, tokenID string, claims *token.Claims) (*dto.AuthCallbackResponse, error) {
	exists, err := u.userRepo.Exists(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to check user existence: %+v", err)
		return nil, err
	}

	if exists {
		// The provider session was just created but this identity is already
		// registered; the session must not outlive the rejection.
		u.destroySession(ctx, userID, tokenID)
		return nil, ErrAlreadyRegistered
	}

	user := &entity.User{
		ID:    userID,
		Email: claims.Email,
		Role:  entity.RoleUser,
	}
	if claims.Name != "" {
		name := claims.Name
		user.Name = &name
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		u.destroySession(ctx, userID, tokenID)
		return nil, err
	}

	return &dto.AuthCallbackResponse{
		User:       *converter.UserToResponse(user),
		Registered: true,
	}, nil
}

func (u *authUsecase) handleLogin(ctx context.Context, userID uuid.UUID, tokenID string) (*dto.AuthCallbackResponse, error) {
	exists, err := u.userExistsWithRetry(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to check user existence: %+v", err)
		return nil, err
	}

	if !exists {
		// A session for an identity with no application record must not
		// persist.
		u.destroySession(ctx, userID, tokenID)
		return nil, ErrSignupRequired
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		// A role-fetch failure that is not a confirmed absence degrades to
		// the default role instead of failing the whole sign-in.
		if err != nil {
			u.log.Warnf("Failed to fetch user role, assuming default: %+v", err)
		}
		user = &entity.User{ID: userID, Role: entity.RoleUser}
	}

	return &dto.AuthCallbackResponse{
		User:       *converter.UserToResponse(user),
		Registered: false,
	}, nil
}

// userExistsWithRetry re-checks a not-found result up to
// userExistsRetryAttempts extra times with a fixed delay, to absorb
// eventual-consistency lag right after the row was created elsewhere.
func (u *authUsecase) userExistsWithRetry(ctx context.Context, userID uuid.UUID) (bool, error) {
	for attempt := 0; ; attempt++ {
		exists, err := u.userRepo.Exists(ctx, userID)
		if err != nil {
			return false, err
		}
		if exists || attempt >= userExistsRetryAttempts {
			return exists, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(userExistsRetryDelay):
		}
	}
}

func (u *authUsecase) destroySession(ctx context.Context, userID uuid.UUID, tokenID string) {
	if err := u.sessionStore.Destroy(ctx, userID.String(), tokenID); err != nil {
		u.log.Warnf("Failed to destroy session: %+v", err)
	}
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// SignOut destroys every live session for the user. Signing out with no
// active session is a no-op success, not an error.
func (u *authUsecase) SignOut(ctx context.Context, userID uuid.UUID) error {
	if err := u.sessionStore.DestroyAll(ctx, userID.String()); err != nil {
		u.log.Warnf("Failed to destroy sessions: %+v", err)
		return err
	}
	return nil
}
