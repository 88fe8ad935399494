package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Callback finishes a provider sign-in. The bearer token is the provider's
// access token; mode says whether the user intended to sign up or log in,
// which decides how an existing or missing user record is treated.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	tokenString, ok := bearerToken(r)
	if !ok {
		response.Unauthorized(w, "Authorization header is required")
		return
	}

	var req dto.AuthCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.HandleCallback(r.Context(), req.Mode, tokenString)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken:
			response.Unauthorized(w, "Invalid or expired token")
		case usecase.ErrAlreadyRegistered:
			response.Error(w, http.StatusConflict, "Already registered", nil)
		case usecase.ErrSignupRequired:
			response.Forbidden(w, "Signup required")
		default:
			response.InternalServerError(w, "Failed to complete sign-in")
		}
		return
	}

	status := http.StatusOK
	if result.Registered {
		status = http.StatusCreated
	}
	response.Success(w, status, "Signed in successfully", result)
}

func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get current user")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.authUsecase.SignOut(r.Context(), userID); err != nil {
		response.InternalServerError(w, "Failed to sign out")
		return
	}

	response.Success(w, http.StatusOK, "Signed out successfully", nil)
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
