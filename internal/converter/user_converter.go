package converter

import (
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		CreatedAt: user.CreatedAt,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
	}
}
