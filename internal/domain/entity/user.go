package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the application-level account record. Its ID is the identity
// provider's subject id, so the row is created exactly once at first signup,
// never implicitly on login.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Name      *string   `gorm:"type:varchar(255)" json:"name,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// Role constants. Promotion to admin happens out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
