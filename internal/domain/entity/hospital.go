package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hospital is a clinic or hospital doctors are affiliated with. Region is a
// short canonical province/city token derived from the address at creation
// time, never the raw administrative string.
type Hospital struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	Phone     string    `gorm:"type:varchar(50);not null" json:"phone"`
	Region    string    `gorm:"type:varchar(50);not null;index" json:"region"`
	Homepage  *string   `gorm:"type:text" json:"homepage,omitempty"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:HospitalID" json:"doctors,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}
