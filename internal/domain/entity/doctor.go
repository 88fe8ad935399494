package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Doctor is a directory entry for a single doctor. Every doctor belongs to
// exactly one hospital; region is not stored here but read off the joined
// hospital row.
type Doctor struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	HospitalID      uuid.UUID `gorm:"type:uuid;not null;index" json:"hospital_id"`
	PhotoURL        *string   `gorm:"type:text" json:"photo_url,omitempty"`
	ExperienceYears *int      `gorm:"type:integer" json:"experience_years,omitempty"`
	AvailableHours  *string   `gorm:"type:text" json:"available_hours,omitempty"`

	// Profile fields. SpecializedArea holds care-category or care-area codes
	// from the taxonomy package; Languages holds language codes.
	SpecializedArea      pq.StringArray `gorm:"type:text[]" json:"specialized_area"`
	AspiredBeauty        pq.StringArray `gorm:"type:text[]" json:"aspired_beauty"`
	CarePhilosophy       *string        `gorm:"type:text" json:"care_philosophy,omitempty"`
	ClinicalExperience   pq.StringArray `gorm:"type:text[]" json:"clinical_experience"`
	SpecialistExperience pq.StringArray `gorm:"type:text[]" json:"specialist_experience"`
	Languages            pq.StringArray `gorm:"type:text[]" json:"languages"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Input-boundary limits on the doctor profile.
const (
	MaxSpecializedAreas = 3
	MaxAspiredBeauty    = 3
)
