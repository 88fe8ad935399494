package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name                 string    `json:"name" validate:"required,min=2"`
	HospitalID           uuid.UUID `json:"hospital_id" validate:"required"`
	PhotoURL             *string   `json:"photo_url" validate:"omitempty,url"`
	ExperienceYears      *int      `json:"experience_years" validate:"omitempty,gte=0"`
	AvailableHours       *string   `json:"available_hours" validate:"omitempty"`
	SpecializedArea      []string  `json:"specialized_area" validate:"omitempty,max=3,dive,specialized_area"`
	AspiredBeauty        []string  `json:"aspired_beauty" validate:"omitempty,max=3,dive,min=1"`
	CarePhilosophy       *string   `json:"care_philosophy" validate:"omitempty"`
	ClinicalExperience   []string  `json:"clinical_experience" validate:"omitempty,dive,min=1"`
	SpecialistExperience []string  `json:"specialist_experience" validate:"omitempty,dive,min=1"`
	Languages            []string  `json:"languages" validate:"omitempty,dive,language"`
}

// UpdateDoctorRequest is a partial payload. Nil means "leave unchanged"; an
// explicit empty array clears the field. id and created_at are never mutable.
type UpdateDoctorRequest struct {
	Name                 *string    `json:"name" validate:"omitempty,min=2"`
	HospitalID           *uuid.UUID `json:"hospital_id" validate:"omitempty"`
	PhotoURL             *string    `json:"photo_url" validate:"omitempty,url"`
	ExperienceYears      *int       `json:"experience_years" validate:"omitempty,gte=0"`
	AvailableHours       *string    `json:"available_hours" validate:"omitempty"`
	SpecializedArea      []string   `json:"specialized_area" validate:"omitempty,max=3,dive,specialized_area"`
	AspiredBeauty        []string   `json:"aspired_beauty" validate:"omitempty,max=3,dive,min=1"`
	CarePhilosophy       *string    `json:"care_philosophy" validate:"omitempty"`
	ClinicalExperience   []string   `json:"clinical_experience" validate:"omitempty,dive,min=1"`
	SpecialistExperience []string   `json:"specialist_experience" validate:"omitempty,dive,min=1"`
	Languages            []string   `json:"languages" validate:"omitempty,dive,language"`
}

// Response DTOs

type DoctorResponse struct {
	ID                    uuid.UUID         `json:"id"`
	CreatedAt             time.Time         `json:"created_at"`
	Name                  string            `json:"name"`
	HospitalID            uuid.UUID         `json:"hospital_id"`
	PhotoURL              *string           `json:"photo_url,omitempty"`
	ExperienceYears       *int              `json:"experience_years,omitempty"`
	AvailableHours        *string           `json:"available_hours,omitempty"`
	SpecializedArea       []string          `json:"specialized_area"`
	SpecializedAreaLabels []string          `json:"specialized_area_labels"`
	AspiredBeauty         []string          `json:"aspired_beauty"`
	CarePhilosophy        *string           `json:"care_philosophy,omitempty"`
	ClinicalExperience    []string          `json:"clinical_experience"`
	SpecialistExperience  []string          `json:"specialist_experience"`
	Languages             []string          `json:"languages"`
	LanguageLabels        []string          `json:"language_labels"`
	Hospital              *HospitalResponse `json:"hospital,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
