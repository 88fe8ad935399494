package converter

import (
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/taxonomy"
)

// DoctorToResponse converts a Doctor entity to its response DTO, resolving
// taxonomy codes to display labels.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		ID:                    doctor.ID,
		CreatedAt:             doctor.CreatedAt,
		Name:                  doctor.Name,
		HospitalID:            doctor.HospitalID,
		PhotoURL:              doctor.PhotoURL,
		ExperienceYears:       doctor.ExperienceYears,
		AvailableHours:        doctor.AvailableHours,
		SpecializedArea:       doctor.SpecializedArea,
		SpecializedAreaLabels: specializedAreaLabels(doctor.SpecializedArea),
		AspiredBeauty:         doctor.AspiredBeauty,
		CarePhilosophy:        doctor.CarePhilosophy,
		ClinicalExperience:    doctor.ClinicalExperience,
		SpecialistExperience:  doctor.SpecialistExperience,
		Languages:             doctor.Languages,
		LanguageLabels:        languageLabels(doctor.Languages),
		Hospital:              HospitalToResponse(doctor.Hospital),
	}
	return resp
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs.
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func specializedAreaLabels(codes []string) []string {
	labels := make([]string, len(codes))
	for i, code := range codes {
		labels[i] = taxonomy.SpecializedAreaLabel(code)
	}
	return labels
}

func languageLabels(codes []string) []string {
	labels := make([]string, len(codes))
	for i, code := range codes {
		labels[i] = taxonomy.Language(code).Label()
	}
	return labels
}
