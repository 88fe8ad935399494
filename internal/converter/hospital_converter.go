package converter

import (
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to its response DTO.
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:        hospital.ID,
		CreatedAt: hospital.CreatedAt,
		Name:      hospital.Name,
		Address:   hospital.Address,
		Phone:     hospital.Phone,
		Region:    hospital.Region,
		Homepage:  hospital.Homepage,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to response DTOs.
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		responses[i] = *HospitalToResponse(&hospitals[i])
	}
	return responses
}
