package handler

import (
	"encoding/json"
	"net/http"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

func (h *HospitalHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.CreateHospital(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create hospital")
		return
	}

	response.Success(w, http.StatusCreated, "Hospital created successfully", hospital)
}

func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	hospital, err := h.hospitalUsecase.GetHospital(r.Context(), hospitalID)
	if err != nil {
		if err == usecase.ErrHospitalNotFound {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to get hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) GetAllHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.GetAllHospitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

func (h *HospitalHandler) CountHospitals(w http.ResponseWriter, r *http.Request) {
	count, err := h.hospitalUsecase.CountHospitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to count hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospital count retrieved successfully", map[string]int64{"count": count})
}

func (h *HospitalHandler) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	var req dto.UpdateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.UpdateHospital(r.Context(), hospitalID, &req)
	if err != nil {
		if err == usecase.ErrHospitalNotFound {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to update hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital updated successfully", hospital)
}

func (h *HospitalHandler) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	err = h.hospitalUsecase.DeleteHospital(r.Context(), hospitalID)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrHospitalHasDoctors:
			response.Error(w, http.StatusConflict, "Hospital still has doctors", nil)
		default:
			response.InternalServerError(w, "Failed to delete hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital deleted successfully", nil)
}
