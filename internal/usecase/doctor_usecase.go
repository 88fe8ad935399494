package usecase

import (
	"context"
	"errors"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrDoctorHospitalNotFound = errors.New("hospital not found")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	SearchDoctors(ctx context.Context, filters entity.DoctorSearchFilters) (*dto.DoctorListResponse, error)
	CountDoctors(ctx context.Context) (int64, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:                 req.Name,
		HospitalID:           req.HospitalID,
		PhotoURL:             req.PhotoURL,
		ExperienceYears:      req.ExperienceYears,
		AvailableHours:       req.AvailableHours,
		SpecializedArea:      req.SpecializedArea,
		AspiredBeauty:        req.AspiredBeauty,
		CarePhilosophy:       req.CarePhilosophy,
		ClinicalExperience:   req.ClinicalExperience,
		SpecialistExperience: req.SpecialistExperience,
		Languages:            req.Languages,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		if isForeignKeyError(err, "hospital") {
			return nil, ErrDoctorHospitalNotFound
		}
		return nil, err
	}

	// Reload to pick up the joined hospital for the response.
	created, err := u.doctorRepo.FindByID(ctx, doctor.ID)
	if err != nil || created == nil {
		return converter.DoctorToResponse(doctor), nil
	}

	return converter.DoctorToResponse(created), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) SearchDoctors(ctx context.Context, filters entity.DoctorSearchFilters) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.Search(ctx, filters)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) CountDoctors(ctx context.Context) (int64, error) {
	count, err := u.doctorRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return 0, err
	}
	return count, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.HospitalID != nil {
		doctor.HospitalID = *req.HospitalID
		doctor.Hospital = nil
	}
	if req.PhotoURL != nil {
		doctor.PhotoURL = req.PhotoURL
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = req.ExperienceYears
	}
	if req.AvailableHours != nil {
		doctor.AvailableHours = req.AvailableHours
	}
	if req.SpecializedArea != nil {
		doctor.SpecializedArea = req.SpecializedArea
	}
	if req.AspiredBeauty != nil {
		doctor.AspiredBeauty = req.AspiredBeauty
	}
	if req.CarePhilosophy != nil {
		doctor.CarePhilosophy = req.CarePhilosophy
	}
	if req.ClinicalExperience != nil {
		doctor.ClinicalExperience = req.ClinicalExperience
	}
	if req.SpecialistExperience != nil {
		doctor.SpecialistExperience = req.SpecialistExperience
	}
	if req.Languages != nil {
		doctor.Languages = req.Languages
	}

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		if isForeignKeyError(err, "hospital") {
			return nil, ErrDoctorHospitalNotFound
		}
		return nil, err
	}

	updated, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil || updated == nil {
		return converter.DoctorToResponse(doctor), nil
	}

	return converter.DoctorToResponse(updated), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	affectedRows, err := u.doctorRepo.Delete(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}
	return nil
}
