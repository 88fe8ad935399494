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
	ErrHospitalNotFound   = errors.New("hospital not found")
	ErrHospitalHasDoctors = errors.New("hospital still has doctors")
)

type HospitalUsecase interface {
	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	GetHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalResponse, error)
	GetAllHospitals(ctx context.Context) (*dto.HospitalListResponse, error)
	CountHospitals(ctx context.Context) (int64, error)
	UpdateHospital(ctx context.Context, hospitalID uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	DeleteHospital(ctx context.Context, hospitalID uuid.UUID) error
}

type hospitalUsecase struct {
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
}

func NewHospitalUsecase(log *logrus.Logger, hospitalRepo repository.HospitalRepository) HospitalUsecase {
	return &hospitalUsecase{
		log:          log,
		hospitalRepo: hospitalRepo,
	}
}

func (u *hospitalUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	address := req.Address
	if address == "" {
		address = entity.ComposeAddress(req.RoadAddress, req.AddressDetail, req.AddressExtra)
	}

	region := req.Region
	if region == "" {
		region = entity.NormalizeRegion(req.Sido)
	}

	hospital := &entity.Hospital{
		Name:     req.Name,
		Address:  address,
		Phone:    req.Phone,
		Region:   region,
		Homepage: req.Homepage,
	}

	if err := u.hospitalRepo.Create(ctx, hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(ctx, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetAllHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all hospitals: %+v", err)
		return nil, err
	}

	responses := converter.HospitalsToResponses(hospitals)

	return &dto.HospitalListResponse{
		Hospitals: responses,
		Total:     len(responses),
	}, nil
}

func (u *hospitalUsecase) CountHospitals(ctx context.Context) (int64, error) {
	count, err := u.hospitalRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count hospitals: %+v", err)
		return 0, err
	}
	return count, nil
}

func (u *hospitalUsecase) UpdateHospital(ctx context.Context, hospitalID uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(ctx, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	if req.Name != nil {
		hospital.Name = *req.Name
	}
	if req.Phone != nil {
		hospital.Phone = *req.Phone
	}
	if req.Homepage != nil {
		hospital.Homepage = req.Homepage
	}
	if req.Address != nil {
		hospital.Address = *req.Address
	}
	if req.Region != nil {
		hospital.Region = entity.NormalizeRegion(*req.Region)
	}

	if err := u.hospitalRepo.Update(ctx, hospital); err != nil {
		u.log.Warnf("Failed to update hospital: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) DeleteHospital(ctx context.Context, hospitalID uuid.UUID) error {
	affectedRows, err := u.hospitalRepo.Delete(ctx, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to delete hospital: %+v", err)
		if isForeignKeyError(err, "hospital") {
			return ErrHospitalHasDoctors
		}
		return err
	}
	if affectedRows == 0 {
		return ErrHospitalNotFound
	}
	return nil
}
