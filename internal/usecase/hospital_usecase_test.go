package usecase

import (
	"context"
	"testing"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHospitalComposesAddressAndRegion(t *testing.T) {
	var created *entity.Hospital
	repo := &MockHospitalRepository{
		CreateFunc: func(ctx context.Context, hospital *entity.Hospital) error {
			hospital.ID = uuid.New()
			created = hospital
			return nil
		},
	}

	u := NewHospitalUsecase(testLogger(), repo)

	result, err := u.CreateHospital(context.Background(), &dto.CreateHospitalRequest{
		Name:          "Seoul Clinic",
		Phone:         "02-000-0000",
		RoadAddress:   "서울 강남구 테헤란로 123",
		AddressDetail: "4층",
		AddressExtra:  "역삼동",
		Sido:          "서울특별시",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "서울 강남구 테헤란로 123 4층 (역삼동)", result.Address)
	assert.Equal(t, "서울", result.Region)
}

func TestCreateHospitalKeepsExplicitAddressAndRegion(t *testing.T) {
	repo := &MockHospitalRepository{
		CreateFunc: func(ctx context.Context, hospital *entity.Hospital) error {
			return nil
		},
	}

	u := NewHospitalUsecase(testLogger(), repo)

	result, err := u.CreateHospital(context.Background(), &dto.CreateHospitalRequest{
		Name:    "Seoul Clinic",
		Phone:   "02-000-0000",
		Address: "Seoul Gangnam-gu Teheran-ro 123",
		Region:  "Seoul",
	})
	require.NoError(t, err)
	assert.Equal(t, "Seoul Gangnam-gu Teheran-ro 123", result.Address)
	assert.Equal(t, "Seoul", result.Region)
}

func TestUpdateHospitalNormalizesRegion(t *testing.T) {
	existing := &entity.Hospital{ID: uuid.New(), Name: "Seoul Clinic", Region: "서울"}
	repo := &MockHospitalRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Hospital, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, hospital *entity.Hospital) error {
			return nil
		},
	}

	u := NewHospitalUsecase(testLogger(), repo)

	region := "부산광역시"
	result, err := u.UpdateHospital(context.Background(), existing.ID, &dto.UpdateHospitalRequest{Region: &region})
	require.NoError(t, err)
	assert.Equal(t, "부산", result.Region)
}

func TestDeleteHospitalStillReferenced(t *testing.T) {
	repo := &MockHospitalRepository{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 0, &pgconn.PgError{Code: "23503", ConstraintName: "fk_doctors_hospital"}
		},
	}

	u := NewHospitalUsecase(testLogger(), repo)
	assert.ErrorIs(t, u.DeleteHospital(context.Background(), uuid.New()), ErrHospitalHasDoctors)
}

func TestDeleteHospitalNotFound(t *testing.T) {
	repo := &MockHospitalRepository{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 0, nil
		},
	}

	u := NewHospitalUsecase(testLogger(), repo)
	assert.ErrorIs(t, u.DeleteHospital(context.Background(), uuid.New()), ErrHospitalNotFound)
}

func TestCountHospitals(t *testing.T) {
	repo := &MockHospitalRepository{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 7, nil
		},
	}

	u := NewHospitalUsecase(testLogger(), repo)
	count, err := u.CountHospitals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
