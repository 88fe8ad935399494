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

func seoulHospital() *entity.Hospital {
	return &entity.Hospital{ID: uuid.New(), Name: "Seoul Clinic", Region: "서울"}
}

func TestSearchDoctorsAppliesFilters(t *testing.T) {
	hospital := seoulHospital()
	kim := entity.Doctor{ID: uuid.New(), Name: "Dr. Kim", HospitalID: hospital.ID, Hospital: hospital}

	var gotFilters entity.DoctorSearchFilters
	repo := &MockDoctorRepository{
		SearchFunc: func(ctx context.Context, filters entity.DoctorSearchFilters) ([]entity.Doctor, error) {
			gotFilters = filters
			// The repository applies server predicates in SQL and the region
			// predicate in memory; emulate the composed result here.
			return entity.ApplyClientFilters([]entity.Doctor{kim}, filters), nil
		},
	}

	u := NewDoctorUsecase(testLogger(), repo)

	result, err := u.SearchDoctors(context.Background(), entity.DoctorSearchFilters{Region: "서울"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Dr. Kim", result.Doctors[0].Name)
	assert.Equal(t, "서울", gotFilters.Region)

	result, err = u.SearchDoctors(context.Background(), entity.DoctorSearchFilters{Region: "부산"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Doctors)
}

func TestCreateDoctorMapsHospitalFKViolation(t *testing.T) {
	repo := &MockDoctorRepository{
		CreateFunc: func(ctx context.Context, doctor *entity.Doctor) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_doctors_hospital"}
		},
	}

	u := NewDoctorUsecase(testLogger(), repo)

	_, err := u.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:       "Dr. Kim",
		HospitalID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrDoctorHospitalNotFound)
}

func TestCreateDoctorResolvesTaxonomyLabels(t *testing.T) {
	hospital := seoulHospital()
	repo := &MockDoctorRepository{
		CreateFunc: func(ctx context.Context, doctor *entity.Doctor) error {
			doctor.ID = uuid.New()
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{
				ID:              id,
				Name:            "Dr. Kim",
				HospitalID:      hospital.ID,
				Hospital:        hospital,
				SpecializedArea: []string{"EYEAREA", "JAWLINE_DOUBLECHIN"},
				Languages:       []string{"ENGLISH"},
			}, nil
		},
	}

	u := NewDoctorUsecase(testLogger(), repo)

	doctor, err := u.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:            "Dr. Kim",
		HospitalID:      hospital.ID,
		SpecializedArea: []string{"EYEAREA", "JAWLINE_DOUBLECHIN"},
		Languages:       []string{"ENGLISH"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"눈 주변", "이중턱"}, doctor.SpecializedAreaLabels)
	assert.Equal(t, []string{"영어"}, doctor.LanguageLabels)
	require.NotNil(t, doctor.Hospital)
	assert.Equal(t, "서울", doctor.Hospital.Region)
}

func TestGetDoctorNotFound(t *testing.T) {
	repo := &MockDoctorRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
			return nil, nil
		},
	}

	u := NewDoctorUsecase(testLogger(), repo)

	_, err := u.GetDoctor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestUpdateDoctorAppliesPartialPayload(t *testing.T) {
	hospital := seoulHospital()
	existing := &entity.Doctor{
		ID:              uuid.New(),
		Name:            "Dr. Kim",
		HospitalID:      hospital.ID,
		Hospital:        hospital,
		SpecializedArea: []string{"EYEAREA"},
	}

	var saved *entity.Doctor
	repo := &MockDoctorRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
			if saved != nil {
				return saved, nil
			}
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, doctor *entity.Doctor) error {
			saved = doctor
			return nil
		},
	}

	u := NewDoctorUsecase(testLogger(), repo)

	newName := "Dr. Kim Minsoo"
	result, err := u.UpdateDoctor(context.Background(), existing.ID, &dto.UpdateDoctorRequest{
		Name:            &newName,
		SpecializedArea: []string{"MOUTHAREA"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Kim Minsoo", result.Name)
	assert.Equal(t, []string{"MOUTHAREA"}, result.SpecializedArea)
	// Untouched fields stay as they were.
	assert.Equal(t, hospital.ID, result.HospitalID)
}

func TestDeleteDoctor(t *testing.T) {
	repo := &MockDoctorRepository{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 1, nil
		},
	}
	u := NewDoctorUsecase(testLogger(), repo)
	assert.NoError(t, u.DeleteDoctor(context.Background(), uuid.New()))
}

func TestDeleteDoctorNotFound(t *testing.T) {
	repo := &MockDoctorRepository{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 0, nil
		},
	}
	u := NewDoctorUsecase(testLogger(), repo)
	assert.ErrorIs(t, u.DeleteDoctor(context.Background(), uuid.New()), ErrDoctorNotFound)
}

func TestCountDoctors(t *testing.T) {
	repo := &MockDoctorRepository{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 42, nil
		},
	}
	u := NewDoctorUsecase(testLogger(), repo)
	count, err := u.CountDoctors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
