package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ usecase.DoctorUsecase = (*MockDoctorUsecase)(nil)

// MockDoctorUsecase is a func-field mock of usecase.DoctorUsecase.
type MockDoctorUsecase struct {
	CreateDoctorFunc  func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctorFunc     func(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctorsFunc func(ctx context.Context) (*dto.DoctorListResponse, error)
	SearchDoctorsFunc func(ctx context.Context, filters entity.DoctorSearchFilters) (*dto.DoctorListResponse, error)
	CountDoctorsFunc  func(ctx context.Context) (int64, error)
	UpdateDoctorFunc  func(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctorFunc  func(ctx context.Context, doctorID uuid.UUID) error
}

func (m *MockDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if m.CreateDoctorFunc != nil {
		return m.CreateDoctorFunc(ctx, req)
	}
	return nil, errors.New("CreateDoctorFunc not implemented in mock")
}

func (m *MockDoctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	if m.GetDoctorFunc != nil {
		return m.GetDoctorFunc(ctx, doctorID)
	}
	return nil, errors.New("GetDoctorFunc not implemented in mock")
}

func (m *MockDoctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	if m.GetAllDoctorsFunc != nil {
		return m.GetAllDoctorsFunc(ctx)
	}
	return nil, errors.New("GetAllDoctorsFunc not implemented in mock")
}

func (m *MockDoctorUsecase) SearchDoctors(ctx context.Context, filters entity.DoctorSearchFilters) (*dto.DoctorListResponse, error) {
	if m.SearchDoctorsFunc != nil {
		return m.SearchDoctorsFunc(ctx, filters)
	}
	return nil, errors.New("SearchDoctorsFunc not implemented in mock")
}

func (m *MockDoctorUsecase) CountDoctors(ctx context.Context) (int64, error) {
	if m.CountDoctorsFunc != nil {
		return m.CountDoctorsFunc(ctx)
	}
	return 0, errors.New("CountDoctorsFunc not implemented in mock")
}

func (m *MockDoctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if m.UpdateDoctorFunc != nil {
		return m.UpdateDoctorFunc(ctx, doctorID, req)
	}
	return nil, errors.New("UpdateDoctorFunc not implemented in mock")
}

func (m *MockDoctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	if m.DeleteDoctorFunc != nil {
		return m.DeleteDoctorFunc(ctx, doctorID)
	}
	return errors.New("DeleteDoctorFunc not implemented in mock")
}

func TestCreateDoctorRequiresNameAndHospital(t *testing.T) {
	h := NewDoctorHandler(&MockDoctorUsecase{}, validator.NewValidator())

	tests := []struct {
		name string
		body string
	}{
		{"empty payload", `{}`},
		{"missing hospital", `{"name": "Dr. Kim"}`},
		{"missing name", `{"hospital_id": "` + uuid.NewString() + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.CreateDoctor(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateDoctorRejectsTooManySpecializedAreas(t *testing.T) {
	h := NewDoctorHandler(&MockDoctorUsecase{}, validator.NewValidator())

	body := `{
		"name": "Dr. Kim",
		"hospital_id": "` + uuid.NewString() + `",
		"specialized_area": ["EYEAREA", "MOUTHAREA", "JAWLINE", "SKINTONE"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateDoctor(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDoctorRejectsUnknownTaxonomyCode(t *testing.T) {
	h := NewDoctorHandler(&MockDoctorUsecase{}, validator.NewValidator())

	body := `{
		"name": "Dr. Kim",
		"hospital_id": "` + uuid.NewString() + `",
		"specialized_area": ["NOT_A_CODE"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateDoctor(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDoctorSuccess(t *testing.T) {
	hospitalID := uuid.New()
	mock := &MockDoctorUsecase{
		CreateDoctorFunc: func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
			return &dto.DoctorResponse{ID: uuid.New(), Name: req.Name, HospitalID: req.HospitalID}, nil
		},
	}
	h := NewDoctorHandler(mock, validator.NewValidator())

	body := `{
		"name": "Dr. Kim",
		"hospital_id": "` + hospitalID.String() + `",
		"specialized_area": ["EYEAREA"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateDoctor(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSearchDoctorsPassesQueryParams(t *testing.T) {
	var gotFilters entity.DoctorSearchFilters
	mock := &MockDoctorUsecase{
		SearchDoctorsFunc: func(ctx context.Context, filters entity.DoctorSearchFilters) (*dto.DoctorListResponse, error) {
			gotFilters = filters
			return &dto.DoctorListResponse{Doctors: []dto.DoctorResponse{}}, nil
		},
	}
	h := NewDoctorHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/doctors?region=%EC%84%9C%EC%9A%B8&specialized_area=EYEAREA&q=kim", nil)
	rec := httptest.NewRecorder()

	h.SearchDoctors(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "서울", gotFilters.Region)
	assert.Equal(t, "EYEAREA", gotFilters.SpecializedArea)
	assert.Equal(t, "kim", gotFilters.Query)
}

func TestSearchDoctorsWithoutFiltersListsAll(t *testing.T) {
	listed := false
	mock := &MockDoctorUsecase{
		GetAllDoctorsFunc: func(ctx context.Context) (*dto.DoctorListResponse, error) {
			listed = true
			return &dto.DoctorListResponse{Doctors: []dto.DoctorResponse{}}, nil
		},
	}
	h := NewDoctorHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	rec := httptest.NewRecorder()

	h.SearchDoctors(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, listed)
}

func TestDeleteDoctorFailureMapsToServerError(t *testing.T) {
	mock := &MockDoctorUsecase{
		DeleteDoctorFunc: func(ctx context.Context, doctorID uuid.UUID) error {
			return errors.New("backend rejected the query")
		},
	}
	h := NewDoctorHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/doctors/"+uuid.NewString(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()

	h.DeleteDoctor(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCountDoctors(t *testing.T) {
	mock := &MockDoctorUsecase{
		CountDoctorsFunc: func(ctx context.Context) (int64, error) { return 3, nil },
	}
	h := NewDoctorHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/doctors/count", nil)
	rec := httptest.NewRecorder()

	h.CountDoctors(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data map[string]int64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data["count"])
}
