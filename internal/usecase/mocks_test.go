package usecase

import (
	"context"
	"errors"
	"io"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time checks
var (
	_ repository.DoctorRepository   = (*MockDoctorRepository)(nil)
	_ repository.HospitalRepository = (*MockHospitalRepository)(nil)
	_ repository.UserRepository     = (*MockUserRepository)(nil)
	_ repository.SessionStore       = (*MockSessionStore)(nil)
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// MockDoctorRepository is a func-field mock of repository.DoctorRepository.
type MockDoctorRepository struct {
	FindAllFunc  func(ctx context.Context) ([]entity.Doctor, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	SearchFunc   func(ctx context.Context, filters entity.DoctorSearchFilters) ([]entity.Doctor, error)
	CountFunc    func(ctx context.Context) (int64, error)
	CreateFunc   func(ctx context.Context, doctor *entity.Doctor) error
	UpdateFunc   func(ctx context.Context, doctor *entity.Doctor) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, errors.New("FindAllFunc not implemented in mock")
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDoctorRepository) Search(ctx context.Context, filters entity.DoctorSearchFilters) ([]entity.Doctor, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filters)
	}
	return nil, errors.New("SearchFunc not implemented in mock")
}

func (m *MockDoctorRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, errors.New("CountFunc not implemented in mock")
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockDoctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doctor)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockDoctorRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

// MockHospitalRepository is a func-field mock of repository.HospitalRepository.
type MockHospitalRepository struct {
	FindAllFunc  func(ctx context.Context) ([]entity.Hospital, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Hospital, error)
	CountFunc    func(ctx context.Context) (int64, error)
	CreateFunc   func(ctx context.Context, hospital *entity.Hospital) error
	UpdateFunc   func(ctx context.Context, hospital *entity.Hospital) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockHospitalRepository) FindAll(ctx context.Context) ([]entity.Hospital, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, errors.New("FindAllFunc not implemented in mock")
}

func (m *MockHospitalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockHospitalRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, errors.New("CountFunc not implemented in mock")
}

func (m *MockHospitalRepository) Create(ctx context.Context, hospital *entity.Hospital) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, hospital)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockHospitalRepository) Update(ctx context.Context, hospital *entity.Hospital) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, hospital)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockHospitalRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

// MockUserRepository is a func-field mock of repository.UserRepository.
type MockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ExistsFunc   func(ctx context.Context, id uuid.UUID) (bool, error)
	CreateFunc   func(ctx context.Context, user *entity.User) error

	ExistsCallCount int
	CreateCallCount int
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.ExistsCallCount++
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, errors.New("ExistsFunc not implemented in mock")
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.CreateCallCount++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return errors.New("CreateFunc not implemented in mock")
}

// MockSessionStore is an in-memory repository.SessionStore.
type MockSessionStore struct {
	sessions map[string]bool

	SaveErr    error
	DestroyErr error
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{sessions: make(map[string]bool)}
}

func (m *MockSessionStore) key(userID, tokenID string) string {
	return userID + ":" + tokenID
}

func (m *MockSessionStore) Save(ctx context.Context, userID, tokenID string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.sessions[m.key(userID, tokenID)] = true
	return nil
}

func (m *MockSessionStore) Exists(ctx context.Context, userID, tokenID string) (bool, error) {
	return m.sessions[m.key(userID, tokenID)], nil
}

func (m *MockSessionStore) Destroy(ctx context.Context, userID, tokenID string) error {
	if m.DestroyErr != nil {
		return m.DestroyErr
	}
	delete(m.sessions, m.key(userID, tokenID))
	return nil
}

func (m *MockSessionStore) DestroyAll(ctx context.Context, userID string) error {
	if m.DestroyErr != nil {
		return m.DestroyErr
	}
	for key := range m.sessions {
		if len(key) > len(userID) && key[:len(userID)+1] == userID+":" {
			delete(m.sessions, key)
		}
	}
	return nil
}

func (m *MockSessionStore) Live(userID, tokenID string) bool {
	return m.sessions[m.key(userID, tokenID)]
}
