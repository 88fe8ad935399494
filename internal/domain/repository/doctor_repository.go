package repository

import (
	"context"

	"doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	Search(ctx context.Context, filters entity.DoctorSearchFilters) ([]entity.Doctor, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, doctor *entity.Doctor) error
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
