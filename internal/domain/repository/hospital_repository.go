package repository

import (
	"context"

	"doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
)

type HospitalRepository interface {
	FindAll(ctx context.Context) ([]entity.Hospital, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, hospital *entity.Hospital) error
	Update(ctx context.Context, hospital *entity.Hospital) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
