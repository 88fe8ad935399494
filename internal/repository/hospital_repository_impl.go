package repository

import (
	"context"
	"errors"

	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) domainRepo.HospitalRepository {
	return &hospitalRepository{db: db}
}

func (r *hospitalRepository) FindAll(ctx context.Context) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Hospital{}).Count(&count).Error
	return count, err
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *entity.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

func (r *hospitalRepository) Update(ctx context.Context, hospital *entity.Hospital) error {
	return r.db.WithContext(ctx).Save(hospital).Error
}

func (r *hospitalRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Hospital{})
	return result.RowsAffected, result.Error
}
