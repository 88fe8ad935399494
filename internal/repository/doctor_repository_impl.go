package repository

import (
	"context"
	"errors"

	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).
		Preload("Hospital").
		Order("created_at DESC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).
		Preload("Hospital").
		Where("id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// Search applies the server-pushable predicates (specialized area, name
// substring) in SQL, then the region predicate in memory: region lives on the
// joined hospital row, not on the doctors table, so it cannot be pushed into
// the primary query.
func (r *doctorRepository) Search(ctx context.Context, filters entity.DoctorSearchFilters) ([]entity.Doctor, error) {
	query := r.db.WithContext(ctx).Preload("Hospital")

	if codes := filters.SpecializedAreaCodes(); len(codes) > 0 {
		query = query.Where("specialized_area && ?", pq.StringArray(codes))
	}
	if filters.Query != "" {
		query = query.Where("name ILIKE ?", "%"+filters.Query+"%")
	}

	var doctors []entity.Doctor
	if err := query.Order("created_at DESC").Find(&doctors).Error; err != nil {
		return nil, err
	}

	return entity.ApplyClientFilters(doctors, filters), nil
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Save(doctor).Error
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
