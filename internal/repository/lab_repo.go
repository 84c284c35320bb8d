package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
)

// LabRepository is the lab data-access interface.
type LabRepository interface {
	Create(ctx context.Context, lab *model.Lab) error
	GetByID(ctx context.Context, id string) (*model.Lab, error)
	List(ctx context.Context, offset, limit int) ([]model.Lab, int64, error)
	Update(ctx context.Context, lab *model.Lab) error
	// Delete removes a lab; the database cascades to its PCs and
	// class periods.
	Delete(ctx context.Context, id string) error
	CountPCs(ctx context.Context, labID string) (int64, error)
}

type labRepo struct {
	db *gorm.DB
}

// NewLabRepo creates a LabRepository.
func NewLabRepo(db *gorm.DB) LabRepository {
	return &labRepo{db: db}
}

func (r *labRepo) Create(ctx context.Context, lab *model.Lab) error {
	return r.db.WithContext(ctx).Create(lab).Error
}

func (r *labRepo) GetByID(ctx context.Context, id string) (*model.Lab, error) {
	var lab model.Lab
	err := r.db.WithContext(ctx).
		Preload("LabHead").
		Where("lab_id = ?", id).
		First(&lab).Error
	if err != nil {
		return nil, err
	}
	return &lab, nil
}

func (r *labRepo) List(ctx context.Context, offset, limit int) ([]model.Lab, int64, error) {
	var labs []model.Lab
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Lab{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("LabHead").
		Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&labs).Error
	return labs, total, err
}

func (r *labRepo) Update(ctx context.Context, lab *model.Lab) error {
	return r.db.WithContext(ctx).Save(lab).Error
}

func (r *labRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("lab_id = ?", id).
		Delete(&model.Lab{}).Error
}

func (r *labRepo) CountPCs(ctx context.Context, labID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.PC{}).
		Where("lab_id = ?", labID).
		Count(&n).Error
	return n, err
}
