package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
)

// PCRepository is the PC data-access interface.
type PCRepository interface {
	Create(ctx context.Context, pc *model.PC) error
	GetByID(ctx context.Context, id string) (*model.PC, error)
	ListByLab(ctx context.Context, labID string) ([]model.PC, error)
	Update(ctx context.Context, pc *model.PC) error
	Delete(ctx context.Context, id string) error
}

type pcRepo struct {
	db *gorm.DB
}

// NewPCRepo creates a PCRepository.
func NewPCRepo(db *gorm.DB) PCRepository {
	return &pcRepo{db: db}
}

func (r *pcRepo) Create(ctx context.Context, pc *model.PC) error {
	return r.db.WithContext(ctx).Create(pc).Error
}

func (r *pcRepo) GetByID(ctx context.Context, id string) (*model.PC, error) {
	var pc model.PC
	err := r.db.WithContext(ctx).
		Preload("Lab").
		Where("pc_id = ?", id).
		First(&pc).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *pcRepo) ListByLab(ctx context.Context, labID string) ([]model.PC, error) {
	var pcs []model.PC
	err := r.db.WithContext(ctx).
		Where("lab_id = ?", labID).
		Order("hostname ASC NULLS LAST, asset_tag ASC NULLS LAST").
		Find(&pcs).Error
	return pcs, err
}

func (r *pcRepo) Update(ctx context.Context, pc *model.PC) error {
	return r.db.WithContext(ctx).Save(pc).Error
}

func (r *pcRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("pc_id = ?", id).
		Delete(&model.PC{}).Error
}
