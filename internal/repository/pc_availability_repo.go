package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
)

// PCAvailabilityRepository is the PC availability data-access interface.
type PCAvailabilityRepository interface {
	// Upsert writes availability rows, replacing the flag on the
	// (pc_id, class_period_id) conflict.
	Upsert(ctx context.Context, rows []model.PCAvailability) error
	ListByPeriod(ctx context.Context, classPeriodID string) ([]model.PCAvailability, error)
}

type pcAvailabilityRepo struct {
	db *gorm.DB
}

// NewPCAvailabilityRepo creates a PCAvailabilityRepository.
func NewPCAvailabilityRepo(db *gorm.DB) PCAvailabilityRepository {
	return &pcAvailabilityRepo{db: db}
}

func (r *pcAvailabilityRepo) Upsert(ctx context.Context, rows []model.PCAvailability) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pc_id"}, {Name: "class_period_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_available", "updated_at"}),
		}).
		Create(&rows).Error
}

func (r *pcAvailabilityRepo) ListByPeriod(ctx context.Context, classPeriodID string) ([]model.PCAvailability, error) {
	var rows []model.PCAvailability
	err := r.db.WithContext(ctx).
		Preload("PC").
		Where("class_period_id = ?", classPeriodID).
		Find(&rows).Error
	return rows, err
}
