package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
)

// ClassPeriodRepository is the class period data-access interface.
type ClassPeriodRepository interface {
	Create(ctx context.Context, period *model.ClassPeriod) error
	GetByID(ctx context.Context, id string) (*model.ClassPeriod, error)
	// GetBySlot looks up the exact (lab, day_of_week, start, end) tuple.
	GetBySlot(ctx context.Context, labID string, dayOfWeek int, start, end string) (*model.ClassPeriod, error)
	ListByLab(ctx context.Context, labID string, dayOfWeek *int) ([]model.ClassPeriod, error)
	Delete(ctx context.Context, id string) error
}

type classPeriodRepo struct {
	db *gorm.DB
}

// NewClassPeriodRepo creates a ClassPeriodRepository.
func NewClassPeriodRepo(db *gorm.DB) ClassPeriodRepository {
	return &classPeriodRepo{db: db}
}

func (r *classPeriodRepo) Create(ctx context.Context, period *model.ClassPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *classPeriodRepo) GetByID(ctx context.Context, id string) (*model.ClassPeriod, error) {
	var period model.ClassPeriod
	err := r.db.WithContext(ctx).
		Preload("Lab").
		Preload("PC").
		Preload("Instructor").
		Where("class_period_id = ?", id).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *classPeriodRepo) GetBySlot(ctx context.Context, labID string, dayOfWeek int, start, end string) (*model.ClassPeriod, error) {
	var period model.ClassPeriod
	err := r.db.WithContext(ctx).
		Where("lab_id = ? AND day_of_week = ? AND period_start = ? AND period_end = ?",
			labID, dayOfWeek, start, end).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *classPeriodRepo) ListByLab(ctx context.Context, labID string, dayOfWeek *int) ([]model.ClassPeriod, error) {
	var periods []model.ClassPeriod
	db := r.db.WithContext(ctx).Where("lab_id = ?", labID)
	if dayOfWeek != nil {
		db = db.Where("day_of_week = ?", *dayOfWeek)
	}
	err := db.Preload("PC").
		Preload("Instructor").
		Order("day_of_week ASC, period_start ASC").
		Find(&periods).Error
	return periods, err
}

func (r *classPeriodRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("class_period_id = ?", id).
		Delete(&model.ClassPeriod{}).Error
}
