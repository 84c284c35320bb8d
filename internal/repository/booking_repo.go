package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
)

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	PCID   string
	LabID  string
	Status string
	Offset int
	Limit  int
}

// BookingRepository is the booking data-access interface.
type BookingRepository interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, f BookingFilter) ([]model.Booking, int64, error)
	// ListConfirmedForPC returns confirmed bookings on a PC whose interval
	// intersects the half-open window [start, end).
	ListConfirmedForPC(ctx context.Context, pcID string, start, end time.Time) ([]model.Booking, error)
	// ListConfirmedForLab is the lab-level equivalent: bookings that
	// reserve the whole lab (no PC reference).
	ListConfirmedForLab(ctx context.Context, labID string, start, end time.Time) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id, status string, updatedBy string) error
}

type bookingRepo struct {
	db *gorm.DB
}

// NewBookingRepo creates a BookingRepository.
func NewBookingRepo(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, b *model.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).
		Preload("PC").
		Preload("Lab").
		Preload("Owner").
		Where("booking_id = ?", id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepo) List(ctx context.Context, f BookingFilter) ([]model.Booking, int64, error) {
	var bookings []model.Booking
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Booking{})
	if f.PCID != "" {
		db = db.Where("pc_id = ?", f.PCID)
	}
	if f.LabID != "" {
		db = db.Where("lab_id = ?", f.LabID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("PC").
		Preload("Lab").
		Preload("Owner").
		Order("start_time DESC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&bookings).Error
	return bookings, total, err
}

func (r *bookingRepo) ListConfirmedForPC(ctx context.Context, pcID string, start, end time.Time) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("pc_id = ? AND status = ?", pcID, model.BookingStatusConfirmed).
		Where("start_time < ? AND ? < end_time", end, start).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListConfirmedForLab(ctx context.Context, labID string, start, end time.Time) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("lab_id = ? AND pc_id IS NULL AND status = ?", labID, model.BookingStatusConfirmed).
		Where("start_time < ? AND ? < end_time", end, start).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id, status string, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("booking_id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}
