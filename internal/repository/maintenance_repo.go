package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
)

// MaintenanceFilter narrows maintenance request list queries.
type MaintenanceFilter struct {
	PCID   string
	Status string
	Offset int
	Limit  int
}

// MaintenanceRepository is the maintenance request data-access interface.
type MaintenanceRepository interface {
	Create(ctx context.Context, req *model.MaintenanceRequest) error
	GetByID(ctx context.Context, id string) (*model.MaintenanceRequest, error)
	List(ctx context.Context, f MaintenanceFilter) ([]model.MaintenanceRequest, int64, error)
	Update(ctx context.Context, req *model.MaintenanceRequest) error
	// CountActiveForPC counts non-closed requests referencing a PC.
	CountActiveForPC(ctx context.Context, pcID string) (int64, error)
}

type maintenanceRepo struct {
	db *gorm.DB
}

// NewMaintenanceRepo creates a MaintenanceRepository.
func NewMaintenanceRepo(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

func (r *maintenanceRepo) Create(ctx context.Context, req *model.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id string) (*model.MaintenanceRequest, error) {
	var req model.MaintenanceRequest
	err := r.db.WithContext(ctx).
		Preload("PC").
		Preload("Requester").
		Preload("Assignee").
		Where("maintenance_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *maintenanceRepo) List(ctx context.Context, f MaintenanceFilter) ([]model.MaintenanceRequest, int64, error) {
	var reqs []model.MaintenanceRequest
	var total int64

	db := r.db.WithContext(ctx).Model(&model.MaintenanceRequest{})
	if f.PCID != "" {
		db = db.Where("pc_id = ?", f.PCID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("PC").
		Preload("Requester").
		Preload("Assignee").
		Order("priority ASC, created_at DESC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&reqs).Error
	return reqs, total, err
}

func (r *maintenanceRepo) Update(ctx context.Context, req *model.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *maintenanceRepo) CountActiveForPC(ctx context.Context, pcID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.MaintenanceRequest{}).
		Where("pc_id = ? AND status != ?", pcID, model.MaintenanceStatusClosed).
		Count(&n).Error
	return n, err
}
