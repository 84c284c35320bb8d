package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sidd-coder1/Fullstack-LMS/internal/dto"
	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
	"github.com/sidd-coder1/Fullstack-LMS/internal/repository"
)

// ── maintenance errors ──

var (
	ErrMaintenanceNotFound = errors.New("maintenance request not found")
	ErrInvalidStatusChange = errors.New("maintenance status can only move forward")
)

// statusRank orders maintenance statuses; transitions must not go back.
var statusRank = map[string]int{
	model.MaintenanceStatusOpen:       0,
	model.MaintenanceStatusInProgress: 1,
	model.MaintenanceStatusClosed:     2,
}

// MaintenanceService manages the repair workflow for PCs.
type MaintenanceService interface {
	Create(ctx context.Context, req *dto.CreateMaintenanceRequest, callerID string) (*dto.MaintenanceResponse, error)
	GetByID(ctx context.Context, id string) (*dto.MaintenanceResponse, error)
	List(ctx context.Context, req *dto.MaintenanceListRequest) ([]dto.MaintenanceResponse, int64, error)
	// Update reassigns or transitions a request. Closed is terminal;
	// closing a request stamps resolved_at.
	Update(ctx context.Context, id string, req *dto.UpdateMaintenanceRequest, callerID string) (*dto.MaintenanceResponse, error)
}

type maintenanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMaintenanceService creates a MaintenanceService.
func NewMaintenanceService(repo *repository.Repository, logger *zap.Logger) MaintenanceService {
	return &maintenanceService{repo: repo, logger: logger}
}

func (s *maintenanceService) Create(ctx context.Context, req *dto.CreateMaintenanceRequest, callerID string) (*dto.MaintenanceResponse, error) {
	if req.PCID != nil {
		if _, err := s.repo.PC.GetByID(ctx, *req.PCID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPCNotFound
			}
			return nil, err
		}
	}

	priority := model.PriorityNormal
	if req.Priority != nil {
		priority = *req.Priority
	}

	mr := &model.MaintenanceRequest{
		PCID:        req.PCID,
		RequestedBy: &callerID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      model.MaintenanceStatusOpen,
	}
	mr.CreatedBy = &callerID
	mr.UpdatedBy = &callerID

	if err := s.repo.Maintenance.Create(ctx, mr); err != nil {
		s.logger.Error("create maintenance request failed", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Maintenance.GetByID(ctx, mr.MaintenanceRequestID)
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponse(created), nil
}

func (s *maintenanceService) GetByID(ctx context.Context, id string) (*dto.MaintenanceResponse, error) {
	mr, err := s.repo.Maintenance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaintenanceNotFound
		}
		return nil, err
	}
	return toMaintenanceResponse(mr), nil
}

func (s *maintenanceService) List(ctx context.Context, req *dto.MaintenanceListRequest) ([]dto.MaintenanceResponse, int64, error) {
	reqs, total, err := s.repo.Maintenance.List(ctx, repository.MaintenanceFilter{
		PCID:   req.PCID,
		Status: req.Status,
		Offset: req.GetOffset(),
		Limit:  req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("list maintenance requests failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.MaintenanceResponse, 0, len(reqs))
	for i := range reqs {
		result = append(result, *toMaintenanceResponse(&reqs[i]))
	}
	return result, total, nil
}

func (s *maintenanceService) Update(ctx context.Context, id string, req *dto.UpdateMaintenanceRequest, callerID string) (*dto.MaintenanceResponse, error) {
	mr, err := s.repo.Maintenance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaintenanceNotFound
		}
		return nil, err
	}

	if mr.Status == model.MaintenanceStatusClosed {
		return nil, ErrInvalidStatusChange
	}

	if req.Status != nil && *req.Status != mr.Status {
		if statusRank[*req.Status] < statusRank[mr.Status] {
			return nil, ErrInvalidStatusChange
		}
		mr.Status = *req.Status
		if mr.Status == model.MaintenanceStatusClosed {
			now := time.Now()
			mr.ResolvedAt = &now
		}
	}

	if req.AssignedTo != nil {
		if _, err := s.repo.User.GetByID(ctx, *req.AssignedTo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		mr.AssignedTo = req.AssignedTo
	}
	if req.Priority != nil {
		mr.Priority = *req.Priority
	}
	if req.Description != nil {
		mr.Description = req.Description
	}
	mr.UpdatedBy = &callerID

	if err := s.repo.Maintenance.Update(ctx, mr); err != nil {
		s.logger.Error("update maintenance request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Maintenance.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponse(updated), nil
}

func toMaintenanceResponse(mr *model.MaintenanceRequest) *dto.MaintenanceResponse {
	resp := &dto.MaintenanceResponse{
		ID:          mr.MaintenanceRequestID,
		Title:       mr.Title,
		Description: mr.Description,
		Priority:    mr.Priority,
		Status:      mr.Status,
		CreatedAt:   mr.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   mr.UpdatedAt.Format(time.RFC3339),
	}

	if mr.ResolvedAt != nil {
		resolved := mr.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &resolved
	}
	if mr.PC != nil {
		resp.PC = &dto.PCBrief{ID: mr.PC.PCID, Hostname: mr.PC.Hostname, AssetTag: mr.PC.AssetTag}
	}
	if mr.Requester != nil {
		resp.Requester = &dto.UserBrief{ID: mr.Requester.UserID, Username: mr.Requester.Username}
	}
	if mr.Assignee != nil {
		resp.Assignee = &dto.UserBrief{ID: mr.Assignee.UserID, Username: mr.Assignee.Username}
	}

	return resp
}
