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

// ErrLabNotFound rejects a reference to a lab that does not exist.
var ErrLabNotFound = errors.New("lab not found")

// LabService is the lab catalog business interface.
type LabService interface {
	Create(ctx context.Context, req *dto.CreateLabRequest, callerID string) (*dto.LabResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LabResponse, error)
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.LabResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateLabRequest, callerID string) (*dto.LabResponse, error)
	// Delete removes the lab; its PCs and class periods go with it.
	Delete(ctx context.Context, id string) error
}

type labService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLabService creates a LabService.
func NewLabService(repo *repository.Repository, logger *zap.Logger) LabService {
	return &labService{repo: repo, logger: logger}
}

func (s *labService) Create(ctx context.Context, req *dto.CreateLabRequest, callerID string) (*dto.LabResponse, error) {
	if req.LabHeadID != nil {
		if _, err := s.repo.User.GetByID(ctx, *req.LabHeadID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	lab := &model.Lab{
		LabCode:     req.LabCode,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		LabHeadID:   req.LabHeadID,
		Fans:        req.Fans,
		Lights:      req.Lights,
	}
	lab.CreatedBy = &callerID
	lab.UpdatedBy = &callerID

	if err := s.repo.Lab.Create(ctx, lab); err != nil {
		s.logger.Error("create lab failed", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Lab.GetByID(ctx, lab.LabID)
	if err != nil {
		return nil, err
	}
	return s.toLabResponse(ctx, created), nil
}

func (s *labService) GetByID(ctx context.Context, id string) (*dto.LabResponse, error) {
	lab, err := s.repo.Lab.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabNotFound
		}
		s.logger.Error("lookup lab failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toLabResponse(ctx, lab), nil
}

func (s *labService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.LabResponse, int64, error) {
	labs, total, err := s.repo.Lab.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("list labs failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.LabResponse, 0, len(labs))
	for i := range labs {
		result = append(result, *s.toLabResponse(ctx, &labs[i]))
	}
	return result, total, nil
}

func (s *labService) Update(ctx context.Context, id string, req *dto.UpdateLabRequest, callerID string) (*dto.LabResponse, error) {
	lab, err := s.repo.Lab.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabNotFound
		}
		return nil, err
	}

	if req.LabHeadID != nil {
		if _, err := s.repo.User.GetByID(ctx, *req.LabHeadID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		lab.LabHeadID = req.LabHeadID
	}
	if req.LabCode != nil {
		lab.LabCode = req.LabCode
	}
	if req.Name != nil {
		lab.Name = *req.Name
	}
	if req.Location != nil {
		lab.Location = req.Location
	}
	if req.Description != nil {
		lab.Description = req.Description
	}
	if req.Fans != nil {
		lab.Fans = *req.Fans
	}
	if req.Lights != nil {
		lab.Lights = *req.Lights
	}
	lab.UpdatedBy = &callerID

	if err := s.repo.Lab.Update(ctx, lab); err != nil {
		s.logger.Error("update lab failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toLabResponse(ctx, lab), nil
}

func (s *labService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Lab.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLabNotFound
		}
		return err
	}
	return s.repo.Lab.Delete(ctx, id)
}

func (s *labService) toLabResponse(ctx context.Context, lab *model.Lab) *dto.LabResponse {
	resp := &dto.LabResponse{
		ID:          lab.LabID,
		LabCode:     lab.LabCode,
		Name:        lab.Name,
		Location:    lab.Location,
		Description: lab.Description,
		Fans:        lab.Fans,
		Lights:      lab.Lights,
		CreatedAt:   lab.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   lab.UpdatedAt.Format(time.RFC3339),
	}

	if lab.LabHead != nil {
		resp.LabHead = &dto.UserBrief{
			ID:       lab.LabHead.UserID,
			Username: lab.LabHead.Username,
		}
	}

	if n, err := s.repo.Lab.CountPCs(ctx, lab.LabID); err == nil {
		resp.PCCount = int(n)
	}

	return resp
}
