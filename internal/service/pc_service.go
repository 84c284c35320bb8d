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

// ErrPCNotFound rejects a reference to a PC that does not exist.
var ErrPCNotFound = errors.New("pc not found")

// PCService is the PC catalog business interface.
type PCService interface {
	Create(ctx context.Context, labID string, req *dto.CreatePCRequest, callerID string) (*dto.PCResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PCResponse, error)
	ListByLab(ctx context.Context, labID string) ([]dto.PCResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePCRequest, callerID string) (*dto.PCResponse, error)
	Delete(ctx context.Context, id string) error
}

type pcService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPCService creates a PCService.
func NewPCService(repo *repository.Repository, logger *zap.Logger) PCService {
	return &pcService{repo: repo, logger: logger}
}

func (s *pcService) Create(ctx context.Context, labID string, req *dto.CreatePCRequest, callerID string) (*dto.PCResponse, error) {
	if _, err := s.repo.Lab.GetByID(ctx, labID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabNotFound
		}
		return nil, err
	}

	pc := &model.PC{
		LabID:        labID,
		AssetTag:     req.AssetTag,
		Hostname:     req.Hostname,
		SerialNumber: req.SerialNumber,
		IPAddress:    req.IPAddress,
		MACAddress:   req.MACAddress,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		CPU:          req.CPU,
		CPUCores:     req.CPUCores,
		RAMMB:        req.RAMMB,
		StorageGB:    req.StorageGB,
		OSName:       req.OSName,
		OSVersion:    req.OSVersion,
	}
	if req.PurchasedOn != nil {
		if d, err := time.Parse("2006-01-02", *req.PurchasedOn); err == nil {
			pc.PurchasedOn = &d
		}
	}
	if req.WarrantyUntil != nil {
		if d, err := time.Parse("2006-01-02", *req.WarrantyUntil); err == nil {
			pc.WarrantyUntil = &d
		}
	}
	pc.CreatedBy = &callerID
	pc.UpdatedBy = &callerID

	if err := s.repo.PC.Create(ctx, pc); err != nil {
		s.logger.Error("create pc failed", zap.String("lab_id", labID), zap.Error(err))
		return nil, err
	}

	created, err := s.repo.PC.GetByID(ctx, pc.PCID)
	if err != nil {
		return nil, err
	}
	return toPCResponse(created), nil
}

func (s *pcService) GetByID(ctx context.Context, id string) (*dto.PCResponse, error) {
	pc, err := s.repo.PC.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPCNotFound
		}
		s.logger.Error("lookup pc failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toPCResponse(pc), nil
}

func (s *pcService) ListByLab(ctx context.Context, labID string) ([]dto.PCResponse, error) {
	if _, err := s.repo.Lab.GetByID(ctx, labID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabNotFound
		}
		return nil, err
	}

	pcs, err := s.repo.PC.ListByLab(ctx, labID)
	if err != nil {
		s.logger.Error("list pcs failed", zap.String("lab_id", labID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.PCResponse, 0, len(pcs))
	for i := range pcs {
		result = append(result, *toPCResponse(&pcs[i]))
	}
	return result, nil
}

func (s *pcService) Update(ctx context.Context, id string, req *dto.UpdatePCRequest, callerID string) (*dto.PCResponse, error) {
	pc, err := s.repo.PC.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPCNotFound
		}
		return nil, err
	}

	if req.AssetTag != nil {
		pc.AssetTag = req.AssetTag
	}
	if req.Hostname != nil {
		pc.Hostname = req.Hostname
	}
	if req.IPAddress != nil {
		pc.IPAddress = req.IPAddress
	}
	if req.MACAddress != nil {
		pc.MACAddress = req.MACAddress
	}
	if req.OSName != nil {
		pc.OSName = req.OSName
	}
	if req.OSVersion != nil {
		pc.OSVersion = req.OSVersion
	}
	if req.IsDefective != nil {
		pc.IsDefective = *req.IsDefective
		if !pc.IsDefective {
			pc.DefectiveReason = nil
			now := time.Now()
			pc.LastCheckedAt = &now
		}
	}
	if req.DefectiveReason != nil {
		pc.DefectiveReason = req.DefectiveReason
	}
	pc.UpdatedBy = &callerID

	if err := s.repo.PC.Update(ctx, pc); err != nil {
		s.logger.Error("update pc failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toPCResponse(pc), nil
}

func (s *pcService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.PC.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPCNotFound
		}
		return err
	}
	return s.repo.PC.Delete(ctx, id)
}

func toPCResponse(pc *model.PC) *dto.PCResponse {
	resp := &dto.PCResponse{
		ID:              pc.PCID,
		AssetTag:        pc.AssetTag,
		Hostname:        pc.Hostname,
		SerialNumber:    pc.SerialNumber,
		IPAddress:       pc.IPAddress,
		MACAddress:      pc.MACAddress,
		Manufacturer:    pc.Manufacturer,
		Model:           pc.Model,
		CPU:             pc.CPU,
		CPUCores:        pc.CPUCores,
		RAMMB:           pc.RAMMB,
		StorageGB:       pc.StorageGB,
		OSName:          pc.OSName,
		OSVersion:       pc.OSVersion,
		IsDefective:     pc.IsDefective,
		DefectiveReason: pc.DefectiveReason,
		CreatedAt:       pc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       pc.UpdatedAt.Format(time.RFC3339),
	}

	if pc.LastCheckedAt != nil {
		t := pc.LastCheckedAt.Format(time.RFC3339)
		resp.LastCheckedAt = &t
	}
	if pc.Lab != nil {
		resp.Lab = &dto.LabBrief{ID: pc.Lab.LabID, Name: pc.Lab.Name}
	}

	return resp
}
