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

// ── class period errors ──

var (
	ErrPeriodNotFound   = errors.New("class period not found")
	ErrPeriodPCMismatch = errors.New("assigned pc does not belong to this lab")
)

// ClassPeriodService manages recurring weekly slots on a lab's timetable.
//
// Create validates the candidate twice: an exact (lab, day, start, end)
// tuple match is a duplicate, anything else that intersects on the same
// day of week is an overlap. Both checks run under the lab's schedule
// lock in one transaction.
type ClassPeriodService interface {
	Create(ctx context.Context, labID string, req *dto.CreateClassPeriodRequest, callerID string) (*dto.ClassPeriodResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ClassPeriodResponse, error)
	ListByLab(ctx context.Context, labID string, req *dto.ClassPeriodListRequest) ([]dto.ClassPeriodResponse, error)
	Delete(ctx context.Context, id string) error
	// ListAvailability lists per-PC availability rows for a period.
	ListAvailability(ctx context.Context, periodID string) ([]dto.PCAvailabilityResponse, error)
}

type classPeriodService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassPeriodService creates a ClassPeriodService.
func NewClassPeriodService(repo *repository.Repository, logger *zap.Logger) ClassPeriodService {
	return &classPeriodService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *classPeriodService) Create(ctx context.Context, labID string, req *dto.CreateClassPeriodRequest, callerID string) (*dto.ClassPeriodResponse, error) {
	if err := validatePeriodInterval(req.PeriodStart, req.PeriodEnd); err != nil {
		return nil, err
	}

	recurring := true
	if req.Recurring != nil {
		recurring = *req.Recurring
	}

	period := &model.ClassPeriod{
		LabID:        labID,
		PCID:         req.PCID,
		Subject:      req.Subject,
		InstructorID: req.InstructorID,
		DayOfWeek:    *req.DayOfWeek,
		PeriodStart:  model.TimeOfDay(req.PeriodStart),
		PeriodEnd:    model.TimeOfDay(req.PeriodEnd),
		Recurring:    recurring,
	}
	period.CreatedBy = &callerID
	period.UpdatedBy = &callerID

	err := s.repo.Tx.Transaction(ctx, func(txRepo *repository.Repository) error {
		if _, err := txRepo.Lab.GetByID(ctx, labID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLabNotFound
			}
			return err
		}

		if req.PCID != nil {
			pc, err := txRepo.PC.GetByID(ctx, *req.PCID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPCNotFound
				}
				return err
			}
			if pc.LabID != labID {
				return ErrPeriodPCMismatch
			}
			if pc.IsDefective {
				return ErrPCDefective
			}
		}

		if err := txRepo.Tx.LockSchedule(ctx, "period:lab:"+labID); err != nil {
			return err
		}

		// exact duplicate first, then interval overlap
		_, err := txRepo.ClassPeriod.GetBySlot(ctx, labID, period.DayOfWeek, req.PeriodStart, req.PeriodEnd)
		if err == nil {
			return ErrDuplicateSlot
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		existing, err := txRepo.ClassPeriod.ListByLab(ctx, labID, &period.DayOfWeek)
		if err != nil {
			return err
		}
		if conflict := findPeriodConflict(period.DayOfWeek, req.PeriodStart, req.PeriodEnd, existing); conflict != nil {
			return ErrOverlap
		}

		if err := txRepo.ClassPeriod.Create(ctx, period); err != nil {
			return err
		}

		return recomputeAvailability(ctx, txRepo, period)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.ClassPeriod.GetByID(ctx, period.ClassPeriodID)
	if err != nil {
		return nil, err
	}
	return toClassPeriodResponse(created), nil
}

// recomputeAvailability rewrites the availability rows for a period:
// the assigned PC is available to it, every other PC in the lab is not.
// A PC serves at most one class period at a time.
func recomputeAvailability(ctx context.Context, txRepo *repository.Repository, period *model.ClassPeriod) error {
	pcs, err := txRepo.PC.ListByLab(ctx, period.LabID)
	if err != nil {
		return err
	}

	rows := make([]model.PCAvailability, 0, len(pcs))
	for i := range pcs {
		assigned := period.PCID != nil && pcs[i].PCID == *period.PCID
		rows = append(rows, model.PCAvailability{
			PCID:          pcs[i].PCID,
			ClassPeriodID: period.ClassPeriodID,
			IsAvailable:   assigned,
		})
	}
	return txRepo.PCAvailability.Upsert(ctx, rows)
}

// ────────────────────── queries ──────────────────────

func (s *classPeriodService) GetByID(ctx context.Context, id string) (*dto.ClassPeriodResponse, error) {
	period, err := s.repo.ClassPeriod.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("lookup class period failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toClassPeriodResponse(period), nil
}

func (s *classPeriodService) ListByLab(ctx context.Context, labID string, req *dto.ClassPeriodListRequest) ([]dto.ClassPeriodResponse, error) {
	if _, err := s.repo.Lab.GetByID(ctx, labID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabNotFound
		}
		return nil, err
	}

	periods, err := s.repo.ClassPeriod.ListByLab(ctx, labID, req.DayOfWeek)
	if err != nil {
		s.logger.Error("list class periods failed", zap.String("lab_id", labID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ClassPeriodResponse, 0, len(periods))
	for i := range periods {
		result = append(result, *toClassPeriodResponse(&periods[i]))
	}
	return result, nil
}

func (s *classPeriodService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.ClassPeriod.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPeriodNotFound
		}
		return err
	}
	return s.repo.ClassPeriod.Delete(ctx, id)
}

func (s *classPeriodService) ListAvailability(ctx context.Context, periodID string) ([]dto.PCAvailabilityResponse, error) {
	if _, err := s.repo.ClassPeriod.GetByID(ctx, periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	rows, err := s.repo.PCAvailability.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.PCAvailabilityResponse, 0, len(rows))
	for i := range rows {
		item := dto.PCAvailabilityResponse{IsAvailable: rows[i].IsAvailable}
		if rows[i].PC != nil {
			item.PC = dto.PCBrief{
				ID:       rows[i].PC.PCID,
				Hostname: rows[i].PC.Hostname,
				AssetTag: rows[i].PC.AssetTag,
			}
		}
		result = append(result, item)
	}
	return result, nil
}

func toClassPeriodResponse(p *model.ClassPeriod) *dto.ClassPeriodResponse {
	resp := &dto.ClassPeriodResponse{
		ID:          p.ClassPeriodID,
		Subject:     p.Subject,
		DayOfWeek:   p.DayOfWeek,
		PeriodStart: string(p.PeriodStart),
		PeriodEnd:   string(p.PeriodEnd),
		Recurring:   p.Recurring,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}

	if p.Lab != nil {
		resp.Lab = &dto.LabBrief{ID: p.Lab.LabID, Name: p.Lab.Name}
	}
	if p.PC != nil {
		resp.PC = &dto.PCBrief{ID: p.PC.PCID, Hostname: p.PC.Hostname, AssetTag: p.PC.AssetTag}
	}
	if p.Instructor != nil {
		resp.Instructor = &dto.UserBrief{ID: p.Instructor.UserID, Username: p.Instructor.Username}
	}

	return resp
}
