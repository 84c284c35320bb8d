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

// ── booking errors ──

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrResourceRequired = errors.New("booking must reference a pc or a lab")
	ErrPCDefective      = errors.New("pc is marked defective")
	ErrPCUnderRepair    = errors.New("pc has an open maintenance request")
	ErrPCLabMismatch    = errors.New("pc does not belong to the given lab")
	ErrBookingCancelled = errors.New("booking is cancelled; create a new one instead")
	ErrNotBookingOwner  = errors.New("only the booking owner or an admin may cancel")
)

// BookingService is the booking business interface.
//
// Create runs the full scheduling pipeline: catalog lookup, conflict
// validation, and the store write happen inside a single transaction
// serialized per resource, so two concurrent candidates on the same PC
// or lab cannot both pass validation.
type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest, callerID string) (*dto.BookingResponse, error)
	GetByID(ctx context.Context, id string) (*dto.BookingResponse, error)
	List(ctx context.Context, req *dto.BookingListRequest) ([]dto.BookingResponse, int64, error)
	// Cancel transitions a booking to cancelled. Freeing capacity cannot
	// create a conflict, so no validation runs. Cancelled is terminal.
	Cancel(ctx context.Context, id string, callerID string) (*dto.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBookingService creates a BookingService.
func NewBookingService(repo *repository.Repository, logger *zap.Logger) BookingService {
	return &bookingService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest, callerID string) (*dto.BookingResponse, error) {
	if req.PCID == nil && req.LabID == nil {
		return nil, ErrResourceRequired
	}
	// fail fast before touching the store
	if err := validateBookingInterval(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	booking := &model.Booking{
		PCID:      req.PCID,
		LabID:     req.LabID,
		BookedBy:  &callerID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Purpose:   req.Purpose,
		Status:    model.BookingStatusConfirmed,
	}
	booking.CreatedBy = &callerID
	booking.UpdatedBy = &callerID

	err := s.repo.Tx.Transaction(ctx, func(txRepo *repository.Repository) error {
		if req.PCID != nil {
			pc, err := txRepo.PC.GetByID(ctx, *req.PCID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPCNotFound
				}
				return err
			}
			if req.LabID != nil && pc.LabID != *req.LabID {
				return ErrPCLabMismatch
			}
			if pc.IsDefective {
				return ErrPCDefective
			}
			if n, err := txRepo.Maintenance.CountActiveForPC(ctx, pc.PCID); err != nil {
				return err
			} else if n > 0 {
				return ErrPCUnderRepair
			}
			if booking.LabID == nil {
				booking.LabID = &pc.LabID
			}
		} else {
			if _, err := txRepo.Lab.GetByID(ctx, *req.LabID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrLabNotFound
				}
				return err
			}
		}

		// serialize the check-then-insert per resource
		var existing []model.Booking
		var err error
		if req.PCID != nil {
			if err := txRepo.Tx.LockSchedule(ctx, "booking:pc:"+*req.PCID); err != nil {
				return err
			}
			existing, err = txRepo.Booking.ListConfirmedForPC(ctx, *req.PCID, req.StartTime, req.EndTime)
		} else {
			if err := txRepo.Tx.LockSchedule(ctx, "booking:lab:"+*req.LabID); err != nil {
				return err
			}
			existing, err = txRepo.Booking.ListConfirmedForLab(ctx, *req.LabID, req.StartTime, req.EndTime)
		}
		if err != nil {
			return err
		}

		if conflict := findBookingConflict(req.StartTime, req.EndTime, existing); conflict != nil {
			return ErrOverlap
		}

		return txRepo.Booking.Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Booking.GetByID(ctx, booking.BookingID)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(created), nil
}

// ────────────────────── GetByID / List ──────────────────────

func (s *bookingService) GetByID(ctx context.Context, id string) (*dto.BookingResponse, error) {
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("lookup booking failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toBookingResponse(booking), nil
}

func (s *bookingService) List(ctx context.Context, req *dto.BookingListRequest) ([]dto.BookingResponse, int64, error) {
	bookings, total, err := s.repo.Booking.List(ctx, repository.BookingFilter{
		PCID:   req.PCID,
		LabID:  req.LabID,
		Status: req.Status,
		Offset: req.GetOffset(),
		Limit:  req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("list bookings failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *toBookingResponse(&bookings[i]))
	}
	return result, total, nil
}

// ────────────────────── Cancel ──────────────────────

func (s *bookingService) Cancel(ctx context.Context, id string, callerID string) (*dto.BookingResponse, error) {
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.Status == model.BookingStatusCancelled {
		return nil, ErrBookingCancelled
	}

	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if caller.Role != model.RoleAdmin &&
		(booking.BookedBy == nil || *booking.BookedBy != callerID) {
		return nil, ErrNotBookingOwner
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, model.BookingStatusCancelled, callerID); err != nil {
		s.logger.Error("cancel booking failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	cancelled, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(cancelled), nil
}

func toBookingResponse(b *model.Booking) *dto.BookingResponse {
	resp := &dto.BookingResponse{
		ID:        b.BookingID,
		StartTime: b.StartTime.Format(time.RFC3339),
		EndTime:   b.EndTime.Format(time.RFC3339),
		Purpose:   b.Purpose,
		Status:    b.Status,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}

	if b.PC != nil {
		resp.PC = &dto.PCBrief{ID: b.PC.PCID, Hostname: b.PC.Hostname, AssetTag: b.PC.AssetTag}
	}
	if b.Lab != nil {
		resp.Lab = &dto.LabBrief{ID: b.Lab.LabID, Name: b.Lab.Name}
	}
	if b.Owner != nil {
		resp.Owner = &dto.UserBrief{ID: b.Owner.UserID, Username: b.Owner.Username}
	}

	return resp
}
