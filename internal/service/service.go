package service

import (
	"go.uber.org/zap"

	"github.com/sidd-coder1/Fullstack-LMS/config"
	"github.com/sidd-coder1/Fullstack-LMS/internal/repository"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/jwt"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/redis"
)

// Service aggregates all business-logic interfaces.
type Service struct {
	Auth        AuthService
	User        UserService
	Lab         LabService
	PC          PCService
	Booking     BookingService
	ClassPeriod ClassPeriodService
	Maintenance MaintenanceService
	Export      ExportService
}

// NewService creates the Service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:        NewUserService(repo, logger),
		Lab:         NewLabService(repo, logger),
		PC:          NewPCService(repo, logger),
		Booking:     NewBookingService(repo, logger),
		ClassPeriod: NewClassPeriodService(repo, logger),
		Maintenance: NewMaintenanceService(repo, logger),
		Export:      NewExportService(repo, logger),
	}
}
