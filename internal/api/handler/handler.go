package handler

import "github.com/sidd-coder1/Fullstack-LMS/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Lab         *LabHandler
	PC          *PCHandler
	Booking     *BookingHandler
	ClassPeriod *ClassPeriodHandler
	Maintenance *MaintenanceHandler
	Export      *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		Lab:         NewLabHandler(svc.Lab),
		PC:          NewPCHandler(svc.PC),
		Booking:     NewBookingHandler(svc.Booking),
		ClassPeriod: NewClassPeriodHandler(svc.ClassPeriod),
		Maintenance: NewMaintenanceHandler(svc.Maintenance),
		Export:      NewExportHandler(svc.Export),
	}
}
