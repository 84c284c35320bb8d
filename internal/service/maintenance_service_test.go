package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sidd-coder1/Fullstack-LMS/internal/dto"
	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
)

func setupMaintenanceService() (MaintenanceService, *testRepos) {
	repos := newTestRepos()
	svc := NewMaintenanceService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestMaintenanceService_Create_Defaults(t *testing.T) {
	svc, repos := setupMaintenanceService()
	_, pcID := seedLabWithPC(repos)

	resp, err := svc.Create(context.Background(), &dto.CreateMaintenanceRequest{
		PCID:  &pcID,
		Title: "keyboard missing keys",
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Status != model.MaintenanceStatusOpen {
		t.Errorf("status = %q, want open", resp.Status)
	}
	if resp.Priority != model.PriorityNormal {
		t.Errorf("priority = %d, want normal", resp.Priority)
	}
}

func TestMaintenanceService_Create_UnknownPC(t *testing.T) {
	svc, _ := setupMaintenanceService()
	missing := "pc-missing"
	_, err := svc.Create(context.Background(), &dto.CreateMaintenanceRequest{
		PCID:  &missing,
		Title: "x",
	}, "user-1")
	if !errors.Is(err, ErrPCNotFound) {
		t.Fatalf("got %v, want ErrPCNotFound", err)
	}
}

func TestMaintenanceService_Update_ForwardTransitions(t *testing.T) {
	svc, repos := setupMaintenanceService()
	_, pcID := seedLabWithPC(repos)

	created, err := svc.Create(context.Background(), &dto.CreateMaintenanceRequest{
		PCID:  &pcID,
		Title: "no network",
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	inProgress := model.MaintenanceStatusInProgress
	if _, err := svc.Update(context.Background(), created.ID, &dto.UpdateMaintenanceRequest{Status: &inProgress}, "staff-1"); err != nil {
		t.Fatalf("open -> in_progress: %v", err)
	}

	closed := model.MaintenanceStatusClosed
	resp, err := svc.Update(context.Background(), created.ID, &dto.UpdateMaintenanceRequest{Status: &closed}, "staff-1")
	if err != nil {
		t.Fatalf("in_progress -> closed: %v", err)
	}
	if resp.ResolvedAt == nil {
		t.Error("closing must stamp resolved_at")
	}
}

func TestMaintenanceService_Update_NoBackwardTransition(t *testing.T) {
	svc, repos := setupMaintenanceService()
	_, pcID := seedLabWithPC(repos)

	created, err := svc.Create(context.Background(), &dto.CreateMaintenanceRequest{
		PCID:  &pcID,
		Title: "slow boot",
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	inProgress := model.MaintenanceStatusInProgress
	if _, err := svc.Update(context.Background(), created.ID, &dto.UpdateMaintenanceRequest{Status: &inProgress}, "staff-1"); err != nil {
		t.Fatalf("open -> in_progress: %v", err)
	}

	open := model.MaintenanceStatusOpen
	if _, err := svc.Update(context.Background(), created.ID, &dto.UpdateMaintenanceRequest{Status: &open}, "staff-1"); !errors.Is(err, ErrInvalidStatusChange) {
		t.Fatalf("in_progress -> open: got %v, want ErrInvalidStatusChange", err)
	}
}

func TestMaintenanceService_Update_ClosedIsTerminal(t *testing.T) {
	svc, repos := setupMaintenanceService()
	_, pcID := seedLabWithPC(repos)

	created, err := svc.Create(context.Background(), &dto.CreateMaintenanceRequest{
		PCID:  &pcID,
		Title: "dead psu",
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	closed := model.MaintenanceStatusClosed
	if _, err := svc.Update(context.Background(), created.ID, &dto.UpdateMaintenanceRequest{Status: &closed}, "staff-1"); err != nil {
		t.Fatalf("close: %v", err)
	}

	prio := model.PriorityHigh
	if _, err := svc.Update(context.Background(), created.ID, &dto.UpdateMaintenanceRequest{Priority: &prio}, "staff-1"); !errors.Is(err, ErrInvalidStatusChange) {
		t.Fatalf("edit after close: got %v, want ErrInvalidStatusChange", err)
	}
}

func TestMaintenanceService_Update_AssigneeMustExist(t *testing.T) {
	svc, repos := setupMaintenanceService()
	_, pcID := seedLabWithPC(repos)

	created, err := svc.Create(context.Background(), &dto.CreateMaintenanceRequest{
		PCID:  &pcID,
		Title: "coil whine",
	}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	ghost := "user-ghost"
	if _, err := svc.Update(context.Background(), created.ID, &dto.UpdateMaintenanceRequest{AssignedTo: &ghost}, "staff-1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}
