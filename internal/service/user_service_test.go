package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sidd-coder1/Fullstack-LMS/internal/dto"
	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
)

func setupUserService() (UserService, *testRepos) {
	repos := newTestRepos()
	svc := NewUserService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestUserService_Update_SelfOnly(t *testing.T) {
	svc, repos := setupUserService()
	seedUser(repos, "alice", model.RoleStudent)
	seedUser(repos, "bob", model.RoleStudent)

	name := "Alice A."
	if _, err := svc.Update(context.Background(), "alice", &dto.UpdateUserRequest{FullName: &name}, "alice"); err != nil {
		t.Fatalf("self update: %v", err)
	}

	if _, err := svc.Update(context.Background(), "alice", &dto.UpdateUserRequest{FullName: &name}, "bob"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("peer update: got %v, want ErrForbidden", err)
	}
}

func TestUserService_Update_OnlyAdminTogglesActive(t *testing.T) {
	svc, repos := setupUserService()
	seedUser(repos, "alice", model.RoleStudent)
	seedUser(repos, "root", model.RoleAdmin)

	inactive := false
	if _, err := svc.Update(context.Background(), "alice", &dto.UpdateUserRequest{IsActive: &inactive}, "alice"); err != nil {
		t.Fatalf("self update: %v", err)
	}
	if !repos.user.users["alice"].IsActive {
		t.Error("non-admin must not be able to toggle is_active")
	}

	if _, err := svc.Update(context.Background(), "alice", &dto.UpdateUserRequest{IsActive: &inactive}, "root"); err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if repos.user.users["alice"].IsActive {
		t.Error("admin toggle should stick")
	}
}

func TestUserService_AssignRole(t *testing.T) {
	svc, repos := setupUserService()
	seedUser(repos, "alice", model.RoleStudent)
	seedUser(repos, "root", model.RoleAdmin)

	resp, err := svc.AssignRole(context.Background(), "alice", &dto.AssignRoleRequest{Role: model.RoleStaff}, "root")
	if err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if resp.Role != model.RoleStaff {
		t.Errorf("role = %q, want staff", resp.Role)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, _ := setupUserService()
	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}
