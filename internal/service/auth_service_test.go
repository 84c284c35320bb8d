package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sidd-coder1/Fullstack-LMS/config"
	"github.com/sidd-coder1/Fullstack-LMS/internal/dto"
	"github.com/sidd-coder1/Fullstack-LMS/internal/model"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/jwt"
)

func setupAuthService() (AuthService, *testRepos) {
	repos := newTestRepos()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-0123456789abcdef",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repos.toRepository(), jwtMgr, nil, zap.NewNop())
	return svc, repos
}

func seedPasswordUser(repos *testRepos, username, password string, active bool) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		UserID:       "user-" + username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleStudent,
		IsActive:     active,
	}
	repos.user.users[user.UserID] = user
	return user
}

func TestAuthService_Register(t *testing.T) {
	svc, repos := setupAuthService()

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Username != "alice" {
		t.Errorf("username = %q", resp.Username)
	}

	stored := repos.user.users[resp.ID]
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.Role != model.RoleStudent {
		t.Errorf("new accounts default to student, got %q", stored.Role)
	}
	if stored.PasswordHash == "correct horse battery" {
		t.Error("password must be stored hashed")
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, repos := setupAuthService()
	seedPasswordUser(repos, "alice", "pw12345678", true)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "pw12345678",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("got %v, want ErrUsernameTaken", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, repos := setupAuthService()
	seedPasswordUser(repos, "alice", "pw12345678", true)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "pw12345678",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("got %v, want ErrEmailTaken", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, repos := setupAuthService()
	seedPasswordUser(repos, "alice", "pw12345678", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "pw12345678"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("login must issue both tokens")
	}
	if resp.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("expires_in = %d", resp.ExpiresIn)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repos := setupAuthService()
	seedPasswordUser(repos, "alice", "pw12345678", true)

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "nope"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
	// unknown user maps to the same error, not a not-found leak
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "mallory", Password: "nope"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_Login_Disabled(t *testing.T) {
	svc, repos := setupAuthService()
	seedPasswordUser(repos, "alice", "pw12345678", false)

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "pw12345678"}); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("got %v, want ErrUserDisabled", err)
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, repos := setupAuthService()
	seedPasswordUser(repos, "alice", "pw12345678", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "pw12345678"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("refresh must issue a new access token")
	}

	// an access token cannot be used for refresh
	if _, err := svc.RefreshToken(context.Background(), login.AccessToken); !errors.Is(err, jwt.ErrTokenInvalid) {
		t.Fatalf("access token as refresh: got %v, want ErrTokenInvalid", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, repos := setupAuthService()
	user := seedPasswordUser(repos, "alice", "pw12345678", true)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "pw12345678",
		NewPassword: "new-pw-87654321",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "new-pw-87654321"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	err = svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "pw12345678",
		NewPassword: "whatever-123",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("stale old password: got %v, want ErrWrongPassword", err)
	}
}
