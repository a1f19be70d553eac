package service

import (
	"errors"
	"testing"
	"time"

	"github.com/jipgi-intake/internal/config"
	"github.com/jipgi-intake/internal/models"
	"github.com/jipgi-intake/internal/repository"
)

func setupAuthTest(t *testing.T) (*AuthService, *serviceTestEnv) {
	t.Helper()
	env := setupServiceTest(t)
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-auth-service-tests"
	cfg.JWT.ExpireHours = 1
	svc := NewAuthService(cfg,
		repository.NewVendorAccountRepository(env.db),
		repository.NewAdminCredentialRepository(env.db),
	)
	return svc, env
}

func seedVendorAccount(t *testing.T, svc *AuthService, env *serviceTestEnv, username, password, vendorName string) {
	t.Helper()
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	if err := env.db.Create(&models.VendorAccount{
		Username:     username,
		PasswordHash: hash,
		VendorName:   vendorName,
	}).Error; err != nil {
		t.Fatalf("seed vendor account failed: %v", err)
	}
}

func seedAdminCredential(t *testing.T, svc *AuthService, env *serviceTestEnv, name, password string) {
	t.Helper()
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	if err := env.db.Create(&models.AdminCredential{
		Name:         name,
		PasswordHash: hash,
	}).Error; err != nil {
		t.Fatalf("seed admin credential failed: %v", err)
	}
}

func TestVendorLoginRoundTrip(t *testing.T) {
	svc, env := setupAuthTest(t)
	seedVendorAccount(t, svc, env, "hanbit", "test-vendor-pass", "한빛물류")

	account, token, expiresAt, err := svc.VendorLogin("hanbit", "test-vendor-pass")
	if err != nil {
		t.Fatalf("vendor login failed: %v", err)
	}
	if account.VendorName != "한빛물류" {
		t.Fatalf("vendor name want 한빛물류 got %s", account.VendorName)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry must be in the future, got %v", expiresAt)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.VendorName != "한빛물류" {
		t.Fatalf("claims vendor want 한빛물류 got %s", claims.VendorName)
	}
	if claims.AdminUnlocked {
		t.Fatal("vendor token must not carry admin unlock")
	}
}

func TestVendorLoginRejectsBadCredentials(t *testing.T) {
	svc, env := setupAuthTest(t)
	seedVendorAccount(t, svc, env, "hanbit", "test-vendor-pass", "한빛물류")

	if _, _, _, err := svc.VendorLogin("hanbit", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.VendorLogin("nobody", "test-vendor-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown account want ErrInvalidCredentials got %v", err)
	}
}

func TestAdminLoginRoundTrip(t *testing.T) {
	svc, env := setupAuthTest(t)
	seedAdminCredential(t, svc, env, models.AdminCredentialGeneral, "test-admin-pass")

	token, _, err := svc.AdminLogin("test-admin-pass")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if !claims.AdminUnlocked {
		t.Fatal("admin token must carry admin unlock")
	}
	if claims.VendorName != "" {
		t.Fatalf("admin token must not carry vendor name, got %s", claims.VendorName)
	}

	if _, _, err := svc.AdminLogin("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong admin password want ErrInvalidCredentials got %v", err)
	}
}

func TestAdminLoginMissingSlot(t *testing.T) {
	svc, _ := setupAuthTest(t)

	if _, _, err := svc.AdminLogin("anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("missing slot want ErrInvalidCredentials got %v", err)
	}
}

func TestDestructivePasswordIsSeparateSlot(t *testing.T) {
	svc, env := setupAuthTest(t)
	seedAdminCredential(t, svc, env, models.AdminCredentialGeneral, "test-admin-pass")
	seedAdminCredential(t, svc, env, models.AdminCredentialDestructive, "test-destroy-pass")

	if err := svc.VerifyDestructivePassword("test-destroy-pass"); err != nil {
		t.Fatalf("destructive password rejected: %v", err)
	}
	// 일반 관리자 비밀번호로는 파괴적 작업을 열 수 없다
	if err := svc.VerifyDestructivePassword("test-admin-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("general password want ErrInvalidCredentials got %v", err)
	}
}

func TestParseJWTRejectsForeignToken(t *testing.T) {
	svc, env := setupAuthTest(t)
	seedAdminCredential(t, svc, env, models.AdminCredentialGeneral, "test-admin-pass")
	token, _, err := svc.AdminLogin("test-admin-pass")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}

	otherCfg := &config.Config{}
	otherCfg.JWT.SecretKey = "another-secret-key-entirely-different"
	other := NewAuthService(otherCfg, nil, nil)
	if _, err := other.ParseJWT(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
	if _, err := svc.ParseJWT("not-a-token"); err == nil {
		t.Fatal("garbage token must be rejected")
	}
}
