package service

import (
	"time"

	"github.com/jipgi-intake/internal/config"
	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/models"
	"github.com/jipgi-intake/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims 세션 토큰 클레임. 업체 세션이면 VendorName이 차 있고,
// 관리자 세션이면 AdminUnlocked가 참이다. 전역 상태 대신 매 요청
// 이 클레임이 명시적 세션 컨텍스트 역할을 한다.
type JWTClaims struct {
	VendorName    string `json:"vendor_name,omitempty"`
	AdminUnlocked bool   `json:"admin_unlocked,omitempty"`
	jwt.RegisteredClaims
}

// AuthService 업체/관리자 인증 서비스
type AuthService struct {
	cfg        *config.Config
	vendorRepo repository.VendorAccountRepository
	adminRepo  repository.AdminCredentialRepository
}

// NewAuthService 인증 서비스 생성
func NewAuthService(
	cfg *config.Config,
	vendorRepo repository.VendorAccountRepository,
	adminRepo repository.AdminCredentialRepository,
) *AuthService {
	return &AuthService{
		cfg:        cfg,
		vendorRepo: vendorRepo,
		adminRepo:  adminRepo,
	}
}

// HashPassword bcrypt 해시 생성
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 비밀번호 검증
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// VendorLogin 업체 계정 로그인
func (s *AuthService) VendorLogin(username, password string) (*models.VendorAccount, string, time.Time, error) {
	account, err := s.vendorRepo.GetByUsername(username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if account == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := s.VerifyPassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.generateJWT(JWTClaims{VendorName: account.VendorName})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	logger.Infow("vendor_login", "username", username, "vendor", account.VendorName)
	return account, token, expiresAt, nil
}

// AdminLogin 관리자 공용 비밀번호 로그인
func (s *AuthService) AdminLogin(password string) (string, time.Time, error) {
	if err := s.verifyCredentialSlot(models.AdminCredentialGeneral, password); err != nil {
		return "", time.Time{}, err
	}
	token, expiresAt, err := s.generateJWT(JWTClaims{AdminUnlocked: true})
	if err != nil {
		return "", time.Time{}, err
	}
	logger.Infow("admin_login")
	return token, expiresAt, nil
}

// VerifyDestructivePassword 파괴적 작업(보관 일괄 삭제) 전용 비밀번호 검증
func (s *AuthService) VerifyDestructivePassword(password string) error {
	return s.verifyCredentialSlot(models.AdminCredentialDestructive, password)
}

func (s *AuthService) verifyCredentialSlot(name, password string) error {
	cred, err := s.adminRepo.GetByName(name)
	if err != nil {
		return err
	}
	if cred == nil {
		return ErrInvalidCredentials
	}
	if err := s.VerifyPassword(cred.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *AuthService) generateJWT(claims JWTClaims) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT 세션 토큰 해석
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidCredentials
}
