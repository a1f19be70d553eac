package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/jipgi-intake/internal/app"
	"github.com/jipgi-intake/internal/config"
	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// 설정 로드
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) {
			stdLog.Fatalf("JWT secret이 기본값이거나 너무 짧습니다. 운영 환경에서는 강한 난수 키를 설정하세요")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) {
		stdLog.Printf("경고: JWT secret이 기본값이거나 너무 짧습니다. 운영 환경에서는 교체를 권장합니다")
	}

	// 데이터베이스 초기화
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("데이터베이스 초기화 실패: %v", err)
	}

	// 버전 관리형 마이그레이션 적용
	if err := models.Migrate(); err != nil {
		stdLog.Fatalf("데이터베이스 마이그레이션 실패: %v", err)
	}

	// 관리자 비밀번호 슬롯 초기화. 값이 비어 있으면 건너뛴다.
	if err := models.InitAdminCredentials(cfg.Admin.Password, cfg.Admin.DestructivePassword); err != nil {
		stdLog.Printf("경고: 관리자 자격 초기화 실패: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "기동 모드: all (기본), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("서비스 실행 실패: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + ansiBold + "집기 입고 문의 접수 API" + ansiReset)
	fmt.Println(ansiDim + "----------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
