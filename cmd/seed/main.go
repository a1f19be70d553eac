package main

import (
	"fmt"
	"os"

	"github.com/jipgi-intake/internal/config"
	"github.com/jipgi-intake/internal/constants"
	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("데이터베이스 연결 실패: %v", err)
	}

	if err := models.Migrate(); err != nil {
		stdLog.Fatalf("데이터베이스 마이그레이션 실패: %v", err)
	}

	// 매칭 규칙
	rules := []models.RoutingRule{
		{Department: "1부문", Region: "1지역", SalesTeam: "1팀", Vendor: "한빛물류"},
		{Department: "1부문", Region: "1지역", SalesTeam: "2팀", Vendor: "한빛물류"},
		{Department: "1부문", Region: "2지역", SalesTeam: "1팀", Vendor: "대성설비"},
		{Department: "2부문", Region: "3지역", SalesTeam: "4팀", Vendor: "대성설비"},
		{Department: "3부문", Region: "5지역", SalesTeam: "7팀", Vendor: "서울집기"},
	}

	for _, rule := range rules {
		var existing models.RoutingRule
		err := models.DB.Where("department = ? AND region = ? AND sales_team = ?",
			rule.Department, rule.Region, rule.SalesTeam).First(&existing).Error
		if err != nil {
			if err := models.DB.Create(&rule).Error; err != nil {
				stdLog.Printf("매칭 규칙 생성 실패 (%s/%s/%s): %v", rule.Department, rule.Region, rule.SalesTeam, err)
			} else {
				stdLog.Printf("매칭 규칙 생성: %s/%s/%s -> %s", rule.Department, rule.Region, rule.SalesTeam, rule.Vendor)
			}
			continue
		}
		if existing.Vendor != rule.Vendor {
			existing.Vendor = rule.Vendor
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("매칭 규칙 갱신 실패 (%s/%s/%s): %v", rule.Department, rule.Region, rule.SalesTeam, err)
			} else {
				stdLog.Printf("매칭 규칙 갱신: %s/%s/%s -> %s", rule.Department, rule.Region, rule.SalesTeam, rule.Vendor)
			}
		}
	}

	// 업체 계정. 비밀번호는 환경 변수로만 받는다.
	vendorPassword := os.Getenv("SEED_VENDOR_PASSWORD")
	if vendorPassword == "" {
		stdLog.Printf("SEED_VENDOR_PASSWORD 미설정, 업체 계정 시드를 건너뜁니다")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(vendorPassword), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Fatalf("비밀번호 해시 실패: %v", err)
		}
		accounts := []models.VendorAccount{
			{Username: "hanbit", VendorName: "한빛물류", PasswordHash: string(hash)},
			{Username: "daesung", VendorName: "대성설비", PasswordHash: string(hash)},
			{Username: "seouljipgi", VendorName: "서울집기", PasswordHash: string(hash)},
		}
		for _, account := range accounts {
			var existing models.VendorAccount
			if err := models.DB.Where("username = ?", account.Username).First(&existing).Error; err != nil {
				if err := models.DB.Create(&account).Error; err != nil {
					stdLog.Printf("업체 계정 생성 실패 (%s): %v", account.Username, err)
				} else {
					stdLog.Printf("업체 계정 생성: %s (%s)", account.Username, account.VendorName)
				}
			} else {
				stdLog.Printf("업체 계정 존재: %s", account.Username)
			}
		}
	}

	// 예시 문의
	requests := []models.Request{
		{
			Department:  "1부문",
			Region:      "1지역",
			SalesTeam:   "1팀",
			ContactName: "김영수",
			Phone:       "01012345678",
			StoreName:   "행복",
			Items:       "냉장 쇼케이스 1대, 진열대 2개",
			Vendor:      "한빛물류",
			Status:      constants.RequestStatusSubmitted,
		},
		{
			Department:  "2부문",
			Region:      "3지역",
			SalesTeam:   "4팀",
			ContactName: "박지연",
			Phone:       "01087654321",
			StoreName:   "중앙",
			Items:       "온장고 1대",
			Vendor:      "대성설비",
			Status:      constants.RequestStatusSubmitted,
		},
		{
			Department:  "6부문",
			Region:      "6지역",
			SalesTeam:   "9팀",
			ContactName: "이민호",
			Phone:       "01055556666",
			StoreName:   "강변",
			Items:       "아이스크림 냉동고 2대",
			Vendor:      constants.VendorUnassigned,
			Status:      constants.RequestStatusSubmitted,
		},
	}

	for _, request := range requests {
		var count int64
		models.DB.Model(&models.Request{}).
			Where("store_name = ? AND phone = ?", request.StoreName, request.Phone).
			Count(&count)
		if count > 0 {
			stdLog.Printf("예시 문의 존재: %s", request.StoreName)
			continue
		}
		if err := models.DB.Create(&request).Error; err != nil {
			stdLog.Printf("예시 문의 생성 실패 (%s): %v", request.StoreName, err)
		} else {
			stdLog.Printf("예시 문의 생성: %s -> %s", request.StoreName, request.Vendor)
		}
	}

	fmt.Println("\n시드 완료")
	fmt.Println("- 매칭 규칙 5건")
	fmt.Println("- 업체 계정 3건 (SEED_VENDOR_PASSWORD 설정 시)")
	fmt.Println("- 예시 문의 3건")
}
