package models

import (
	"fmt"
	"time"

	"github.com/jipgi-intake/internal/logger"

	"gorm.io/gorm"
)

// SchemaMigration 적용된 마이그레이션 기록
type SchemaMigration struct {
	ID        string    `gorm:"primarykey;type:varchar(64)"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName 테이블명 지정
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

type migration struct {
	id string
	up func(db *gorm.DB) error
}

// 누적 이력 순서대로 나열한다. 각 단계는 멱등이어야 한다.
// 구버전 데이터 파일(완료일 컬럼이 없거나 보관 테이블이 없는 경우)도
// 순서대로 따라오면 같은 스키마에 도달한다.
func migrations() []migration {
	return []migration{
		{
			id: "001_create_requests",
			up: func(db *gorm.DB) error {
				return db.AutoMigrate(&Request{})
			},
		},
		{
			id: "002_create_routing_rules",
			up: func(db *gorm.DB) error {
				return db.AutoMigrate(&RoutingRule{})
			},
		},
		{
			id: "003_backfill_request_status",
			up: func(db *gorm.DB) error {
				// 날짜 필드만 있고 상태 라벨이 비어 있는 구버전 행 보정
				if err := db.Model(&Request{}).
					Where("status = '' OR status IS NULL").
					Where("completed_date IS NOT NULL").
					Update("status", "completed").Error; err != nil {
					return err
				}
				if err := db.Model(&Request{}).
					Where("status = '' OR status IS NULL").
					Where("scheduled_date IS NOT NULL").
					Update("status", "scheduled").Error; err != nil {
					return err
				}
				return db.Model(&Request{}).
					Where("status = '' OR status IS NULL").
					Update("status", "submitted").Error
			},
		},
		{
			id: "004_create_archived_requests",
			up: func(db *gorm.DB) error {
				return db.AutoMigrate(&ArchivedRequest{})
			},
		},
		{
			id: "005_create_vendor_accounts",
			up: func(db *gorm.DB) error {
				return db.AutoMigrate(&VendorAccount{})
			},
		},
		{
			id: "006_create_admin_credentials",
			up: func(db *gorm.DB) error {
				return db.AutoMigrate(&AdminCredential{})
			},
		},
	}
}

// Migrate 기동 시 1회 실행하는 순차 마이그레이션.
func Migrate() error {
	return MigrateWith(DB)
}

// MigrateWith 지정한 연결에 마이그레이션 적용
func MigrateWith(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("migrate schema_migrations: %w", err)
	}

	for _, m := range migrations() {
		var count int64
		if err := db.Model(&SchemaMigration{}).Where("id = ?", m.id).Count(&count).Error; err != nil {
			return fmt.Errorf("check migration %s: %w", m.id, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.up(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{ID: m.id, AppliedAt: time.Now()}).Error
		}); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.id, err)
		}
		logger.Infow("migration_applied", "id", m.id)
	}
	return nil
}
