package models

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openMigrateTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	return db
}

func TestMigrateCreatesAllTables(t *testing.T) {
	db := openMigrateTestDB(t)

	if err := MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	for _, table := range []string{
		"requests", "routing_rules", "archived_requests",
		"vendor_accounts", "admin_credentials", "schema_migrations",
	} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %s missing after migration", table)
		}
	}

	var applied int64
	if err := db.Model(&SchemaMigration{}).Count(&applied).Error; err != nil {
		t.Fatalf("count applied migrations failed: %v", err)
	}
	if applied != int64(len(migrations())) {
		t.Fatalf("applied want %d got %d", len(migrations()), applied)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openMigrateTestDB(t)

	if err := MigrateWith(db); err != nil {
		t.Fatalf("first migrate failed: %v", err)
	}
	if err := MigrateWith(db); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	var applied int64
	if err := db.Model(&SchemaMigration{}).Count(&applied).Error; err != nil {
		t.Fatalf("count applied migrations failed: %v", err)
	}
	if applied != int64(len(migrations())) {
		t.Fatalf("rerun must not duplicate entries, want %d got %d", len(migrations()), applied)
	}
}

func TestMigrateBackfillsLegacyStatus(t *testing.T) {
	db := openMigrateTestDB(t)

	// 상태 라벨 없이 날짜 필드만 있던 구버전 데이터를 재현한다:
	// 앞 두 단계만 적용하고 행을 심은 뒤 나머지 마이그레이션을 돌린다.
	if err := db.AutoMigrate(&SchemaMigration{}, &Request{}, &RoutingRule{}); err != nil {
		t.Fatalf("prepare legacy schema failed: %v", err)
	}
	for _, id := range []string{"001_create_requests", "002_create_routing_rules"} {
		if err := db.Create(&SchemaMigration{ID: id}).Error; err != nil {
			t.Fatalf("mark %s applied failed: %v", id, err)
		}
	}

	scheduled := "2026-09-01"
	completed := "2026-09-02"
	legacy := []Request{
		{Department: "1부문", Region: "1지역", SalesTeam: "1팀", ContactName: "a", Phone: "1", StoreName: "가", Vendor: "v"},
		{Department: "1부문", Region: "1지역", SalesTeam: "1팀", ContactName: "b", Phone: "2", StoreName: "나", Vendor: "v", ScheduledDate: &scheduled},
		{Department: "1부문", Region: "1지역", SalesTeam: "1팀", ContactName: "c", Phone: "3", StoreName: "다", Vendor: "v", ScheduledDate: &scheduled, CompletedDate: &completed},
	}
	for i := range legacy {
		if err := db.Create(&legacy[i]).Error; err != nil {
			t.Fatalf("seed legacy row failed: %v", err)
		}
		if err := db.Model(&Request{}).Where("id = ?", legacy[i].ID).Update("status", "").Error; err != nil {
			t.Fatalf("blank legacy status failed: %v", err)
		}
	}

	if err := MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	wantStatus := []string{"submitted", "scheduled", "completed"}
	for i, row := range legacy {
		var got Request
		if err := db.First(&got, row.ID).Error; err != nil {
			t.Fatalf("reload row %d failed: %v", i, err)
		}
		if got.Status != wantStatus[i] {
			t.Fatalf("row %d status want %s got %s", i, wantStatus[i], got.Status)
		}
	}
}

func TestDerivedStatus(t *testing.T) {
	scheduled := "2026-09-01"
	completed := "2026-09-02"

	r := Request{}
	if got := r.DerivedStatus(); got != "submitted" {
		t.Fatalf("bare request want submitted got %s", got)
	}
	r.ScheduledDate = &scheduled
	if got := r.DerivedStatus(); got != "scheduled" {
		t.Fatalf("dated request want scheduled got %s", got)
	}
	r.CompletedDate = &completed
	if got := r.DerivedStatus(); got != "completed" {
		t.Fatalf("completed request want completed got %s", got)
	}
}
