package repository

import (
	"testing"

	"github.com/jipgi-intake/internal/constants"
	"github.com/jipgi-intake/internal/models"
)

func setupStatsRepositoryTest(t *testing.T) (*GormStatsRepository, *GormRequestRepository) {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.Request{}); err != nil {
		t.Fatalf("migrate requests failed: %v", err)
	}
	return NewStatsRepository(db), NewRequestRepository(db)
}

func TestCompletionByVendor(t *testing.T) {
	statsRepo, requestRepo := setupStatsRepositoryTest(t)
	createRequest(t, requestRepo, "한빛물류", "행복", constants.RequestStatusCompleted)
	createRequest(t, requestRepo, "한빛물류", "중앙", constants.RequestStatusSubmitted)
	createRequest(t, requestRepo, "대성설비", "강변", constants.RequestStatusCompleted)

	rows, err := statsRepo.CompletionByGroup(StatsGroupVendor)
	if err != nil {
		t.Fatalf("completion by vendor failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows want 2 got %d", len(rows))
	}

	byVendor := map[string]CompletionRow{}
	for _, row := range rows {
		byVendor[row.GroupValue] = row
	}
	if row := byVendor["한빛물류"]; row.Total != 2 || row.Completed != 1 {
		t.Fatalf("한빛물류 want total=2 completed=1 got %+v", row)
	}
	if row := byVendor["대성설비"]; row.Total != 1 || row.Completed != 1 {
		t.Fatalf("대성설비 want total=1 completed=1 got %+v", row)
	}
}

func TestCompletionGroupWhitelist(t *testing.T) {
	statsRepo, _ := setupStatsRepositoryTest(t)

	for _, group := range []string{StatsGroupVendor, StatsGroupDepartment, StatsGroupRegion} {
		if _, err := statsRepo.CompletionByGroup(group); err != nil {
			t.Fatalf("group %s must be allowed: %v", group, err)
		}
	}

	// 컬럼명 직접 주입은 허용 목록에서 걸러져야 한다
	if _, err := statsRepo.CompletionByGroup("phone; drop table requests"); err == nil {
		t.Fatal("unlisted group must be rejected")
	}
	if _, err := statsRepo.CompletionByGroup("sales_team"); err == nil {
		t.Fatal("sales_team is not a stats axis")
	}
}
