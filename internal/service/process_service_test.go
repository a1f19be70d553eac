package service

import (
	"errors"
	"testing"
	"time"

	"github.com/jipgi-intake/internal/constants"
	"github.com/jipgi-intake/internal/models"
	"github.com/jipgi-intake/internal/repository"
)

func submitRequest(t *testing.T, env *serviceTestEnv, store string) *models.Request {
	t.Helper()
	request, err := env.intakeService(false).Submit(IntakeSubmitInput{
		Department: "1부문", Region: "1지역", SalesTeam: "1팀",
		ContactName: "김영수", Phone: "01012345678", StoreName: store,
	})
	if err != nil {
		t.Fatalf("submit %s failed: %v", store, err)
	}
	return request
}

func TestScheduleSetsDateAndStatus(t *testing.T) {
	env := setupServiceTest(t)
	env.seedRule(t, "1부문", "1지역", "1팀", "한빛물류")
	request := submitRequest(t, env, "행복")
	svc := env.processService()

	got, err := svc.Schedule("한빛물류", ScheduleInput{
		RequestID:     request.ID,
		ScheduledDate: "2026-09-10",
	})
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if got.Status != constants.RequestStatusScheduled {
		t.Fatalf("status want scheduled got %s", got.Status)
	}
	if got.ScheduledDate == nil || *got.ScheduledDate != "2026-09-10" {
		t.Fatalf("scheduled date want 2026-09-10 got %v", got.ScheduledDate)
	}
	if got.CompletedDate != nil {
		t.Fatalf("completed date must stay empty, got %v", *got.CompletedDate)
	}
}

func TestScheduleIsIdempotent(t *testing.T) {
	env := setupServiceTest(t)
	env.seedRule(t, "1부문", "1지역", "1팀", "한빛물류")
	request := submitRequest(t, env, "행복")
	svc := env.processService()

	input := ScheduleInput{RequestID: request.ID, ScheduledDate: "2026-09-10"}
	if _, err := svc.Schedule("한빛물류", input); err != nil {
		t.Fatalf("first schedule failed: %v", err)
	}
	got, err := svc.Schedule("한빛물류", input)
	if err != nil {
		t.Fatalf("repeat schedule failed: %v", err)
	}
	if got.Status != constants.RequestStatusScheduled || *got.ScheduledDate != "2026-09-10" {
		t.Fatalf("repeat schedule must not change outcome: %+v", got)
	}
}

func TestScheduleMarkComplete(t *testing.T) {
	env := setupServiceTest(t)
	env.seedRule(t, "1부문", "1지역", "1팀", "한빛물류")
	request := submitRequest(t, env, "행복")
	svc := env.processService()

	// submitted에서 한 번에 완료 처리도 허용한다
	got, err := svc.Schedule("한빛물류", ScheduleInput{
		RequestID:     request.ID,
		ScheduledDate: "2026-09-10",
		MarkComplete:  true,
	})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if got.Status != constants.RequestStatusCompleted {
		t.Fatalf("status want completed got %s", got.Status)
	}
	today := time.Now().Format(constants.DateLayout)
	if got.CompletedDate == nil || *got.CompletedDate != today {
		t.Fatalf("completed date want %s got %v", today, got.CompletedDate)
	}
}

func TestScheduleRevertClearsCompletedDate(t *testing.T) {
	env := setupServiceTest(t)
	env.seedRule(t, "1부문", "1지역", "1팀", "한빛물류")
	request := submitRequest(t, env, "행복")
	svc := env.processService()

	if _, err := svc.Schedule("한빛물류", ScheduleInput{
		RequestID: request.ID, ScheduledDate: "2026-09-10", MarkComplete: true,
	}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	got, err := svc.Schedule("한빛물류", ScheduleInput{
		RequestID: request.ID, ScheduledDate: "2026-09-20",
	})
	if err != nil {
		t.Fatalf("revert failed: %v", err)
	}
	if got.Status != constants.RequestStatusScheduled {
		t.Fatalf("reverted status want scheduled got %s", got.Status)
	}
	if got.CompletedDate != nil {
		t.Fatalf("revert must clear completed date, got %v", *got.CompletedDate)
	}

	var stored models.Request
	if err := env.db.First(&stored, request.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if stored.CompletedDate != nil {
		t.Fatalf("stored completed date must be NULL, got %v", *stored.CompletedDate)
	}
	if stored.ScheduledDate == nil || *stored.ScheduledDate != "2026-09-20" {
		t.Fatalf("stored scheduled date want 2026-09-20 got %v", stored.ScheduledDate)
	}
}

func TestScheduleRejectsOtherVendor(t *testing.T) {
	env := setupServiceTest(t)
	env.seedRule(t, "1부문", "1지역", "1팀", "한빛물류")
	request := submitRequest(t, env, "행복")
	svc := env.processService()

	if _, err := svc.Schedule("대성설비", ScheduleInput{
		RequestID: request.ID, ScheduledDate: "2026-09-10",
	}); !errors.Is(err, ErrForbiddenVendor) {
		t.Fatalf("other vendor want ErrForbiddenVendor got %v", err)
	}

	var stored models.Request
	if err := env.db.First(&stored, request.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if stored.Status != constants.RequestStatusSubmitted || stored.ScheduledDate != nil {
		t.Fatalf("rejected schedule must not modify record: %+v", stored)
	}
}

func TestScheduleBadInput(t *testing.T) {
	env := setupServiceTest(t)
	svc := env.processService()

	if _, err := svc.Schedule("한빛물류", ScheduleInput{
		RequestID: 1, ScheduledDate: "2026/09/10",
	}); !errors.Is(err, ErrScheduledDateInvalid) {
		t.Fatalf("bad date want ErrScheduledDateInvalid got %v", err)
	}
	if _, err := svc.Schedule("한빛물류", ScheduleInput{
		RequestID: 999, ScheduledDate: "2026-09-10",
	}); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("missing request want ErrRequestNotFound got %v", err)
	}
}

func TestListPendingHidesCompleted(t *testing.T) {
	env := setupServiceTest(t)
	env.seedRule(t, "1부문", "1지역", "1팀", "한빛물류")
	first := submitRequest(t, env, "행복")
	submitRequest(t, env, "중앙")
	svc := env.processService()

	if _, err := svc.Schedule("한빛물류", ScheduleInput{
		RequestID: first.ID, ScheduledDate: "2026-09-10", MarkComplete: true,
	}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	pending, err := svc.ListPending("한빛물류")
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].StoreName != "중앙" {
		t.Fatalf("pending want only 중앙 got %+v", pending)
	}
}

// 접수 -> 예정 -> 완료 -> 보관까지 한 바퀴 도는 시나리오
func TestIntakeLifecycle(t *testing.T) {
	env := setupServiceTest(t)
	env.seedRule(t, "1부문", "1지역", "1팀", "한빛물류")

	request, err := env.intakeService(false).Submit(IntakeSubmitInput{
		Department: "1부문", Region: "1지역", SalesTeam: "1팀",
		ContactName: "김영수", Phone: "010-1234-5678", StoreName: "행복점",
		Items: "냉장 쇼케이스 1대, 진열대 2개",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	process := env.processService()
	if _, err := process.Schedule("한빛물류", ScheduleInput{
		RequestID: request.ID, ScheduledDate: "2026-09-10",
	}); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if _, err := process.Schedule("한빛물류", ScheduleInput{
		RequestID: request.ID, ScheduledDate: "2026-09-10", MarkComplete: true,
	}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	admin := env.routingAdminService()
	moved, err := admin.ArchiveCompleted()
	if err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	if moved != 1 {
		t.Fatalf("archived want 1 got %d", moved)
	}

	pending, err := process.ListPending("한빛물류")
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending after archive want 0 got %d", len(pending))
	}

	archived, total, err := admin.ListArchive(repository.ArchiveListFilter{})
	if err != nil {
		t.Fatalf("list archive failed: %v", err)
	}
	if total != 1 || archived[0].StoreName != "행복" {
		t.Fatalf("archive want 행복 got total=%d", total)
	}
}
