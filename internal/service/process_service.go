package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/jipgi-intake/internal/constants"
	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/models"
	"github.com/jipgi-intake/internal/repository"
)

// ScheduleInput 입고 처리 입력
type ScheduleInput struct {
	RequestID     uint
	ScheduledDate string
	MarkComplete  bool
}

// ProcessService 업체의 입고 처리(예정/완료 전환) 서비스
type ProcessService struct {
	requestRepo repository.RequestRepository
	notify      *NotifyService
}

// NewProcessService 처리 서비스 생성
func NewProcessService(requestRepo repository.RequestRepository, notify *NotifyService) *ProcessService {
	return &ProcessService{
		requestRepo: requestRepo,
		notify:      notify,
	}
}

// ListPending 해당 업체의 미완료 문의 목록
func (s *ProcessService) ListPending(vendor string) ([]models.Request, error) {
	return s.requestRepo.ListPendingByVendor(vendor)
}

// Schedule 예정입고일을 기록하고, 완료 체크 여부에 따라 scheduled 또는
// completed로 전환한다. 같은 입력으로 재호출해도 결과는 같고, 완료 해제로
// completed에서 scheduled로 되돌리는 것도 허용된다(완료일은 지운다).
func (s *ProcessService) Schedule(vendor string, input ScheduleInput) (*models.Request, error) {
	date := strings.TrimSpace(input.ScheduledDate)
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return nil, ErrScheduledDateInvalid
	}

	request, err := s.requestRepo.GetByID(input.RequestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	// 처리 권한은 레코드에 찍힌 업체명과 로그인 업체의 일치로만 판정한다.
	if request.Vendor != vendor {
		return nil, ErrForbiddenVendor
	}

	status := constants.RequestStatusScheduled
	var completedDate *string
	if input.MarkComplete {
		status = constants.RequestStatusCompleted
		today := time.Now().Format(constants.DateLayout)
		completedDate = &today
	} else if request.IsCompleted() {
		// 완료 해제 되돌림. 감사 기록은 없고 경고 로그가 유일한 흔적이다.
		logger.Warnw("schedule_completion_reverted",
			"request_id", request.ID,
			"vendor", vendor,
			"store_name", request.StoreName,
		)
	}

	if err := s.requestRepo.UpdateSchedule(request.ID, status, &date, completedDate); err != nil {
		return nil, err
	}
	request.Status = status
	request.ScheduledDate = &date
	request.CompletedDate = completedDate

	s.notify.Dispatch(request.ID, scheduleMessage(request, input.MarkComplete))

	logger.Infow("schedule_applied",
		"request_id", request.ID,
		"vendor", vendor,
		"status", status,
		"scheduled_date", date,
	)
	return request, nil
}

// scheduleMessage 전환별 알림 문구
func scheduleMessage(request *models.Request, completed bool) string {
	if completed {
		return fmt.Sprintf("[입고완료] %s 입고 완료", request.StoreName)
	}
	date := ""
	if request.ScheduledDate != nil {
		date = *request.ScheduledDate
	}
	return fmt.Sprintf("[입고예정] %s 예정입고일: %s", request.StoreName, date)
}
