package service

import (
	"strings"

	"github.com/jipgi-intake/internal/constants"
	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/models"
	"github.com/jipgi-intake/internal/repository"
)

// IntakeSubmitInput 문의 접수 입력
type IntakeSubmitInput struct {
	Department  string
	Region      string
	SalesTeam   string
	ContactName string
	Phone       string
	StoreName   string
	Items       string
}

// IntakeService 집기입고 문의 접수 서비스
type IntakeService struct {
	requestRepo repository.RequestRepository
	resolver    *ResolverService
	strict      bool
}

// NewIntakeService 접수 서비스 생성
func NewIntakeService(requestRepo repository.RequestRepository, resolver *ResolverService, strict bool) *IntakeService {
	return &IntakeService{
		requestRepo: requestRepo,
		resolver:    resolver,
		strict:      strict,
	}
}

// Submit 문의 접수. 연락처/점포명을 정규화하고 업체를 매칭해 찍은 뒤
// submitted 상태로 생성한다. 검증 실패 시 레코드는 만들지 않는다.
func (s *IntakeService) Submit(input IntakeSubmitInput) (*models.Request, error) {
	department := strings.TrimSpace(input.Department)
	region := strings.TrimSpace(input.Region)
	salesTeam := strings.TrimSpace(input.SalesTeam)
	if err := validateOrgKey(department, region, salesTeam); err != nil {
		return nil, err
	}

	contactName := strings.TrimSpace(input.ContactName)
	if contactName == "" {
		return nil, ErrContactNameEmpty
	}
	phone, err := normalizePhone(input.Phone, s.strict)
	if err != nil {
		return nil, err
	}
	storeName, err := normalizeStoreName(input.StoreName, s.strict)
	if err != nil {
		return nil, err
	}

	// 업체는 접수 시점에 한 번 매칭한다. 이후에는 관리자의 매칭 편집만이
	// 업체 필드를 다시 쓴다.
	vendor, err := s.resolver.Resolve(department, region, salesTeam)
	if err != nil {
		return nil, err
	}

	request := &models.Request{
		Department:  department,
		Region:      region,
		SalesTeam:   salesTeam,
		ContactName: contactName,
		Phone:       phone,
		StoreName:   storeName,
		Items:       strings.TrimSpace(input.Items),
		Vendor:      vendor,
		Status:      constants.RequestStatusSubmitted,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}

	logger.Infow("intake_created",
		"request_id", request.ID,
		"department", department,
		"region", region,
		"sales_team", salesTeam,
		"store_name", storeName,
		"vendor", vendor,
	)
	return request, nil
}

// GroupedRequests 상태별로 묶은 문의 현황
type GroupedRequests struct {
	Submitted []models.Request `json:"submitted"` // 문의 등록됨
	Scheduled []models.Request `json:"scheduled"` // 답변 등록 완료
	Completed []models.Request `json:"completed"` // 입고 완료
}

// ListGrouped 접수 현황 화면용 상태별 목록. 점포명 부분 검색을 지원한다.
func (s *IntakeService) ListGrouped(storeName string) (*GroupedRequests, error) {
	grouped := &GroupedRequests{}
	for _, group := range []struct {
		status string
		dest   *[]models.Request
	}{
		{constants.RequestStatusSubmitted, &grouped.Submitted},
		{constants.RequestStatusScheduled, &grouped.Scheduled},
		{constants.RequestStatusCompleted, &grouped.Completed},
	} {
		requests, _, err := s.requestRepo.List(repository.RequestListFilter{
			Status:    group.status,
			StoreName: strings.TrimSpace(storeName),
		})
		if err != nil {
			return nil, err
		}
		*group.dest = requests
	}
	return grouped, nil
}
