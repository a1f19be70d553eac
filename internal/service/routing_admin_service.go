package service

import (
	"strings"

	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/models"
	"github.com/jipgi-intake/internal/repository"
)

// RoutingRuleInput 매칭 규칙 입력
type RoutingRuleInput struct {
	Department string `json:"department"`
	Region     string `json:"region"`
	SalesTeam  string `json:"sales_team"`
	Vendor     string `json:"vendor"`
}

// RoutingAdminService 관리자 데이터 관리 서비스: 매칭 편집, 재매칭, 보관, 삭제.
type RoutingAdminService struct {
	routingRepo repository.RoutingRuleRepository
	requestRepo repository.RequestRepository
	archiveRepo repository.ArchiveRepository
}

// NewRoutingAdminService 데이터 관리 서비스 생성
func NewRoutingAdminService(
	routingRepo repository.RoutingRuleRepository,
	requestRepo repository.RequestRepository,
	archiveRepo repository.ArchiveRepository,
) *RoutingAdminService {
	return &RoutingAdminService{
		routingRepo: routingRepo,
		requestRepo: requestRepo,
		archiveRepo: archiveRepo,
	}
}

// ListRules 매칭 규칙 전체 목록
func (s *RoutingAdminService) ListRules() ([]models.RoutingRule, error) {
	return s.routingRepo.List()
}

// ReplaceAll 매칭 테이블 전체 교체 후, 각 키에 대해 기존 문의 재매칭.
// 반환값은 업체명이 덮어써진 문의 건수 합계.
func (s *RoutingAdminService) ReplaceAll(inputs []RoutingRuleInput) (int64, error) {
	rules := make([]models.RoutingRule, 0, len(inputs))
	for _, input := range inputs {
		rule, err := normalizeRuleInput(input)
		if err != nil {
			return 0, err
		}
		rules = append(rules, rule)
	}

	if err := s.routingRepo.ReplaceAll(rules); err != nil {
		return 0, err
	}

	var reassigned int64
	for _, rule := range rules {
		count, err := s.requestRepo.ReassignVendor(rule.Department, rule.Region, rule.SalesTeam, rule.Vendor)
		if err != nil {
			return reassigned, err
		}
		reassigned += count
	}
	logger.Infow("routing_rules_replaced", "rules", len(rules), "reassigned", reassigned)
	return reassigned, nil
}

// UpsertOne 한 키의 규칙만 교체하고 해당 키의 기존 문의를 재매칭한다.
func (s *RoutingAdminService) UpsertOne(input RoutingRuleInput) (int64, error) {
	rule, err := normalizeRuleInput(input)
	if err != nil {
		return 0, err
	}
	if err := s.routingRepo.UpsertOne(rule.Department, rule.Region, rule.SalesTeam, rule.Vendor); err != nil {
		return 0, err
	}
	count, err := s.requestRepo.ReassignVendor(rule.Department, rule.Region, rule.SalesTeam, rule.Vendor)
	if err != nil {
		return 0, err
	}
	logger.Infow("routing_rule_upserted",
		"department", rule.Department,
		"region", rule.Region,
		"sales_team", rule.SalesTeam,
		"vendor", rule.Vendor,
		"reassigned", count,
	)
	return count, nil
}

// ListRequests 관리자용 문의 목록
func (s *RoutingAdminService) ListRequests(filter repository.RequestListFilter) ([]models.Request, int64, error) {
	return s.requestRepo.List(filter)
}

// DeleteRequest 오등록 문의 삭제. 상태와 무관하게 지운다.
func (s *RoutingAdminService) DeleteRequest(id uint) error {
	affected, err := s.requestRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRequestNotFound
	}
	logger.Infow("request_deleted", "request_id", id)
	return nil
}

// ArchiveCompleted 완료 문의 일괄 보관
func (s *RoutingAdminService) ArchiveCompleted() (int64, error) {
	count, err := s.archiveRepo.SweepCompleted()
	if err != nil {
		return 0, err
	}
	logger.Infow("archive_sweep", "moved", count)
	return count, nil
}

// ListArchive 보관 목록 조회
func (s *RoutingAdminService) ListArchive(filter repository.ArchiveListFilter) ([]models.ArchivedRequest, int64, error) {
	return s.archiveRepo.List(filter)
}

// ClearArchive 보관 데이터 일괄 삭제. 호출 전 파괴 비밀번호 검증이 끝나 있어야 한다.
func (s *RoutingAdminService) ClearArchive() (int64, error) {
	count, err := s.archiveRepo.Clear()
	if err != nil {
		return 0, err
	}
	logger.Warnw("archive_cleared", "removed", count)
	return count, nil
}

func normalizeRuleInput(input RoutingRuleInput) (models.RoutingRule, error) {
	department := strings.TrimSpace(input.Department)
	region := strings.TrimSpace(input.Region)
	salesTeam := strings.TrimSpace(input.SalesTeam)
	vendor := strings.TrimSpace(input.Vendor)
	if err := validateOrgKey(department, region, salesTeam); err != nil {
		return models.RoutingRule{}, err
	}
	if vendor == "" {
		return models.RoutingRule{}, ErrRoutingVendorEmpty
	}
	return models.RoutingRule{
		Department: department,
		Region:     region,
		SalesTeam:  salesTeam,
		Vendor:     vendor,
	}, nil
}
