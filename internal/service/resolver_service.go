package service

import (
	"github.com/jipgi-intake/internal/constants"
	"github.com/jipgi-intake/internal/repository"
)

// ResolverService (부문, 지역팀, 영업팀) 키로 담당 업체를 찾는다.
type ResolverService struct {
	routingRepo repository.RoutingRuleRepository
}

// NewResolverService 업체 매칭 서비스 생성
func NewResolverService(routingRepo repository.RoutingRuleRepository) *ResolverService {
	return &ResolverService{routingRepo: routingRepo}
}

// Resolve 키 정확 일치 조회. 규칙이 없으면 미지정을 돌려준다.
// 미지정은 오류가 아니라 정상 값이다 — 매칭 안 된 문의도 유효하게 남는다.
func (s *ResolverService) Resolve(department, region, salesTeam string) (string, error) {
	rule, err := s.routingRepo.Find(department, region, salesTeam)
	if err != nil {
		return "", err
	}
	if rule == nil {
		return constants.VendorUnassigned, nil
	}
	return rule.Vendor, nil
}
