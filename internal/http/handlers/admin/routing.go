package admin

import (
	"github.com/jipgi-intake/internal/http/handlers/shared"
	"github.com/jipgi-intake/internal/http/response"
	"github.com/jipgi-intake/internal/service"

	"github.com/gin-gonic/gin"
)

// ListRoutingRules 업체 매칭 테이블 조회
func (h *Handler) ListRoutingRules(c *gin.Context) {
	rules, err := h.RoutingAdminService.ListRules()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, rules)
}

// replaceRulesBody 매칭 테이블 전체 교체 요청 본문
type replaceRulesBody struct {
	Rules []service.RoutingRuleInput `json:"rules"`
}

// ReplaceRoutingRules 매칭 테이블 전체 교체 + 기존 문의 재매칭
func (h *Handler) ReplaceRoutingRules(c *gin.Context) {
	var body replaceRulesBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "요청 본문이 올바르지 않습니다")
		return
	}

	reassigned, err := h.RoutingAdminService.ReplaceAll(body.Rules)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "매칭 정보가 저장되었습니다", gin.H{
		"rules":      len(body.Rules),
		"reassigned": reassigned,
	})
}

// UpsertRoutingRule 단일 키 매칭 편집 + 해당 키 문의 재매칭
func (h *Handler) UpsertRoutingRule(c *gin.Context) {
	var body service.RoutingRuleInput
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "요청 본문이 올바르지 않습니다")
		return
	}

	reassigned, err := h.RoutingAdminService.UpsertOne(body)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "매칭 정보가 저장되었습니다", gin.H{
		"reassigned": reassigned,
	})
}
