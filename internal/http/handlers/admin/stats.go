package admin

import (
	"github.com/jipgi-intake/internal/http/handlers/shared"
	"github.com/jipgi-intake/internal/http/response"
	"github.com/jipgi-intake/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetCompletionStats 축별 처리율 리포트
func (h *Handler) GetCompletionStats(c *gin.Context) {
	groupBy := c.DefaultQuery("group_by", repository.StatsGroupVendor)
	switch groupBy {
	case repository.StatsGroupVendor, repository.StatsGroupDepartment, repository.StatsGroupRegion:
	default:
		response.BadRequest(c, "group_by 값이 올바르지 않습니다")
		return
	}

	stats, err := h.StatsService.CompletionRates(groupBy)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"group_by": groupBy,
		"stats":    stats,
	})
}
