package admin

import (
	"github.com/jipgi-intake/internal/http/handlers/shared"
	"github.com/jipgi-intake/internal/http/response"
	"github.com/jipgi-intake/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListRequests 관리자용 문의 목록 (필터 + 분페이지)
func (h *Handler) ListRequests(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.RequestListFilter{
		Page:       page,
		PageSize:   pageSize,
		Status:     c.Query("status"),
		Vendor:     c.Query("vendor"),
		Department: c.Query("department"),
		Region:     c.Query("region"),
		SalesTeam:  c.Query("sales_team"),
		StoreName:  c.Query("store"),
	}

	requests, total, err := h.RoutingAdminService.ListRequests(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, requests, shared.BuildPagination(page, pageSize, total))
}

// DeleteRequest 오등록 문의 삭제
func (h *Handler) DeleteRequest(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.RoutingAdminService.DeleteRequest(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "삭제되었습니다", gin.H{"id": id})
}
