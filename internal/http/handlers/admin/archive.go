package admin

import (
	"github.com/jipgi-intake/internal/http/handlers/shared"
	"github.com/jipgi-intake/internal/http/response"
	"github.com/jipgi-intake/internal/repository"

	"github.com/gin-gonic/gin"
)

// SweepArchive 완료 문의 일괄 보관
func (h *Handler) SweepArchive(c *gin.Context) {
	count, err := h.RoutingAdminService.ArchiveCompleted()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "완료 문의를 보관했습니다", gin.H{"moved": count})
}

// ListArchive 보관 목록 조회
func (h *Handler) ListArchive(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.ArchiveListFilter{
		Page:      page,
		PageSize:  pageSize,
		Vendor:    c.Query("vendor"),
		StoreName: c.Query("store"),
	}

	archived, total, err := h.RoutingAdminService.ListArchive(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, archived, shared.BuildPagination(page, pageSize, total))
}

// clearArchiveBody 보관 일괄 삭제 요청 본문. 별도의 파괴 비밀번호를 요구한다.
type clearArchiveBody struct {
	DestructivePassword string `json:"destructive_password" binding:"required"`
}

// ClearArchive 보관 데이터 일괄 삭제
func (h *Handler) ClearArchive(c *gin.Context) {
	var body clearArchiveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "요청 본문이 올바르지 않습니다")
		return
	}
	if err := h.AuthService.VerifyDestructivePassword(body.DestructivePassword); err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	count, err := h.RoutingAdminService.ClearArchive()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "보관 데이터를 비웠습니다", gin.H{"removed": count})
}
