package public

import (
	"github.com/jipgi-intake/internal/constants"
	"github.com/jipgi-intake/internal/http/handlers/shared"
	"github.com/jipgi-intake/internal/http/response"
	"github.com/jipgi-intake/internal/service"

	"github.com/gin-gonic/gin"
)

// submitRequestBody 문의 접수 요청 본문
type submitRequestBody struct {
	Department  string `json:"department" binding:"required"`
	Region      string `json:"region" binding:"required"`
	SalesTeam   string `json:"sales_team" binding:"required"`
	ContactName string `json:"contact_name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	StoreName   string `json:"store_name" binding:"required"`
	Items       string `json:"items"`
}

// SubmitRequest 집기입고 문의 접수
func (h *Handler) SubmitRequest(c *gin.Context) {
	var body submitRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "요청 본문이 올바르지 않습니다")
		return
	}

	request, err := h.IntakeService.Submit(service.IntakeSubmitInput{
		Department:  body.Department,
		Region:      body.Region,
		SalesTeam:   body.SalesTeam,
		ContactName: body.ContactName,
		Phone:       body.Phone,
		StoreName:   body.StoreName,
		Items:       body.Items,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.SuccessWithMsg(c, "입고 문의가 등록되었습니다", gin.H{
		"id":     request.ID,
		"vendor": request.Vendor,
		"status": request.Status,
	})
}

// ListRequests 접수 현황 목록. 상태별 묶음 + 점포명 검색.
func (h *Handler) ListRequests(c *gin.Context) {
	grouped, err := h.IntakeService.ListGrouped(c.Query("store"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, grouped)
}

// GetFormOptions 접수 폼의 고정 선택지
func (h *Handler) GetFormOptions(c *gin.Context) {
	response.Success(c, gin.H{
		"departments": constants.Departments,
		"regions":     constants.Regions,
		"sales_teams": constants.SalesTeams,
	})
}
