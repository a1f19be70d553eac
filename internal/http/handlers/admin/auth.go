package admin

import (
	"github.com/jipgi-intake/internal/http/handlers/shared"
	"github.com/jipgi-intake/internal/http/response"

	"github.com/gin-gonic/gin"
)

// loginBody 관리자 로그인 요청 본문. 공용 비밀번호 하나로 잠금을 푼다.
type loginBody struct {
	Password string `json:"password" binding:"required"`
}

// Login 관리자 로그인
func (h *Handler) Login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "요청 본문이 올바르지 않습니다")
		return
	}

	token, expiresAt, err := h.AuthService.AdminLogin(body.Password)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.SuccessWithMsg(c, "접근 허용", gin.H{
		"token":      token,
		"expires_at": expiresAt,
	})
}
