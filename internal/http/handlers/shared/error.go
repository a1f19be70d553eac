package shared

import (
	"errors"

	"github.com/jipgi-intake/internal/http/response"
	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog request_id가 달린 로거 반환
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 오류 응답 + 원인 로그
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondServiceError 서비스 오류를 업무 코드로 변환해 응답한다.
// 검증 실패는 메시지를 그대로 제출자에게 돌려주고, 그 외는 일반화한다.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrForbiddenVendor):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrRequestNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrDepartmentInvalid),
		errors.Is(err, service.ErrRegionInvalid),
		errors.Is(err, service.ErrSalesTeamInvalid),
		errors.Is(err, service.ErrContactNameEmpty),
		errors.Is(err, service.ErrStoreNameEmpty),
		errors.Is(err, service.ErrPhoneEmpty),
		errors.Is(err, service.ErrPhoneNotDigits),
		errors.Is(err, service.ErrStoreNameDesignator),
		errors.Is(err, service.ErrScheduledDateInvalid),
		errors.Is(err, service.ErrRoutingVendorEmpty):
		response.BadRequest(c, err.Error())
	default:
		RespondError(c, response.CodeInternal, "처리 중 오류가 발생했습니다", err)
	}
}
