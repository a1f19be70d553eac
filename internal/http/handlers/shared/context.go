package shared

import (
	"strconv"

	"github.com/jipgi-intake/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 컨텍스트 키. 인증 미들웨어가 채운다.
const (
	ContextKeyVendorName    = "vendor_name"
	ContextKeyAdminUnlocked = "admin_unlocked"
)

// VendorName 인증된 업체명 조회. 없으면 401 응답까지 처리한다.
func VendorName(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyVendorName)
	if !exists {
		response.Unauthorized(c, "업체 로그인이 필요합니다")
		return "", false
	}
	name, ok := value.(string)
	if !ok || name == "" {
		response.Unauthorized(c, "업체 로그인이 필요합니다")
		return "", false
	}
	return name, true
}

// ParsePagination 쿼리에서 page/page_size 해석
func ParsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// ParseIDParam 경로 파라미터에서 식별자 해석
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "식별자가 올바르지 않습니다")
		return 0, false
	}
	return uint(id), true
}

// BuildPagination 분페이지 응답 정보 생성
func BuildPagination(page, pageSize int, total int64) response.Pagination {
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}
