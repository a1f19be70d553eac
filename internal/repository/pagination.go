package repository

import "gorm.io/gorm"

// applyPagination 분페이지 파라미터 적용. 잘못된 페이지 값은 여기서 흡수한다.
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
