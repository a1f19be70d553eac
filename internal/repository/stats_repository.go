package repository

import (
	"fmt"

	"github.com/jipgi-intake/internal/constants"
	"github.com/jipgi-intake/internal/models"

	"gorm.io/gorm"
)

// 처리율 집계 축
const (
	StatsGroupVendor     = "vendor"
	StatsGroupDepartment = "department"
	StatsGroupRegion     = "region"
)

// CompletionRow 그룹별 처리율 원시 집계 행
type CompletionRow struct {
	GroupValue string `gorm:"column:group_value"`
	Total      int64  `gorm:"column:total"`
	Completed  int64  `gorm:"column:completed"`
}

// StatsRepository 집계 조회 인터페이스. 통계만 뽑고 업무 규칙은 담지 않는다.
type StatsRepository interface {
	CompletionByGroup(groupBy string) ([]CompletionRow, error)
}

// GormStatsRepository GORM 구현
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository 집계 저장소 생성
func NewStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// CompletionByGroup 축별 전체/완료 건수 집계
func (r *GormStatsRepository) CompletionByGroup(groupBy string) ([]CompletionRow, error) {
	column, err := statsGroupColumn(groupBy)
	if err != nil {
		return nil, err
	}

	var rows []CompletionRow
	if err := r.db.Model(&models.Request{}).
		Select(fmt.Sprintf(
			"%s AS group_value, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed",
			column,
		), constants.RequestStatusCompleted).
		Group(column).
		Order(column).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// statsGroupColumn 집계 축을 컬럼명으로 변환. 허용 목록 외 입력은 거부한다.
func statsGroupColumn(groupBy string) (string, error) {
	switch groupBy {
	case StatsGroupVendor:
		return "vendor", nil
	case StatsGroupDepartment:
		return "department", nil
	case StatsGroupRegion:
		return "region", nil
	default:
		return "", fmt.Errorf("unsupported stats group: %s", groupBy)
	}
}
