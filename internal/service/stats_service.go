package service

import (
	"github.com/jipgi-intake/internal/repository"

	"github.com/shopspring/decimal"
)

// CompletionStat 그룹별 처리율
type CompletionStat struct {
	Group     string          `json:"group"`
	Total     int64           `json:"total"`
	Completed int64           `json:"completed"`
	Rate      decimal.Decimal `json:"rate"` // completed / total, 소수 4자리
}

// StatsService 처리율 리포트 서비스
type StatsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService 통계 서비스 생성
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// CompletionRates 축별(vendor/department/region) 처리율 집계
func (s *StatsService) CompletionRates(groupBy string) ([]CompletionStat, error) {
	rows, err := s.statsRepo.CompletionByGroup(groupBy)
	if err != nil {
		return nil, err
	}

	stats := make([]CompletionStat, 0, len(rows))
	for _, row := range rows {
		rate := decimal.Zero
		if row.Total > 0 {
			rate = decimal.NewFromInt(row.Completed).
				Div(decimal.NewFromInt(row.Total)).
				Round(4)
		}
		stats = append(stats, CompletionStat{
			Group:     row.GroupValue,
			Total:     row.Total,
			Completed: row.Completed,
			Rate:      rate,
		})
	}
	return stats, nil
}
