package repository

import (
	"errors"

	"github.com/jipgi-intake/internal/models"

	"gorm.io/gorm"
)

// RoutingRuleRepository 업체 매칭 규칙 데이터 접근 인터페이스
type RoutingRuleRepository interface {
	List() ([]models.RoutingRule, error)
	Find(department, region, salesTeam string) (*models.RoutingRule, error)
	ReplaceAll(rules []models.RoutingRule) error
	UpsertOne(department, region, salesTeam, vendor string) error
}

// GormRoutingRuleRepository GORM 구현
type GormRoutingRuleRepository struct {
	db *gorm.DB
}

// NewRoutingRuleRepository 매칭 규칙 저장소 생성
func NewRoutingRuleRepository(db *gorm.DB) *GormRoutingRuleRepository {
	return &GormRoutingRuleRepository{db: db}
}

// List 전체 규칙 목록
func (r *GormRoutingRuleRepository) List() ([]models.RoutingRule, error) {
	var rules []models.RoutingRule
	if err := r.db.Order("department, region, sales_team").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// Find 키 정확 일치 조회. 없으면 (nil, nil).
func (r *GormRoutingRuleRepository) Find(department, region, salesTeam string) (*models.RoutingRule, error) {
	var rule models.RoutingRule
	if err := r.db.
		Where("department = ? AND region = ? AND sales_team = ?", department, region, salesTeam).
		First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

// ReplaceAll 전체 삭제 후 재삽입. 빈 테이블 구간이 보이지 않도록
// 하나의 트랜잭션으로 묶는다.
func (r *GormRoutingRuleRepository) ReplaceAll(rules []models.RoutingRule) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.RoutingRule{}).Error; err != nil {
			return err
		}
		for i := range rules {
			rules[i].ID = 0
			if err := tx.Create(&rules[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpsertOne 해당 키의 규칙만 삭제 후 삽입. 다른 키는 건드리지 않는다.
func (r *GormRoutingRuleRepository) UpsertOne(department, region, salesTeam, vendor string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("department = ? AND region = ? AND sales_team = ?", department, region, salesTeam).
			Delete(&models.RoutingRule{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.RoutingRule{
			Department: department,
			Region:     region,
			SalesTeam:  salesTeam,
			Vendor:     vendor,
		}).Error
	})
}
