package models

import "time"

// RoutingRule (부문, 지역팀, 영업팀) -> 업체명 매칭 규칙.
// 저장소 차원의 유일 제약은 두지 않고, 키당 하나의 규칙은
// 삭제 후 재삽입 방식의 편집 로직이 보장한다.
type RoutingRule struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Department string    `gorm:"index:idx_routing_rules_key;not null" json:"department"`
	Region     string    `gorm:"index:idx_routing_rules_key;not null" json:"region"`
	SalesTeam  string    `gorm:"index:idx_routing_rules_key;not null" json:"sales_team"`
	Vendor     string    `gorm:"not null" json:"vendor"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 테이블명 지정
func (RoutingRule) TableName() string {
	return "routing_rules"
}
