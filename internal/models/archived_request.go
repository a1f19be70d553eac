package models

import "time"

// ArchivedRequest 보관 처리된 완료 문의. 이관 이후에는 수정하지 않는다.
type ArchivedRequest struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	RequestID     uint      `gorm:"index;not null" json:"request_id"` // 원본 문의 식별자
	Department    string    `gorm:"not null" json:"department"`
	Region        string    `gorm:"not null" json:"region"`
	SalesTeam     string    `gorm:"not null" json:"sales_team"`
	ContactName   string    `gorm:"not null" json:"contact_name"`
	Phone         string    `gorm:"type:varchar(20);not null" json:"phone"`
	StoreName     string    `gorm:"index;not null" json:"store_name"`
	Items         string    `gorm:"type:text" json:"items"`
	Vendor        string    `gorm:"index;not null" json:"vendor"`
	ScheduledDate *string   `gorm:"type:varchar(10)" json:"scheduled_date"`
	CompletedDate *string   `gorm:"type:varchar(10)" json:"completed_date"`
	RequestedAt   time.Time `json:"requested_at"`              // 원본 등록일
	ArchivedAt    time.Time `gorm:"index" json:"archived_at"` // 보관 처리일
}

// TableName 테이블명 지정
func (ArchivedRequest) TableName() string {
	return "archived_requests"
}
