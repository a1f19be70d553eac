package models

import (
	"time"

	"github.com/jipgi-intake/internal/constants"
)

// Request 집기입고 문의 레코드
type Request struct {
	ID            uint      `gorm:"primarykey" json:"id"`                       // 식별자 (단조 증가, 불변)
	Department    string    `gorm:"index:idx_requests_org;not null" json:"department"` // 부문
	Region        string    `gorm:"index:idx_requests_org;not null" json:"region"`     // 지역팀
	SalesTeam     string    `gorm:"index:idx_requests_org;not null" json:"sales_team"` // 영업팀
	ContactName   string    `gorm:"not null" json:"contact_name"`               // 담당자명
	Phone         string    `gorm:"type:varchar(20);not null" json:"phone"`     // 연락처 (숫자만)
	StoreName     string    `gorm:"index;not null" json:"store_name"`           // 점포명 (지정자 제거)
	Items         string    `gorm:"type:text" json:"items"`                     // 요청집기목록
	Vendor        string    `gorm:"index;not null" json:"vendor"`               // 업체명 (등록 시 매칭, 없으면 미지정)
	Status        string    `gorm:"index;not null" json:"status"`               // submitted / scheduled / completed
	ScheduledDate *string   `gorm:"type:varchar(10)" json:"scheduled_date"`     // 예정입고일
	CompletedDate *string   `gorm:"type:varchar(10)" json:"completed_date"`     // 입고완료일 (completed일 때만)
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                    // 등록일 (생성 후 불변)
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName 테이블명 지정
func (Request) TableName() string {
	return "requests"
}

// DerivedStatus 예정입고일/완료 필드에서 논리 상태를 유도한다.
// 구버전 데이터(상태 라벨 없이 날짜 필드만 있는 경우) 호환용.
func (r *Request) DerivedStatus() string {
	if r.CompletedDate != nil {
		return constants.RequestStatusCompleted
	}
	if r.ScheduledDate != nil {
		return constants.RequestStatusScheduled
	}
	return constants.RequestStatusSubmitted
}

// IsCompleted 완료 여부
func (r *Request) IsCompleted() bool {
	return r.Status == constants.RequestStatusCompleted
}
