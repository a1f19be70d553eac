package models

import "time"

// 관리자 자격 슬롯 이름
const (
	AdminCredentialGeneral     = "general"       // 데이터 관리 화면 전체
	AdminCredentialDestructive = "archive_clear" // 보관 데이터 일괄 삭제
)

// AdminCredential 관리자 공용 비밀번호 슬롯. 평문 비밀은 저장하지 않는다.
type AdminCredential struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName 테이블명 지정
func (AdminCredential) TableName() string {
	return "admin_credentials"
}
