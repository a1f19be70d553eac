package models

import "time"

// VendorAccount 업체 처리 계정. VendorName이 문의 레코드의 업체명과 대응한다.
type VendorAccount struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	VendorName   string    `gorm:"uniqueIndex;not null" json:"vendor_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName 테이블명 지정
func (VendorAccount) TableName() string {
	return "vendor_accounts"
}
