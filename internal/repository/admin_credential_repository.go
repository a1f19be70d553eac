package repository

import (
	"errors"

	"github.com/jipgi-intake/internal/models"

	"gorm.io/gorm"
)

// AdminCredentialRepository 관리자 자격 데이터 접근 인터페이스
type AdminCredentialRepository interface {
	GetByName(name string) (*models.AdminCredential, error)
}

// GormAdminCredentialRepository GORM 구현
type GormAdminCredentialRepository struct {
	db *gorm.DB
}

// NewAdminCredentialRepository 관리자 자격 저장소 생성
func NewAdminCredentialRepository(db *gorm.DB) *GormAdminCredentialRepository {
	return &GormAdminCredentialRepository{db: db}
}

// GetByName 슬롯 이름으로 조회. 없으면 (nil, nil).
func (r *GormAdminCredentialRepository) GetByName(name string) (*models.AdminCredential, error) {
	var cred models.AdminCredential
	if err := r.db.Where("name = ?", name).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cred, nil
}
