package repository

import (
	"errors"

	"github.com/jipgi-intake/internal/models"

	"gorm.io/gorm"
)

// VendorAccountRepository 업체 계정 데이터 접근 인터페이스
type VendorAccountRepository interface {
	GetByUsername(username string) (*models.VendorAccount, error)
	Create(account *models.VendorAccount) error
	List() ([]models.VendorAccount, error)
}

// GormVendorAccountRepository GORM 구현
type GormVendorAccountRepository struct {
	db *gorm.DB
}

// NewVendorAccountRepository 업체 계정 저장소 생성
func NewVendorAccountRepository(db *gorm.DB) *GormVendorAccountRepository {
	return &GormVendorAccountRepository{db: db}
}

// GetByUsername 사용자명으로 조회. 없으면 (nil, nil).
func (r *GormVendorAccountRepository) GetByUsername(username string) (*models.VendorAccount, error) {
	var account models.VendorAccount
	if err := r.db.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// Create 업체 계정 생성
func (r *GormVendorAccountRepository) Create(account *models.VendorAccount) error {
	return r.db.Create(account).Error
}

// List 전체 업체 계정 목록
func (r *GormVendorAccountRepository) List() ([]models.VendorAccount, error) {
	var accounts []models.VendorAccount
	if err := r.db.Order("id asc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
