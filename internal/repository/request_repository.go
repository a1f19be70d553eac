package repository

import (
	"errors"

	"github.com/jipgi-intake/internal/constants"
	"github.com/jipgi-intake/internal/models"

	"gorm.io/gorm"
)

// RequestRepository 문의 데이터 접근 인터페이스
type RequestRepository interface {
	Create(request *models.Request) error
	GetByID(id uint) (*models.Request, error)
	List(filter RequestListFilter) ([]models.Request, int64, error)
	ListPendingByVendor(vendor string) ([]models.Request, error)
	UpdateSchedule(id uint, status string, scheduledDate, completedDate *string) error
	ReassignVendor(department, region, salesTeam, vendor string) (int64, error)
	Delete(id uint) (int64, error)
	WithTx(tx *gorm.DB) *GormRequestRepository
}

// GormRequestRepository GORM 구현
type GormRequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository 문의 저장소 생성
func NewRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// WithTx 트랜잭션 바인딩
func (r *GormRequestRepository) WithTx(tx *gorm.DB) *GormRequestRepository {
	if tx == nil {
		return r
	}
	return &GormRequestRepository{db: tx}
}

// Create 문의 생성
func (r *GormRequestRepository) Create(request *models.Request) error {
	return r.db.Create(request).Error
}

// GetByID ID로 문의 조회. 없으면 (nil, nil).
func (r *GormRequestRepository) GetByID(id uint) (*models.Request, error) {
	var request models.Request
	if err := r.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// List 문의 목록 조회. 항상 최신(식별자 내림차순) 우선.
func (r *GormRequestRepository) List(filter RequestListFilter) ([]models.Request, int64, error) {
	query := r.db.Model(&models.Request{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Vendor != "" {
		query = query.Where("vendor = ?", filter.Vendor)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.SalesTeam != "" {
		query = query.Where("sales_team = ?", filter.SalesTeam)
	}
	if filter.StoreName != "" {
		query = query.Where("store_name LIKE ?", "%"+filter.StoreName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.Request
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id desc").Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// ListPendingByVendor 해당 업체의 미완료 문의 목록
func (r *GormRequestRepository) ListPendingByVendor(vendor string) ([]models.Request, error) {
	var requests []models.Request
	if err := r.db.
		Where("vendor = ? AND status <> ?", vendor, constants.RequestStatusCompleted).
		Order("id desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateSchedule 예정입고일/완료 필드 갱신. 같은 값으로 재호출해도 결과는 동일하다.
func (r *GormRequestRepository) UpdateSchedule(id uint, status string, scheduledDate, completedDate *string) error {
	return r.db.Model(&models.Request{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":         status,
		"scheduled_date": scheduledDate,
		"completed_date": completedDate,
	}).Error
}

// ReassignVendor 키가 일치하는 모든 문의의 업체명을 덮어쓴다. 상태는 바꾸지 않는다.
func (r *GormRequestRepository) ReassignVendor(department, region, salesTeam, vendor string) (int64, error) {
	result := r.db.Model(&models.Request{}).
		Where("department = ? AND region = ? AND sales_team = ?", department, region, salesTeam).
		Update("vendor", vendor)
	return result.RowsAffected, result.Error
}

// Delete 상태와 무관한 무조건 삭제 (오등록 정정용)
func (r *GormRequestRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Request{}, id)
	return result.RowsAffected, result.Error
}
