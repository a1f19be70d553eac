package repository

import (
	"time"

	"github.com/jipgi-intake/internal/constants"
	"github.com/jipgi-intake/internal/models"

	"gorm.io/gorm"
)

// ArchiveRepository 보관 데이터 접근 인터페이스
type ArchiveRepository interface {
	SweepCompleted() (int64, error)
	List(filter ArchiveListFilter) ([]models.ArchivedRequest, int64, error)
	Clear() (int64, error)
}

// GormArchiveRepository GORM 구현
type GormArchiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository 보관 저장소 생성
func NewArchiveRepository(db *gorm.DB) *GormArchiveRepository {
	return &GormArchiveRepository{db: db}
}

// SweepCompleted 완료 상태의 문의 전부를 보관 테이블로 이관하고
// 원본 테이블에서 제거한다. 이관과 삭제는 하나의 트랜잭션이다.
func (r *GormArchiveRepository) SweepCompleted() (int64, error) {
	var moved int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var completed []models.Request
		if err := tx.
			Where("status = ?", constants.RequestStatusCompleted).
			Order("id asc").
			Find(&completed).Error; err != nil {
			return err
		}
		if len(completed) == 0 {
			return nil
		}

		now := time.Now()
		archived := make([]models.ArchivedRequest, 0, len(completed))
		ids := make([]uint, 0, len(completed))
		for _, req := range completed {
			archived = append(archived, models.ArchivedRequest{
				RequestID:     req.ID,
				Department:    req.Department,
				Region:        req.Region,
				SalesTeam:     req.SalesTeam,
				ContactName:   req.ContactName,
				Phone:         req.Phone,
				StoreName:     req.StoreName,
				Items:         req.Items,
				Vendor:        req.Vendor,
				ScheduledDate: req.ScheduledDate,
				CompletedDate: req.CompletedDate,
				RequestedAt:   req.CreatedAt,
				ArchivedAt:    now,
			})
			ids = append(ids, req.ID)
		}
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Request{}, ids)
		if result.Error != nil {
			return result.Error
		}
		moved = result.RowsAffected
		return nil
	})
	return moved, err
}

// List 보관 목록 조회
func (r *GormArchiveRepository) List(filter ArchiveListFilter) ([]models.ArchivedRequest, int64, error) {
	query := r.db.Model(&models.ArchivedRequest{})
	if filter.Vendor != "" {
		query = query.Where("vendor = ?", filter.Vendor)
	}
	if filter.StoreName != "" {
		query = query.Where("store_name LIKE ?", "%"+filter.StoreName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var archived []models.ArchivedRequest
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id desc").Find(&archived).Error; err != nil {
		return nil, 0, err
	}
	return archived, total, nil
}

// Clear 보관 테이블 일괄 비우기
func (r *GormArchiveRepository) Clear() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.ArchivedRequest{})
	return result.RowsAffected, result.Error
}
