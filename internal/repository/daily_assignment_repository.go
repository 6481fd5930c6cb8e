package repository

import (
	"errors"

	"codestreak_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyAssignmentRepository struct {
	DB *gorm.DB
}

func NewDailyAssignmentRepository(db *gorm.DB) *DailyAssignmentRepository {
	return &DailyAssignmentRepository{DB: db}
}

func (r *DailyAssignmentRepository) Get(date string) (*model.DailyAssignment, error) {
	var assignment model.DailyAssignment
	err := r.DB.Where("date = ?", date).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &assignment, nil
}

// CreateIfAbsent 以日期为主键做条件写入。
// 同一天的并发写入由 INSERT ... ON DUPLICATE KEY 裁决，
// 落败方重新读取并返回胜者的记录，不会产生分叉的指派。
func (r *DailyAssignmentRepository) CreateIfAbsent(assignment *model.DailyAssignment) (*model.DailyAssignment, error) {
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoNothing: true,
	}).Create(assignment).Error
	if err != nil {
		return nil, storeErr(err)
	}

	var winner model.DailyAssignment
	if err := r.DB.Where("date = ?", assignment.Date).First(&winner).Error; err != nil {
		return nil, storeErr(err)
	}
	return &winner, nil
}
