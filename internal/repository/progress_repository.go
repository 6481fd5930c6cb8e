package repository

import (
	"errors"

	"codestreak_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Get(userID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Preload("CompletedQuestions", func(db *gorm.DB) *gorm.DB {
		return db.Order("completed_at ASC")
	}).Where("user_id = ?", userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &progress, nil
}

// Mutate 在一个事务内完成"读-改-写"。
// 进度行加 FOR UPDATE 锁，同一用户的并发提交串行执行，
// 避免重复追加完成记录或连击数错算。
// fn 返回的业务错误原样向上传递，事务回滚。
func (r *ProgressRepository) Mutate(userID string, fn func(progress *model.UserProgress) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var progress model.UserProgress
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 首次完成：先占住主键行，后续并发者才有行可锁
			progress = model.UserProgress{UserID: userID}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoNothing: true,
			}).Create(&progress).Error; err != nil {
				return storeErr(err)
			}
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ?", userID).
				First(&progress).Error; err != nil {
				return storeErr(err)
			}
		} else if err != nil {
			return storeErr(err)
		}

		if err := tx.Where("user_id = ?", userID).
			Order("completed_at ASC").
			Find(&progress.CompletedQuestions).Error; err != nil {
			return storeErr(err)
		}

		before := len(progress.CompletedQuestions)
		if err := fn(&progress); err != nil {
			return err
		}

		// 只插入本次新追加的完成记录
		for i := before; i < len(progress.CompletedQuestions); i++ {
			cq := &progress.CompletedQuestions[i]
			cq.UserID = userID
			if err := tx.Create(cq).Error; err != nil {
				return storeErr(err)
			}
		}

		err = tx.Model(&model.UserProgress{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"current_streak":   progress.CurrentStreak,
				"last_active_date": progress.LastActiveDate,
				"total_solved":     progress.TotalSolved,
			}).Error
		if err != nil {
			return storeErr(err)
		}
		return nil
	})
}

func (r *ProgressRepository) GetAll() ([]model.UserProgress, error) {
	var progresses []model.UserProgress
	if err := r.DB.Find(&progresses).Error; err != nil {
		return nil, storeErr(err)
	}
	return progresses, nil
}

func (r *ProgressRepository) Delete(userID string) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.CompletedQuestion{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&model.UserProgress{}).Error
	})
	if err != nil {
		return storeErr(err)
	}
	return nil
}
