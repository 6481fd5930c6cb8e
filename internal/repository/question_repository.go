package repository

import (
	"errors"
	"fmt"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) GetAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.DB.Order("created_at ASC").Find(&questions).Error; err != nil {
		return nil, storeErr(err)
	}
	return questions, nil
}

func (r *QuestionRepository) GetByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Where("id = ?", id).First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &question, nil
}

// SaveBatch 在单个事务内按主键 upsert 整批题目，失败时整批回滚
func (r *QuestionRepository) SaveBatch(questions []model.Question) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range questions {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// storeErr 将底层数据库错误归类为存储不可用
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
}
