package service

import (
	"fmt"
	"strings"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/util"

	"github.com/google/uuid"
)

// QuestionService 管理后台的题库维护
type QuestionService struct {
	Store QuestionStore
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{Store: store}
}

func (s *QuestionService) ListQuestions() ([]model.Question, error) {
	return s.Store.GetAll()
}

// SaveBatch 批量入库。携带占位ID的题目（新导入）分配正式ID，
// 其余按已有ID做 upsert；整批一个事务，绝不只写入一部分。
func (s *QuestionService) SaveBatch(questions []model.Question) (int, error) {
	if len(questions) == 0 {
		return 0, fmt.Errorf("%w: questions list is empty", util.ErrInvalidArgument)
	}

	prepared := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		q.Title = strings.TrimSpace(q.Title)
		q.Description = strings.TrimSpace(q.Description)
		if q.Title == "" || q.Description == "" {
			return 0, fmt.Errorf("%w: every question needs a title and a description", util.ErrInvalidArgument)
		}
		if q.ID == "" || q.IsNewImport() {
			q.ID = uuid.New().String()
		}
		prepared = append(prepared, q)
	}

	if err := s.Store.SaveBatch(prepared); err != nil {
		return 0, err
	}
	return len(prepared), nil
}
