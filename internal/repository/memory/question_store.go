// Package memory 提供全部存储接口的内存实现。
// 用于测试以及 database.driver=memory 的本地开发模式，
// 对外语义与 GORM 实现一致。
package memory

import (
	"sync"

	"codestreak_backend/internal/model"
)

type QuestionStore struct {
	mu        sync.RWMutex
	questions map[string]model.Question
	order     []string
}

func NewQuestionStore() *QuestionStore {
	return &QuestionStore{questions: make(map[string]model.Question)}
}

func (s *QuestionStore) GetAll() ([]model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Question, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, cloneQuestion(s.questions[id]))
	}
	return result, nil
}

func (s *QuestionStore) GetByID(id string) (*model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return nil, nil
	}
	clone := cloneQuestion(q)
	return &clone, nil
}

func (s *QuestionStore) SaveBatch(questions []model.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range questions {
		if _, exists := s.questions[q.ID]; !exists {
			s.order = append(s.order, q.ID)
		}
		s.questions[q.ID] = cloneQuestion(q)
	}
	return nil
}

// Seed 便于测试准备题库
func (s *QuestionStore) Seed(questions ...model.Question) *QuestionStore {
	_ = s.SaveBatch(questions)
	return s
}

func cloneQuestion(q model.Question) model.Question {
	clone := q
	if q.Tags != nil {
		clone.Tags = append([]string(nil), q.Tags...)
	}
	return clone
}
