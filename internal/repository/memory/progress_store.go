package memory

import (
	"sync"

	"codestreak_backend/internal/model"
)

type ProgressStore struct {
	mu         sync.Mutex
	progresses map[string]*model.UserProgress
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{progresses: make(map[string]*model.UserProgress)}
}

func (s *ProgressStore) Get(userID string) (*model.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.progresses[userID]
	if !ok {
		return nil, nil
	}
	clone := cloneProgress(p)
	return clone, nil
}

// Mutate 全局互斥锁保证同一用户的读改写串行；fn 失败时不落盘
func (s *ProgressStore) Mutate(userID string, fn func(progress *model.UserProgress) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var working *model.UserProgress
	if existing, ok := s.progresses[userID]; ok {
		working = cloneProgress(existing)
	} else {
		working = &model.UserProgress{UserID: userID}
	}

	if err := fn(working); err != nil {
		return err
	}

	s.progresses[userID] = working
	return nil
}

func (s *ProgressStore) GetAll() ([]model.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.UserProgress, 0, len(s.progresses))
	for _, p := range s.progresses {
		result = append(result, *cloneProgress(p))
	}
	return result, nil
}

func (s *ProgressStore) Delete(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.progresses, userID)
	return nil
}

func cloneProgress(p *model.UserProgress) *model.UserProgress {
	clone := *p
	clone.CompletedQuestions = append([]model.CompletedQuestion(nil), p.CompletedQuestions...)
	return &clone
}
