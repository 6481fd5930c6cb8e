package memory

import (
	"sync"

	"codestreak_backend/internal/model"
)

type AssignmentStore struct {
	mu          sync.Mutex
	assignments map[string]model.DailyAssignment
}

func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{assignments: make(map[string]model.DailyAssignment)}
}

func (s *AssignmentStore) Get(date string) (*model.DailyAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.assignments[date]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// CreateIfAbsent 互斥锁内检查并写入，同一天只有第一条写入生效
func (s *AssignmentStore) CreateIfAbsent(assignment *model.DailyAssignment) (*model.DailyAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.assignments[assignment.Date]; ok {
		return &existing, nil
	}
	s.assignments[assignment.Date] = *assignment
	winner := *assignment
	return &winner, nil
}
