package memory

import (
	"sync"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/util"
)

type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]model.UserProfile
	order    []string
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[string]model.UserProfile)}
}

func (s *ProfileStore) GetAll() ([]model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.UserProfile, 0, len(s.order))
	for _, uid := range s.order {
		result = append(result, s.profiles[uid])
	}
	return result, nil
}

func (s *ProfileStore) Get(uid string) (*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[uid]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *ProfileStore) Save(profile *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.UID]; !exists {
		s.order = append(s.order, profile.UID)
	}
	s.profiles[profile.UID] = *profile
	return nil
}

func (s *ProfileStore) Delete(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.profiles, uid)
	for i, id := range s.order {
		if id == uid {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type AdminStore struct {
	mu     sync.RWMutex
	admins []model.AdminUser
}

func NewAdminStore() *AdminStore {
	return &AdminStore{}
}

func (s *AdminStore) FindByEmail(email string) (*model.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.admins {
		if a.Email == email {
			admin := a
			return &admin, nil
		}
	}
	return nil, util.ErrInvalidCredentials
}

func (s *AdminStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.admins)), nil
}

func (s *AdminStore) Create(admin *model.AdminUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin.ID = uint(len(s.admins) + 1)
	s.admins = append(s.admins, *admin)
	return nil
}
