package service

import (
	"fmt"
	"strings"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/util"
)

// UserService 管理后台的学员管理与全局统计
type UserService struct {
	Profiles UserProfileStore
	Progress ProgressStore
}

func NewUserService(profiles UserProfileStore, progress ProgressStore) *UserService {
	return &UserService{
		Profiles: profiles,
		Progress: progress,
	}
}

// GetAllUsers 档案与进度汇总成后台列表视图
func (s *UserService) GetAllUsers() ([]model.AdminUserView, error) {
	profiles, err := s.Profiles.GetAll()
	if err != nil {
		return nil, err
	}

	progresses, err := s.Progress.GetAll()
	if err != nil {
		return nil, err
	}
	byUser := make(map[string]model.UserProgress, len(progresses))
	for _, p := range progresses {
		byUser[p.UserID] = p
	}

	views := make([]model.AdminUserView, 0, len(profiles))
	for _, profile := range profiles {
		view := model.AdminUserView{
			ID:         profile.UID,
			Name:       profile.Name,
			Email:      profile.Email,
			Status:     profile.Status,
			LastActive: profile.LastActive,
			JoinDate:   profile.CreatedAt,
		}
		if p, ok := byUser[profile.UID]; ok {
			view.Streak = p.CurrentStreak
			view.ProblemsSolved = p.TotalSolved
			if p.LastActiveDate.After(view.LastActive) {
				view.LastActive = p.LastActiveDate
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// GetSystemStats 全局统计；题目总数固定为挑战天数
func (s *UserService) GetSystemStats() (model.SystemStats, error) {
	profiles, err := s.Profiles.GetAll()
	if err != nil {
		return model.SystemStats{}, err
	}

	progresses, err := s.Progress.GetAll()
	if err != nil {
		return model.SystemStats{}, err
	}

	stats := model.SystemStats{
		TotalUsers:    len(profiles),
		TotalProblems: util.ChallengeDays,
	}
	for _, p := range profiles {
		if p.Status == model.UserActive {
			stats.ActiveUsers++
		}
	}

	var streakSum int
	for _, p := range progresses {
		stats.TotalSubmissions += p.TotalSolved
		streakSum += p.CurrentStreak
	}
	if len(progresses) > 0 {
		stats.AvgStreak = float64(streakSum) / float64(len(progresses))
	}
	return stats, nil
}

// UserProfileUpdate 后台可修改的档案字段，零值字段保持不变
type UserProfileUpdate struct {
	Name   string           `json:"name"`
	Email  string           `json:"email"`
	Status model.UserStatus `json:"status"`
}

func (s *UserService) UpdateUser(uid string, update UserProfileUpdate) (*model.UserProfile, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, fmt.Errorf("%w: userId is required", util.ErrInvalidArgument)
	}

	profile, err := s.Profiles.Get(uid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, util.ErrUserNotFound
	}

	if update.Name != "" {
		profile.Name = update.Name
	}
	if update.Email != "" {
		profile.Email = update.Email
	}
	if update.Status != "" {
		if update.Status != model.UserActive && update.Status != model.UserInactive {
			return nil, fmt.Errorf("%w: unknown status %q", util.ErrInvalidArgument, update.Status)
		}
		profile.Status = update.Status
	}

	if err := s.Profiles.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteUser 移除学员档案及其进度记录
func (s *UserService) DeleteUser(uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return fmt.Errorf("%w: userId is required", util.ErrInvalidArgument)
	}

	profile, err := s.Profiles.Get(uid)
	if err != nil {
		return err
	}
	if profile == nil {
		return util.ErrUserNotFound
	}

	if err := s.Profiles.Delete(uid); err != nil {
		return err
	}
	return s.Progress.Delete(uid)
}
