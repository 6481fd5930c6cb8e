package service

import (
	"fmt"
	"strings"
	"time"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/util"
)

// DefaultDifficulty 缺失或空白难度归入的兜底标签
const DefaultDifficulty = "Choice"

// ProgressService 维护用户的完成记录、连击数与难度统计
type ProgressService struct {
	Store ProgressStore
}

func NewProgressService(store ProgressStore) *ProgressService {
	return &ProgressService{Store: store}
}

// RecordCompletion 记录一次完成并返回最新连击数。
// 同一题同一天的重复提交是幂等空操作；连击规则：
// 上次活跃在昨天 +1，在今天不变，更早或首次则重置为 1。
func (s *ProgressService) RecordCompletion(userID, questionID, difficulty string, now time.Time) (int, error) {
	userID = strings.TrimSpace(userID)
	questionID = strings.TrimSpace(questionID)
	if userID == "" || questionID == "" {
		return 0, fmt.Errorf("%w: userId and questionId are required", util.ErrInvalidArgument)
	}

	difficulty = strings.TrimSpace(difficulty)
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	var streak int
	err := s.Store.Mutate(userID, func(progress *model.UserProgress) error {
		for _, cq := range progress.CompletedQuestions {
			if cq.QuestionID == questionID && sameCalendarDay(cq.CompletedAt, now) {
				// 当日已完成过这道题，保持原状
				streak = progress.CurrentStreak
				return nil
			}
		}

		progress.CompletedQuestions = append(progress.CompletedQuestions, model.CompletedQuestion{
			UserID:      userID,
			QuestionID:  questionID,
			CompletedAt: now,
			Difficulty:  difficulty,
		})

		switch {
		case !progress.LastActiveDate.IsZero() && sameCalendarDay(progress.LastActiveDate, now):
			// 今天已经有过活动，连击数不重复累加
		case !progress.LastActiveDate.IsZero() && sameCalendarDay(progress.LastActiveDate, now.AddDate(0, 0, -1)):
			progress.CurrentStreak++
		default:
			progress.CurrentStreak = 1
		}

		progress.LastActiveDate = now
		progress.TotalSolved = len(progress.CompletedQuestions)
		streak = progress.CurrentStreak
		return nil
	})
	if err != nil {
		return 0, err
	}
	return streak, nil
}

// GetProgress 纯读取；无记录时返回零值默认。
// stats 每次读取时从完成记录重新推导，不单独存储。
func (s *ProgressService) GetProgress(userID string) (model.ProgressSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return model.ProgressSummary{}, fmt.Errorf("%w: userId is required", util.ErrInvalidArgument)
	}

	progress, err := s.Store.Get(userID)
	if err != nil {
		return model.ProgressSummary{}, err
	}
	if progress == nil {
		return model.ProgressSummary{
			CompletedQuestions: []model.CompletedQuestion{},
		}, nil
	}

	completed := progress.CompletedQuestions
	if completed == nil {
		completed = []model.CompletedQuestion{}
	}

	return model.ProgressSummary{
		CompletedQuestions: completed,
		CurrentStreak:      progress.CurrentStreak,
		TotalSolved:        progress.TotalSolved,
		Stats:              model.TallyDifficulty(completed),
	}, nil
}

// sameCalendarDay 按服务器本地时区比较两个时间是否落在同一个日历日
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
