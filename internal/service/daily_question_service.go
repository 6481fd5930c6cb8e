package service

import (
	"math/rand"
	"time"

	"codestreak_backend/internal/model"
	"codestreak_backend/pkg/logger"

	"go.uber.org/zap"
)

// DailyQuestionService 负责"今日一题"的选取与固定。
// 同一天内无论多少请求到达，所有人看到同一道题。
type DailyQuestionService struct {
	Questions   QuestionStore
	Assignments DailyAssignmentStore
}

func NewDailyQuestionService(questions QuestionStore, assignments DailyAssignmentStore) *DailyQuestionService {
	return &DailyQuestionService{
		Questions:   questions,
		Assignments: assignments,
	}
}

// GetDailyQuestion 返回今天固定的题目。
// 当天尚无指派时从题库均匀随机选一道并固定（条件写入裁决并发），
// 题库为空时返回 (nil, nil) 而非错误。
func (s *DailyQuestionService) GetDailyQuestion(now time.Time) (*model.Question, error) {
	date := model.DateKey(now)

	assignment, err := s.Assignments.Get(date)
	if err != nil {
		return nil, err
	}
	if assignment != nil {
		return s.Questions.GetByID(assignment.QuestionID)
	}

	questions, err := s.Questions.GetAll()
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}

	selected := questions[rand.Intn(len(questions))]

	winner, err := s.Assignments.CreateIfAbsent(&model.DailyAssignment{
		Date:       date,
		QuestionID: selected.ID,
		AssignedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if winner.QuestionID == selected.ID {
		logger.Log.Info("daily question pinned",
			zap.String("date", date),
			zap.String("questionId", selected.ID))
		return &selected, nil
	}

	// 并发抢写落败，返回胜者固定下来的题目
	return s.Questions.GetByID(winner.QuestionID)
}
