package model

import (
	"strings"
	"time"
)

// UserProgress 用户在45天挑战中的完成记录
// TotalSolved 始终等于 CompletedQuestions 的长度
// swagger:model UserProgress
type UserProgress struct {
	UserID             string              `gorm:"primaryKey;type:varchar(64)" json:"userId"`
	CompletedQuestions []CompletedQuestion `gorm:"foreignKey:UserID;references:UserID" json:"completedQuestions"`
	CurrentStreak      int                 `gorm:"default:0" json:"currentStreak"`
	LastActiveDate     time.Time           `json:"lastActiveDate"`
	TotalSolved        int                 `gorm:"default:0" json:"totalSolved"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// CompletedQuestion 单次完成记录，难度为完成时刻的快照
// swagger:model CompletedQuestion
type CompletedQuestion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID      string    `gorm:"index;type:varchar(64);not null" json:"-"`
	QuestionID  string    `gorm:"type:varchar(64);not null" json:"questionId"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
	Difficulty  string    `gorm:"type:varchar(32)" json:"difficulty"`
}

func (CompletedQuestion) TableName() string {
	return "completed_questions"
}

// DifficultyStats 按难度统计的完成数量，choice 为兜底桶
// swagger:model DifficultyStats
type DifficultyStats struct {
	Hard   int `json:"hard"`
	Medium int `json:"medium"`
	Easy   int `json:"easy"`
	Choice int `json:"choice"`
}

// ProgressSummary 进度查询的响应视图，stats 每次读取时重新推导
// swagger:model ProgressSummary
type ProgressSummary struct {
	CompletedQuestions []CompletedQuestion `json:"completedQuestions"`
	CurrentStreak      int                 `json:"currentStreak"`
	TotalSolved        int                 `json:"totalSolved"`
	Stats              DifficultyStats     `json:"stats"`
}

// TallyDifficulty 将完成记录按难度归入四个桶（大小写不敏感）
func TallyDifficulty(completed []CompletedQuestion) DifficultyStats {
	var stats DifficultyStats
	for _, cq := range completed {
		switch strings.ToLower(cq.Difficulty) {
		case "hard":
			stats.Hard++
		case "medium":
			stats.Medium++
		case "easy":
			stats.Easy++
		default:
			stats.Choice++
		}
	}
	return stats
}
