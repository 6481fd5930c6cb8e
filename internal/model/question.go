package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewQuestionIDPrefix 新导入、尚未入库的题目占位ID前缀
// 批量保存时检测到该前缀会重新分配正式ID
const NewQuestionIDPrefix = "q_new_"

// Question 每日一题的题目内容
// swagger:model Question
type Question struct {
	ID          string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Difficulty  string         `gorm:"type:varchar(32)" json:"difficulty,omitempty"`
	Category    string         `gorm:"type:varchar(64)" json:"category,omitempty"`
	Tags        []string       `gorm:"serializer:json;type:json" json:"tags,omitempty"`
	Example     string         `gorm:"type:text" json:"example,omitempty"`
	Constraints string         `gorm:"type:text" json:"constraints,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

func (q *Question) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	return
}

// NewImportedQuestionID 生成批次内唯一的占位ID
func NewImportedQuestionID() string {
	return NewQuestionIDPrefix + uuid.New().String()
}

// IsNewImport 判断ID是否为导入产生的占位ID
func (q *Question) IsNewImport() bool {
	return strings.HasPrefix(q.ID, NewQuestionIDPrefix)
}
