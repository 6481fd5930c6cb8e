package model

import "time"

// DateLayout 每日指派的日期键格式（服务器本地时区）
const DateLayout = "2006-01-02"

// DailyAssignment 记录某个日历日固定下来的题目
// 一旦写入即不再改写，保证当天所有请求看到同一道题
// swagger:model DailyAssignment
type DailyAssignment struct {
	Date       string    `gorm:"primaryKey;type:varchar(10)" json:"date"`
	QuestionID string    `gorm:"type:varchar(64);not null" json:"questionId"`
	AssignedAt time.Time `json:"assignedAt"`
}

func (DailyAssignment) TableName() string {
	return "daily_assignments"
}

// DateKey 把时间归一化为 YYYY-MM-DD 日期键
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
