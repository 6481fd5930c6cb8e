package model

import (
	"time"

	"gorm.io/gorm"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// UserProfile 学员档案，由管理后台维护
// swagger:model UserProfile
type UserProfile struct {
	UID        string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name       string         `gorm:"size:100" json:"name"`
	Email      string         `gorm:"size:100;index" json:"email"`
	Status     UserStatus     `gorm:"type:enum('active','inactive');default:'active'" json:"status"`
	LastActive time.Time      `json:"lastActive"`
	CreatedAt  time.Time      `json:"joinDate"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// AdminUser 管理员账号，只存 bcrypt 哈希，不存明文
// swagger:model AdminUser
type AdminUser struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// AdminUserView 管理后台用户列表的聚合视图（档案+进度）
// swagger:model AdminUserView
type AdminUserView struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Streak         int        `json:"streak"`
	ProblemsSolved int        `json:"problemsSolved"`
	LastActive     time.Time  `json:"lastActive"`
	Status         UserStatus `json:"status"`
	JoinDate       time.Time  `json:"joinDate"`
}

// SystemStats 管理后台的全局统计
// swagger:model SystemStats
type SystemStats struct {
	TotalUsers       int     `json:"totalUsers"`
	ActiveUsers      int     `json:"activeUsers"`
	TotalProblems    int     `json:"totalProblems"`
	TotalSubmissions int     `json:"totalSubmissions"`
	AvgStreak        float64 `json:"avgStreak"`
}
