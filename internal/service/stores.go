package service

import "codestreak_backend/internal/model"

// 存储依赖以接口形式注入，生产环境为 GORM/MySQL 实现（internal/repository），
// 测试和 memory 驱动模式为内存实现（internal/repository/memory）。

// QuestionStore 题库存储
type QuestionStore interface {
	GetAll() ([]model.Question, error)
	GetByID(id string) (*model.Question, error)
	// SaveBatch 批量落库，整批要么全部提交要么全部失败
	SaveBatch(questions []model.Question) error
}

// DailyAssignmentStore 每日指派存储，按日期键读写
type DailyAssignmentStore interface {
	// Get 返回 (nil, nil) 表示该日期尚无指派
	Get(date string) (*model.DailyAssignment, error)
	// CreateIfAbsent 条件写入：该日期已有指派时不覆盖，返回最终生效的那条。
	// 并发抢写同一天时恰好一个胜出，其余调用方拿到胜者的记录。
	CreateIfAbsent(assignment *model.DailyAssignment) (*model.DailyAssignment, error)
}

// ProgressStore 用户进度存储
type ProgressStore interface {
	// Get 返回 (nil, nil) 表示用户尚无进度记录
	Get(userID string) (*model.UserProgress, error)
	// Mutate 在单个事务内执行"读-改-写"，同一用户的并发提交互相串行。
	// fn 收到的是当前进度（无记录时为零值初始化），fn 返回错误则放弃写入。
	Mutate(userID string, fn func(progress *model.UserProgress) error) error
	GetAll() ([]model.UserProgress, error)
	Delete(userID string) error
}

// UserProfileStore 学员档案存储，服务于管理后台
type UserProfileStore interface {
	GetAll() ([]model.UserProfile, error)
	Get(uid string) (*model.UserProfile, error)
	Save(profile *model.UserProfile) error
	Delete(uid string) error
}

// AdminStore 管理员账号存储
type AdminStore interface {
	FindByEmail(email string) (*model.AdminUser, error)
	Count() (int64, error)
	Create(admin *model.AdminUser) error
}
