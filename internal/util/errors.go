package util

import "errors"

// 核心错误类别，控制器据此映射HTTP状态码
var (
	// ErrInvalidArgument 必填参数缺失，访问存储前就拒绝
	ErrInvalidArgument = errors.New("missing required fields")
	// ErrUnsupportedFormat 上传文件扩展名不被支持
	ErrUnsupportedFormat = errors.New("unsupported file format, please upload CSV or XLSX files")
	// ErrNoValidQuestions 文件解析成功但没有可用的题目行
	ErrNoValidQuestions = errors.New("no valid questions found in the file")
	// ErrStoreUnavailable 持久层不可达
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
