package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// ChallengeDays 挑战总天数
const ChallengeDays = 45

// 上传相关
const (
	UploadFileField = "file"
	MimeCSV         = "text/csv"
	MimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var AllowedUploadExtensions = []string{".csv", ".xlsx", ".xls"}
