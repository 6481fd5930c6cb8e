package util

import (
	"errors"
	"path/filepath"
	"strings"
)

// ValidateUploadExtension 校验上传文件扩展名是否为支持的表格格式
// 返回小写扩展名（含点），不在允许列表内时返回错误
func ValidateUploadExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedUploadExtensions {
		if ext == allowed {
			return ext, nil
		}
	}
	return ext, errors.New("unsupported file type: " + ext)
}
