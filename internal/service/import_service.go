package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/util"

	"github.com/xuri/excelize/v2"
)

// headerSynonyms 表头同义词到规范字段的固定映射。
// 匹配前表头先做小写和去空白处理，没命中的列直接忽略。
var headerSynonyms = map[string]string{
	"title":             "title",
	"question":          "title",
	"problem":           "title",
	"name":              "title",
	"description":       "description",
	"desc":              "description",
	"details":           "description",
	"problem statement": "description",
	"difficulty":        "difficulty",
	"level":             "difficulty",
	"category":          "category",
	"topic":             "category",
	"tags":              "tags",
	"tag":               "tags",
	"example":           "example",
	"examples":          "example",
	"constraints":       "constraints",
	"constraint":        "constraints",
}

// ImportService 把上传的表格文件解析成待入库的题目列表
type ImportService struct{}

func NewImportService() *ImportService {
	return &ImportService{}
}

// ParseUpload 按扩展名选择解析器，产出按行序排列的有效题目。
// 每条题目带批次内唯一的占位ID，后续批量保存时才分配正式ID。
func (s *ImportService) ParseUpload(data []byte, filename string) ([]model.Question, error) {
	var (
		rows [][]string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		rows, err = parseCSVRows(data)
	case ".xlsx", ".xls":
		rows, err = parseWorkbookRows(data)
	default:
		return nil, fmt.Errorf("%w: %q", util.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	questions := mapRowsToQuestions(rows)
	if len(questions) == 0 {
		return nil, util.ErrNoValidQuestions
	}
	return questions, nil
}

func parseCSVRows(data []byte) ([][]string, error) {
	// Excel 的 "CSV UTF-8" 导出带 BOM，不去掉会粘在第一个表头上
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

// parseWorkbookRows 只解码第一个工作表，取原始单元格值，不求值公式
func parseWorkbookRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, util.ErrNoValidQuestions
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func mapRowsToQuestions(rows [][]string) []model.Question {
	if len(rows) < 2 {
		return nil
	}

	columns := make(map[string]int)
	for i, header := range rows[0] {
		if field, ok := headerSynonyms[strings.ToLower(strings.TrimSpace(header))]; ok {
			columns[field] = i
		}
	}

	var questions []model.Question
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		q := model.Question{
			ID:          model.NewImportedQuestionID(),
			Title:       cellValue(row, columns, "title"),
			Description: cellValue(row, columns, "description"),
			Difficulty:  cellValue(row, columns, "difficulty"),
			Category:    cellValue(row, columns, "category"),
			Example:     cellValue(row, columns, "example"),
			Constraints: cellValue(row, columns, "constraints"),
		}
		if _, ok := columns["tags"]; ok {
			q.Tags = splitTags(cellValue(row, columns, "tags"))
		}

		// 唯一的有效性门槛：标题和描述去空白后都非空
		if q.Title == "" || q.Description == "" {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

func cellValue(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// splitTags 逗号分隔并逐个去空白；空单元格产出空序列而不是 [""]
func splitTags(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}
