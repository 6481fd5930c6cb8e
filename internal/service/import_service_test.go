package service

import (
	"bytes"
	"strings"
	"testing"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseUploadCSV(t *testing.T) {
	svc := NewImportService()
	csvData := strings.Join([]string{
		"Title,Description,Difficulty,Category,Tags,Example,Constraints",
		"两数之和,返回目标和的下标,Easy,数组,\"array, hash\",输入 [2 7 11 15],n <= 10^4",
		"反转链表,原地反转单链表,Medium,链表,linked-list,,",
	}, "\n")

	questions, err := svc.ParseUpload([]byte(csvData), "questions.csv")
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, "两数之和", questions[0].Title)
	assert.Equal(t, "返回目标和的下标", questions[0].Description)
	assert.Equal(t, "Easy", questions[0].Difficulty)
	assert.Equal(t, "数组", questions[0].Category)
	assert.Equal(t, []string{"array", "hash"}, questions[0].Tags)
	assert.Equal(t, "输入 [2 7 11 15]", questions[0].Example)
	assert.Equal(t, "n <= 10^4", questions[0].Constraints)

	assert.Equal(t, "反转链表", questions[1].Title)
	assert.Equal(t, []string{"linked-list"}, questions[1].Tags)
}

func TestParseUploadCSVWithBOM(t *testing.T) {
	svc := NewImportService()
	// Excel "CSV UTF-8" 导出：文件开头带 BOM
	csvData := strings.Join([]string{
		"title,description",
		"两数之和,返回目标和的下标",
	}, "\n")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(csvData)...)

	questions, err := svc.ParseUpload(data, "excel-export.csv")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "两数之和", questions[0].Title)
	assert.Equal(t, "返回目标和的下标", questions[0].Description)
}

func TestParseUploadHeaderSynonyms(t *testing.T) {
	svc := NewImportService()
	// 同义表头 + 大小写与首尾空白都应命中
	csvData := strings.Join([]string{
		" Question , Problem Statement ,LEVEL,Topic,Tag",
		"题目A,描述A,Hard,图论,\"dfs,bfs\"",
	}, "\n")

	questions, err := svc.ParseUpload([]byte(csvData), "upload.csv")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "题目A", questions[0].Title)
	assert.Equal(t, "描述A", questions[0].Description)
	assert.Equal(t, "Hard", questions[0].Difficulty)
	assert.Equal(t, "图论", questions[0].Category)
	assert.Equal(t, []string{"dfs", "bfs"}, questions[0].Tags)
}

func TestParseUploadSkipsInvalidRows(t *testing.T) {
	svc := NewImportService()
	csvData := strings.Join([]string{
		"title,description",
		"有效题目,有描述",
		",缺标题",
		"缺描述,",
		"   ,   ",
		"另一道有效题,也有描述",
	}, "\n")

	questions, err := svc.ParseUpload([]byte(csvData), "mixed.csv")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "有效题目", questions[0].Title)
	assert.Equal(t, "另一道有效题", questions[1].Title)
}

func TestParseUploadAssignsUniquePlaceholderIDs(t *testing.T) {
	svc := NewImportService()
	csvData := strings.Join([]string{
		"title,description",
		"题目1,描述1",
		"题目2,描述2",
		"题目3,描述3",
	}, "\n")

	questions, err := svc.ParseUpload([]byte(csvData), "batch.csv")
	require.NoError(t, err)
	require.Len(t, questions, 3)

	seen := make(map[string]bool)
	for _, q := range questions {
		assert.True(t, q.IsNewImport(), "占位ID应带 %s 前缀: %s", model.NewQuestionIDPrefix, q.ID)
		assert.False(t, seen[q.ID], "占位ID重复: %s", q.ID)
		seen[q.ID] = true
	}
}

func TestParseUploadMissingOptionalColumns(t *testing.T) {
	svc := NewImportService()
	csvData := strings.Join([]string{
		"title,description",
		"只有必填列,也能导入",
	}, "\n")

	questions, err := svc.ParseUpload([]byte(csvData), "minimal.csv")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Empty(t, questions[0].Difficulty)
	assert.Nil(t, questions[0].Tags)
}

func TestParseUploadEmptyTagsCell(t *testing.T) {
	svc := NewImportService()
	csvData := strings.Join([]string{
		"title,description,tags",
		"题目,描述,",
	}, "\n")

	questions, err := svc.ParseUpload([]byte(csvData), "tags.csv")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.NotNil(t, questions[0].Tags)
	assert.Empty(t, questions[0].Tags)
}

func TestParseUploadUnsupportedExtension(t *testing.T) {
	svc := NewImportService()

	_, err := svc.ParseUpload([]byte("whatever"), "questions.pdf")
	assert.ErrorIs(t, err, util.ErrUnsupportedFormat)
}

func TestParseUploadNoValidQuestions(t *testing.T) {
	svc := NewImportService()

	_, err := svc.ParseUpload([]byte("title,description\n,\n"), "empty.csv")
	assert.ErrorIs(t, err, util.ErrNoValidQuestions)

	// 只有表头也算无有效题目
	_, err = svc.ParseUpload([]byte("title,description"), "header-only.csv")
	assert.ErrorIs(t, err, util.ErrNoValidQuestions)
}

func TestParseUploadRaggedRows(t *testing.T) {
	svc := NewImportService()
	// 短行缺失的列按空值处理，不报错
	csvData := strings.Join([]string{
		"title,description,difficulty,tags",
		"短行题目,只有两列",
		"完整题目,四列齐全,Hard,\"dp,greedy\"",
	}, "\n")

	questions, err := svc.ParseUpload([]byte(csvData), "ragged.csv")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Empty(t, questions[0].Difficulty)
	assert.Equal(t, "Hard", questions[1].Difficulty)
}

func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, cell))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestParseUploadXLSX(t *testing.T) {
	svc := NewImportService()
	data := buildWorkbook(t, [][]string{
		{"Title", "Description", "Difficulty", "Tags"},
		{"表格题目", "来自工作簿", "Medium", "excel, import"},
		{"", "没标题的行", "Easy", ""},
	})

	questions, err := svc.ParseUpload(data, "questions.xlsx")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "表格题目", questions[0].Title)
	assert.Equal(t, "来自工作簿", questions[0].Description)
	assert.Equal(t, "Medium", questions[0].Difficulty)
	assert.Equal(t, []string{"excel", "import"}, questions[0].Tags)
}

func TestParseUploadCorruptWorkbook(t *testing.T) {
	svc := NewImportService()

	_, err := svc.ParseUpload([]byte("not a zip archive"), "broken.xlsx")
	assert.Error(t, err)
}
