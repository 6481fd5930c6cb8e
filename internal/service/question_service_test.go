package service

import (
	"testing"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/repository/memory"
	"codestreak_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveBatchAssignsRealIDsToImports(t *testing.T) {
	store := memory.NewQuestionStore()
	svc := NewQuestionService(store)

	count, err := svc.SaveBatch([]model.Question{
		{ID: model.NewImportedQuestionID(), Title: "新题目", Description: "描述"},
		{Title: "无ID题目", Description: "描述"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	saved, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, q := range saved {
		assert.NotEmpty(t, q.ID)
		assert.False(t, q.IsNewImport(), "入库后不应保留占位ID: %s", q.ID)
	}
}

func TestSaveBatchUpsertsByExistingID(t *testing.T) {
	store := memory.NewQuestionStore().Seed(model.Question{
		ID: "q1", Title: "旧标题", Description: "旧描述",
	})
	svc := NewQuestionService(store)

	count, err := svc.SaveBatch([]model.Question{
		{ID: "q1", Title: "新标题", Description: "新描述", Difficulty: "Hard"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	saved, err := store.GetByID("q1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "新标题", saved.Title)
	assert.Equal(t, "Hard", saved.Difficulty)

	all, err := store.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveBatchRejectsEmptyList(t *testing.T) {
	svc := NewQuestionService(memory.NewQuestionStore())

	_, err := svc.SaveBatch(nil)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestSaveBatchRejectsInvalidQuestion(t *testing.T) {
	store := memory.NewQuestionStore()
	svc := NewQuestionService(store)

	// 第二条非法，整批拒绝
	_, err := svc.SaveBatch([]model.Question{
		{Title: "合法", Description: "描述"},
		{Title: "   ", Description: "描述"},
	})
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	all, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListQuestionsPreservesOrder(t *testing.T) {
	store := memory.NewQuestionStore().Seed(
		model.Question{ID: "a", Title: "A", Description: "d"},
		model.Question{ID: "b", Title: "B", Description: "d"},
		model.Question{ID: "c", Title: "C", Description: "d"},
	)
	svc := NewQuestionService(store)

	questions, err := svc.ListQuestions()
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, "a", questions[0].ID)
	assert.Equal(t, "c", questions[2].ID)
}
