package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codestreak_backend/internal/config"
	"codestreak_backend/internal/middleware"
	"codestreak_backend/internal/model"
	"codestreak_backend/internal/repository/memory"
	"codestreak_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	router    *gin.Engine
	cfg       *config.Config
	questions *memory.QuestionStore
	profiles  *memory.ProfileStore
	progress  *memory.ProgressStore
	admins    *memory.AdminStore
}

// newTestEnv 用内存存储拼出与生产一致的路由，管理员口令固定为 s3cret
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "controller-test-secret", ExpireTime: time.Hour},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
	}

	questions := memory.NewQuestionStore()
	assignments := memory.NewAssignmentStore()
	progress := memory.NewProgressStore()
	profiles := memory.NewProfileStore()
	admins := memory.NewAdminStore()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, admins.Create(&model.AdminUser{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}))

	authService := service.NewAuthService(admins, cfg)
	userService := service.NewUserService(profiles, progress)
	questionService := service.NewQuestionService(questions)
	importService := service.NewImportService()
	storageService := service.NewStorageService(cfg)

	dailyQuestionCtrl := NewDailyQuestionController(service.NewDailyQuestionService(questions, assignments))
	progressCtrl := NewProgressController(service.NewProgressService(progress))
	questionCtrl := NewQuestionController(questionService, importService, storageService)
	adminCtrl := NewAdminController(authService, userService)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/admin/login", adminCtrl.Login)

		student := api.Group("/student")
		{
			student.GET("/daily-question", dailyQuestionCtrl.GetDailyQuestion)
			student.GET("/progress", progressCtrl.GetProgress)
			student.POST("/progress", progressCtrl.RecordCompletion)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(cfg))
		{
			admin.GET("/questions", questionCtrl.ListQuestions)
			admin.POST("/questions", questionCtrl.SaveQuestions)
			admin.POST("/upload-questions", questionCtrl.UploadQuestions)
			admin.GET("/users", adminCtrl.GetUsers)
			admin.PUT("/users/:id", adminCtrl.UpdateUser)
			admin.DELETE("/users/:id", adminCtrl.DeleteUser)
			admin.GET("/stats", adminCtrl.GetStats)
		}
	}

	return &testEnv{
		router:    router,
		cfg:       cfg,
		questions: questions,
		profiles:  profiles,
		progress:  progress,
		admins:    admins,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

func (e *testEnv) login(t *testing.T) map[string]string {
	t.Helper()

	w, envelope := e.do(t, http.MethodPost, "/api/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "s3cret",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestDailyQuestionEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.questions.Seed(model.Question{ID: "q1", Title: "每日一题", Description: "描述"})

	w, envelope := env.do(t, http.MethodGet, "/api/student/daily-question", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(200), envelope["code"])
	assert.Equal(t, "success", envelope["message"])

	data := envelope["data"].(map[string]interface{})
	question := data["question"].(map[string]interface{})
	assert.Equal(t, "q1", question["id"])
}

func TestDailyQuestionEndpointEmptyBank(t *testing.T) {
	env := newTestEnv(t)

	w, envelope := env.do(t, http.MethodGet, "/api/student/daily-question", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	assert.Nil(t, data["question"])
}

func TestRecordCompletionEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w, envelope := env.do(t, http.MethodPost, "/api/student/progress", gin.H{
		"userId":     "u1",
		"questionId": "q1",
		"difficulty": "Easy",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(1), data["streak"])
}

func TestRecordCompletionEndpointMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, http.MethodPost, "/api/student/progress", gin.H{
		"userId": "u1",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProgressEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, http.MethodPost, "/api/student/progress", gin.H{
		"userId": "u1", "questionId": "q1", "difficulty": "Hard",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, envelope := env.do(t, http.MethodGet, "/api/student/progress?userId=u1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["currentStreak"])
	assert.Equal(t, float64(1), data["totalSolved"])

	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["hard"])
}

func TestGetProgressEndpointRequiresUserID(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, http.MethodGet, "/api/student/progress", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, http.MethodPost, "/api/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, http.MethodGet, "/api/admin/users", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/admin/users", nil, map[string]string{
		"Authorization": "Bearer not-a-real-token",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminQuestionsRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	w, _ := env.do(t, http.MethodPost, "/api/admin/questions", gin.H{
		"questions": []gin.H{
			{"id": "q_new_abc", "title": "导入题", "description": "描述"},
			{"id": "q1", "title": "既有题", "description": "描述"},
		},
	}, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w, envelope := env.do(t, http.MethodGet, "/api/admin/questions", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	questions := data["questions"].([]interface{})
	require.Len(t, questions, 2)
	for _, raw := range questions {
		q := raw.(map[string]interface{})
		assert.NotContains(t, q["id"], "q_new_")
	}
}

func TestAdminSaveQuestionsRejectsEmptyTitle(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	w, _ := env.do(t, http.MethodPost, "/api/admin/questions", gin.H{
		"questions": []gin.H{{"title": " ", "description": "描述"}},
	}, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func uploadRequest(t *testing.T, path, filename string, content []byte, headers map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestAdminUploadQuestionsCSV(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	csvData := strings.Join([]string{
		"title,description,difficulty",
		"上传题目,通过接口导入,Easy",
	}, "\n")
	req := uploadRequest(t, "/api/admin/upload-questions", "batch.csv", []byte(csvData), headers)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])

	questions := data["questions"].([]interface{})
	q := questions[0].(map[string]interface{})
	assert.Equal(t, "上传题目", q["title"])
	// 解析结果只返回预览，不直接入库
	all, err := env.questions.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAdminUploadQuestionsUnsupportedFormat(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	req := uploadRequest(t, "/api/admin/upload-questions", "notes.pdf", []byte("pdf"), headers)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUserManagement(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	require.NoError(t, env.profiles.Save(&model.UserProfile{
		UID: "u1", Name: "张三", Email: "zhang@example.com", Status: model.UserActive,
	}))

	w, envelope := env.do(t, http.MethodGet, "/api/admin/users", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]interface{})
	users := data["users"].([]interface{})
	require.Len(t, users, 1)

	w, envelope = env.do(t, http.MethodPut, "/api/admin/users/u1", gin.H{
		"status": "inactive",
	}, headers)
	require.Equal(t, http.StatusOK, w.Code)
	updated := envelope["data"].(map[string]interface{})
	assert.Equal(t, "inactive", updated["status"])

	w, _ = env.do(t, http.MethodDelete, "/api/admin/users/u1", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = env.do(t, http.MethodDelete, "/api/admin/users/u1", nil, headers)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminStatsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	headers := env.login(t)

	require.NoError(t, env.profiles.Save(&model.UserProfile{UID: "u1", Status: model.UserActive}))

	w, envelope := env.do(t, http.MethodGet, "/api/admin/stats", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["totalUsers"])
	assert.Equal(t, float64(45), stats["totalProblems"])
}
