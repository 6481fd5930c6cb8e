package controller

import (
	"fmt"
	"io"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/service"
	"codestreak_backend/internal/util"
	"codestreak_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionController struct {
	QuestionService *service.QuestionService
	ImportService   *service.ImportService
	StorageService  *service.StorageService
}

func NewQuestionController(questionService *service.QuestionService, importService *service.ImportService, storageService *service.StorageService) *QuestionController {
	return &QuestionController{
		QuestionService: questionService,
		ImportService:   importService,
		StorageService:  storageService,
	}
}

// ListQuestions godoc
// @Summary 题库列表
// @Tags 管理后台
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /admin/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	questions, err := c.QuestionService.ListQuestions()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"questions": questions})
}

// SaveQuestionsRequest 批量保存请求
// swagger:model SaveQuestionsRequest
type SaveQuestionsRequest struct {
	Questions []model.Question `json:"questions" binding:"required"`
}

// SaveQuestions godoc
// @Summary 批量保存题目
// @Description 新导入的占位ID分配正式ID，其余按ID覆盖；整批一个事务
// @Tags 管理后台
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SaveQuestionsRequest true "题目列表"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "题目数据不合法"
// @Router /admin/questions [post]
func (c *QuestionController) SaveQuestions(ctx *gin.Context) {
	var req SaveQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	count, err := c.QuestionService.SaveBatch(req.Questions)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"success": true,
		"message": fmt.Sprintf("Successfully saved %d questions", count),
	})
}

// UploadQuestions godoc
// @Summary 上传题目表格
// @Description 解析 CSV/XLSX 文件为题目列表（未入库）；解析成功后原始文件异步留档
// @Tags 管理后台
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "CSV 或 XLSX 文件"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "格式不支持或无有效题目"
// @Router /admin/upload-questions [post]
func (c *QuestionController) UploadQuestions(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile(util.UploadFileField)
	if err != nil {
		util.BadRequest(ctx, "No file uploaded")
		return
	}

	// 先按扩展名拦截，避免白读大文件
	if _, err := util.ValidateUploadExtension(fileHeader.Filename); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	questions, err := c.ImportService.ParseUpload(data, fileHeader.Filename)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	// 留档失败只记日志，不影响导入结果
	contentType := fileHeader.Header.Get("Content-Type")
	if _, err := c.StorageService.ArchiveUpload(ctx.Request.Context(), fileHeader.Filename, data, contentType); err != nil {
		logger.Log.Warn("failed to archive uploaded file",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
	}

	util.Success(ctx, gin.H{
		"success":   true,
		"questions": questions,
		"count":     len(questions),
	})
}
