package controller

import (
	"time"

	"codestreak_backend/internal/service"
	"codestreak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// RecordCompletionRequest 完成打卡请求
// swagger:model RecordCompletionRequest
type RecordCompletionRequest struct {
	UserID     string `json:"userId" binding:"required"`
	QuestionID string `json:"questionId" binding:"required"`
	Difficulty string `json:"difficulty"`
}

// RecordCompletion godoc
// @Summary 记录题目完成
// @Description 记录一次完成并返回最新连击数；同一题同一天重复提交为幂等空操作
// @Tags 学生
// @Accept json
// @Produce json
// @Param body body RecordCompletionRequest true "完成信息"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "缺少必填字段"
// @Failure 503 {object} util.Response "存储不可用"
// @Router /student/progress [post]
func (c *ProgressController) RecordCompletion(ctx *gin.Context) {
	var req RecordCompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	streak, err := c.ProgressService.RecordCompletion(req.UserID, req.QuestionID, req.Difficulty, time.Now())
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"success": true,
		"streak":  streak,
	})
}

// GetProgress godoc
// @Summary 查询学习进度
// @Description 返回完成记录、连击数、总解题数和按难度的统计；无记录时返回零值默认
// @Tags 学生
// @Produce json
// @Param userId query string true "用户ID"
// @Success 200 {object} util.Response{data=model.ProgressSummary}
// @Failure 400 {object} util.Response "缺少 userId"
// @Router /student/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	summary, err := c.ProgressService.GetProgress(ctx.Query("userId"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}
