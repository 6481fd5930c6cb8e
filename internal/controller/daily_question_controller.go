package controller

import (
	"time"

	"codestreak_backend/internal/service"
	"codestreak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DailyQuestionController struct {
	DailyQuestionService *service.DailyQuestionService
}

func NewDailyQuestionController(dailyQuestionService *service.DailyQuestionService) *DailyQuestionController {
	return &DailyQuestionController{DailyQuestionService: dailyQuestionService}
}

// GetDailyQuestion godoc
// @Summary 获取今日题目
// @Description 返回当天固定的题目；当天尚未指派时随机选一道并固定，题库为空时 question 为 null
// @Tags 学生
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Failure 503 {object} util.Response "存储不可用"
// @Router /student/daily-question [get]
func (c *DailyQuestionController) GetDailyQuestion(ctx *gin.Context) {
	question, err := c.DailyQuestionService.GetDailyQuestion(time.Now())
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"question": question})
}
