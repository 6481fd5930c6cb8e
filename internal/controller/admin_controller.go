package controller

import (
	"codestreak_backend/internal/service"
	"codestreak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAdminController(authService *service.AuthService, userService *service.UserService) *AdminController {
	return &AdminController{
		AuthService: authService,
		UserService: userService,
	}
}

// AdminLoginRequest 管理员登录请求
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 管理员登录
// @Description bcrypt 哈希校验，通过后签发 JWT
// @Tags 管理后台
// @Accept json
// @Produce json
// @Param body body AdminLoginRequest true "登录凭据"
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response "凭据无效"
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.AdminLogin(req.Email, req.Password)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"success": true,
		"token":   token,
		"admin":   gin.H{"email": req.Email},
	})
}

// GetUsers godoc
// @Summary 学员列表
// @Description 档案与进度的聚合视图
// @Tags 管理后台
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /admin/users [get]
func (c *AdminController) GetUsers(ctx *gin.Context) {
	users, err := c.UserService.GetAllUsers()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"users": users})
}

// GetStats godoc
// @Summary 全局统计
// @Tags 管理后台
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.SystemStats}
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.UserService.GetSystemStats()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"stats": stats})
}

// UpdateUser godoc
// @Summary 修改学员档案
// @Tags 管理后台
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "用户ID"
// @Param body body service.UserProfileUpdate true "要修改的字段"
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Failure 404 {object} util.Response "用户不存在"
// @Router /admin/users/{id} [put]
func (c *AdminController) UpdateUser(ctx *gin.Context) {
	var update service.UserProfileUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.UserService.UpdateUser(ctx.Param("id"), update)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// DeleteUser godoc
// @Summary 删除学员
// @Description 档案和进度记录一并移除
// @Tags 管理后台
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "用户ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "用户不存在"
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	if err := c.UserService.DeleteUser(ctx.Param("id")); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true})
}
