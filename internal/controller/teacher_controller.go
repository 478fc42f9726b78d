package controller

import (
	"errors"
	"strconv"

	"github.com/antikleya/USEHelper/internal/service"
	"github.com/antikleya/USEHelper/internal/util"
	"github.com/gin-gonic/gin"
)

type TeacherController struct {
	TeacherService *service.TeacherService
}

func NewTeacherController(teacherService *service.TeacherService) *TeacherController {
	return &TeacherController{TeacherService: teacherService}
}

func teacherErrorResponse(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTeacherNotFound), errors.Is(err, util.ErrThemeNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPhoneRegistered):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary 创建教师
// @Tags 教师
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.TeacherRequest true "教师信息"
// @Success 201 {object} util.Response
// @Router /api/teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req service.TeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	teacher, err := c.TeacherService.CreateTeacher(req)
	if err != nil {
		teacherErrorResponse(ctx, err)
		return
	}

	util.Created(ctx, teacher)
}

// @Summary 获取教师列表
// @Tags 教师
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.TeacherService.ListTeachers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, teachers)
}

// @Summary 获取教师详情
// @Tags 教师
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "教师ID"
// @Success 200 {object} util.Response
// @Router /api/teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	teacher, err := c.TeacherService.GetTeacher(uint(id))
	if err != nil {
		teacherErrorResponse(ctx, err)
		return
	}

	util.Success(ctx, teacher)
}

// @Summary 更新教师
// @Tags 教师
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "教师ID"
// @Param body body service.TeacherRequest true "教师信息"
// @Success 200 {object} util.Response
// @Router /api/teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.TeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	teacher, err := c.TeacherService.UpdateTeacher(uint(id), req)
	if err != nil {
		teacherErrorResponse(ctx, err)
		return
	}

	util.Success(ctx, teacher)
}

// @Summary 删除教师
// @Tags 教师
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "教师ID"
// @Success 200 {object} util.Response
// @Router /api/teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.TeacherService.DeleteTeacher(uint(id)); err != nil {
		teacherErrorResponse(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
