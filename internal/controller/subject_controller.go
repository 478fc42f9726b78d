package controller

import (
	"errors"
	"strconv"

	"github.com/antikleya/USEHelper/internal/service"
	"github.com/antikleya/USEHelper/internal/util"
	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	SubjectService *service.SubjectService
}

func NewSubjectController(subjectService *service.SubjectService) *SubjectController {
	return &SubjectController{SubjectService: subjectService}
}

// @Summary 创建科目
// @Tags 科目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubjectRequest true "科目信息"
// @Success 201 {object} util.Response
// @Router /api/subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req service.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.SubjectService.CreateSubject(req)
	if err != nil {
		if errors.Is(err, util.ErrSubjectExists) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, subject)
}

// @Summary 获取科目列表
// @Tags 科目
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.SubjectService.ListSubjects()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subjects)
}

// @Summary 获取科目详情
// @Tags 科目
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("subjectId"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	subject, err := c.SubjectService.GetSubject(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subject)
}

// @Summary 更新科目
// @Tags 科目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "科目ID"
// @Param body body service.SubjectRequest true "科目信息"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("subjectId"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.SubjectService.UpdateSubject(uint(id), req)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subject)
}

// @Summary 删除科目
// @Tags 科目
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("subjectId"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.SubjectService.DeleteSubject(uint(id)); err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
