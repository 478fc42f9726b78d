package controller

import (
	"errors"

	"github.com/antikleya/USEHelper/internal/service"
	"github.com/antikleya/USEHelper/internal/util"
	"github.com/gin-gonic/gin"
)

type ThemeController struct {
	ThemeService *service.ThemeService
}

func NewThemeController(themeService *service.ThemeService) *ThemeController {
	return &ThemeController{ThemeService: themeService}
}

func themeErrorResponse(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSubjectNotFound), errors.Is(err, util.ErrThemeNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary 创建主题
// @Tags 主题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId path int true "科目ID"
// @Param body body service.ThemeRequest true "主题信息"
// @Success 201 {object} util.Response
// @Router /api/subjects/{subjectId}/themes [post]
func (c *ThemeController) CreateTheme(ctx *gin.Context) {
	subjectID := util.MustParseUint(ctx.Param("subjectId"))

	var req service.ThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	theme, err := c.ThemeService.CreateTheme(subjectID, req)
	if err != nil {
		themeErrorResponse(ctx, err)
		return
	}

	util.Created(ctx, theme)
}

// @Summary 获取科目下的主题列表
// @Tags 主题
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId path int true "科目ID"
// @Success 200 {object} util.Response
// @Router /api/subjects/{subjectId}/themes [get]
func (c *ThemeController) ListThemes(ctx *gin.Context) {
	subjectID := util.MustParseUint(ctx.Param("subjectId"))

	themes, err := c.ThemeService.ListThemes(subjectID)
	if err != nil {
		themeErrorResponse(ctx, err)
		return
	}

	util.Success(ctx, themes)
}

// @Summary 获取主题详情
// @Tags 主题
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId path int true "科目ID"
// @Param themeId path int true "主题ID"
// @Success 200 {object} util.Response
// @Router /api/subjects/{subjectId}/themes/{themeId} [get]
func (c *ThemeController) GetTheme(ctx *gin.Context) {
	subjectID := util.MustParseUint(ctx.Param("subjectId"))
	themeID := util.MustParseUint(ctx.Param("themeId"))

	theme, err := c.ThemeService.GetTheme(subjectID, themeID)
	if err != nil {
		themeErrorResponse(ctx, err)
		return
	}

	util.Success(ctx, theme)
}

// @Summary 更新主题
// @Tags 主题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId path int true "科目ID"
// @Param themeId path int true "主题ID"
// @Param body body service.ThemeRequest true "主题信息"
// @Success 200 {object} util.Response
// @Router /api/subjects/{subjectId}/themes/{themeId} [put]
func (c *ThemeController) UpdateTheme(ctx *gin.Context) {
	subjectID := util.MustParseUint(ctx.Param("subjectId"))
	themeID := util.MustParseUint(ctx.Param("themeId"))

	var req service.ThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	theme, err := c.ThemeService.UpdateTheme(subjectID, themeID, req)
	if err != nil {
		themeErrorResponse(ctx, err)
		return
	}

	util.Success(ctx, theme)
}

// @Summary 删除主题
// @Tags 主题
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId path int true "科目ID"
// @Param themeId path int true "主题ID"
// @Success 200 {object} util.Response
// @Router /api/subjects/{subjectId}/themes/{themeId} [delete]
func (c *ThemeController) DeleteTheme(ctx *gin.Context) {
	subjectID := util.MustParseUint(ctx.Param("subjectId"))
	themeID := util.MustParseUint(ctx.Param("themeId"))

	if err := c.ThemeService.DeleteTheme(subjectID, themeID); err != nil {
		themeErrorResponse(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": themeID})
}
