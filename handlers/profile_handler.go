package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ai_tool_directory/models"
	"ai_tool_directory/utils"
)

// GetUserProfileHandler godoc
// @Summary 获取用户画像
// @Description 获取指定用户的画像和交互记录
// @Tags 用户画像
// @Accept json
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} models.ProfileResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/profile/{userId} [get]
func (h *Handler) GetUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	profile, err := h.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeProfileError)
		return
	}
	utils.WriteSuccessResponse(w, profile)
}

// UpsertUserProfileHandler godoc
// @Summary 创建或更新用户画像
// @Description 设置注册时收集的画像属性，不修改交互记录
// @Tags 用户画像
// @Accept json
// @Produce json
// @Param userId path string true "用户ID"
// @Param body body models.ProfileRequest true "画像"
// @Success 200 {object} models.ProfileResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/profile/{userId} [put]
func (h *Handler) UpsertUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	var req models.ProfileRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}

	profile, err := h.profiles.UpsertProfile(r.Context(), req.ToProfile(userID))
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeProfileError)
		return
	}
	utils.WriteSuccessResponse(w, profile)
}

// ListToolsHandler godoc
// @Summary 工具目录
// @Description 列出目录中的全部工具
// @Tags 工具
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/tools [get]
func (h *Handler) ListToolsHandler(w http.ResponseWriter, r *http.Request) {
	tools, err := h.catalog.AllTools(r.Context())
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"total": len(tools),
		"tools": tools,
	})
}

// GetToolHandler godoc
// @Summary 工具详情
// @Tags 工具
// @Produce json
// @Param toolId path string true "工具ID"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "工具不存在"
// @Router /api/tools/{toolId} [get]
func (h *Handler) GetToolHandler(w http.ResponseWriter, r *http.Request) {
	tool, err := h.catalog.Tool(r.Context(), chi.URLParam(r, "toolId"))
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, tool)
}
