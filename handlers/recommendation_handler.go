package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ai_tool_directory/models"
	"ai_tool_directory/utils"
)

// GetUserRecommendationHandler godoc
// @Summary 获取指定用户的推荐
// @Description 默认返回最近一次保存的推荐（没有时即时生成）；refresh=true 时重新计算并保存
// @Tags 推荐
// @Accept json
// @Produce json
// @Param userId path string true "用户ID"
// @Param refresh query bool false "是否重新计算"
// @Success 200 {object} models.RecommendationResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/recommendation/{userId} [get]
func (h *Handler) GetUserRecommendationHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	refresh := false
	if raw := r.URL.Query().Get("refresh"); raw != "" {
		var err error
		if refresh, err = strconv.ParseBool(raw); err != nil {
			utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, "refresh must be a boolean", map[string]interface{}{})
			return
		}
	}

	result, err := h.recommendations.GetRecommendations(r.Context(), userID, refresh)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeRecommendGenError)
		return
	}
	utils.WriteSuccessResponse(w, result)
}

// GenerateUserRecommendationHandler godoc
// @Summary 为指定用户重新生成推荐
// @Description 根据画像、行为和评分重新计算推荐并替换已保存的结果
// @Tags 推荐
// @Accept json
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} models.RecommendationResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/recommendation/generate/{userId} [post]
func (h *Handler) GenerateUserRecommendationHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	result, err := h.recommendations.GenerateRecommendations(r.Context(), userID)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeRecommendGenError)
		return
	}
	utils.WriteSuccessResponse(w, result)
}

// GenerateAllRecommendationsHandler godoc
// @Summary 为所有用户生成推荐
// @Description 在后台为所有有画像的用户重新生成推荐，立即返回
// @Tags 推荐
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Failure 500 {object} models.APIResponse "已有任务在运行"
// @Router /api/recommendation/generate [post]
func (h *Handler) GenerateAllRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	if !h.startBatch() {
		utils.WriteCustomErrorResponse(w, models.CodeRecommendGenError, "recommendation generation already running", map[string]interface{}{})
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"message":     "Recommendation generation started for all users",
		"concurrency": h.cfg.Cron.Concurrency,
	})
}
