package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ai_tool_directory/models"
	"ai_tool_directory/utils"
)

// TrackBehaviorHandler godoc
// @Summary 上报用户行为
// @Description 记录浏览、收藏工具或完成工作流，下一次生成推荐时生效；用户没有画像时忽略
// @Tags 行为
// @Accept json
// @Produce json
// @Param userId path string true "用户ID"
// @Param body body models.BehaviorRequest true "行为"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/behavior/{userId} [post]
func (h *Handler) TrackBehaviorHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	var req models.BehaviorRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}

	action := models.ActionKind(req.Action)
	payload := models.BehaviorPayload{ToolID: req.ToolID, WorkflowID: req.WorkflowID}
	if err := h.behavior.TrackBehavior(r.Context(), userID, action, payload); err != nil {
		utils.HandleServiceError(w, err, models.CodeDatabaseError)
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"user_id": userID,
		"action":  req.Action,
		"item_id": payload.ItemID(action),
	})
}

// RateToolHandler godoc
// @Summary 为工具评分
// @Description 记录 1-5 分评分，同一用户对同一工具的评分会被覆盖
// @Tags 评分
// @Accept json
// @Produce json
// @Param userId path string true "用户ID"
// @Param body body models.RatingRequest true "评分"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/rating/{userId} [post]
func (h *Handler) RateToolHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	var req models.RatingRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}

	if err := h.ratings.RateTool(r.Context(), userID, req.ToolID, req.Rating, req.Review); err != nil {
		utils.HandleServiceError(w, err, models.CodeDatabaseError)
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"user_id": userID,
		"tool_id": req.ToolID,
		"rating":  req.Rating,
	})
}
