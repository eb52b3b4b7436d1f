package handlers

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"ai_tool_directory/config"
	"ai_tool_directory/logger"
	"ai_tool_directory/models"
	"ai_tool_directory/services"
)

// ToolCatalog 目录查询接口
type ToolCatalog interface {
	AllTools(ctx context.Context) ([]models.ToolRecord, error)
	Tool(ctx context.Context, id string) (models.ToolRecord, error)
}

// Handler 持有各服务，实现所有 HTTP 接口
type Handler struct {
	cfg             *config.Config
	recommendations *services.RecommendationService
	behavior        *services.BehaviorService
	ratings         *services.RatingService
	profiles        *services.ProfileService
	catalog         ToolCatalog

	// 全量重算在后台执行，同一时间只允许一个
	batchRunning atomic.Bool
	batchWG      sync.WaitGroup
	log          *slog.Logger
}

// Deps 创建 Handler 所需的依赖
type Deps struct {
	Recommendations *services.RecommendationService
	Behavior        *services.BehaviorService
	Ratings         *services.RatingService
	Profiles        *services.ProfileService
	Catalog         ToolCatalog
}

// NewHandler 创建 Handler
func NewHandler(cfg *config.Config, deps Deps) *Handler {
	return &Handler{
		cfg:             cfg,
		recommendations: deps.Recommendations,
		behavior:        deps.Behavior,
		ratings:         deps.Ratings,
		profiles:        deps.Profiles,
		catalog:         deps.Catalog,
		log:             logger.With("component", "http"),
	}
}

// Wait 等待后台的全量重算结束
func (h *Handler) Wait() {
	h.batchWG.Wait()
}

// startBatch 在后台为所有用户重算推荐；已有任务在运行时返回 false
func (h *Handler) startBatch() bool {
	if !h.batchRunning.CompareAndSwap(false, true) {
		return false
	}

	h.batchWG.Add(1)
	go func() {
		defer h.batchWG.Done()
		defer h.batchRunning.Store(false)

		summary, err := h.recommendations.GenerateRecommendationsForAllUsers(context.Background(), h.cfg.Cron.Concurrency)
		if err != nil {
			h.log.Error("全量生成推荐失败", "error", err)
			return
		}
		h.log.Info("全量生成推荐完成", "completed", summary.Completed, "failed", summary.Failed)
	}()
	return true
}
