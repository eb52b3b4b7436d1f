package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ai_tool_directory/logger"
	"ai_tool_directory/metrics"
	"ai_tool_directory/models"
)

// BehaviorService 记录用户行为，下一次生成推荐时生效
type BehaviorService struct {
	mutator ProfileMutator
	log     *slog.Logger
}

// NewBehaviorService 创建行为服务
func NewBehaviorService(mutator ProfileMutator) *BehaviorService {
	return &BehaviorService{mutator: mutator, log: logger.With("component", "behavior")}
}

// TrackBehavior 把一次 view / bookmark / workflow_complete 并入画像
// 画像不存在时静默忽略；未知行为或缺少标识返回 models.ErrInvalidBehavior
func (s *BehaviorService) TrackBehavior(ctx context.Context, userID string, action models.ActionKind, payload models.BehaviorPayload) error {
	if !action.Valid() {
		return fmt.Errorf("%w: unknown action %q", models.ErrInvalidBehavior, action)
	}
	itemID := strings.TrimSpace(payload.ItemID(action))
	if itemID == "" {
		return fmt.Errorf("%w: missing item id for %s", models.ErrInvalidBehavior, action)
	}

	applied, err := s.mutator.ApplyInteraction(ctx, userID, action, itemID)
	if err != nil {
		return fmt.Errorf("track %s for %s: %w", action, userID, err)
	}
	metrics.RecordBehavior(string(action), applied)

	if !applied {
		s.log.Debug("Profile not found, behavior ignored", "user_id", userID, "action", action, "item_id", itemID)
		return nil
	}
	s.log.Debug("Behavior tracked", "user_id", userID, "action", action, "item_id", itemID)
	return nil
}
