package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai_tool_directory/logger"
	"ai_tool_directory/metrics"
	"ai_tool_directory/models"
)

// RatingService 工具评分
type RatingService struct {
	tools   ToolLookup
	ratings RatingStore
	now     func() time.Time
}

// NewRatingService 创建评分服务
func NewRatingService(tools ToolLookup, ratings RatingStore) *RatingService {
	return &RatingService{tools: tools, ratings: ratings, now: time.Now}
}

// RateTool 记录用户对工具的 1-5 星评分，替换之前的评分
func (s *RatingService) RateTool(ctx context.Context, userID, toolID string, rating int, review string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: %d is outside 1-5", models.ErrInvalidRating, rating)
	}
	if _, err := s.tools.Tool(ctx, toolID); err != nil {
		return err
	}

	err := s.ratings.SaveRating(ctx, models.RatingRecord{
		UserID:    userID,
		ToolID:    toolID,
		Rating:    rating,
		Review:    strings.TrimSpace(review),
		CreatedAt: s.now(),
	})
	if err != nil {
		return fmt.Errorf("save rating %s/%s: %w", userID, toolID, err)
	}

	metrics.RecordRating()
	logger.Info("Tool rated", "user_id", userID, "tool_id", toolID, "rating", rating)
	return nil
}

// RatingsByUser 用户的全部评分
func (s *RatingService) RatingsByUser(ctx context.Context, userID string) ([]models.RatingRecord, error) {
	return s.ratings.RatingsByUser(ctx, userID)
}
