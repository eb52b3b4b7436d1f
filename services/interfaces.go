package services

import (
	"context"

	"ai_tool_directory/models"
)

// ProfileProvider 读取用户画像，不存在时返回 models.ErrProfileNotFound
type ProfileProvider interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// ProfileMutator 把行为并入画像的交互集合，画像不存在时返回 false 且不报错
type ProfileMutator interface {
	ApplyInteraction(ctx context.Context, userID string, action models.ActionKind, itemID string) (bool, error)
}

// ProfileStore 注册设置使用的画像读写
type ProfileStore interface {
	ProfileProvider
	UpsertProfile(ctx context.Context, p *models.UserProfile) error
}

// UserLister 全量重算时列出所有用户
type UserLister interface {
	ListUserIDs(ctx context.Context) ([]string, error)
}

// CatalogProvider 工具目录与工作流池
type CatalogProvider interface {
	AllTools(ctx context.Context) ([]models.ToolRecord, error)
	Workflows(ctx context.Context) ([]models.Workflow, error)
}

// ToolLookup 按标识查找单个工具，不存在时返回 models.ErrToolNotFound
type ToolLookup interface {
	Tool(ctx context.Context, id string) (models.ToolRecord, error)
}

// RatingStore 用户评分
type RatingStore interface {
	RatingsByUser(ctx context.Context, userID string) ([]models.RatingRecord, error)
	SaveRating(ctx context.Context, r models.RatingRecord) error
}

// PersistenceWriter 原子地替换用户的推荐结果
type PersistenceWriter interface {
	SaveRecommendations(ctx context.Context, userID string, rows []models.RecommendationRow) error
}

// RecommendationReader 读取最近一次持久化的推荐行，没有时返回空切片
type RecommendationReader interface {
	LatestRecommendations(ctx context.Context, userID string) ([]models.RecommendationRow, error)
}

// RecommendationStore 推荐结果的读写
type RecommendationStore interface {
	PersistenceWriter
	RecommendationReader
}
