// Package recommend 实现基于画像规则的个性化工具推荐
//
// 所有函数都是纯计算：数据由调用方从画像、目录、评分等协作方取好后传入，
// 引擎内部没有共享可变状态，可以对不同用户并发调用。
package recommend

import (
	"time"

	"ai_tool_directory/models"
)

// Input 一次推荐生成所需的全部数据快照
type Input struct {
	Profile   *models.UserProfile
	Catalog   []models.ToolRecord
	Workflows []models.Workflow
	Ratings   []models.RatingRecord
}

// Engine 推荐引擎，Now 仅用于 GeneratedAt
type Engine struct {
	Now func() time.Time
}

// NewEngine 使用系统时钟创建引擎
func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

// Generate 运行完整流程：打分 → 加成 → 排序 → 理由 → 置信度 → 工作流
func (e *Engine) Generate(in Input) *models.PersonalizedRecommendationResult {
	profile := in.Profile
	byID := indexCatalog(in.Catalog)
	events := EventsFromProfile(profile)
	ratings := categorizeRatings(in.Ratings, byID)

	ranked := rank(in.Catalog, profile, events, ratings)
	tools := make([]models.ToolRecommendation, 0, len(ranked))
	for _, s := range ranked {
		tools = append(tools, toRecommendation(s, Reasons(s.tool, s.factors, profile)))
	}

	workflows := SelectWorkflows(in.Workflows, tools)

	return &models.PersonalizedRecommendationResult{
		UserID:               profile.UserID,
		RecommendedTools:     tools,
		RecommendedWorkflows: workflows,
		ConfidenceScore:      Confidence(profile, len(events), len(in.Ratings)),
		Explanation:          Summary(profile, len(tools), len(workflows)),
		GeneratedAt:          e.now(),
	}
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
