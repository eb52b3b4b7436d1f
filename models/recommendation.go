package models

import (
	"strings"
	"time"
)

// MatchFactors 五个独立的匹配因子，取值 [0,1]
type MatchFactors struct {
	RoleMatch       float64 `json:"roleMatch"`
	IndustryMatch   float64 `json:"industryMatch"`
	BudgetMatch     float64 `json:"budgetMatch"`
	UseCaseMatch    float64 `json:"useCaseMatch"`
	ExperienceMatch float64 `json:"experienceMatch"`
}

// ToolRecommendation 单个工具的推荐结果
type ToolRecommendation struct {
	ToolID       string       `json:"tool_id"`
	ToolName     string       `json:"tool_name"`
	Score        float64      `json:"score"`
	Reasons      []string     `json:"reasons"`
	Category     string       `json:"category"`
	MatchFactors MatchFactors `json:"match_factors"`
}

// WorkflowRecommendation 推荐的组合工作流
type WorkflowRecommendation struct {
	WorkflowID string  `json:"workflow_id"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
}

// PersonalizedRecommendationResult 一次推荐生成的完整结果
type PersonalizedRecommendationResult struct {
	UserID               string                   `json:"user_id"`
	RecommendedTools     []ToolRecommendation     `json:"recommended_tools"`
	RecommendedWorkflows []WorkflowRecommendation `json:"recommended_workflows"`
	ConfidenceScore      float64                  `json:"confidence_score"`
	Explanation          string                   `json:"explanation"`
	GeneratedAt          time.Time                `json:"generated_at"`
}

// WorkflowIDs 返回推荐工作流的标识列表
func (r *PersonalizedRecommendationResult) WorkflowIDs() []string {
	ids := make([]string, 0, len(r.RecommendedWorkflows))
	for _, w := range r.RecommendedWorkflows {
		ids = append(ids, w.WorkflowID)
	}
	return ids
}

// RecommendationType 持久化行的类型
type RecommendationType string

const (
	RecommendationTool     RecommendationType = "tool"
	RecommendationWorkflow RecommendationType = "workflow"
)

// ReasonSeparator 多条推荐理由写入 reasoning 列时的分隔符
const ReasonSeparator = "; "

// RecommendationRow 推荐结果的持久化行，每个工具/工作流一行
type RecommendationRow struct {
	ID                 string             `json:"id"`
	RunID              string             `json:"run_id"`
	UserID             string             `json:"user_id"`
	RecommendationType RecommendationType `json:"recommendation_type"`
	ItemID             string             `json:"item_id"`
	Score              float64            `json:"score"`
	Reasoning          string             `json:"reasoning"`
	ContextTags        []string           `json:"context_tags"`
	Position           int                `json:"position"`
	MatchFactors       *MatchFactors      `json:"match_factors,omitempty"`
	GeneratedAt        time.Time          `json:"generated_at"`
}

// JoinReasons 合并推荐理由
func JoinReasons(reasons []string) string {
	return strings.Join(reasons, ReasonSeparator)
}

// SplitReasons 拆分 reasoning 列
func SplitReasons(reasoning string) []string {
	if strings.TrimSpace(reasoning) == "" {
		return nil
	}
	parts := strings.Split(reasoning, ReasonSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
