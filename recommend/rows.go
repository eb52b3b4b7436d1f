package recommend

import (
	"fmt"

	"ai_tool_directory/models"

	"github.com/google/uuid"
)

// UnknownToolName 推荐行引用的工具已不在目录中时使用的占位名称
const UnknownToolName = "Unknown Tool"

// Rows 把一次推荐结果展开成持久化行：先工具后工作流，共用同一个 run id
func Rows(result *models.PersonalizedRecommendationResult, catalog []models.ToolRecord, pool []models.Workflow) []models.RecommendationRow {
	runID := uuid.NewString()
	byID := indexCatalog(catalog)
	workflowsByID := make(map[string]models.Workflow, len(pool))
	for _, w := range pool {
		workflowsByID[w.ID] = w
	}

	rows := make([]models.RecommendationRow, 0, len(result.RecommendedTools)+len(result.RecommendedWorkflows))
	for i, t := range result.RecommendedTools {
		factors := t.MatchFactors
		tags := []string{t.Category}
		if tool, ok := byID[t.ToolID]; ok {
			tags = tool.ContextTags()
		}
		rows = append(rows, models.RecommendationRow{
			ID:                 uuid.NewString(),
			RunID:              runID,
			UserID:             result.UserID,
			RecommendationType: models.RecommendationTool,
			ItemID:             t.ToolID,
			Score:              t.Score,
			Reasoning:          models.JoinReasons(t.Reasons),
			ContextTags:        tags,
			Position:           i,
			MatchFactors:       &factors,
			GeneratedAt:        result.GeneratedAt,
		})
	}

	for i, w := range result.RecommendedWorkflows {
		wf := workflowsByID[w.WorkflowID]
		rows = append(rows, models.RecommendationRow{
			ID:                 uuid.NewString(),
			RunID:              runID,
			UserID:             result.UserID,
			RecommendationType: models.RecommendationWorkflow,
			ItemID:             w.WorkflowID,
			Score:              w.Score,
			Reasoning:          "Combines tools recommended for you",
			ContextTags:        append([]string{}, wf.Tools...),
			Position:           i,
			GeneratedAt:        result.GeneratedAt,
		})
	}
	return rows
}

// Reconstruct 从最近一次持久化的行还原推荐结果
// 目录中已删除的工具使用占位名称；置信度近似为所有行分数的均值
func Reconstruct(userID string, rows []models.RecommendationRow, catalog []models.ToolRecord, pool []models.Workflow) *models.PersonalizedRecommendationResult {
	if len(rows) == 0 {
		return nil
	}

	byID := indexCatalog(catalog)
	workflowsByID := make(map[string]models.Workflow, len(pool))
	for _, w := range pool {
		workflowsByID[w.ID] = w
	}

	result := &models.PersonalizedRecommendationResult{
		UserID:               userID,
		RecommendedTools:     make([]models.ToolRecommendation, 0, len(rows)),
		RecommendedWorkflows: make([]models.WorkflowRecommendation, 0, MaxRecommendedWorkflows),
		GeneratedAt:          rows[0].GeneratedAt,
	}

	total := 0.0
	for _, row := range rows {
		total += row.Score
		if row.GeneratedAt.After(result.GeneratedAt) {
			result.GeneratedAt = row.GeneratedAt
		}

		switch row.RecommendationType {
		case models.RecommendationTool:
			rec := models.ToolRecommendation{
				ToolID:   row.ItemID,
				ToolName: UnknownToolName,
				Score:    row.Score,
				Reasons:  models.SplitReasons(row.Reasoning),
				Category: models.DefaultCategory,
			}
			if tool, ok := byID[row.ItemID]; ok {
				rec.ToolName = tool.Name
				rec.Category = categoryOf(tool)
			}
			if row.MatchFactors != nil {
				rec.MatchFactors = *row.MatchFactors
			}
			if len(rec.Reasons) == 0 {
				rec.Reasons = []string{FallbackReason}
			}
			result.RecommendedTools = append(result.RecommendedTools, rec)
		case models.RecommendationWorkflow:
			name := row.ItemID
			if wf, ok := workflowsByID[row.ItemID]; ok {
				name = wf.Name
			}
			result.RecommendedWorkflows = append(result.RecommendedWorkflows, models.WorkflowRecommendation{
				WorkflowID: row.ItemID,
				Name:       name,
				Score:      row.Score,
			})
		}
	}

	result.ConfidenceScore = total / float64(len(rows))
	result.Explanation = fmt.Sprintf("Your latest recommendations: %d %s and %d %s.",
		len(result.RecommendedTools), plural(len(result.RecommendedTools), "tool"),
		len(result.RecommendedWorkflows), plural(len(result.RecommendedWorkflows), "workflow"))
	return result
}
