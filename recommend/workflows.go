package recommend

import (
	"sort"

	"ai_tool_directory/models"
)

// MaxRecommendedWorkflows 推荐工作流数量上限
const MaxRecommendedWorkflows = 3

// SelectWorkflows 从固定工作流池里挑选与推荐工具有交集的工作流
// 分数为工作流中出现在推荐列表里的工具占比；同分保持池中顺序
func SelectWorkflows(pool []models.Workflow, tools []models.ToolRecommendation) []models.WorkflowRecommendation {
	recommended := make(map[string]bool, len(tools))
	for _, t := range tools {
		recommended[t.ToolID] = true
	}

	selected := make([]models.WorkflowRecommendation, 0, MaxRecommendedWorkflows)
	for _, w := range pool {
		if len(w.Tools) == 0 {
			continue
		}
		overlap := 0
		for _, id := range w.Tools {
			if recommended[id] {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		selected = append(selected, models.WorkflowRecommendation{
			WorkflowID: w.ID,
			Name:       w.Name,
			Score:      float64(overlap) / float64(len(w.Tools)),
		})
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Score > selected[j].Score
	})
	if len(selected) > MaxRecommendedWorkflows {
		selected = selected[:MaxRecommendedWorkflows]
	}
	return selected
}
