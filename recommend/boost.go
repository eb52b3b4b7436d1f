package recommend

import "ai_tool_directory/models"

// 行为事件权重
const (
	weightView             = 1
	weightBookmark         = 3
	weightWorkflowComplete = 5
)

const (
	behaviorBoostPerWeight = 0.1
	maxBehaviorBoost       = 0.3
)

// InteractionEvent 从画像交互集合展开的一条行为事件
type InteractionEvent struct {
	ItemID string
	Action models.ActionKind
	Weight int
}

// EventsFromProfile 把画像的三个交互集合展开成带权重的事件列表
func EventsFromProfile(profile *models.UserProfile) []InteractionEvent {
	events := make([]InteractionEvent, 0,
		len(profile.ToolsViewed)+len(profile.ToolsBookmarked)+len(profile.WorkflowsCompleted))
	for _, id := range profile.ToolsViewed {
		events = append(events, InteractionEvent{ItemID: id, Action: models.ActionView, Weight: weightView})
	}
	for _, id := range profile.ToolsBookmarked {
		events = append(events, InteractionEvent{ItemID: id, Action: models.ActionBookmark, Weight: weightBookmark})
	}
	// 工作流标识与工具标识不在同一命名空间，这些事件实际上不会命中任何工具
	for _, id := range profile.WorkflowsCompleted {
		events = append(events, InteractionEvent{ItemID: id, Action: models.ActionWorkflowComplete, Weight: weightWorkflowComplete})
	}
	return events
}

// BehaviorBoost min(0.3, Σ weight·0.1)，只统计标识与该工具相同的事件
func BehaviorBoost(toolID string, events []InteractionEvent) float64 {
	total := 0
	for _, e := range events {
		if e.ItemID == toolID {
			total += e.Weight
		}
	}
	return min(maxBehaviorBoost, float64(total)*behaviorBoostPerWeight)
}

// RatingBoost 按同分类历史评分的均值给出加减分
// ratings 需已带上分类（见 categorizeRatings）
func RatingBoost(category string, ratings []models.RatingRecord) float64 {
	sum, n := 0, 0
	for _, r := range ratings {
		if r.Category == category {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}

	mean := float64(sum) / float64(n)
	switch {
	case mean >= 4:
		return 0.2
	case mean >= 3:
		return 0.1
	case mean < 2:
		return -0.2
	default:
		return 0
	}
}

// categorizeRatings 从目录复制评分对应工具的分类，未知工具归入通用分类
func categorizeRatings(ratings []models.RatingRecord, byID map[string]models.ToolRecord) []models.RatingRecord {
	out := make([]models.RatingRecord, len(ratings))
	for i, r := range ratings {
		r.Category = models.DefaultCategory
		if t, ok := byID[r.ToolID]; ok {
			r.Category = categoryOf(t)
		}
		out[i] = r
	}
	return out
}
