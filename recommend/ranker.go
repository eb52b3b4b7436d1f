package recommend

import (
	"sort"

	"ai_tool_directory/models"
)

const (
	// InclusionThreshold 进入推荐列表的最低分（严格大于）
	InclusionThreshold = 0.3
	// MaxRecommendedTools 推荐工具数量上限
	MaxRecommendedTools = 10
)

// scored 排序过程中的中间结果，保留工具本身供后续生成理由
type scored struct {
	tool    models.ToolRecord
	factors models.MatchFactors
	score   float64
}

// FinalScore min(1, base + behavior + rating)
// 不做下限截断：最低基础分约 0.26，减去 0.2 后仍为正，且会被阈值过滤
func FinalScore(base, behaviorBoost, ratingBoost float64) float64 {
	return min(1.0, base+behaviorBoost+ratingBoost)
}

// rank 对整个目录打分、过滤、稳定排序并截断
// 同分时保持目录原始顺序，保证相同输入得到相同输出
func rank(catalog []models.ToolRecord, profile *models.UserProfile, events []InteractionEvent, ratings []models.RatingRecord) []scored {
	results := make([]scored, 0, len(catalog))
	for _, tool := range catalog {
		factors := ScoreFactors(tool, profile)
		score := FinalScore(
			BaseScore(factors),
			BehaviorBoost(tool.ID, events),
			RatingBoost(categoryOf(tool), ratings),
		)
		if score <= InclusionThreshold {
			continue
		}
		results = append(results, scored{tool: tool, factors: factors, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if len(results) > MaxRecommendedTools {
		results = results[:MaxRecommendedTools]
	}
	return results
}

// Rank 返回排序后的推荐工具（含匹配因子，不含理由）
func Rank(catalog []models.ToolRecord, profile *models.UserProfile, ratings []models.RatingRecord) []models.ToolRecommendation {
	byID := indexCatalog(catalog)
	ranked := rank(catalog, profile, EventsFromProfile(profile), categorizeRatings(ratings, byID))

	recs := make([]models.ToolRecommendation, 0, len(ranked))
	for _, s := range ranked {
		recs = append(recs, toRecommendation(s, nil))
	}
	return recs
}

func toRecommendation(s scored, reasons []string) models.ToolRecommendation {
	return models.ToolRecommendation{
		ToolID:       s.tool.ID,
		ToolName:     s.tool.Name,
		Score:        s.score,
		Reasons:      reasons,
		Category:     categoryOf(s.tool),
		MatchFactors: s.factors,
	}
}

func indexCatalog(catalog []models.ToolRecord) map[string]models.ToolRecord {
	byID := make(map[string]models.ToolRecord, len(catalog))
	for _, t := range catalog {
		byID[t.ID] = t
	}
	return byID
}

func categoryOf(t models.ToolRecord) string {
	if t.Category == "" {
		return models.DefaultCategory
	}
	return t.Category
}
