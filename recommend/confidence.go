package recommend

import "ai_tool_directory/models"

const (
	confidenceBase            = 0.5
	confidenceProfileWeight   = 0.3
	confidencePerBehavior     = 0.02
	confidenceBehaviorCap     = 0.15
	confidencePerRating       = 0.03
	confidenceRatingCap       = 0.15
	profileCompletenessFields = 5
)

// ProfileCompleteness 五个可选画像字段中已填写的比例
func ProfileCompleteness(p *models.UserProfile) float64 {
	filled := 0
	for _, set := range []bool{
		p.JobRole != "",
		p.Industry != "",
		p.CompanySize != "",
		p.ExperienceLevel != "",
		p.BudgetRange != "",
	} {
		if set {
			filled++
		}
	}
	return float64(filled) / profileCompletenessFields
}

// Confidence 对整个推荐列表的置信度，下限 0.5，上限 1.0
func Confidence(p *models.UserProfile, behaviorCount, ratingCount int) float64 {
	c := confidenceBase +
		confidenceProfileWeight*ProfileCompleteness(p) +
		min(confidenceBehaviorCap, float64(behaviorCount)*confidencePerBehavior) +
		min(confidenceRatingCap, float64(ratingCount)*confidencePerRating)
	return min(1.0, c)
}
