package recommend

import (
	"strings"

	"ai_tool_directory/models"
)

// 基础分权重，合计 1.0
const (
	weightRole       = 0.25
	weightIndustry   = 0.20
	weightBudget     = 0.15
	weightUseCase    = 0.25
	weightExperience = 0.15
)

// 缺失画像字段时的中性分，不做惩罚
const unsetScore = 0.5

const (
	roleMissScore       = 0.3
	industryMissScore   = 0.4
	experienceMissScore = 0.6
)

// ScoreFactors 计算工具相对用户画像的五个匹配因子
func ScoreFactors(tool models.ToolRecord, profile *models.UserProfile) models.MatchFactors {
	labels := tool.Labels()
	return models.MatchFactors{
		RoleMatch:       roleMatch(labels, profile.JobRole),
		IndustryMatch:   industryMatch(labels, profile.Industry),
		BudgetMatch:     budgetMatch(tool.Pricing, profile.BudgetRange),
		UseCaseMatch:    useCaseMatch(labels, profile.PrimaryUseCases),
		ExperienceMatch: experienceMatch(tool.Description, profile.ExperienceLevel),
	}
}

// BaseScore 五个因子的加权和
func BaseScore(f models.MatchFactors) float64 {
	return weightRole*f.RoleMatch +
		weightIndustry*f.IndustryMatch +
		weightBudget*f.BudgetMatch +
		weightUseCase*f.UseCaseMatch +
		weightExperience*f.ExperienceMatch
}

func roleMatch(labels []string, role models.JobRole) float64 {
	if role == "" {
		return unsetScore
	}
	if roleTags[role].intersects(labels) {
		return 1.0
	}
	return roleMissScore
}

func industryMatch(labels []string, industry models.Industry) float64 {
	if industry == "" {
		return unsetScore
	}
	if industryTags[industry].intersects(labels) {
		return 1.0
	}
	return industryMissScore
}

func budgetMatch(pricing models.Pricing, budget models.BudgetRange) float64 {
	if budget == "" {
		return unsetScore
	}
	ceiling, ok := budgetCeilings[budget]
	if !ok {
		return unsetScore
	}
	if ceiling == 0 {
		if pricing.Type == models.PricingFree {
			return 1.0
		}
		return 0.1
	}

	price := pricing.Price()
	switch {
	case price <= ceiling:
		return 1.0
	case price <= ceiling*1.5:
		return 0.7
	default:
		return 0.2
	}
}

func useCaseMatch(labels []string, useCases []string) float64 {
	if len(useCases) == 0 {
		return unsetScore
	}
	for _, uc := range useCases {
		if matchingUseCase(labels, uc) {
			return 1.0
		}
	}
	return 0
}

// matchingUseCase 单个用例是否命中工具（二值）
func matchingUseCase(labels []string, useCase string) bool {
	uc := strings.ToLower(strings.TrimSpace(useCase))
	if uc == "" {
		return false
	}
	set, ok := useCaseTags[uc]
	if !ok {
		set = newTagSet(uc)
	}
	return set.intersects(labels)
}

func experienceMatch(description string, level models.ExperienceLevel) float64 {
	if level == "" {
		return unsetScore
	}
	desc := strings.ToLower(description)
	for _, kw := range experienceKeywords[level] {
		if strings.Contains(desc, kw) {
			return 1.0
		}
	}
	return experienceMissScore
}
