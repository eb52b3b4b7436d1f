package recommend

import (
	"fmt"
	"strings"

	"ai_tool_directory/models"
)

// reasonThreshold 因子超过该值才生成对应的推荐理由
const reasonThreshold = 0.8

// FallbackReason 没有任何因子超过阈值时的通用理由
const FallbackReason = "General productivity tool"

var rolePlurals = map[models.JobRole]string{
	models.RoleDeveloper:      "developers",
	models.RoleDesigner:       "designers",
	models.RoleMarketer:       "marketers",
	models.RoleProductManager: "product managers",
	models.RoleDataAnalyst:    "data analysts",
	models.RoleSales:          "sales professionals",
	models.RoleFounder:        "founders",
	models.RoleWriter:         "writers",
	models.RoleSupport:        "support teams",
	models.RoleOther:          "professionals",
}

var budgetLabels = map[models.BudgetRange]string{
	models.BudgetFreeOnly:   "free-only",
	models.BudgetUnder50:    "under $50/month",
	models.BudgetUnder200:   "under $200/month",
	models.BudgetUnder500:   "under $500/month",
	models.BudgetEnterprise: "enterprise",
}

// Reasons 按 role → industry → budget → use case → experience 的顺序生成理由
func Reasons(tool models.ToolRecord, f models.MatchFactors, profile *models.UserProfile) []string {
	reasons := make([]string, 0, 5)

	if f.RoleMatch > reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("Popular with %s like you", rolePlural(profile.JobRole)))
	}
	if f.IndustryMatch > reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("Widely used in the %s industry", humanize(string(profile.Industry))))
	}
	if f.BudgetMatch > reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("Fits your %s budget", budgetLabel(profile.BudgetRange)))
	}
	if f.UseCaseMatch > reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("Supports your %s use case", matchedUseCase(tool, profile.PrimaryUseCases)))
	}
	if f.ExperienceMatch > reasonThreshold {
		reasons = append(reasons, fmt.Sprintf("Well suited to %s users", humanize(string(profile.ExperienceLevel))))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, FallbackReason)
	}
	return reasons
}

// Summary 整个推荐结果的一句话说明
func Summary(profile *models.UserProfile, toolCount, workflowCount int) string {
	if toolCount == 0 {
		return "We couldn't find tools that match your profile yet. Explore the catalog to help us learn your preferences."
	}

	subject := "your profile and activity"
	if profile.JobRole != "" && profile.JobRole != models.RoleOther {
		subject = fmt.Sprintf("your %s role and activity", humanize(string(profile.JobRole)))
	}
	return fmt.Sprintf("Based on %s, we picked %d %s and %d %s for you.",
		subject, toolCount, plural(toolCount, "tool"), workflowCount, plural(workflowCount, "workflow"))
}

// matchedUseCase 找出第一个命中工具的用例，用于理由模板
func matchedUseCase(tool models.ToolRecord, useCases []string) string {
	labels := tool.Labels()
	for _, uc := range useCases {
		if matchingUseCase(labels, uc) {
			return humanize(uc)
		}
	}
	return "declared"
}

func rolePlural(r models.JobRole) string {
	if label, ok := rolePlurals[r]; ok {
		return label
	}
	return "people"
}

func budgetLabel(b models.BudgetRange) string {
	if label, ok := budgetLabels[b]; ok {
		return label
	}
	return humanize(string(b))
}

// humanize DATA_ANALYST → "data analyst"，customer-support → "customer support"
func humanize(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.ToLower(strings.TrimSpace(s))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
