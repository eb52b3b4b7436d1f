package recommend

import "ai_tool_directory/models"

// tagSet 规则表中的标签集合，统一小写
type tagSet map[string]struct{}

func newTagSet(tags ...string) tagSet {
	s := make(tagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// intersects 工具的分类/标签是否与集合有交集
func (s tagSet) intersects(labels []string) bool {
	for _, l := range labels {
		if _, ok := s[l]; ok {
			return true
		}
	}
	return false
}

// roleTags 职业角色 → 相关分类/标签
var roleTags = map[models.JobRole]tagSet{
	models.RoleDeveloper:      newTagSet("code-development", "coding", "developer-tools", "api", "devops", "testing", "automation", "database"),
	models.RoleDesigner:       newTagSet("design", "ui-ux", "image-generation", "prototyping", "graphics", "video"),
	models.RoleMarketer:       newTagSet("marketing", "seo", "social-media", "copywriting", "email", "analytics", "content-creation"),
	models.RoleProductManager: newTagSet("project-management", "productivity", "collaboration", "analytics", "documentation", "roadmapping"),
	models.RoleDataAnalyst:    newTagSet("analytics", "data-analysis", "data-visualization", "spreadsheets", "database", "business-intelligence"),
	models.RoleSales:          newTagSet("sales", "crm", "email", "lead-generation", "communication"),
	models.RoleFounder:        newTagSet("productivity", "automation", "business", "finance", "project-management", "no-code"),
	models.RoleWriter:         newTagSet("writing", "copywriting", "content-creation", "documentation", "editing"),
	models.RoleSupport:        newTagSet("customer-support", "chatbot", "communication", "knowledge-base"),
	models.RoleOther:          newTagSet("productivity"),
}

// industryTags 行业 → 相关分类/标签
var industryTags = map[models.Industry]tagSet{
	models.IndustryTechnology: newTagSet("code-development", "developer-tools", "devops", "api", "automation", "database", "testing"),
	models.IndustryFinance:    newTagSet("finance", "accounting", "spreadsheets", "data-analysis", "business-intelligence"),
	models.IndustryHealthcare: newTagSet("healthcare", "transcription", "research", "documentation"),
	models.IndustryEducation:  newTagSet("education", "research", "writing", "presentation", "knowledge-base"),
	models.IndustryEcommerce:  newTagSet("ecommerce", "marketing", "customer-support", "image-generation", "analytics"),
	models.IndustryMarketing:  newTagSet("marketing", "seo", "social-media", "copywriting", "content-creation", "email"),
	models.IndustryMedia:      newTagSet("video", "audio", "image-generation", "content-creation", "editing"),
	models.IndustryConsulting: newTagSet("presentation", "research", "productivity", "documentation", "collaboration"),
	models.IndustryNonprofit:  newTagSet("email", "collaboration", "productivity", "social-media"),
	models.IndustryOther:      newTagSet("productivity"),
}

// useCaseTags 用例 → 相关分类/标签；表中没有的用例按其自身作为标签匹配
var useCaseTags = map[string]tagSet{
	"coding":           newTagSet("code-development", "coding", "developer-tools", "testing"),
	"writing":          newTagSet("writing", "copywriting", "content-creation", "editing"),
	"design":           newTagSet("design", "ui-ux", "image-generation", "graphics", "prototyping"),
	"marketing":        newTagSet("marketing", "seo", "social-media", "email"),
	"analytics":        newTagSet("analytics", "data-analysis", "data-visualization", "business-intelligence"),
	"automation":       newTagSet("automation", "no-code", "workflow"),
	"research":         newTagSet("research", "search", "knowledge-base"),
	"customer-support": newTagSet("customer-support", "chatbot", "knowledge-base"),
	"video":            newTagSet("video", "editing", "audio"),
	"productivity":     newTagSet("productivity", "project-management", "note-taking", "collaboration"),
	"meetings":         newTagSet("transcription", "communication", "note-taking"),
}

// experienceKeywords 经验水平 → 描述中体现复杂度的关键词
var experienceKeywords = map[models.ExperienceLevel][]string{
	models.ExperienceBeginner:     {"easy", "simple", "beginner", "intuitive", "no-code"},
	models.ExperienceIntermediate: {"intermediate", "versatile", "flexible"},
	models.ExperienceAdvanced:     {"advanced", "powerful", "customizable"},
	models.ExperienceExpert:       {"expert", "programmable", "extensible", "low-level"},
}

// budgetCeilings 预算区间 → 月度上限（美元）
var budgetCeilings = map[models.BudgetRange]float64{
	models.BudgetFreeOnly:   0,
	models.BudgetUnder50:    50,
	models.BudgetUnder200:   200,
	models.BudgetUnder500:   500,
	models.BudgetEnterprise: 1000,
}
