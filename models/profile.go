package models

import "time"

// JobRole 用户职业角色
type JobRole string

const (
	RoleDeveloper      JobRole = "DEVELOPER"
	RoleDesigner       JobRole = "DESIGNER"
	RoleMarketer       JobRole = "MARKETER"
	RoleProductManager JobRole = "PRODUCT_MANAGER"
	RoleDataAnalyst    JobRole = "DATA_ANALYST"
	RoleSales          JobRole = "SALES"
	RoleFounder        JobRole = "FOUNDER"
	RoleWriter         JobRole = "WRITER"
	RoleSupport        JobRole = "SUPPORT"
	RoleOther          JobRole = "OTHER"
)

// Industry 用户所在行业
type Industry string

const (
	IndustryTechnology Industry = "TECHNOLOGY"
	IndustryFinance    Industry = "FINANCE"
	IndustryHealthcare Industry = "HEALTHCARE"
	IndustryEducation  Industry = "EDUCATION"
	IndustryEcommerce  Industry = "ECOMMERCE"
	IndustryMarketing  Industry = "MARKETING"
	IndustryMedia      Industry = "MEDIA"
	IndustryConsulting Industry = "CONSULTING"
	IndustryNonprofit  Industry = "NONPROFIT"
	IndustryOther      Industry = "OTHER"
)

// CompanySize 公司规模
type CompanySize string

const (
	CompanySolo       CompanySize = "SOLO"
	CompanySmall      CompanySize = "SMALL"
	CompanyMedium     CompanySize = "MEDIUM"
	CompanyLarge      CompanySize = "LARGE"
	CompanyEnterprise CompanySize = "ENTERPRISE"
)

// ExperienceLevel 使用工具的经验水平
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "BEGINNER"
	ExperienceIntermediate ExperienceLevel = "INTERMEDIATE"
	ExperienceAdvanced     ExperienceLevel = "ADVANCED"
	ExperienceExpert       ExperienceLevel = "EXPERT"
)

// BudgetRange 每月预算区间
type BudgetRange string

const (
	BudgetFreeOnly   BudgetRange = "FREE_ONLY"
	BudgetUnder50    BudgetRange = "UNDER_50"
	BudgetUnder200   BudgetRange = "UNDER_200"
	BudgetUnder500   BudgetRange = "UNDER_500"
	BudgetEnterprise BudgetRange = "ENTERPRISE"
)

// UserProfile 用户画像：注册时填写的属性 + 行为累积的交互集合
// 空字符串表示该属性未填写
type UserProfile struct {
	UserID          string          `db:"user_id" json:"user_id" validate:"required,max=128"`
	JobRole         JobRole         `db:"job_role" json:"job_role,omitempty" validate:"omitempty,oneof=DEVELOPER DESIGNER MARKETER PRODUCT_MANAGER DATA_ANALYST SALES FOUNDER WRITER SUPPORT OTHER"`
	Industry        Industry        `db:"industry" json:"industry,omitempty" validate:"omitempty,oneof=TECHNOLOGY FINANCE HEALTHCARE EDUCATION ECOMMERCE MARKETING MEDIA CONSULTING NONPROFIT OTHER"`
	CompanySize     CompanySize     `db:"company_size" json:"company_size,omitempty" validate:"omitempty,oneof=SOLO SMALL MEDIUM LARGE ENTERPRISE"`
	ExperienceLevel ExperienceLevel `db:"experience_level" json:"experience_level,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	BudgetRange     BudgetRange     `db:"budget_range" json:"budget_range,omitempty" validate:"omitempty,oneof=FREE_ONLY UNDER_50 UNDER_200 UNDER_500 ENTERPRISE"`

	PrimaryUseCases    []string `json:"primary_use_cases" validate:"max=20,dive,min=1,max=64"`
	ToolsViewed        []string `json:"tools_viewed"`
	ToolsBookmarked    []string `json:"tools_bookmarked"`
	WorkflowsCompleted []string `json:"workflows_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActionKind 行为事件类型
type ActionKind string

const (
	ActionView             ActionKind = "view"
	ActionBookmark         ActionKind = "bookmark"
	ActionWorkflowComplete ActionKind = "workflow_complete"
)

// Valid 是否为已知的行为类型
func (a ActionKind) Valid() bool {
	switch a {
	case ActionView, ActionBookmark, ActionWorkflowComplete:
		return true
	}
	return false
}

// BehaviorPayload 行为事件负载，view/bookmark 使用 ToolID，workflow_complete 使用 WorkflowID
type BehaviorPayload struct {
	ToolID     string `json:"tool_id,omitempty"`
	WorkflowID string `json:"workflow_id,omitempty"`
}

// ItemID 根据行为类型取出要记录的标识
func (p BehaviorPayload) ItemID(action ActionKind) string {
	if action == ActionWorkflowComplete {
		return p.WorkflowID
	}
	return p.ToolID
}
