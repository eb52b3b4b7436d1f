package models

// APIResponse 通用API响应
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// BehaviorRequest 行为上报请求体
type BehaviorRequest struct {
	Action     string `json:"action" validate:"required,oneof=view bookmark workflow_complete" example:"bookmark"`
	ToolID     string `json:"tool_id,omitempty" validate:"required_unless=Action workflow_complete,max=128" example:"github-copilot"`
	WorkflowID string `json:"workflow_id,omitempty" validate:"required_if=Action workflow_complete,max=128" example:"ship-a-landing-page"`
}

// RatingRequest 工具评分请求体
type RatingRequest struct {
	ToolID string `json:"tool_id" validate:"required,max=128" example:"notion"`
	Rating int    `json:"rating" validate:"required,min=1,max=5" example:"5"`
	Review string `json:"review,omitempty" validate:"max=2000" example:"Great for team docs"`
}

// ProfileRequest 注册/更新画像请求体
type ProfileRequest struct {
	JobRole         string   `json:"job_role,omitempty" example:"DEVELOPER"`
	Industry        string   `json:"industry,omitempty" example:"TECHNOLOGY"`
	CompanySize     string   `json:"company_size,omitempty" example:"SMALL"`
	ExperienceLevel string   `json:"experience_level,omitempty" example:"INTERMEDIATE"`
	BudgetRange     string   `json:"budget_range,omitempty" example:"UNDER_50"`
	PrimaryUseCases []string `json:"primary_use_cases,omitempty" example:"coding,automation"`
}

// ToProfile 转换为用户画像（交互集合不由此请求修改）
func (r ProfileRequest) ToProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:          userID,
		JobRole:         JobRole(r.JobRole),
		Industry:        Industry(r.Industry),
		CompanySize:     CompanySize(r.CompanySize),
		ExperienceLevel: ExperienceLevel(r.ExperienceLevel),
		BudgetRange:     BudgetRange(r.BudgetRange),
		PrimaryUseCases: r.PrimaryUseCases,
	}
}

// RecommendationResponse 推荐结果响应
type RecommendationResponse struct {
	Code    int                              `json:"code" example:"0"`
	Message string                           `json:"message" example:"success"`
	Data    PersonalizedRecommendationResult `json:"data"`
}

// ProfileResponse 用户画像响应
type ProfileResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    UserProfile `json:"data"`
}
