package services

import (
	"context"
	"strings"

	"ai_tool_directory/logger"
	"ai_tool_directory/models"
	"ai_tool_directory/utils"
	"ai_tool_directory/validation"
)

// ProfileService 注册设置：填写和读取画像的声明属性
type ProfileService struct {
	store ProfileStore
}

// NewProfileService 创建画像服务
func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// GetProfile 读取画像，不存在时返回 models.ErrProfileNotFound
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return s.store.GetProfile(ctx, userID)
}

// UpsertProfile 创建或更新声明属性，交互集合保持不变；返回保存后的完整画像
// 枚举值不合法时返回 *validation.RequestValidationError
func (s *ProfileService) UpsertProfile(ctx context.Context, p *models.UserProfile) (*models.UserProfile, error) {
	p.UserID = strings.TrimSpace(p.UserID)
	p.JobRole = models.JobRole(strings.ToUpper(strings.TrimSpace(string(p.JobRole))))
	p.Industry = models.Industry(strings.ToUpper(strings.TrimSpace(string(p.Industry))))
	p.CompanySize = models.CompanySize(strings.ToUpper(strings.TrimSpace(string(p.CompanySize))))
	p.ExperienceLevel = models.ExperienceLevel(strings.ToUpper(strings.TrimSpace(string(p.ExperienceLevel))))
	p.BudgetRange = models.BudgetRange(strings.ToUpper(strings.TrimSpace(string(p.BudgetRange))))
	p.PrimaryUseCases = utils.NormalizeTags(p.PrimaryUseCases)

	if err := validation.ValidateStruct(p); err != nil {
		return nil, err
	}
	if err := s.store.UpsertProfile(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("Profile saved", "user_id", p.UserID, "job_role", p.JobRole, "use_cases", len(p.PrimaryUseCases))
	return s.store.GetProfile(ctx, p.UserID)
}
