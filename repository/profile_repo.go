package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ai_tool_directory/db"
	"ai_tool_directory/models"

	"github.com/jmoiron/sqlx"
)

// ProfileRepository 用户画像与交互集合
type ProfileRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewProfileRepository 创建画像仓库
func NewProfileRepository(conn *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: conn, now: time.Now}
}

type profileRow struct {
	UserID          string         `db:"user_id"`
	JobRole         string         `db:"job_role"`
	Industry        string         `db:"industry"`
	CompanySize     string         `db:"company_size"`
	ExperienceLevel string         `db:"experience_level"`
	BudgetRange     string         `db:"budget_range"`
	PrimaryUseCases sql.NullString `db:"primary_use_cases"`
	CreatedAt       int64          `db:"created_at"`
	UpdatedAt       int64          `db:"updated_at"`
}

type interactionRow struct {
	Kind   string `db:"kind"`
	ItemID string `db:"item_id"`
}

// =====================
// 用户画像相关
// =====================

// GetProfile 读取画像及三个交互集合，不存在时返回 models.ErrProfileNotFound
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row, `
		SELECT user_id, job_role, industry, company_size, experience_level, budget_range,
		       primary_use_cases, created_at, updated_at
		FROM user_profiles WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}

	p := &models.UserProfile{
		UserID:             row.UserID,
		JobRole:            models.JobRole(row.JobRole),
		Industry:           models.Industry(row.Industry),
		CompanySize:        models.CompanySize(row.CompanySize),
		ExperienceLevel:    models.ExperienceLevel(row.ExperienceLevel),
		BudgetRange:        models.BudgetRange(row.BudgetRange),
		PrimaryUseCases:    unmarshalStrings(row.PrimaryUseCases),
		ToolsViewed:        make([]string, 0),
		ToolsBookmarked:    make([]string, 0),
		WorkflowsCompleted: make([]string, 0),
		CreatedAt:          fromMillis(row.CreatedAt),
		UpdatedAt:          fromMillis(row.UpdatedAt),
	}

	var interactions []interactionRow
	if err := r.db.SelectContext(ctx, &interactions, `
		SELECT kind, item_id FROM user_interactions
		WHERE user_id = ? ORDER BY created_at, item_id`, userID); err != nil {
		return nil, fmt.Errorf("get interactions %s: %w", userID, err)
	}
	for _, in := range interactions {
		switch models.ActionKind(in.Kind) {
		case models.ActionView:
			p.ToolsViewed = append(p.ToolsViewed, in.ItemID)
		case models.ActionBookmark:
			p.ToolsBookmarked = append(p.ToolsBookmarked, in.ItemID)
		case models.ActionWorkflowComplete:
			p.WorkflowsCompleted = append(p.WorkflowsCompleted, in.ItemID)
		}
	}
	return p, nil
}

// UpsertProfile 创建或更新注册属性，不修改交互集合；返回写入后的画像时间戳
func (r *ProfileRepository) UpsertProfile(ctx context.Context, p *models.UserProfile) error {
	useCases, err := marshalJSONColumn(nonNil(p.PrimaryUseCases))
	if err != nil {
		return fmt.Errorf("encode use cases: %w", err)
	}
	now := r.now()

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		// 检查是否已存在画像
		found, err := exists(ctx, tx, `SELECT COUNT(*) FROM user_profiles WHERE user_id = ?`, p.UserID)
		if err != nil {
			return err
		}

		if found {
			_, err = tx.ExecContext(ctx, `
				UPDATE user_profiles
				SET job_role = ?, industry = ?, company_size = ?, experience_level = ?,
				    budget_range = ?, primary_use_cases = ?, updated_at = ?
				WHERE user_id = ?`,
				p.JobRole, p.Industry, p.CompanySize, p.ExperienceLevel,
				p.BudgetRange, useCases, toMillis(now), p.UserID)
			if err != nil {
				return fmt.Errorf("update profile %s: %w", p.UserID, err)
			}
			var created int64
			if err := tx.GetContext(ctx, &created, `SELECT created_at FROM user_profiles WHERE user_id = ?`, p.UserID); err != nil {
				return err
			}
			p.CreatedAt = fromMillis(created)
		} else {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO user_profiles (user_id, job_role, industry, company_size, experience_level,
				                           budget_range, primary_use_cases, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				p.UserID, p.JobRole, p.Industry, p.CompanySize, p.ExperienceLevel,
				p.BudgetRange, useCases, toMillis(now), toMillis(now))
			if err != nil {
				return fmt.Errorf("insert profile %s: %w", p.UserID, err)
			}
			p.CreatedAt = fromMillis(toMillis(now))
		}
		p.UpdatedAt = fromMillis(toMillis(now))
		return nil
	})
}

// =====================
// 交互集合
// =====================

// ApplyInteraction 把一次行为并入对应集合（集合语义，重复写入无效果）
// 画像不存在时不做任何事，返回 false
func (r *ProfileRepository) ApplyInteraction(ctx context.Context, userID string, action models.ActionKind, itemID string) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT COUNT(*) FROM user_profiles WHERE user_id = ?`, userID)
	if err != nil {
		return false, fmt.Errorf("check profile %s: %w", userID, err)
	}
	if !found {
		return false, nil
	}

	query := db.InsertIgnore(r.db.DriverName()) +
		` INTO user_interactions (user_id, kind, item_id, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, userID, string(action), itemID, toMillis(r.now())); err != nil {
		return false, fmt.Errorf("record %s for %s: %w", action, userID, err)
	}
	return true, nil
}

// =====================
// 用户列表
// =====================

// ListUserIDs 所有有画像的用户，供全量重算使用
func (r *ProfileRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, r.db, `SELECT user_id FROM user_profiles ORDER BY user_id`)
}

func nonNil(s []string) []string {
	if s == nil {
		return make([]string, 0)
	}
	return s
}
