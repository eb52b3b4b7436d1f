package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ai_tool_directory/models"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// RecommendationRepository 推荐结果的持久化，每个用户只保留最近一次生成
type RecommendationRepository struct {
	db *sqlx.DB
}

// NewRecommendationRepository 创建推荐结果仓库
func NewRecommendationRepository(conn *sqlx.DB) *RecommendationRepository {
	return &RecommendationRepository{db: conn}
}

type recommendationRow struct {
	ID                 string         `db:"id"`
	RunID              string         `db:"run_id"`
	UserID             string         `db:"user_id"`
	RecommendationType string         `db:"recommendation_type"`
	ItemID             string         `db:"item_id"`
	Score              float64        `db:"score"`
	Reasoning          sql.NullString `db:"reasoning"`
	ContextTags        sql.NullString `db:"context_tags"`
	Position           int            `db:"position"`
	MatchFactors       sql.NullString `db:"match_factors"`
	GeneratedAt        int64          `db:"generated_at"`
}

// SaveRecommendations 在一个事务里替换用户之前的推荐：要么全部写入，要么都不写
func (r *RecommendationRepository) SaveRecommendations(ctx context.Context, userID string, rows []models.RecommendationRow) error {
	records := make([]recommendationRow, 0, len(rows))
	for _, row := range rows {
		rec, err := toRecommendationRow(userID, row)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM recommendations WHERE user_id = ?`, userID); err != nil {
			return fmt.Errorf("clear recommendations %s: %w", userID, err)
		}
		for _, rec := range records {
			if _, err := tx.NamedExecContext(ctx, `
				INSERT INTO recommendations (id, run_id, user_id, recommendation_type, item_id, score,
				                             reasoning, context_tags, position, match_factors, generated_at)
				VALUES (:id, :run_id, :user_id, :recommendation_type, :item_id, :score,
				        :reasoning, :context_tags, :position, :match_factors, :generated_at)`, rec); err != nil {
				return fmt.Errorf("insert recommendation %s/%s: %w", userID, rec.ItemID, err)
			}
		}
		return nil
	})
}

// LatestRecommendations 最近一次生成的全部行：先工具后工作流，各自按名次排序
// 没有记录时返回空切片
func (r *RecommendationRepository) LatestRecommendations(ctx context.Context, userID string) ([]models.RecommendationRow, error) {
	var runID string
	err := r.db.GetContext(ctx, &runID, `
		SELECT run_id FROM recommendations WHERE user_id = ?
		ORDER BY generated_at DESC LIMIT 1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return make([]models.RecommendationRow, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest run %s: %w", userID, err)
	}

	var records []recommendationRow
	if err := r.db.SelectContext(ctx, &records, `
		SELECT id, run_id, user_id, recommendation_type, item_id, score,
		       reasoning, context_tags, position, match_factors, generated_at
		FROM recommendations
		WHERE user_id = ? AND run_id = ?
		ORDER BY CASE recommendation_type WHEN 'tool' THEN 0 ELSE 1 END, position`, userID, runID); err != nil {
		return nil, fmt.Errorf("list recommendations %s: %w", userID, err)
	}

	rows := make([]models.RecommendationRow, 0, len(records))
	for _, rec := range records {
		row := models.RecommendationRow{
			ID:                 rec.ID,
			RunID:              rec.RunID,
			UserID:             rec.UserID,
			RecommendationType: models.RecommendationType(rec.RecommendationType),
			ItemID:             rec.ItemID,
			Score:              rec.Score,
			Reasoning:          rec.Reasoning.String,
			ContextTags:        unmarshalStrings(rec.ContextTags),
			Position:           rec.Position,
			GeneratedAt:        fromMillis(rec.GeneratedAt),
		}
		if rec.MatchFactors.Valid && rec.MatchFactors.String != "" {
			var f models.MatchFactors
			if err := json.Unmarshal([]byte(rec.MatchFactors.String), &f); err == nil {
				row.MatchFactors = &f
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func toRecommendationRow(userID string, row models.RecommendationRow) (recommendationRow, error) {
	tags, err := marshalJSONColumn(nonNil(row.ContextTags))
	if err != nil {
		return recommendationRow{}, fmt.Errorf("encode context tags: %w", err)
	}
	var factors sql.NullString
	if row.MatchFactors != nil {
		if factors, err = marshalJSONColumn(row.MatchFactors); err != nil {
			return recommendationRow{}, fmt.Errorf("encode match factors: %w", err)
		}
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	return recommendationRow{
		ID:                 row.ID,
		RunID:              row.RunID,
		UserID:             userID,
		RecommendationType: string(row.RecommendationType),
		ItemID:             row.ItemID,
		Score:              row.Score,
		Reasoning:          sql.NullString{String: row.Reasoning, Valid: true},
		ContextTags:        tags,
		Position:           row.Position,
		MatchFactors:       factors,
		GeneratedAt:        toMillis(row.GeneratedAt),
	}, nil
}
