package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ai_tool_directory/models"

	"github.com/jmoiron/sqlx"
)

// RatingRepository 用户对工具的评分，每个用户每个工具只保留最新一条
type RatingRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewRatingRepository 创建评分仓库
func NewRatingRepository(conn *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: conn, now: time.Now}
}

type ratingRow struct {
	UserID    string         `db:"user_id"`
	ToolID    string         `db:"tool_id"`
	Rating    int            `db:"rating"`
	Review    sql.NullString `db:"review"`
	CreatedAt int64          `db:"created_at"`
}

// RatingsByUser 用户的全部评分，按时间先后
func (r *RatingRepository) RatingsByUser(ctx context.Context, userID string) ([]models.RatingRecord, error) {
	var rows []ratingRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT user_id, tool_id, rating, review, created_at
		FROM tool_ratings WHERE user_id = ?
		ORDER BY created_at, tool_id`, userID); err != nil {
		return nil, fmt.Errorf("list ratings %s: %w", userID, err)
	}

	ratings := make([]models.RatingRecord, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, models.RatingRecord{
			UserID:    row.UserID,
			ToolID:    row.ToolID,
			Rating:    row.Rating,
			Review:    row.Review.String,
			CreatedAt: fromMillis(row.CreatedAt),
		})
	}
	return ratings, nil
}

// SaveRating 写入评分，替换该用户对同一工具的旧评分
func (r *RatingRepository) SaveRating(ctx context.Context, rating models.RatingRecord) error {
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = r.now()
	}
	review := sql.NullString{String: rating.Review, Valid: rating.Review != ""}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM tool_ratings WHERE user_id = ? AND tool_id = ?`,
			rating.UserID, rating.ToolID); err != nil {
			return fmt.Errorf("replace rating: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tool_ratings (user_id, tool_id, rating, review, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			rating.UserID, rating.ToolID, rating.Rating, review, toMillis(rating.CreatedAt)); err != nil {
			return fmt.Errorf("insert rating: %w", err)
		}
		return nil
	})
}
