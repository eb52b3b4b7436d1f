package models

import "time"

// RatingRecord 用户对工具的一次评分（1-5 星）
// Category 在打分时从目录复制，不在库里存储
type RatingRecord struct {
	UserID    string    `db:"user_id" json:"user_id"`
	ToolID    string    `db:"tool_id" json:"tool_id"`
	Rating    int       `db:"rating" json:"rating"`
	Review    string    `db:"review" json:"review,omitempty"`
	Category  string    `db:"-" json:"category,omitempty"`
	CreatedAt time.Time `db:"-" json:"created_at"`
}
