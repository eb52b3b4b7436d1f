// Package repository 画像、评分和推荐结果的 SQL 存取（MySQL / SQLite）
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
)

// =====================
// 通用工具函数
// =====================

// queryStrings 执行查询并返回非空字符串结果列表
func queryStrings(ctx context.Context, q sqlx.QueryerContext, query string, args ...interface{}) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]string, 0)
	for rows.Next() {
		var val sql.NullString
		if err := rows.Scan(&val); err != nil {
			return nil, err
		}
		if s := strings.TrimSpace(val.String); val.Valid && s != "" {
			results = append(results, s)
		}
	}
	return results, rows.Err()
}

// exists 执行 COUNT(1) 查询并返回是否存在数据
func exists(ctx context.Context, q sqlx.QueryerContext, query string, args ...interface{}) (bool, error) {
	var count int
	if err := sqlx.GetContext(ctx, q, &count, query, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

// withTx 在事务中执行 fn，fn 返回错误时回滚
func withTx(ctx context.Context, conn *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// 时间以毫秒时间戳存储
func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// marshalJSONColumn 把切片/结构体写成 JSON 文本列，nil 写 NULL
func marshalJSONColumn(v interface{}) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

// unmarshalStrings 解析 JSON 字符串数组列，空值返回空切片
func unmarshalStrings(col sql.NullString) []string {
	out := make([]string, 0)
	if !col.Valid || col.String == "" {
		return out
	}
	if err := json.Unmarshal([]byte(col.String), &out); err != nil {
		return make([]string, 0)
	}
	return out
}
