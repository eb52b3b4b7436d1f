package db

import (
	"context"
	"fmt"
	"time"

	"ai_tool_directory/logger"

	"github.com/jmoiron/sqlx"
)

// migration 单个版本的建表/改表语句
// 每条语句单独执行：MySQL 驱动默认不允许一次执行多条语句
type migration struct {
	version    int
	name       string
	statements []string
}

// 时间统一存毫秒时间戳，两种方言下列类型一致
var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS user_profiles (
				user_id VARCHAR(128) NOT NULL PRIMARY KEY,
				job_role VARCHAR(32) NOT NULL DEFAULT '',
				industry VARCHAR(32) NOT NULL DEFAULT '',
				company_size VARCHAR(32) NOT NULL DEFAULT '',
				experience_level VARCHAR(32) NOT NULL DEFAULT '',
				budget_range VARCHAR(32) NOT NULL DEFAULT '',
				primary_use_cases TEXT,
				created_at BIGINT NOT NULL,
				updated_at BIGINT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS user_interactions (
				user_id VARCHAR(128) NOT NULL,
				kind VARCHAR(32) NOT NULL,
				item_id VARCHAR(128) NOT NULL,
				created_at BIGINT NOT NULL,
				PRIMARY KEY (user_id, kind, item_id)
			)`,
			`CREATE TABLE IF NOT EXISTS tool_ratings (
				user_id VARCHAR(128) NOT NULL,
				tool_id VARCHAR(128) NOT NULL,
				rating INT NOT NULL,
				review TEXT,
				created_at BIGINT NOT NULL,
				PRIMARY KEY (user_id, tool_id)
			)`,
			`CREATE TABLE IF NOT EXISTS recommendations (
				id VARCHAR(36) NOT NULL PRIMARY KEY,
				run_id VARCHAR(36) NOT NULL,
				user_id VARCHAR(128) NOT NULL,
				recommendation_type VARCHAR(16) NOT NULL,
				item_id VARCHAR(128) NOT NULL,
				score DOUBLE NOT NULL,
				reasoning TEXT,
				context_tags TEXT,
				position INT NOT NULL,
				match_factors TEXT,
				generated_at BIGINT NOT NULL
			)`,
			`CREATE INDEX idx_recommendations_user ON recommendations (user_id, generated_at)`,
		},
	},
	{
		version: 2,
		name:    "recommendations_run_index",
		statements: []string{
			`CREATE INDEX idx_recommendations_run ON recommendations (run_id)`,
		},
	},
}

// LatestVersion 代码中最新的 schema 版本
func LatestVersion() int {
	return migrations[len(migrations)-1].version
}

// Migrate 按版本顺序执行尚未应用的迁移
func Migrate(ctx context.Context, conn *sqlx.DB) error {
	if _, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INT NOT NULL PRIMARY KEY,
		name VARCHAR(128) NOT NULL,
		applied_at BIGINT NOT NULL
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	current, err := CurrentVersion(ctx, conn)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		logger.Info("Running migration", "version", m.version, "name", m.name)
		if err := apply(ctx, conn, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
	}
	return nil
}

// CurrentVersion 已应用的最高版本，未迁移时为 0
func CurrentVersion(ctx context.Context, conn *sqlx.DB) (int, error) {
	var version int
	if err := conn.GetContext(ctx, &version, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations"); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func apply(ctx context.Context, conn *sqlx.DB, m migration) error {
	// MySQL 的 DDL 会隐式提交，事务只对 SQLite 有完整的原子性
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range m.statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)",
		m.version, m.name, time.Now().UnixMilli()); err != nil {
		return err
	}
	return tx.Commit()
}
