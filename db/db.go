// Package db 打开数据库连接并执行版本化迁移，支持 MySQL 与 SQLite
package db

import (
	"context"
	"fmt"
	"time"

	"ai_tool_directory/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

func init() {
	// modernc 的驱动名是 sqlite，sqlx 默认只认识 sqlite3
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open 按配置打开连接池并 Ping
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	conn, err := Connect(ctx, cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.DB.Driver == DriverSQLite {
		return conn, nil
	}

	// 从配置读取连接池参数，提供默认值保护
	maxOpenConns := cfg.DB.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 50 // 默认最大连接数
	}

	maxIdleConns := cfg.DB.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 10 // 默认最大空闲连接数
	}

	connMaxLifetime := cfg.DB.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 60 // 默认连接最大生命周期（分钟）
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)
	return conn, nil
}

// Connect 打开指定驱动的连接
// SQLite 只允许一个连接：写操作串行，:memory: 库也不会因为换连接而丢失
func Connect(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		conn.SetMaxOpenConns(1)
	}
	return conn, nil
}

// InsertIgnore 返回对应方言的“重复则忽略”插入前缀
func InsertIgnore(driver string) string {
	if driver == DriverMySQL {
		return "INSERT IGNORE"
	}
	return "INSERT OR IGNORE"
}
