package cli

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ai_tool_directory/catalog"
	"ai_tool_directory/config"
	"ai_tool_directory/db"
	"ai_tool_directory/logger"
	"ai_tool_directory/repository"
	"ai_tool_directory/services"
)

// app 组装好的服务依赖
type app struct {
	cfg             *config.Config
	conn            *sqlx.DB
	catalog         *catalog.Static
	recommendations *services.RecommendationService
	behavior        *services.BehaviorService
	ratings         *services.RatingService
	profileService  *services.ProfileService
}

// loadConfig 加载并校验配置，同时初始化日志
func loadConfig(path string) (*config.Config, error) {
	cfg := config.LoadFrom(path)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		return nil, fmt.Errorf("init logger failed: %w", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)
	return cfg, nil
}

// openDB 打开数据库，配置了 auto_migrate 时执行迁移
func openDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	conn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("数据库连接成功",
		"driver", cfg.DB.Driver,
		"max_open_conns", cfg.DB.MaxOpenConns,
		"max_idle_conns", cfg.DB.MaxIdleConns,
		"conn_max_lifetime", cfg.DB.ConnMaxLifetime)

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, conn); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

// newApp 按配置文件组装全部服务
func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("工具目录加载成功", "path", cfg.Catalog.Path, "tools", cat.Len())

	conn, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	profiles := repository.NewProfileRepository(conn)
	ratings := repository.NewRatingRepository(conn)
	recs := repository.NewRecommendationRepository(conn)

	return &app{
		cfg:             cfg,
		conn:            conn,
		catalog:         cat,
		recommendations: services.NewRecommendationService(profiles, profiles, cat, ratings, recs, nil),
		behavior:        services.NewBehaviorService(profiles),
		ratings:         services.NewRatingService(cat, ratings),
		profileService:  services.NewProfileService(profiles),
	}, nil
}

func (a *app) Close() error {
	return a.conn.Close()
}
