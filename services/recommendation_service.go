package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ai_tool_directory/logger"
	"ai_tool_directory/metrics"
	"ai_tool_directory/models"
	"ai_tool_directory/recommend"

	"golang.org/x/sync/errgroup"
)

// RecommendationService 推荐生成与读取
type RecommendationService struct {
	profiles ProfileProvider
	users    UserLister
	catalog  CatalogProvider
	ratings  RatingStore
	store    RecommendationStore
	engine   *recommend.Engine
	log      *slog.Logger
}

// NewRecommendationService 创建推荐服务
func NewRecommendationService(profiles ProfileProvider, users UserLister, catalog CatalogProvider,
	ratings RatingStore, store RecommendationStore, engine *recommend.Engine) *RecommendationService {
	if engine == nil {
		engine = recommend.NewEngine()
	}
	return &RecommendationService{
		profiles: profiles,
		users:    users,
		catalog:  catalog,
		ratings:  ratings,
		store:    store,
		engine:   engine,
		log:      logger.With("component", "recommendation"),
	}
}

// snapshot 一次生成所需的全部外部数据
type snapshot struct {
	profile   *models.UserProfile
	tools     []models.ToolRecord
	workflows []models.Workflow
	ratings   []models.RatingRecord
}

// load 并发读取画像、目录、工作流池和评分，任一失败则整体失败
func (s *RecommendationService) load(ctx context.Context, userID string) (*snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.profiles.GetProfile(gctx, userID)
		if err != nil {
			return fmt.Errorf("load profile %s: %w", userID, err)
		}
		snap.profile = p
		return nil
	})
	g.Go(func() error {
		tools, err := s.catalog.AllTools(gctx)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		snap.tools = tools
		return nil
	})
	g.Go(func() error {
		workflows, err := s.catalog.Workflows(gctx)
		if err != nil {
			return fmt.Errorf("load workflows: %w", err)
		}
		snap.workflows = workflows
		return nil
	})
	g.Go(func() error {
		ratings, err := s.ratings.RatingsByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("load ratings %s: %w", userID, err)
		}
		snap.ratings = ratings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GenerateRecommendations 重新计算用户的推荐并持久化
// 保存失败只记录日志和指标，计算结果照常返回
func (s *RecommendationService) GenerateRecommendations(ctx context.Context, userID string) (*models.PersonalizedRecommendationResult, error) {
	start := time.Now()

	snap, err := s.load(ctx, userID)
	if err != nil {
		outcome := "error"
		if errors.Is(err, models.ErrProfileNotFound) {
			outcome = "no_profile"
		}
		metrics.RecordGeneration(metrics.ModeRecompute, outcome, time.Since(start))
		return nil, err
	}

	result := s.engine.Generate(recommend.Input{
		Profile:   snap.profile,
		Catalog:   snap.tools,
		Workflows: snap.workflows,
		Ratings:   snap.ratings,
	})

	rows := recommend.Rows(result, snap.tools, snap.workflows)
	if err := s.store.SaveRecommendations(ctx, userID, rows); err != nil {
		metrics.RecordPersistenceFailure()
		s.log.Error("Failed to save recommendations", "user_id", userID, "rows", len(rows), "error", err)
	}

	metrics.RecordRecommendedTools(len(result.RecommendedTools))
	metrics.RecordGeneration(metrics.ModeRecompute, "success", time.Since(start))
	s.log.Info("Recommendations generated",
		"user_id", userID,
		"tools", len(result.RecommendedTools),
		"workflows", len(result.RecommendedWorkflows),
		"confidence", result.ConfidenceScore,
	)
	return result, nil
}

// GetLatestRecommendations 读取最近一次持久化的推荐，没有时返回 nil, nil
func (s *RecommendationService) GetLatestRecommendations(ctx context.Context, userID string) (*models.PersonalizedRecommendationResult, error) {
	start := time.Now()

	rows, err := s.store.LatestRecommendations(ctx, userID)
	if err != nil {
		metrics.RecordGeneration(metrics.ModeFetchLatest, "error", time.Since(start))
		return nil, fmt.Errorf("load latest recommendations %s: %w", userID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	tools, err := s.catalog.AllTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	workflows, err := s.catalog.Workflows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load workflows: %w", err)
	}

	metrics.RecordGeneration(metrics.ModeFetchLatest, "success", time.Since(start))
	return recommend.Reconstruct(userID, rows, tools, workflows), nil
}

// GetRecommendations refresh=true 时重新计算；否则优先返回已保存的结果，没有时再计算
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID string, refresh bool) (*models.PersonalizedRecommendationResult, error) {
	if refresh {
		return s.GenerateRecommendations(ctx, userID)
	}

	latest, err := s.GetLatestRecommendations(ctx, userID)
	if err != nil {
		s.log.Warn("Failed to read saved recommendations, recomputing", "user_id", userID, "error", err)
	} else if latest != nil {
		return latest, nil
	}
	return s.GenerateRecommendations(ctx, userID)
}

// BatchSummary 全量重算的统计
type BatchSummary struct {
	Processed int `json:"processed"`
	Completed int `json:"completed"`
	Skipped   int `json:"skipped"` // 没有画像
	Failed    int `json:"failed"`
}

// GenerateRecommendationsForAllUsers 为所有有画像的用户重算推荐
func (s *RecommendationService) GenerateRecommendationsForAllUsers(ctx context.Context, concurrency int) (BatchSummary, error) {
	userIDs, err := s.users.ListUserIDs(ctx)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("list users: %w", err)
	}
	s.log.Info("开始全量生成推荐", "users", len(userIDs), "concurrency", concurrency)
	return s.GenerateRecommendationsWithConcurrency(ctx, userIDs, concurrency), nil
}

// GenerateRecommendationsWithConcurrency 并发生成指定用户的推荐，ctx 取消后不再启动新任务
func (s *RecommendationService) GenerateRecommendationsWithConcurrency(ctx context.Context, userIDs []string, concurrency int) BatchSummary {
	if concurrency <= 0 {
		concurrency = 1
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)

	var mu sync.Mutex
	var summary BatchSummary

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		semaphore <- struct{}{} // acquire semaphore

		go func(uid string) {
			defer wg.Done()
			defer func() { <-semaphore }() // release semaphore

			_, err := s.GenerateRecommendations(ctx, uid)
			metrics.RecordBatchUser(err)

			mu.Lock()
			defer mu.Unlock()
			summary.Processed++
			switch {
			case err == nil:
				summary.Completed++
			case errors.Is(err, models.ErrProfileNotFound):
				summary.Skipped++
				s.log.Debug("用户画像不存在，跳过", "user_id", uid)
			default:
				summary.Failed++
				s.log.Error("生成用户推荐失败", "user_id", uid, "error", err)
			}
		}(userID)
	}

	wg.Wait()
	s.log.Info("所有用户推荐生成完成",
		"processed", summary.Processed,
		"completed", summary.Completed,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary
}
