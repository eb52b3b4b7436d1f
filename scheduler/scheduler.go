package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ai_tool_directory/config"
	"ai_tool_directory/logger"
	"ai_tool_directory/services"
)

// Recomputer 全量重算推荐
type Recomputer interface {
	GenerateRecommendationsForAllUsers(ctx context.Context, concurrency int) (services.BatchSummary, error)
}

// CatalogReloader 重算前重新加载工具目录
type CatalogReloader interface {
	Reload() error
}

// 将秒数转换为时间间隔
func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// 验证小时和分钟是否有效
func validateHourMinute(hour, minute int) (int, int) {
	if hour < 0 || hour > 23 {
		logger.Warn("无效的小时值", "hour", hour, "default", 0)
		hour = 0
	}
	if minute < 0 || minute > 59 {
		logger.Warn("无效的分钟值", "minute", minute, "default", 0)
		minute = 0
	}
	return hour, minute
}

// 计算下一个指定时间点
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// TaskStatus 任务状态
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// Scheduler 每天定点为所有用户重算推荐
type Scheduler struct {
	cfg         *config.Config
	recomputer  Recomputer
	catalog     CatalogReloader
	concurrency int
	hour        int
	minute      int
	task        *TaskStatus
	mutex       sync.Mutex
	wg          sync.WaitGroup
}

// NewScheduler 创建新的调度器，catalog 可以为 nil
func NewScheduler(cfg *config.Config, recomputer Recomputer, catalog CatalogReloader) *Scheduler {
	concurrency := cfg.Cron.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	hour, minute := validateHourMinute(cfg.Cron.RecomputeHour, cfg.Cron.RecomputeMin)

	return &Scheduler{
		cfg:         cfg,
		recomputer:  recomputer,
		catalog:     catalog,
		concurrency: concurrency,
		hour:        hour,
		minute:      minute,
	}
}

// Start 初始化任务并在后台运行主循环，ctx 取消后停止
func (s *Scheduler) Start(ctx context.Context) {
	s.initTask(time.Now())

	go s.run(ctx)

	logger.Info("调度器已启动", "check_interval_sec", s.checkInterval(), "task", s.task.Description)
}

// Status 返回任务状态快照
func (s *Scheduler) Status() TaskStatus {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return *s.task
}

// Wait 等待正在执行的任务结束
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) checkInterval() int {
	checkInterval := s.cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60 // 默认值
	}
	return checkInterval
}

// 初始化任务
func (s *Scheduler) initTask(now time.Time) {
	nextRun := getNextTimePoint(now, s.hour, s.minute)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.task = &TaskStatus{
		LastRun:     nextRun.Add(-24 * time.Hour),
		NextRun:     nextRun,
		Description: fmt.Sprintf("全量推荐重算 (%02d:%02d)", s.hour, s.minute),
	}
	logger.Info("定时任务初始化完成", "schedule_time", fmt.Sprintf("%02d:%02d", s.hour, s.minute), "next_run", nextRun.Format("2006-01-02 15:04:05"))
}

// 主循环
func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(secondsToDuration(s.checkInterval()))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			logger.Info("调度器已停止")
			return
		case now := <-ticker.C:
			s.checkTask(ctx, now)
		}
	}
}

// 检查任务，到点且未在运行时启动
func (s *Scheduler) checkTask(ctx context.Context, now time.Time) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// 如果任务正在运行，跳过
	if s.task.IsRunning {
		return false
	}

	if now.Before(s.task.NextRun) {
		return false
	}

	s.task.IsRunning = true
	s.wg.Add(1)
	go s.runTask(ctx, now)
	return true
}

// 运行任务：重新加载目录 → 全量重算
func (s *Scheduler) runTask(ctx context.Context, now time.Time) {
	defer s.wg.Done()
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		s.task.IsRunning = false
		s.task.LastRun = now
		s.task.NextRun = getNextTimePoint(now.Add(time.Minute), s.hour, s.minute)

		logger.Info("任务执行完成", "task", s.task.Description, "next_run", s.task.NextRun.Format("2006-01-02 15:04:05"))
	}()

	logger.Info("开始执行任务", "task", s.Status().Description)

	if s.catalog != nil {
		if err := s.catalog.Reload(); err != nil {
			// 加载失败时继续使用旧目录
			logger.Warn("[步骤1/2] 重新加载工具目录失败", "error", err)
		} else {
			logger.Info("[步骤1/2] 工具目录已重新加载")
		}
	}

	logger.Info("[步骤2/2] 开始全量重算推荐", "concurrency", s.concurrency)
	summary, err := s.recomputer.GenerateRecommendationsForAllUsers(ctx, s.concurrency)
	if err != nil {
		logger.Error("[步骤2/2] 全量重算推荐失败", "error", err)
		return
	}
	logger.Info("[步骤2/2] 全量重算推荐完成",
		"processed", summary.Processed,
		"completed", summary.Completed,
		"failed", summary.Failed,
	)
}
