package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ai_tool_directory/handlers"
	"ai_tool_directory/logger"
	"ai_tool_directory/scheduler"
)

// NewServeCmd 创建 serve 命令
func NewServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Start the recommendation HTTP API.

When scheduler.enabled is set, recommendations for every user are
recomputed daily at cron.recompute_hour:cron.recompute_min.`,
		Example: `  ai_tool_directory serve --config config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

// runServe 启动 HTTP 服务，收到 SIGINT/SIGTERM 后优雅退出
func runServe(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	h := handlers.NewHandler(a.cfg, handlers.Deps{
		Recommendations: a.recommendations,
		Behavior:        a.behavior,
		Ratings:         a.ratings,
		Profiles:        a.profileService,
		Catalog:         a.catalog,
	})

	// start cron
	var sched *scheduler.Scheduler
	if a.cfg.Scheduler.Enabled {
		sched = scheduler.NewScheduler(a.cfg, a.recommendations, a.catalog)
		sched.Start(ctx)
	}

	srv := &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      handlers.NewRouter(a.cfg, h),
		ReadTimeout:  time.Duration(a.cfg.Timeouts.RequestSec) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Timeouts.ResponseSec) * time.Second,
		IdleTimeout:  time.Duration(a.cfg.Timeouts.IdleSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("服务器启动", "address", srv.Addr)
		logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("正在关闭服务器")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器关闭失败", "error", err)
	}
	h.Wait()
	if sched != nil {
		sched.Wait()
	}
	logger.Info("服务器已关闭")
	return nil
}
