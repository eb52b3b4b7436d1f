// Package metrics 推荐服务的 Prometheus 指标
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 生成模式
const (
	ModeRecompute   = "recompute"
	ModeFetchLatest = "fetch_latest"
)

var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_generations_total",
			Help: "Total number of recommendation requests by mode and outcome",
		},
		[]string{"mode", "outcome"}, // outcome: success, no_profile, error
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_generation_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	RecommendedTools = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_tools_per_run",
			Help:    "Number of tools recommended per generation run",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10},
		},
	)

	PersistenceFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_persistence_failures_total",
			Help: "Total number of generation runs whose results could not be saved",
		},
	)

	BehaviorEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "behavior_events_total",
			Help: "Total number of tracked behavior events by action and outcome",
		},
		[]string{"action", "outcome"}, // outcome: applied, ignored
	)

	RatingsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tool_ratings_recorded_total",
			Help: "Total number of tool ratings recorded",
		},
	)

	BatchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_batch_users_total",
			Help: "Users processed by bulk recompute runs by outcome",
		},
		[]string{"outcome"}, // completed, failed
	)
)

// RecordGeneration 记录一次推荐请求
func RecordGeneration(mode, outcome string, duration time.Duration) {
	GenerationsTotal.WithLabelValues(mode, outcome).Inc()
	GenerationDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordRecommendedTools 记录一次生成的推荐工具数
func RecordRecommendedTools(n int) {
	RecommendedTools.Observe(float64(n))
}

// RecordPersistenceFailure 推荐结果保存失败
func RecordPersistenceFailure() {
	PersistenceFailures.Inc()
}

// RecordBehavior 记录一次行为上报
func RecordBehavior(action string, applied bool) {
	outcome := "applied"
	if !applied {
		outcome = "ignored"
	}
	BehaviorEvents.WithLabelValues(action, outcome).Inc()
}

// RecordRating 记录一次评分
func RecordRating() {
	RatingsRecorded.Inc()
}

// RecordBatchUser 全量重算中单个用户的结果
func RecordBatchUser(err error) {
	if err != nil {
		BatchRunsTotal.WithLabelValues("failed").Inc()
		return
	}
	BatchRunsTotal.WithLabelValues("completed").Inc()
}
