package job

import (
	"StarEstate/internal/pkg/logger"
	"StarEstate/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// StatsWarmJob 定时重算社区统计并回填缓存，
// 避免首个访问者撞上冷缓存
type StatsWarmJob struct {
	reportSvc service.ReportService
}

func NewStatsWarmJob(reportSvc service.ReportService) *StatsWarmJob {
	return &StatsWarmJob{reportSvc: reportSvc}
}

func (s *StatsWarmJob) Run() {
	traceID := "job-stats-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	stats, err := s.reportSvc.RefreshCommunityStats(ctx)
	if err != nil {
		log.ErrorContext(ctx, "社区统计刷新失败", "err", err)
		return
	}
	log.InfoContext(ctx, "社区统计已刷新",
		"all_user", stats.AllUser,
		"house_use", stats.HouseUse,
		"park_use", stats.ParkUse)
}
