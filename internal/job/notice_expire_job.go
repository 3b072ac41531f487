package job

import (
	"StarEstate/internal/pkg/logger"
	"StarEstate/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// NoticeExpireJob 兜底的公示过期清扫。过期主要在读取时
// 惰性完成，这里只是防止长期无人访问的公示一直挂着旧状态。
type NoticeExpireJob struct {
	noticeSvc service.NoticeService
}

func NewNoticeExpireJob(noticeSvc service.NoticeService) *NoticeExpireJob {
	return &NoticeExpireJob{noticeSvc: noticeSvc}
}

func (s *NoticeExpireJob) Run() {
	traceID := "job-notice-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.noticeSvc.ExpireOutdated(ctx); err != nil {
		log.ErrorContext(ctx, "公示过期清扫失败", "err", err)
		return
	}
	log.InfoContext(ctx, "公示过期清扫完成")
}
