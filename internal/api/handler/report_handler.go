package handler

import (
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/service"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
	exportSvc service.ExportService
}

func NewReportHandler(reportSvc service.ReportService, exportSvc service.ExportService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
		exportSvc: exportSvc,
	}
}

func (s *ReportHandler) RecentRecords(c *gin.Context) {
	report, err := s.reportSvc.RecentRecords(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *ReportHandler) CommunityStats(c *gin.Context) {
	stats, err := s.reportSvc.CommunityStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *ReportHandler) ScoreBuckets(c *gin.Context) {
	buckets, err := s.reportSvc.ScoreBuckets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, buckets)
}

func (s *ReportHandler) PaymentTypeCounts(c *gin.Context) {
	counts, err := s.reportSvc.PaymentTypeCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}

func (s *ReportHandler) CallCounts(c *gin.Context) {
	counts, err := s.reportSvc.CallCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}

// ExportUsers 下载用户 xlsx 报表
func (s *ReportHandler) ExportUsers(c *gin.Context) {
	s.export(c, "users", s.exportSvc.ExportUsers)
}

// ExportPayments 下载缴费 xlsx 报表
func (s *ReportHandler) ExportPayments(c *gin.Context) {
	s.export(c, "payments", s.exportSvc.ExportPayments)
}

func (s *ReportHandler) export(c *gin.Context, name string, write func(ctx context.Context, w io.Writer) error) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := write(c.Request.Context(), c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
