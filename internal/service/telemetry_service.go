package service

import (
	"StarEstate/internal/api/config"
	"context"
	"os"
	"strings"
)

// TelemetrySample 主机监控数据的一次采样
type TelemetrySample struct {
	Time string `json:"time"`
	CPU  string `json:"cpu"`
	Mem  string `json:"mem"`
}

// 采样行里时间、CPU、内存所在的列
const (
	telemetryTimeCol = 0
	telemetryCPUCol  = 1
	telemetryMemCol  = 67
)

type TelemetryService interface {
	LatestSample(ctx context.Context) (*TelemetrySample, error)
}

type TelemetryServiceImpl struct {
	dataFile string
}

func NewTelemetryService(cfg config.TelemetryConfig) TelemetryService {
	return &TelemetryServiceImpl{dataFile: cfg.DataFile}
}

// LatestSample 取采样文件的最后一行。文件缺失或行太短都
// 不算错误，返回 nil 表示本轮没有可推送的数据。
func (s *TelemetryServiceImpl) LatestSample(_ context.Context) (*TelemetrySample, error) {
	data, err := os.ReadFile(s.dataFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\n")
	if len(lines) == 0 {
		return nil, nil
	}
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return nil, nil
	}

	cols := strings.Split(last, ",")
	if len(cols) <= telemetryMemCol {
		return nil, nil
	}
	return &TelemetrySample{
		Time: strings.TrimSpace(cols[telemetryTimeCol]),
		CPU:  strings.TrimSpace(cols[telemetryCPUCol]),
		Mem:  strings.TrimSpace(cols[telemetryMemCol]),
	}, nil
}
