package handler

import (
	"StarEstate/internal/pkg/consts"
	"StarEstate/internal/pkg/redis"
	"StarEstate/internal/service"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// DefaultTelemetryPushInterval 未配置时的监控推送周期
const DefaultTelemetryPushInterval = 10 * time.Second

type WsHandler struct {
	telemetrySvc service.TelemetryService
	pushInterval time.Duration
}

func NewWsHandler(telemetrySvc service.TelemetryService, pushIntervalSec int) *WsHandler {
	interval := DefaultTelemetryPushInterval
	if pushIntervalSec > 0 {
		interval = time.Duration(pushIntervalSec) * time.Second
	}
	return &WsHandler{
		telemetrySvc: telemetrySvc,
		pushInterval: interval,
	}
}

// Telemetry 建立监控推送连接：每个周期读一次最新采样并下发，
// 没有可用采样时本轮静默跳过，连接断开即停止
func (s *WsHandler) Telemetry(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.Status(http.StatusUnauthorized)
		return
	}
	value, err := redis.GetValue(c.Request.Context(), consts.AuthTokenKey+token)
	if err != nil || value == "" {
		c.Status(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	stopChan := make(chan struct{})

	// 读循环只为感知客户端断开
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				close(stopChan)
				return
			}
		}
	}()

	ticker := time.NewTicker(s.pushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sample, err := s.telemetrySvc.LatestSample(c.Request.Context())
			if err != nil {
				log.Warn("读取监控采样失败", "err", err)
				continue
			}
			if sample == nil {
				continue
			}
			payload, err := json.Marshal(sample)
			if err != nil {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(s.pushInterval))
			if err = conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-stopChan:
			return
		}
	}
}
