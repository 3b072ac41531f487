package api

import "StarEstate/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AccountHandler      *handler.AccountHandler
	UserHandler         *handler.UserHandler
	MediaHandler        *handler.MediaHandler
	NoticeHandler       *handler.NoticeHandler
	ActivityHandler     *handler.ActivityHandler
	RepairHandler       *handler.RepairHandler
	ServiceOrderHandler *handler.ServiceOrderHandler
	EvaluateHandler     *handler.EvaluateHandler
	CommentHandler      *handler.CommentHandler
	PaymentHandler      *handler.PaymentHandler
	UnitHandler         *handler.UnitHandler
	MessageHandler      *handler.MessageHandler
	ReportHandler       *handler.ReportHandler
	WsHandler           *handler.WsHandler
}
