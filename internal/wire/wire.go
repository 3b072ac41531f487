package wire

import (
	"StarEstate/internal/api"
	"StarEstate/internal/api/config"
	"StarEstate/internal/api/handler"
	"StarEstate/internal/job"
	"StarEstate/internal/pkg/cron"
	"StarEstate/internal/repository"
	"StarEstate/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	noticeRepo := repository.NewNoticeRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	repairsRepo := repository.NewRepairsRepo(db)
	orderRepo := repository.NewServiceOrderRepo(db)
	evaluateRepo := repository.NewEvaluateRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	userPaymentRepo := repository.NewUserPaymentRepo(db)
	parkingRepo := repository.NewParkingRepo(db)
	houseRepo := repository.NewHouseRepo(db)
	messageRepo := repository.NewMessageRepo(db)

	smsService := service.NewSmsService()
	accountService := service.NewAccountService(userRepo, smsService)
	userService := service.NewUserService(userRepo)
	noticeService := service.NewNoticeService(noticeRepo)
	activityService := service.NewActivityService(activityRepo, noticeRepo)
	repairService := service.NewRepairService(repairsRepo, userRepo)
	orderService := service.NewServiceOrderService(orderRepo)
	evaluateService := service.NewEvaluateService(evaluateRepo, orderRepo, userPaymentRepo)
	commentService := service.NewCommentService(commentRepo, noticeRepo, userRepo)
	paymentService := service.NewPaymentService(paymentRepo, userPaymentRepo, parkingRepo, houseRepo)
	userPaymentService := service.NewUserPaymentService(userPaymentRepo, noticeRepo)
	parkingService := service.NewParkingService(parkingRepo)
	houseService := service.NewHouseService(houseRepo)
	messageService := service.NewMessageService(messageRepo, evaluateRepo, userRepo)
	reportService := service.NewReportService(userRepo, activityRepo, repairsRepo, paymentRepo, parkingRepo, houseRepo, evaluateRepo)
	exportService := service.NewExportService(userRepo, paymentRepo)
	telemetryService := service.NewTelemetryService(cfg.Telemetry)

	handlers := &api.HandlersGroup{
		AccountHandler:      handler.NewAccountHandler(accountService),
		UserHandler:         handler.NewUserHandler(userService),
		MediaHandler:        handler.NewMediaHandler(userService),
		NoticeHandler:       handler.NewNoticeHandler(noticeService),
		ActivityHandler:     handler.NewActivityHandler(activityService),
		RepairHandler:       handler.NewRepairHandler(repairService),
		ServiceOrderHandler: handler.NewServiceOrderHandler(orderService),
		EvaluateHandler:     handler.NewEvaluateHandler(evaluateService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		PaymentHandler:      handler.NewPaymentHandler(paymentService, userPaymentService),
		UnitHandler:         handler.NewUnitHandler(parkingService, houseService),
		MessageHandler:      handler.NewMessageHandler(messageService),
		ReportHandler:       handler.NewReportHandler(reportService, exportService),
		WsHandler:           handler.NewWsHandler(telemetryService, cfg.Telemetry.PushInterval),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewStatsWarmJob(reportService),
		job.NewNoticeExpireJob(noticeService),
	)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
