package api

import (
	"StarEstate/internal/api/middleware"
	"StarEstate/internal/pkg/logger"
	"StarEstate/internal/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		accountGroup := apiGroup.Group("/account")
		{
			accountGroup.POST("/register", group.AccountHandler.Register)
			accountGroup.POST("/login", group.AccountHandler.Login)
			accountGroup.GET("/exists", group.AccountHandler.Exists)
			accountGroup.GET("/sms/send", group.AccountHandler.SendSmsCode)

			authGroup := accountGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.AccountHandler.Logout)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				adminGroup.GET("/ranking", group.AccountHandler.LoginRanking)
				adminGroup.GET("/login-count", group.AccountHandler.DailyLoginCount)
			}
		}

		userGroup := apiGroup.Group("/user")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/info", group.UserHandler.GetMyInfo)
			userGroup.PUT("/info", group.UserHandler.UpdateMyInfo)
			userGroup.PUT("/password", group.UserHandler.UpdatePassword)
			userGroup.POST("/avatar", group.MediaHandler.UploadAvatar)

			adminGroup := userGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				// 前端判断当前账号是否有后台权限，能走到这里就是管理员
				adminGroup.GET("/check", func(c *gin.Context) {
					response.Success(c, nil)
				})
				adminGroup.GET("/search", group.UserHandler.SearchUsers)
				adminGroup.GET("/workers/free", group.UserHandler.FreeWorkers)
				adminGroup.GET("/id-map", group.UserHandler.UsernameIDMap)
				adminGroup.GET("/data", group.UserHandler.GroupCounts)
				adminGroup.GET("/:id", group.UserHandler.GetUser)
				adminGroup.PUT("/:id", group.UserHandler.UpdateUser)
				adminGroup.DELETE("/:id", group.UserHandler.DeleteUser)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(middleware.AuthMiddleware())
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}

		noticeGroup := apiGroup.Group("/publicity")
		noticeGroup.Use(middleware.AuthMiddleware())
		{
			noticeGroup.GET("", group.NoticeHandler.Search)
			noticeGroup.GET("/home", group.NoticeHandler.HomeFeed)
			noticeGroup.GET("/:id", group.NoticeHandler.Get)
			noticeGroup.POST("/:id/like", group.NoticeHandler.Like)
			noticeGroup.GET("/activities/open", group.NoticeHandler.OpenActivities)
			noticeGroup.GET("/activities/ranking", group.NoticeHandler.ActivityRanking)

			adminGroup := noticeGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				adminGroup.POST("", group.NoticeHandler.Create)
				adminGroup.PUT("/:id", group.NoticeHandler.Update)
				adminGroup.DELETE("/:id", group.NoticeHandler.Delete)
			}
		}

		activityGroup := apiGroup.Group("/activity-apply")
		activityGroup.Use(middleware.AuthMiddleware())
		{
			activityGroup.POST("", group.ActivityHandler.Apply)

			adminGroup := activityGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				adminGroup.GET("", group.ActivityHandler.List)
				adminGroup.PUT("/:id/review", group.ActivityHandler.Review)
				adminGroup.DELETE("/:id", group.ActivityHandler.Delete)
			}
		}

		repairGroup := apiGroup.Group("/repairs-apply")
		repairGroup.Use(middleware.AuthMiddleware())
		{
			repairGroup.POST("", group.RepairHandler.Apply)

			adminGroup := repairGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				adminGroup.GET("", group.RepairHandler.List)
				adminGroup.PUT("/:id", group.RepairHandler.Advance)
				adminGroup.DELETE("/:id", group.RepairHandler.Delete)
			}
		}

		serviceGroup := apiGroup.Group("/services")
		serviceGroup.Use(middleware.AuthMiddleware())
		{
			serviceGroup.GET("", group.ServiceOrderHandler.ListMine)
			serviceGroup.GET("/exists", group.ServiceOrderHandler.Exists)
			serviceGroup.DELETE("/:id", group.ServiceOrderHandler.Delete)
		}

		evaluateGroup := apiGroup.Group("/evaluate")
		evaluateGroup.Use(middleware.AuthMiddleware())
		{
			evaluateGroup.POST("", group.EvaluateHandler.Create)

			adminGroup := evaluateGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				adminGroup.GET("", group.EvaluateHandler.List)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.GET("", group.CommentHandler.List)
			commentGroup.POST("", group.CommentHandler.Create)

			adminGroup := commentGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				adminGroup.PUT("/:id/shield", group.CommentHandler.Shield)
				adminGroup.DELETE("/:id", group.CommentHandler.Delete)
			}
		}

		moneyGroup := apiGroup.Group("/money")
		moneyGroup.Use(middleware.AuthMiddleware())
		{
			moneyGroup.POST("", group.PaymentHandler.Create)

			adminGroup := moneyGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				adminGroup.GET("", group.PaymentHandler.List)
				adminGroup.DELETE("/:id", group.PaymentHandler.Delete)
			}
		}

		paymentGroup := apiGroup.Group("/payments")
		paymentGroup.Use(middleware.AuthMiddleware())
		{
			paymentGroup.GET("", group.PaymentHandler.ListMine)
			paymentGroup.GET("/exists", group.PaymentHandler.ExistsMine)
			paymentGroup.DELETE("/:id", group.PaymentHandler.DeleteMine)
		}

		parkingGroup := apiGroup.Group("/parking")
		parkingGroup.Use(middleware.AuthMiddleware())
		{
			parkingGroup.POST("", group.UnitHandler.CreateParking)
			parkingGroup.GET("/mine", group.UnitHandler.MyParking)
			parkingGroup.GET("/exists", group.UnitHandler.ParkingExists)

			adminGroup := parkingGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				adminGroup.GET("", group.UnitHandler.ListParkings)
				adminGroup.GET("/areas", group.UnitHandler.ParkingAreas)
				adminGroup.DELETE("/:id", group.UnitHandler.DeleteParking)
			}
		}

		houseGroup := apiGroup.Group("/house")
		houseGroup.Use(middleware.AuthMiddleware())
		{
			houseGroup.POST("", group.UnitHandler.CreateHouse)
			houseGroup.GET("/mine", group.UnitHandler.MyHouse)
			houseGroup.GET("/exists", group.UnitHandler.HouseExists)

			adminGroup := houseGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				adminGroup.GET("", group.UnitHandler.ListHouses)
				adminGroup.GET("/areas", group.UnitHandler.HouseAreas)
				adminGroup.DELETE("/:id", group.UnitHandler.DeleteHouse)
			}
		}

		messageGroup := apiGroup.Group("/messages")
		messageGroup.Use(middleware.AuthMiddleware())
		{
			messageGroup.GET("", group.MessageHandler.ListMine)
			messageGroup.POST("", group.MessageHandler.Send)

			adminGroup := messageGroup.Group("")
			adminGroup.Use(middleware.CheckAdmin())
			{
				adminGroup.POST("/feedback-reply", group.MessageHandler.ReplyFeedback)
				adminGroup.DELETE("/:id", group.MessageHandler.Delete)
			}
		}

		reportGroup := apiGroup.Group("/reports")
		reportGroup.Use(middleware.AuthMiddleware(), middleware.CheckAdmin())
		{
			reportGroup.GET("/records", group.ReportHandler.RecentRecords)
			reportGroup.GET("/community", group.ReportHandler.CommunityStats)
			reportGroup.GET("/scores", group.ReportHandler.ScoreBuckets)
			reportGroup.GET("/payment-types", group.ReportHandler.PaymentTypeCounts)
			reportGroup.GET("/calls", group.ReportHandler.CallCounts)
			reportGroup.GET("/export/users", group.ReportHandler.ExportUsers)
			reportGroup.GET("/export/payments", group.ReportHandler.ExportPayments)
		}

		// 鉴权走查询参数里的 token，升级前校验
		apiGroup.GET("/ws/telemetry", group.WsHandler.Telemetry)
	}

	return r
}
