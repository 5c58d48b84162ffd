package main

import (
	"context"
	"log"

	"weyouth/internal/ai"
	"weyouth/internal/config"
	"weyouth/internal/database"
	"weyouth/internal/handlers"
	"weyouth/internal/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	// 설정 로드
	cfg := config.Load()

	// 데이터베이스 연결
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// 마이그레이션
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// 기본 데이터 (비어 있을 때만)
	if err := database.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	// Gin 설정
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware
	router.Use(middleware.CORSMiddleware())

	// AI 클라이언트 (API 키가 없으면 묵상/멘토 기능만 비활성화)
	var generator handlers.Generator
	if cfg.Gemini.APIKey != "" {
		client, err := ai.NewClient(context.Background(), cfg.Gemini)
		if err != nil {
			log.Printf("Warning: failed to init Gemini client, AI features disabled: %v", err)
		} else {
			generator = client
		}
	} else {
		log.Println("Warning: GEMINI_API_KEY not set, AI features disabled")
	}

	// Handlers 초기화
	authHandler := handlers.NewAuthHandler(cfg)
	memberHandler := handlers.NewMemberHandler()
	noticeHandler := handlers.NewNoticeHandler()
	participationHandler := handlers.NewParticipationHandler()
	postHandler := handlers.NewPostHandler()
	attendanceHandler := handlers.NewAttendanceHandler(cfg)
	notificationHandler := handlers.NewNotificationHandler()
	scheduleHandler := handlers.NewScheduleHandler()
	settingsHandler := handlers.NewSettingsHandler()
	devotionalHandler := handlers.NewDevotionalHandler(cfg, generator)
	exportHandler := handlers.NewExportHandler()

	// API routes
	api := router.Group("/api")
	{
		// 공개 라우트
		api.POST("/auth/login", authHandler.Login)

		// 인증 필요 라우트
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			// 현재 사용자
			protected.GET("/auth/me", authHandler.Me)

			// 공지사항
			notices := protected.Group("/notices")
			{
				notices.GET("", noticeHandler.ListNotices)
				notices.GET("/:id", noticeHandler.GetNotice)
				notices.POST("", middleware.RequireStaff(), noticeHandler.CreateNotice)
				notices.PUT("/:id", middleware.RequireStaff(), noticeHandler.UpdateNotice)
				notices.DELETE("/:id", middleware.RequireStaff(), noticeHandler.DeleteNotice)
				notices.POST("/:id/apply", participationHandler.Apply)
			}

			// 참여 신청 (관리자 화면)
			participations := protected.Group("/participations")
			{
				participations.GET("/my", participationHandler.MyParticipations)
				participations.GET("", middleware.RequireStaff(), participationHandler.ListParticipations)
				participations.GET("/unread-count", middleware.RequireStaff(), participationHandler.UnreadCount)
				participations.PUT("/read-all", middleware.RequireStaff(), participationHandler.MarkAllRead)
			}

			// 소통 공간
			posts := protected.Group("/posts")
			{
				posts.GET("", postHandler.ListPosts)
				posts.GET("/:id", postHandler.GetPost)
				posts.POST("", postHandler.CreatePost)
				posts.POST("/:id/like", postHandler.LikePost)
				posts.POST("/:id/comments", postHandler.AddComment)
			}

			// 출석
			attendance := protected.Group("/attendance")
			{
				attendance.POST("/checkin", attendanceHandler.CheckIn)
				attendance.GET("/me", attendanceHandler.MyAttendance)
				attendance.GET("", middleware.RequireStaff(), attendanceHandler.ListAttendance)
				attendance.GET("/stats", middleware.RequireStaff(), attendanceHandler.GetAttendanceStats)
			}

			// 알림 센터
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationHandler.ListNotifications)
				notifications.GET("/unread-count", notificationHandler.UnreadCount)
				notifications.PUT("/read-all", notificationHandler.MarkAllRead)
				notifications.DELETE("", notificationHandler.ClearAll)
			}

			// 일정 / 예배 정보
			schedules := protected.Group("/schedules")
			{
				schedules.GET("", scheduleHandler.ListSchedules)
				schedules.POST("", middleware.RequireStaff(), scheduleHandler.CreateSchedule)
				schedules.PUT("/:id", middleware.RequireStaff(), scheduleHandler.UpdateSchedule)
				schedules.DELETE("/:id", middleware.RequireStaff(), scheduleHandler.DeleteSchedule)
			}
			protected.GET("/settings/worship", settingsHandler.GetWorshipInfo)
			protected.PUT("/settings/worship", middleware.RequireStaff(), settingsHandler.UpdateWorshipInfo)

			// 묵상 / 성경 멘토
			devotional := protected.Group("/devotional")
			{
				devotional.GET("/verse", devotionalHandler.GetDailyVerse)
				devotional.POST("/reflection", devotionalHandler.GenerateReflection)
				devotional.POST("/mentor", devotionalHandler.AskMentor)
			}

			// 명단 관리 (관리자 콘솔)
			members := protected.Group("/members")
			members.Use(middleware.RequireStaff())
			{
				members.GET("", memberHandler.ListMembers)
				members.POST("", memberHandler.AddMember)
				members.PUT("/:id/role", memberHandler.ChangeRole)
				members.DELETE("/:id", memberHandler.DeleteMember)
			}

			// 대시보드 / 내보내기
			protected.GET("/admin/stats", middleware.RequireStaff(), settingsHandler.GetDashboardStats)
			export := protected.Group("/export")
			export.Use(middleware.RequireStaff())
			{
				export.GET("/attendance", exportHandler.ExportAttendance)
				export.GET("/participations", exportHandler.ExportParticipations)
			}
		}
	}

	// 서버 시작
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
