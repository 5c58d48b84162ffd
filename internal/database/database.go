package database

import (
	"fmt"
	"log"
	"time"

	"weyouth/internal/config"
	"weyouth/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect 데이터베이스 연결을 설정한다
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector

	switch cfg.Database.Type {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Database.Host,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.DBName,
			cfg.Database.Port,
		)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.SQLPath)
	default:
		return fmt.Errorf("unsupported database type: %s", cfg.Database.Type)
	}

	// 로깅 설정
	logLevel := logger.Silent
	if cfg.Server.Environment == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db
	log.Printf("Connected to %s database successfully", cfg.Database.Type)
	return nil
}

// Migrate 스키마 자동 마이그레이션을 수행한다
func Migrate() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.Member{},
		&models.Notice{},
		&models.Participation{},
		&models.Post{},
		&models.Comment{},
		&models.AttendanceRecord{},
		&models.Notification{},
		&models.ScheduleEntry{},
		&models.Settings{},
		&models.DailyVerse{},
	)

	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaults 비어 있는 테이블에 기본 데이터를 채운다.
// 데이터가 없는 상태는 오류가 아니라 유효한 초기 상태다.
func SeedDefaults() error {
	var count int64

	if err := DB.Model(&models.ScheduleEntry{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		entries := []models.ScheduleEntry{
			{Day: "월", Title: "고등부 찬양팀 연습", Time: "19:00", Type: "practice"},
			{Day: "목", Title: "중등부 소그룹 모임", Time: "18:30", Type: "meeting"},
			{Day: "주일", Title: "주일 대예배 & 분반공부", Time: "10:30", Type: "worship", IsMain: true},
		}
		if err := DB.Create(&entries).Error; err != nil {
			return err
		}
	}

	if err := DB.Model(&models.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		settings := models.Settings{WorshipTime: "10:30", WorshipLocation: "지하 1층"}
		if err := DB.Create(&settings).Error; err != nil {
			return err
		}
	}

	if err := DB.Model(&models.DailyVerse{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		verses := []models.DailyVerse{
			{Text: "내가 네게 명령한 것이 아니냐 강하고 담대하라 두려워하지 말며 놀라지 말라 네가 어디로 가든지 네 하나님 여호와가 너와 함께 하느니라", Reference: "여호수아 1:9"},
			{Text: "여호와는 나의 목자시니 내게 부족함이 없으리로다", Reference: "시편 23:1"},
			{Text: "내게 능력 주시는 자 안에서 내가 모든 것을 할 수 있느니라", Reference: "빌립보서 4:13"},
			{Text: "너는 마음을 다하여 여호와를 신뢰하고 네 명철을 의지하지 말라", Reference: "잠언 3:5"},
			{Text: "아무 것도 염려하지 말고 다만 모든 일에 기도와 간구로, 너희 구할 것을 감사함으로 하나님께 아뢰라", Reference: "빌립보서 4:6"},
			{Text: "새 계명을 너희에게 주노니 서로 사랑하라 내가 너희를 사랑한 것 같이 너희도 서로 사랑하라", Reference: "요한복음 13:34"},
		}
		if err := DB.Create(&verses).Error; err != nil {
			return err
		}
	}

	if err := DB.Model(&models.Notice{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		notice := models.Notice{
			Title:    "우리는 청소년부에 오신 것을 환영합니다!",
			Content:  "새로운 공동체 앱이 열렸습니다. 공지사항과 일정을 확인하고, 소통 공간에서 기도제목을 나눠보세요.",
			Date:     time.Now().Format("2006-01-02"),
			Author:   "관리자",
			Category: "info",
		}
		if err := DB.Create(&notice).Error; err != nil {
			return err
		}
	}

	return nil
}

// Close 데이터베이스 연결을 닫는다
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
