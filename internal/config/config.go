package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Auth       AuthConfig
	Attendance AttendanceConfig
	Gemini     GeminiConfig
}

type ServerConfig struct {
	Port        string
	Environment string
}

type DatabaseConfig struct {
	Type     string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SQLPath  string
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

type AuthConfig struct {
	// 공동체 공용 비밀번호 (원본 앱과 동일하게 전원이 같은 값을 사용)
	SharedPasswordHash []byte
}

type AttendanceConfig struct {
	// HH:MM, 이 시각부터 '지각' 처리
	LateCutoff string
}

type GeminiConfig struct {
	APIKey          string
	ReflectionModel string
	MentorModel     string
	RequestTimeout  time.Duration
}

func Load() *Config {
	// .env 파일 로드 (없으면 환경 변수만 사용)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	sharedHash, err := bcrypt.GenerateFromPassword([]byte(getEnv("SHARED_PASSWORD", "12345678")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash shared password: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Type:     getEnv("DB_TYPE", "sqlite"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "weyouth"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "weyouth_db"),
			SQLPath:  getEnv("SQLITE_PATH", "./weyouth.db"),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "default-secret-key-change-me"),
			AccessTokenExpiry: parseDuration(getEnv("JWT_EXPIRY", "72h")),
		},
		Auth: AuthConfig{
			SharedPasswordHash: sharedHash,
		},
		Attendance: AttendanceConfig{
			LateCutoff: getEnv("ATTENDANCE_LATE_CUTOFF", "10:40"),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			ReflectionModel: getEnv("GEMINI_REFLECTION_MODEL", "gemini-2.5-flash"),
			MentorModel:     getEnv("GEMINI_MENTOR_MODEL", "gemini-2.5-pro"),
			RequestTimeout:  parseDuration(getEnv("GEMINI_TIMEOUT", "30s")),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration format for %s, using default", s)
		return 15 * time.Minute
	}
	return duration
}
