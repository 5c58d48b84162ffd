package handlers

import (
	"net/http"
	"time"

	"weyouth/internal/config"
	"weyouth/internal/database"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	cfg *config.Config
}

func NewAttendanceHandler(cfg *config.Config) *AttendanceHandler {
	return &AttendanceHandler{cfg: cfg}
}

// CheckIn 주일 출석을 기록한다.
// 같은 사람(이름 기준)은 하루에 한 번만 기록되며, 기준 시각 이후는 지각 처리된다.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	userID, _ := c.Get("user_id")
	userName, _ := c.Get("user_name")

	now := time.Now()
	today := now.Format("2006-01-02")

	// 이미 출석했으면 기존 기록을 그대로 반환
	var existing models.AttendanceRecord
	if err := database.DB.Where("user_name = ? AND date = ?", userName, today).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":      "오늘은 이미 출석했습니다",
			"attendance": existing,
		})
		return
	}

	record := models.AttendanceRecord{
		UserID:   userID.(string),
		UserName: userName.(string),
		Date:     today,
		Status:   statusForTime(now, h.cfg.Attendance.LateCutoff),
	}

	if err := database.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "출석 저장에 실패했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attendance": record})
}

// MyAttendance 현재 사용자의 오늘 출석 기록을 반환한다
func (h *AttendanceHandler) MyAttendance(c *gin.Context) {
	userName, _ := c.Get("user_name")
	today := time.Now().Format("2006-01-02")

	var record models.AttendanceRecord
	if err := database.DB.Where("user_name = ? AND date = ?", userName, today).First(&record).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"attendance": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": record})
}

// ListAttendance 출석 기록을 필터와 함께 조회한다 (관리자용)
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	query := database.DB.Order("date DESC, created_at DESC").Limit(100)

	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if name := c.Query("name"); name != "" {
		query = query.Where("user_name = ?", name)
	}

	var records []models.AttendanceRecord
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "출석 기록을 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": records})
}

// GetAttendanceStats 기간별 출석 통계를 반환한다
func (h *AttendanceHandler) GetAttendanceStats(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
		return
	}

	var stats []struct {
		Status string
		Count  int
	}

	if err := database.DB.Model(&models.AttendanceRecord{}).
		Select("status, COUNT(*) as count").
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("status").
		Scan(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "통계를 불러오지 못했습니다"})
		return
	}

	result := map[string]int{
		"present": 0,
		"late":    0,
		"absent":  0,
	}

	for _, stat := range stats {
		result[stat.Status] = stat.Count
	}

	c.JSON(http.StatusOK, gin.H{"stats": result})
}

// statusForTime 기준 시각(HH:MM)과 비교해 출석 상태를 정한다.
// 기준 시각 정각부터 지각이다.
func statusForTime(now time.Time, cutoff string) string {
	cutoffTime, err := time.Parse("15:04", cutoff)
	if err != nil {
		cutoffTime, _ = time.Parse("15:04", "10:40")
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	cutoffMinutes := cutoffTime.Hour()*60 + cutoffTime.Minute()

	if nowMinutes >= cutoffMinutes {
		return "late"
	}
	return "present"
}
