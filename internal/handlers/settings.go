package handlers

import (
	"net/http"
	"time"

	"weyouth/internal/database"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct{}

func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

// GetWorshipInfo 예배 시간과 장소를 반환한다
func (h *SettingsHandler) GetWorshipInfo(c *gin.Context) {
	var settings models.Settings
	if err := database.DB.First(&settings).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "예배 정보가 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"worship": settings})
}

// UpdateWorshipInfo 예배 시간과 장소를 수정한다
func (h *SettingsHandler) UpdateWorshipInfo(c *gin.Context) {
	var req struct {
		Time     string `json:"time"`
		Location string `json:"location"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var settings models.Settings
	if err := database.DB.First(&settings).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "예배 정보가 없습니다"})
		return
	}

	if req.Time != "" {
		settings.WorshipTime = req.Time
	}
	if req.Location != "" {
		settings.WorshipLocation = req.Location
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "예배 정보 저장에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"worship": settings})
}

// GetDashboardStats 관리자 대시보드 카운터를 반환한다
func (h *SettingsHandler) GetDashboardStats(c *gin.Context) {
	var stats struct {
		TotalMembers         int64 `json:"total_members"`
		TotalNotices         int64 `json:"total_notices"`
		TotalPosts           int64 `json:"total_posts"`
		UnreadParticipations int64 `json:"unread_participations"`
		UnreadNotifications  int64 `json:"unread_notifications"`
		TodayAttendance      int64 `json:"today_attendance"`
	}

	today := time.Now().Format("2006-01-02")

	database.DB.Model(&models.Member{}).Count(&stats.TotalMembers)
	database.DB.Model(&models.Notice{}).Count(&stats.TotalNotices)
	database.DB.Model(&models.Post{}).Count(&stats.TotalPosts)
	database.DB.Model(&models.Participation{}).Where("is_read = ?", false).Count(&stats.UnreadParticipations)
	database.DB.Model(&models.Notification{}).Where("is_read = ?", false).Count(&stats.UnreadNotifications)
	database.DB.Model(&models.AttendanceRecord{}).Where("date = ?", today).Count(&stats.TodayAttendance)

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
