package handlers

import (
	"net/http"

	"weyouth/internal/database"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// ListNotifications 알림 목록을 최신순으로 반환한다
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := database.DB.Order("created_at DESC").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "알림을 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// UnreadCount 읽지 않은 알림 수를 반환한다.
// 저장된 값이 아니라 매번 계산한다.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	var count int64
	if err := database.DB.Model(&models.Notification{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "알림을 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkAllRead 알림 센터에 들어올 때 전체를 읽음 처리한다.
// UPDATE 한 번으로 수행되며 반복 호출해도 결과는 같다.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := database.DB.Model(&models.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "읽음 처리에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "모든 알림을 읽음 처리했습니다"})
}

// ClearAll 알림을 전부 삭제한다
func (h *NotificationHandler) ClearAll(c *gin.Context) {
	if err := database.DB.Where("1 = 1").Delete(&models.Notification{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "알림 삭제에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "모든 알림이 삭제되었습니다"})
}
