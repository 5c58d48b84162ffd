package handlers

import (
	"net/http"
	"strconv"
	"time"

	"weyouth/internal/database"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
)

type ParticipationHandler struct{}

func NewParticipationHandler() *ParticipationHandler {
	return &ParticipationHandler{}
}

// Apply 공지(행사)에 참여를 신청한다.
// 같은 사람(이름 기준)의 중복 신청은 409로 거부한다.
func (h *ParticipationHandler) Apply(c *gin.Context) {
	noticeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notice ID"})
		return
	}

	userID, _ := c.Get("user_id")
	userName, _ := c.Get("user_name")
	role, _ := c.Get("role")

	var notice models.Notice
	if err := database.DB.First(&notice, noticeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "공지를 찾을 수 없습니다"})
		return
	}

	// 행사 공지만 신청을 받는다
	if notice.Category != "event" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "참여 신청을 받지 않는 공지입니다"})
		return
	}

	// 중복 신청 확인: 세션 ID는 로그인마다 바뀌므로 이름으로 대조한다
	var existing models.Participation
	if err := database.DB.Where("notice_id = ? AND user_name = ?", notice.ID, userName).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "이미 신청했습니다"})
		return
	}

	participation := models.Participation{
		NoticeID:    notice.ID,
		NoticeTitle: notice.Title,
		UserID:      userID.(string),
		UserName:    userName.(string),
		UserRole:    role.(string),
		AppliedAt:   time.Now(),
	}

	if err := database.DB.Create(&participation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "신청 저장에 실패했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"participation": participation})
}

// ListParticipations 신청 내역을 최신순으로 반환한다 (관리자용)
func (h *ParticipationHandler) ListParticipations(c *gin.Context) {
	query := database.DB.Order("applied_at DESC")

	if noticeID := c.Query("notice_id"); noticeID != "" {
		query = query.Where("notice_id = ?", noticeID)
	}

	var participations []models.Participation
	if err := query.Find(&participations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "신청 내역을 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"participations": participations})
}

// UnreadCount 확인하지 않은 신청 건수를 반환한다
func (h *ParticipationHandler) UnreadCount(c *gin.Context) {
	var count int64
	if err := database.DB.Model(&models.Participation{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "신청 내역을 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkAllRead 관리자가 신청 탭을 열 때 전체를 읽음 처리한다.
// UPDATE 한 번으로 수행되며 반복 호출해도 결과는 같다.
func (h *ParticipationHandler) MarkAllRead(c *gin.Context) {
	if err := database.DB.Model(&models.Participation{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "읽음 처리에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "모든 신청을 확인했습니다"})
}

// MyParticipations 현재 사용자의 신청 내역을 반환한다
func (h *ParticipationHandler) MyParticipations(c *gin.Context) {
	userName, _ := c.Get("user_name")

	var participations []models.Participation
	if err := database.DB.Where("user_name = ?", userName).
		Order("applied_at DESC").
		Find(&participations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "신청 내역을 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"participations": participations})
}
