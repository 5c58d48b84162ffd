package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"weyouth/internal/database"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct{}

func NewNoticeHandler() *NoticeHandler {
	return &NoticeHandler{}
}

// CreateNoticeRequest 공지 작성 요청 구조체
type CreateNoticeRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"` // worship, event, info
	ImageURL string `json:"image_url,omitempty"`
}

// CreateNotice 공지를 작성하고 알림을 발행한다
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	userName, _ := c.Get("user_name")

	var req CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validCategories := map[string]bool{"worship": true, "event": true, "info": true}
	if !validCategories[req.Category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notice category"})
		return
	}

	notice := models.Notice{
		Title:    req.Title,
		Content:  req.Content,
		Date:     time.Now().Format("2006-01-02"),
		Author:   userName.(string),
		Category: req.Category,
		ImageURL: req.ImageURL,
	}

	if err := database.DB.Create(&notice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "공지 저장에 실패했습니다"})
		return
	}

	// 알림 발행 (공지 저장과 별도의 쓰기)
	notification := models.Notification{
		Type:    "notice",
		Title:   notice.Title,
		Message: "새로운 공지사항이 등록되었습니다.",
		Link:    "/notice/" + strconv.FormatUint(uint64(notice.ID), 10),
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		// 알림 실패는 공지 작성 자체를 되돌리지 않는다
		log.Printf("Failed to create notification for notice %d: %v", notice.ID, err)
	}

	c.JSON(http.StatusCreated, gin.H{"notice": notice})
}

// ListNotices 공지 목록을 최신순으로 반환한다
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	category := c.Query("category")

	query := database.DB.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var notices []models.Notice
	if err := query.Find(&notices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "공지를 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notices": notices})
}

// GetNotice 공지 상세를 반환한다
func (h *NoticeHandler) GetNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notice ID"})
		return
	}

	var notice models.Notice
	if err := database.DB.First(&notice, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "공지를 찾을 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notice": notice})
}

// UpdateNotice 공지를 수정한다
func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notice ID"})
		return
	}

	var req CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var notice models.Notice
	if err := database.DB.First(&notice, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "공지를 찾을 수 없습니다"})
		return
	}

	notice.Title = req.Title
	notice.Content = req.Content
	notice.Category = req.Category
	notice.ImageURL = req.ImageURL

	if err := database.DB.Save(&notice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "공지 수정에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notice": notice})
}

// DeleteNotice 공지를 삭제한다
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notice ID"})
		return
	}

	var notice models.Notice
	if err := database.DB.First(&notice, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "공지를 찾을 수 없습니다"})
		return
	}

	if err := database.DB.Delete(&notice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "공지 삭제에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "공지가 삭제되었습니다"})
}
