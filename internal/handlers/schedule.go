package handlers

import (
	"net/http"
	"strconv"

	"weyouth/internal/database"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// CreateScheduleRequest 일정 등록 요청 구조체
type CreateScheduleRequest struct {
	Day    string `json:"day" binding:"required"` // 월, 화, ..., 주일
	Title  string `json:"title" binding:"required"`
	Time   string `json:"time" binding:"required"` // HH:MM
	Type   string `json:"type" binding:"required"` // practice, meeting, worship
	IsMain bool   `json:"is_main"`
}

// CreateSchedule 주간 일정을 등록한다
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.ScheduleEntry{
		Day:    req.Day,
		Title:  req.Title,
		Time:   req.Time,
		Type:   req.Type,
		IsMain: req.IsMain,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "일정 저장에 실패했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"schedule": entry})
}

// ListSchedules 주간 일정 목록을 반환한다
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	var entries []models.ScheduleEntry
	if err := database.DB.Order("id").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "일정을 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": entries})
}

// UpdateSchedule 일정을 수정한다
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var entry models.ScheduleEntry
	if err := database.DB.First(&entry, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "일정을 찾을 수 없습니다"})
		return
	}

	entry.Day = req.Day
	entry.Title = req.Title
	entry.Time = req.Time
	entry.Type = req.Type
	entry.IsMain = req.IsMain

	if err := database.DB.Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "일정 수정에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": entry})
}

// DeleteSchedule 일정을 삭제한다
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	var entry models.ScheduleEntry
	if err := database.DB.First(&entry, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "일정을 찾을 수 없습니다"})
		return
	}

	if err := database.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "일정 삭제에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "일정이 삭제되었습니다"})
}
