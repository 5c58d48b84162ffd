package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"weyouth/internal/database"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportAttendance 출석 기록을 CSV로 내려준다
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	query := database.DB.Order("date DESC, user_name")

	if start := c.Query("start_date"); start != "" {
		query = query.Where("date >= ?", start)
	}
	if end := c.Query("end_date"); end != "" {
		query = query.Where("date <= ?", end)
	}

	var records []models.AttendanceRecord
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "출석 기록을 불러오지 못했습니다"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=attendance_%s.csv", time.Now().Format("2006-01-02")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"날짜", "이름", "상태", "기록 시각"})

	for _, record := range records {
		writer.Write([]string{
			record.Date,
			record.UserName,
			record.Status,
			record.CreatedAt.Format("15:04:05"),
		})
	}
}

// ExportParticipations 참여 신청 내역을 CSV로 내려준다
func (h *ExportHandler) ExportParticipations(c *gin.Context) {
	query := database.DB.Order("applied_at DESC")

	if noticeID := c.Query("notice_id"); noticeID != "" {
		query = query.Where("notice_id = ?", noticeID)
	}

	var participations []models.Participation
	if err := query.Find(&participations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "신청 내역을 불러오지 못했습니다"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=participations_%s.csv", time.Now().Format("2006-01-02")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"행사", "이름", "신분", "신청 시각"})

	for _, p := range participations {
		writer.Write([]string{
			p.NoticeTitle,
			p.UserName,
			p.UserRole,
			p.AppliedAt.Format("2006-01-02 15:04"),
		})
	}
}
