package handlers

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"weyouth/internal/database"
	"weyouth/internal/models"
)

func exportTestRouter() *gin.Engine {
	h := NewExportHandler()
	router := gin.New()
	router.Use(asUser("a_admin", "관리자", "admin"))
	router.GET("/export/attendance", h.ExportAttendance)
	router.GET("/export/participations", h.ExportParticipations)
	return router
}

func TestExportAttendanceCSV(t *testing.T) {
	setupTestDB(t)
	records := []models.AttendanceRecord{
		{UserID: "s_1", UserName: "김민준", Date: "2026-09-06", Status: "present"},
		{UserID: "s_2", UserName: "이서연", Date: "2026-09-06", Status: "late"},
		{UserID: "s_3", UserName: "박도윤", Date: "2026-08-30", Status: "present"},
	}
	if err := database.DB.Create(&records).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	router := exportTestRouter()

	w := doJSON(t, router, http.MethodGet, "/export/attendance?start_date=2026-09-01&end_date=2026-09-07", nil)
	mustStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected csv content type, got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("expected attachment disposition, got %s", cd)
	}

	rows, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	// 헤더 + 기간 내 2건
	if len(rows) != 3 {
		t.Fatalf("expected 3 csv rows, got %d", len(rows))
	}
	if rows[0][0] != "날짜" || rows[0][1] != "이름" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
}

func TestExportParticipationsCSV(t *testing.T) {
	setupTestDB(t)
	participations := []models.Participation{
		{NoticeID: 1, NoticeTitle: "여름 수련회", UserID: "s_1", UserName: "김민준", UserRole: "student", AppliedAt: time.Now()},
		{NoticeID: 2, NoticeTitle: "간식 봉사", UserID: "s_2", UserName: "이서연", UserRole: "student", AppliedAt: time.Now()},
	}
	if err := database.DB.Create(&participations).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	router := exportTestRouter()

	w := doJSON(t, router, http.MethodGet, "/export/participations?notice_id=1", nil)
	mustStatus(t, w, http.StatusOK)

	rows, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if rows[1][0] != "여름 수련회" || rows[1][1] != "김민준" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}
