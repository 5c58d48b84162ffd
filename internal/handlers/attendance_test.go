package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"weyouth/internal/config"
	"weyouth/internal/database"
	"weyouth/internal/models"
)

func attendanceTestRouter(cfg *config.Config, userID, userName string) *gin.Engine {
	h := NewAttendanceHandler(cfg)
	router := gin.New()
	router.Use(asUser(userID, userName, "student"))
	router.POST("/attendance/checkin", h.CheckIn)
	router.GET("/attendance/me", h.MyAttendance)
	return router
}

func attendanceConfig() *config.Config {
	return &config.Config{Attendance: config.AttendanceConfig{LateCutoff: "10:40"}}
}

func TestStatusForTime(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         string
	}{
		{9, 0, "present"},
		{9, 50, "present"}, // 분만 넘겨도 기준 시각 전이면 출석
		{10, 39, "present"},
		{10, 40, "late"}, // 기준 시각 정각부터 지각
		{10, 41, "late"},
		{11, 5, "late"},
		{23, 0, "late"},
	}

	for _, tc := range cases {
		now := time.Date(2026, 9, 6, tc.hour, tc.minute, 0, 0, time.Local)
		if got := statusForTime(now, "10:40"); got != tc.want {
			t.Fatalf("%02d:%02d: expected %s, got %s", tc.hour, tc.minute, tc.want, got)
		}
	}
}

func TestStatusForTimeInvalidCutoffFallsBack(t *testing.T) {
	now := time.Date(2026, 9, 6, 10, 39, 0, 0, time.Local)
	if got := statusForTime(now, "not-a-time"); got != "present" {
		t.Fatalf("expected fallback cutoff 10:40, got %s", got)
	}
}

func TestCheckInOncePerDay(t *testing.T) {
	setupTestDB(t)
	router := attendanceTestRouter(attendanceConfig(), "s_abc", "김민준")

	w := doJSON(t, router, http.MethodPost, "/attendance/checkin", nil)
	mustStatus(t, w, http.StatusCreated)

	// 같은 날 두 번째 출석은 거부되고 기존 기록이 돌아온다
	w = doJSON(t, router, http.MethodPost, "/attendance/checkin", nil)
	mustStatus(t, w, http.StatusConflict)
	body := decodeBody(t, w)
	if body["attendance"] == nil {
		t.Fatal("conflict response should include the existing record")
	}

	var count int64
	if err := database.DB.Model(&models.AttendanceRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one record, got %d", count)
	}
}

func TestCheckInDedupByName(t *testing.T) {
	setupTestDB(t)

	// 재로그인으로 세션 ID가 바뀌어도 이름이 같으면 같은 사람이다
	first := attendanceTestRouter(attendanceConfig(), "s_session1", "김민준")
	w := doJSON(t, first, http.MethodPost, "/attendance/checkin", nil)
	mustStatus(t, w, http.StatusCreated)

	second := attendanceTestRouter(attendanceConfig(), "s_session2", "김민준")
	w = doJSON(t, second, http.MethodPost, "/attendance/checkin", nil)
	mustStatus(t, w, http.StatusConflict)
}

func TestMyAttendance(t *testing.T) {
	setupTestDB(t)
	router := attendanceTestRouter(attendanceConfig(), "s_abc", "이서연")

	// 출석 전에는 null
	w := doJSON(t, router, http.MethodGet, "/attendance/me", nil)
	mustStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	if body["attendance"] != nil {
		t.Fatalf("expected null before check-in, got %v", body["attendance"])
	}

	w = doJSON(t, router, http.MethodPost, "/attendance/checkin", nil)
	mustStatus(t, w, http.StatusCreated)

	w = doJSON(t, router, http.MethodGet, "/attendance/me", nil)
	mustStatus(t, w, http.StatusOK)
	body = decodeBody(t, w)
	record, ok := body["attendance"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected attendance record, got %v", body["attendance"])
	}
	if record["user_name"] != "이서연" {
		t.Fatalf("expected 이서연, got %v", record["user_name"])
	}
}

func TestAttendanceStats(t *testing.T) {
	setupTestDB(t)

	records := []models.AttendanceRecord{
		{UserID: "s_1", UserName: "김민준", Date: "2026-09-06", Status: "present"},
		{UserID: "s_2", UserName: "이서연", Date: "2026-09-06", Status: "present"},
		{UserID: "s_3", UserName: "박도윤", Date: "2026-09-06", Status: "late"},
		{UserID: "s_4", UserName: "최지우", Date: "2026-08-30", Status: "present"},
	}
	if err := database.DB.Create(&records).Error; err != nil {
		t.Fatalf("failed to seed records: %v", err)
	}

	h := NewAttendanceHandler(attendanceConfig())
	router := gin.New()
	router.GET("/attendance/stats", h.GetAttendanceStats)

	w := doJSON(t, router, http.MethodGet, "/attendance/stats?start_date=2026-09-01&end_date=2026-09-07", nil)
	mustStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	stats := body["stats"].(map[string]interface{})
	if stats["present"].(float64) != 2 {
		t.Fatalf("expected 2 present, got %v", stats["present"])
	}
	if stats["late"].(float64) != 1 {
		t.Fatalf("expected 1 late, got %v", stats["late"])
	}
	if stats["absent"].(float64) != 0 {
		t.Fatalf("expected 0 absent, got %v", stats["absent"])
	}

	// 기간 없이 호출하면 400
	w = doJSON(t, router, http.MethodGet, "/attendance/stats", nil)
	mustStatus(t, w, http.StatusBadRequest)
}
