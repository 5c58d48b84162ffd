package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func memberTestRouter() *gin.Engine {
	h := NewMemberHandler()
	router := gin.New()
	router.Use(asUser("a_admin", "관리자", "admin"))
	router.GET("/members", h.ListMembers)
	router.POST("/members", h.AddMember)
	router.PUT("/members/:id/role", h.ChangeRole)
	router.DELETE("/members/:id", h.DeleteMember)
	return router
}

func TestAddMemberRejectsDuplicateName(t *testing.T) {
	setupTestDB(t)
	router := memberTestRouter()

	w := doJSON(t, router, http.MethodPost, "/members", gin.H{"name": "김민준", "role": "student", "grade": 11})
	mustStatus(t, w, http.StatusCreated)

	// 이름은 로그인 대조 키, 중복 불가
	w = doJSON(t, router, http.MethodPost, "/members", gin.H{"name": "김민준", "role": "teacher"})
	mustStatus(t, w, http.StatusConflict)

	// 앞뒤 공백만 다른 이름도 같은 이름이다
	w = doJSON(t, router, http.MethodPost, "/members", gin.H{"name": "  김민준 ", "role": "teacher"})
	mustStatus(t, w, http.StatusConflict)
}

func TestAddMemberValidation(t *testing.T) {
	setupTestDB(t)
	router := memberTestRouter()

	w := doJSON(t, router, http.MethodPost, "/members", gin.H{"name": "   ", "role": "student"})
	mustStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, router, http.MethodPost, "/members", gin.H{"name": "김민준", "role": "principal"})
	mustStatus(t, w, http.StatusBadRequest)
}

func TestChangeRole(t *testing.T) {
	setupTestDB(t)
	router := memberTestRouter()

	w := doJSON(t, router, http.MethodPost, "/members", gin.H{"name": "박시온", "role": "student", "grade": 12})
	mustStatus(t, w, http.StatusCreated)
	id := decodeBody(t, w)["member"].(map[string]interface{})["id"]

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/members/%v/role", id), gin.H{"role": "president"})
	mustStatus(t, w, http.StatusOK)
	member := decodeBody(t, w)["member"].(map[string]interface{})
	if member["role"] != "president" {
		t.Fatalf("expected president, got %v", member["role"])
	}

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/members/%v/role", id), gin.H{"role": "sudo"})
	mustStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, router, http.MethodPut, "/members/999/role", gin.H{"role": "teacher"})
	mustStatus(t, w, http.StatusNotFound)
}

func TestListMembersByRole(t *testing.T) {
	setupTestDB(t)
	router := memberTestRouter()

	for _, m := range []gin.H{
		{"name": "김민준", "role": "student", "grade": 10},
		{"name": "이서연", "role": "student", "grade": 11},
		{"name": "김은혜", "role": "teacher"},
	} {
		w := doJSON(t, router, http.MethodPost, "/members", m)
		mustStatus(t, w, http.StatusCreated)
	}

	w := doJSON(t, router, http.MethodGet, "/members?role=student", nil)
	mustStatus(t, w, http.StatusOK)
	if list := decodeBody(t, w)["members"].([]interface{}); len(list) != 2 {
		t.Fatalf("expected 2 students, got %d", len(list))
	}
}

func TestDeleteMember(t *testing.T) {
	setupTestDB(t)
	router := memberTestRouter()

	w := doJSON(t, router, http.MethodPost, "/members", gin.H{"name": "홍태양", "role": "student"})
	mustStatus(t, w, http.StatusCreated)
	id := decodeBody(t, w)["member"].(map[string]interface{})["id"]

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/members/%v", id), nil)
	mustStatus(t, w, http.StatusOK)

	// 삭제 후에는 목록에서 빠진다
	w = doJSON(t, router, http.MethodGet, "/members", nil)
	if list := decodeBody(t, w)["members"].([]interface{}); len(list) != 0 {
		t.Fatalf("expected empty roster, got %d", len(list))
	}
}

func TestDeletedNameCanBeReAdded(t *testing.T) {
	setupTestDB(t)
	router := memberTestRouter()

	w := doJSON(t, router, http.MethodPost, "/members", gin.H{"name": "김민준", "role": "student", "grade": 11})
	mustStatus(t, w, http.StatusCreated)
	id := decodeBody(t, w)["member"].(map[string]interface{})["id"]

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/members/%v", id), nil)
	mustStatus(t, w, http.StatusOK)

	// 지운 이름은 즉시 다시 등록할 수 있다 (돌아온 학생)
	w = doJSON(t, router, http.MethodPost, "/members", gin.H{"name": "김민준", "role": "student", "grade": 12})
	mustStatus(t, w, http.StatusCreated)
	member := decodeBody(t, w)["member"].(map[string]interface{})
	if member["grade"].(float64) != 12 {
		t.Fatalf("expected fresh entry with grade 12, got %v", member["grade"])
	}
}
