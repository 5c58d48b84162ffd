package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"weyouth/internal/database"
	"weyouth/internal/models"
)

func postTestRouter(userID, userName string) *gin.Engine {
	h := NewPostHandler()
	router := gin.New()
	router.Use(asUser(userID, userName, "student"))
	router.POST("/posts", h.CreatePost)
	router.GET("/posts", h.ListPosts)
	router.GET("/posts/:id", h.GetPost)
	router.POST("/posts/:id/like", h.LikePost)
	router.POST("/posts/:id/comments", h.AddComment)
	return router
}

func TestCreatePostPublishesCommunityNotification(t *testing.T) {
	setupTestDB(t)
	router := postTestRouter("s_abc", "김민준")

	w := doJSON(t, router, http.MethodPost, "/posts", gin.H{
		"title":    "기도 부탁드려요",
		"content":  "기말고사가 다가옵니다.",
		"category": "prayer",
	})
	mustStatus(t, w, http.StatusCreated)

	var n models.Notification
	if err := database.DB.First(&n).Error; err != nil {
		t.Fatalf("notification not created: %v", err)
	}
	if n.Type != "community" {
		t.Fatalf("expected type community, got %s", n.Type)
	}
	if n.IsRead {
		t.Fatal("new notification should be unread")
	}
}

func TestCreatePostRejectsBadCategory(t *testing.T) {
	setupTestDB(t)
	router := postTestRouter("s_abc", "김민준")

	w := doJSON(t, router, http.MethodPost, "/posts", gin.H{
		"title":    "제목",
		"content":  "내용",
		"category": "notice",
	})
	mustStatus(t, w, http.StatusBadRequest)
}

func TestLikePostMonotonic(t *testing.T) {
	setupTestDB(t)
	router := postTestRouter("s_abc", "김민준")

	w := doJSON(t, router, http.MethodPost, "/posts", gin.H{
		"title":    "찬양팀 연습 후기",
		"content":  "오늘도 은혜로웠습니다.",
		"category": "talk",
	})
	mustStatus(t, w, http.StatusCreated)
	id := decodeBody(t, w)["post"].(map[string]interface{})["id"]
	path := fmt.Sprintf("/posts/%v/like", id)

	// 같은 사람이 눌러도 매번 1씩 오른다
	for i := 1; i <= 3; i++ {
		w = doJSON(t, router, http.MethodPost, path, nil)
		mustStatus(t, w, http.StatusOK)
		likes := decodeBody(t, w)["post"].(map[string]interface{})["likes"].(float64)
		if int(likes) != i {
			t.Fatalf("expected %d likes, got %v", i, likes)
		}
	}
}

func TestCommentsAppendInOrder(t *testing.T) {
	setupTestDB(t)
	author := postTestRouter("s_1", "김민준")

	w := doJSON(t, author, http.MethodPost, "/posts", gin.H{
		"title":    "점심 같이 먹을 사람?",
		"content":  "예배 끝나고요",
		"category": "talk",
	})
	mustStatus(t, w, http.StatusCreated)
	id := decodeBody(t, w)["post"].(map[string]interface{})["id"]

	for i, name := range []string{"이서연", "박도윤", "최지우"} {
		commenter := postTestRouter(fmt.Sprintf("s_c%d", i), name)
		w = doJSON(t, commenter, http.MethodPost, fmt.Sprintf("/posts/%v/comments", id), gin.H{
			"content": fmt.Sprintf("저요! (%d)", i),
		})
		mustStatus(t, w, http.StatusCreated)
	}

	w = doJSON(t, author, http.MethodGet, fmt.Sprintf("/posts/%v", id), nil)
	mustStatus(t, w, http.StatusOK)
	post := decodeBody(t, w)["post"].(map[string]interface{})
	comments := post["comments"].([]interface{})
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	// 댓글은 작성 순서대로 온다
	wantAuthors := []string{"이서연", "박도윤", "최지우"}
	for i, raw := range comments {
		c := raw.(map[string]interface{})
		if c["author_name"] != wantAuthors[i] {
			t.Fatalf("comment %d: expected %s, got %v", i, wantAuthors[i], c["author_name"])
		}
	}
}

func TestListPostsFilterAndOrder(t *testing.T) {
	setupTestDB(t)
	router := postTestRouter("s_abc", "김민준")

	for i, cat := range []string{"talk", "prayer", "talk"} {
		w := doJSON(t, router, http.MethodPost, "/posts", gin.H{
			"title":    fmt.Sprintf("글 %d", i),
			"content":  "내용",
			"category": cat,
		})
		mustStatus(t, w, http.StatusCreated)
	}

	w := doJSON(t, router, http.MethodGet, "/posts?category=talk", nil)
	mustStatus(t, w, http.StatusOK)
	if list := decodeBody(t, w)["posts"].([]interface{}); len(list) != 2 {
		t.Fatalf("expected 2 talk posts, got %d", len(list))
	}

	// 채팅 화면용 오름차순
	w = doJSON(t, router, http.MethodGet, "/posts?category=talk&order=asc", nil)
	mustStatus(t, w, http.StatusOK)
	list := decodeBody(t, w)["posts"].([]interface{})
	first := list[0].(map[string]interface{})
	if first["title"] != "글 0" {
		t.Fatalf("expected oldest first with order=asc, got %v", first["title"])
	}
}
