package handlers

import (
	"log"
	"net/http"
	"strconv"

	"weyouth/internal/database"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// CreatePostRequest 게시글 작성 요청 구조체
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"` // talk, prayer
}

// CreateCommentRequest 댓글 작성 요청 구조체
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreatePost 게시글을 작성하고 커뮤니티 알림을 발행한다
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, _ := c.Get("user_id")
	userName, _ := c.Get("user_name")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Category != "talk" && req.Category != "prayer" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post category"})
		return
	}

	post := models.Post{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   userID.(string),
		AuthorName: userName.(string),
		Category:   req.Category,
		Comments:   []models.Comment{},
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "게시글 저장에 실패했습니다"})
		return
	}

	// 커뮤니티 알림 발행 (게시글 저장과 별도의 쓰기)
	notification := models.Notification{
		Type:    "community",
		Title:   post.Title,
		Message: post.AuthorName + "님이 새 글을 올렸습니다.",
		Link:    "/post/" + strconv.FormatUint(uint64(post.ID), 10),
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification for post %d: %v", post.ID, err)
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// ListPosts 게시글 목록을 반환한다.
// 기본은 최신순, 채팅 화면용으로 ?order=asc 를 지원한다.
func (h *PostHandler) ListPosts(c *gin.Context) {
	category := c.Query("category")

	order := "created_at DESC"
	if c.Query("order") == "asc" {
		order = "created_at ASC"
	}

	query := database.DB.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.created_at ASC")
	}).Order(order)

	if category != "" {
		query = query.Where("category = ?", category)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "게시글을 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost 게시글 상세를 댓글과 함께 반환한다
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := database.DB.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.created_at ASC")
	}).First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "글을 찾을 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// LikePost 좋아요 수를 1 올린다 (중복 제한 없음, 단조 증가)
func (h *PostHandler) LikePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "글을 찾을 수 없습니다"})
		return
	}

	if err := database.DB.Model(&post).Update("likes", gorm.Expr("likes + 1")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "좋아요 처리에 실패했습니다"})
		return
	}

	if err := database.DB.First(&post, post.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "좋아요 처리에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// AddComment 게시글에 댓글을 단다 (추가만 가능, 수정/삭제 없음)
func (h *PostHandler) AddComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	userName, _ := c.Get("user_name")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "글을 찾을 수 없습니다"})
		return
	}

	comment := models.Comment{
		PostID:     post.ID,
		AuthorName: userName.(string),
		Content:    req.Content,
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "댓글 저장에 실패했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
