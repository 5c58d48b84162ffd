package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"weyouth/internal/database"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct{}

func NewMemberHandler() *MemberHandler {
	return &MemberHandler{}
}

// 명단에 부여할 수 있는 신분
var validMemberRoles = map[string]bool{
	"student": true, "teacher": true, "admin": true, "leader": true, "president": true,
}

// AddMemberRequest 명단 등록 요청 구조체
type AddMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Grade *int   `json:"grade,omitempty"`
}

// ChangeRoleRequest 신분 변경 요청 구조체
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ListMembers 관리 중인 명단을 반환한다
func (h *MemberHandler) ListMembers(c *gin.Context) {
	role := c.Query("role")

	query := database.DB.Order("created_at DESC")
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var members []models.Member
	if err := query.Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "명단을 불러오지 못했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// AddMember 명단에 새 회원을 등록한다
func (h *MemberHandler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "등록할 성함을 입력해주세요"})
		return
	}

	if !validMemberRoles[req.Role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "올바르지 않은 신분입니다"})
		return
	}

	// 이름은 로그인 대조 키이므로 중복 등록 불가
	var existing models.Member
	if err := database.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "이미 등록된 이름입니다"})
		return
	}

	member := models.Member{
		Name:  name,
		Role:  req.Role,
		Grade: req.Grade,
	}

	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "명단 등록에 실패했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// ChangeRole 명단의 신분을 변경한다.
// 해당 이름으로 로그인 중인 세션에는 다음 요청부터 바로 반영된다.
func (h *MemberHandler) ChangeRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validMemberRoles[req.Role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "올바르지 않은 신분입니다"})
		return
	}

	var member models.Member
	if err := database.DB.First(&member, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "명단에서 찾을 수 없습니다"})
		return
	}

	member.Role = req.Role
	if err := database.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "신분 변경에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member})
}

// DeleteMember 명단에서 삭제한다
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var member models.Member
	if err := database.DB.First(&member, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "명단에서 찾을 수 없습니다"})
		return
	}

	if err := database.DB.Delete(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "명단 삭제에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "명단에서 삭제되었습니다"})
}
