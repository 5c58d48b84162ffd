package handlers

import (
	"errors"
	"net/http"
	"time"

	"weyouth/internal/config"
	"weyouth/internal/database"
	"weyouth/internal/identity"
	"weyouth/internal/middleware"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// LoginRequest 로그인 요청 구조체
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"` // 선택한 버튼: student 또는 teacher
}

// AuthResponse 로그인 응답 구조체
type AuthResponse struct {
	Token string            `json:"token"`
	User  identity.Identity `json:"user"`
}

// Login 이름 + 공용 비밀번호로 로그인하고 명단 대조로 신분을 확정한다
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var roster []models.Member
	if err := database.DB.Find(&roster).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "명단을 불러오지 못했습니다"})
		return
	}

	user, err := identity.ResolveLogin(req.Name, req.Password, req.Role, roster, h.cfg.Auth.SharedPasswordHash)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, identity.ErrEmptyName) || errors.Is(err, identity.ErrInvalidRole) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user,
	})
}

// Me 현재 세션 사용자를 반환한다 (명단 대조가 반영된 신분)
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := c.Get("user_id")
	userName, _ := c.Get("user_name")
	role, _ := c.Get("role")

	user := identity.Identity{
		ID:   userID.(string),
		Name: userName.(string),
		Role: role.(string),
	}

	// 명단에 학년이 지정되어 있으면 함께 반환
	var member models.Member
	if err := database.DB.Where("name = ?", user.Name).First(&member).Error; err == nil {
		user.Grade = member.Grade
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// generateToken JWT 토큰을 생성한다
func (h *AuthHandler) generateToken(user identity.Identity) (string, error) {
	claims := middleware.JWTClaims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.cfg.JWT.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWT.Secret))
}
