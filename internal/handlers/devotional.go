package handlers

import (
	"context"
	"log"
	"net/http"

	"weyouth/internal/config"
	"weyouth/internal/database"
	"weyouth/internal/models"

	"github.com/gin-gonic/gin"
)

// Generator AI 텍스트 생성기 (테스트에서 대체할 수 있도록 인터페이스로 분리)
type Generator interface {
	GenerateReflection(ctx context.Context, verse, reference string) (string, error)
	AnswerQuestion(ctx context.Context, question string) (string, error)
}

type DevotionalHandler struct {
	cfg *config.Config
	gen Generator
}

func NewDevotionalHandler(cfg *config.Config, gen Generator) *DevotionalHandler {
	return &DevotionalHandler{cfg: cfg, gen: gen}
}

// ReflectionRequest 묵상 생성 요청 구조체
type ReflectionRequest struct {
	Verse     string `json:"verse" binding:"required"`
	Reference string `json:"reference" binding:"required"`
}

// MentorRequest 성경 멘토 질문 구조체
type MentorRequest struct {
	Question string `json:"question" binding:"required"`
}

// GetDailyVerse 오늘의 말씀을 무작위로 하나 반환한다
func (h *DevotionalHandler) GetDailyVerse(c *gin.Context) {
	var verse models.DailyVerse
	if err := database.DB.Order("RANDOM()").First(&verse).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "등록된 말씀이 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"verse": verse})
}

// GenerateReflection 구절에 대한 AI 묵상 글을 생성한다.
// 요청별 타임아웃 안에서 한 번만 호출하며, 실패는 기능 내 오류로만 표시된다.
func (h *DevotionalHandler) GenerateReflection(c *gin.Context) {
	if h.gen == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI 기능이 설정되지 않았습니다"})
		return
	}

	var req ReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.Gemini.RequestTimeout)
	defer cancel()

	text, err := h.gen.GenerateReflection(ctx, req.Verse, req.Reference)
	if err != nil {
		log.Printf("Reflection generation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "묵상 내용을 불러오는 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reflection": text})
}

// AskMentor 성경 멘토 AI에게 질문한다.
// 대화 기록은 서버에 남기지 않는다 (단발 요청).
func (h *DevotionalHandler) AskMentor(c *gin.Context) {
	if h.gen == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI 기능이 설정되지 않았습니다"})
		return
	}

	var req MentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.Gemini.RequestTimeout)
	defer cancel()

	answer, err := h.gen.AnswerQuestion(ctx, req.Question)
	if err != nil {
		log.Printf("Mentor answer failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "죄송해요, 답변을 준비하는 중에 문제가 생겼어요. 나중에 다시 물어봐 줄래?"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
