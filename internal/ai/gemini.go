package ai

import (
	"context"
	"fmt"

	"weyouth/internal/config"

	"google.golang.org/genai"
)

// Client Gemini API로 묵상 글과 멘토 답변을 생성한다
type Client struct {
	client          *genai.Client
	reflectionModel string
	mentorModel     string
}

func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		client:          client,
		reflectionModel: cfg.ReflectionModel,
		mentorModel:     cfg.MentorModel,
	}, nil
}

// GenerateReflection 오늘의 성경 구절을 바탕으로 청소년용 묵상 글을 생성한다
func (c *Client) GenerateReflection(ctx context.Context, verse, reference string) (string, error) {
	prompt := fmt.Sprintf(
		"다음 성경 구절을 바탕으로 청소년들이 공감할 수 있는 묵상 글을 작성해줘.\n구절: %s (%s)\n구성:\n1. 오늘의 묵상 (3-4문장)\n2. 삶에 적용하기 (1문장)\n3. 오늘의 기도 (1문장)",
		verse, reference,
	)

	resp, err := c.client.Models.GenerateContent(ctx, c.reflectionModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		MaxOutputTokens: 800,
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate reflection: %w", err)
	}

	return resp.Text(), nil
}

// AnswerQuestion 성경 멘토로서 청소년의 질문에 답한다
func (c *Client) AnswerQuestion(ctx context.Context, question string) (string, error) {
	prompt := fmt.Sprintf(
		"당신은 친절하고 지혜로운 교회 선생님입니다. 청소년의 눈높이에서 다음 질문에 대해 성경적이고 따뜻하게 답해주세요: %s",
		question,
	)

	resp, err := c.client.Models.GenerateContent(ctx, c.mentorModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		MaxOutputTokens: 1000,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](4000),
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: answer question: %w", err)
	}

	return resp.Text(), nil
}
